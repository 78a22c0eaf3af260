package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/command"
	"github.com/vancomm/minefield/internal/session"
)

const help = `commands:
  o <col> <row>   reveal a cell
  f <col> <row>   flag or unflag a cell
  n [difficulty]  new game (easy, normal, hard)
  g               redraw
  h               this help
  q               quit
`

// Console plays the running session over a line-oriented terminal.
type Console struct {
	session *session.Session
	log     logrus.FieldLogger
}

func New(s *session.Session, log logrus.FieldLogger) *Console {
	return &Console{session: s, log: log}
}

// Run reads commands from in until it is exhausted or the player quits,
// drawing the board to out after every command.
func (c *Console) Run(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, help)
	if err := Draw(out, c.session.Snapshot()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			c.log.Info("player quit")
			return nil
		case "h", "help", "?":
			fmt.Fprint(out, help)
			continue
		}

		snap, err := c.apply(line)
		if err != nil {
			c.log.WithField("command", line).WithError(err).Debug("rejected command")
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}
		if err := Draw(out, snap); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *Console) apply(line string) (*session.Snapshot, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return nil, err
	}
	snap, err := c.session.Execute(cmd)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{
		"command": cmd.String(),
		"status":  snap.Status.String(),
	}).Debug("applied command")
	return snap, nil
}
