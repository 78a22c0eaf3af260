package command

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

type Verb string

const (
	Get     Verb = "g"
	Open    Verb = "o"
	Flag    Verb = "f"
	NewGame Verb = "n"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
)

// Command is one parsed line of the text protocol spoken by websocket and
// console clients.
type Command struct {
	Verb       Verb
	Col, Row   int
	Difficulty string /* empty keeps the current tier */
}

func (c Command) String() string {
	switch c.Verb {
	case Open, Flag:
		return fmt.Sprintf("%s %d %d", c.Verb, c.Col, c.Row)
	case NewGame:
		return strings.TrimSpace(string(c.Verb) + " " + c.Difficulty)
	default:
		return string(c.Verb)
	}
}

var commandNargs = map[Verb][2]int{
	Get:     {0, 0},
	Open:    {2, 2},
	Flag:    {2, 2},
	NewGame: {0, 1},
}

func parseXY(args []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("first argument must be an int")
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("second argument must be an int")
	}
	return
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}

	verb := Verb(strings.ToLower(parts[0]))
	nargs, ok := commandNargs[verb]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	if len(args) < nargs[0] || len(args) > nargs[1] {
		return Command{}, fmt.Errorf("%w for %q: %d", ErrArgCount, verb, len(args))
	}

	cmd := Command{Verb: verb}
	switch verb {
	case Open, Flag:
		x, y, err := parseXY(args)
		if err != nil {
			return Command{}, err
		}
		cmd.Col, cmd.Row = x, y
	case NewGame:
		if len(args) == 1 {
			cmd.Difficulty = args[0]
		}
	}
	return cmd, nil
}

// Lines yields the non-blank lines of text, trimmed.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		found := true
		var piece string
		for found {
			piece, text, found = strings.Cut(text, "\n")
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(piece) {
				return
			}
		}
	}
}
