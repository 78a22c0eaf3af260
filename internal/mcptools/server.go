package mcptools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

const instructions = `Minesweeper over MCP.

The board is a square grid addressed by zero-based col (x) and row (y).
Cells are drawn as:
  .  unknown      F  flagged
  0-8 (blank=0)   number of adjacent mines
  *  mine         #  flagged mine      X  the mine that exploded

Reveal a cell with "reveal", toggle a flag with "flag", inspect the board
with "board" and start over with "new_game". The game is won when every
safe cell is open and every mine is flagged.`

// Server exposes one game session as a set of MCP tools.
type Server struct {
	session *session.Session
	logger  *slog.Logger
	mcp     *server.MCPServer
}

func New(s *session.Session, logger *slog.Logger, version string) *Server {
	srv := &Server{session: s, logger: logger}
	srv.mcp = server.NewMCPServer(
		"minefield",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
	)
	srv.registerTools()
	return srv
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve blocks answering MCP requests on stdin and stdout.
func (s *Server) Serve() error {
	s.logger.Info("serving mcp over stdio")
	return server.ServeStdio(s.mcp)
}

func positionSchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"col": map[string]interface{}{
				"type":        "integer",
				"description": "Zero-based column (x)",
			},
			"row": map[string]interface{}{
				"type":        "integer",
				"description": "Zero-based row (y)",
			},
		},
		Required: []string{"col", "row"},
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new game, optionally at another difficulty",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"difficulty": map[string]interface{}{
					"type":        "string",
					"description": "easy, normal or hard (defaults to the current one)",
					"enum":        difficultyNames(),
				},
			},
		},
	}, s.handleNewGame)

	s.mcp.AddTool(mcp.Tool{
		Name:        "reveal",
		Description: "Open a cell",
		InputSchema: positionSchema(),
	}, s.handleReveal)

	s.mcp.AddTool(mcp.Tool{
		Name:        "flag",
		Description: "Place or remove a flag on a closed cell",
		InputSchema: positionSchema(),
	}, s.handleFlag)

	s.mcp.AddTool(mcp.Tool{
		Name:        "board",
		Description: "Show the current board",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleBoard)
}

func difficultyNames() []string {
	names := make([]string, 0, 3)
	for _, d := range mines.Difficulties() {
		names = append(names, d.String())
	}
	return names
}

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var d mines.Difficulty
	if name, _ := args["difficulty"].(string); name != "" {
		var err error
		if d, err = mines.ParseDifficulty(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	snap, err := s.session.Reset(d)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatSnapshot(snap)), nil
}

func (s *Server) handleReveal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.move(request, s.session.Reveal)
}

func (s *Server) handleFlag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.move(request, s.session.Flag)
}

func (s *Server) handleBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatSnapshot(s.session.Snapshot())), nil
}

func (s *Server) move(request mcp.CallToolRequest, apply func(col, row int) (*session.Snapshot, error)) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	col, err := intArg(args, "col")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	row, err := intArg(args, "row")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := apply(col, row)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: (%d, %d)", err, col, row)), nil
	}
	return mcp.NewToolResultText(formatSnapshot(snap)), nil
}

// intArg accepts JSON numbers, which arrive as float64.
func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be an integer", name)
		}
		return int(v), nil
	case int:
		return v, nil
	case nil:
		return 0, fmt.Errorf("missing %s", name)
	default:
		return 0, fmt.Errorf("%s must be an integer", name)
	}
}
