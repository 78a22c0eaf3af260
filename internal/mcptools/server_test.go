package mcptools

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

func newTestServer(t *testing.T) (*Server, *session.Session) {
	t.Helper()
	s, err := session.New(mines.Easy, rand.New(rand.NewPCG(3, 4)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	return New(s, slog.New(slog.NewTextHandler(io.Discard, nil)), "test"), s
}

func call(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("Expected content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

func TestNew(t *testing.T) {
	srv, _ := newTestServer(t)
	if srv.MCPServer() == nil {
		t.Fatal("Expected MCP server to be initialized")
	}
}

func TestHandleFlag(t *testing.T) {
	srv, s := newTestServer(t)

	result, err := srv.handleFlag(context.Background(), call("flag", map[string]interface{}{
		"col": float64(2),
		"row": float64(5),
	}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.IsError {
		t.Fatalf("Unexpected tool error: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Mines left: 9") {
		t.Errorf("Expected 9 mines left, got:\n%s", text)
	}
	if got := s.Snapshot().Board[5*8+2]; got != mines.Flagged {
		t.Errorf("Expected cell (2, 5) to be flagged, got %v", got)
	}
}

func TestHandleRevealErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing row", map[string]interface{}{"col": float64(1)}, "missing row"},
		{"fractional", map[string]interface{}{"col": 1.5, "row": float64(0)}, "col must be an integer"},
		{"string", map[string]interface{}{"col": "a", "row": float64(0)}, "col must be an integer"},
		{"out of bounds", map[string]interface{}{"col": float64(8), "row": float64(0)}, "invalid cell position"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := srv.handleReveal(context.Background(), call("reveal", tc.args))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !result.IsError {
				t.Fatal("Expected a tool error")
			}
			if text := resultText(t, result); !strings.Contains(text, tc.want) {
				t.Errorf("Expected %q in %q", tc.want, text)
			}
		})
	}
}

func TestHandleNewGame(t *testing.T) {
	srv, s := newTestServer(t)

	result, err := srv.handleNewGame(context.Background(), call("new_game", map[string]interface{}{
		"difficulty": "Hard",
	}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text := resultText(t, result); !strings.Contains(text, "Difficulty: hard (24x24, 99 mines)") {
		t.Errorf("Unexpected board header:\n%s", text)
	}
	if s.Snapshot().Difficulty != mines.Hard {
		t.Errorf("Expected hard, got %v", s.Snapshot().Difficulty)
	}

	result, _ = srv.handleNewGame(context.Background(), call("new_game", map[string]interface{}{
		"difficulty": "impossible",
	}))
	if !result.IsError {
		t.Error("Expected unknown difficulty to be rejected")
	}

	result, _ = srv.handleNewGame(context.Background(), call("new_game", map[string]interface{}{}))
	if result.IsError || s.Snapshot().Difficulty != mines.Hard {
		t.Error("Expected an argument-free new game to keep the difficulty")
	}
}

func TestHandleBoard(t *testing.T) {
	srv, _ := newTestServer(t)

	result, err := srv.handleBoard(context.Background(), call("board", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Status: playing") {
		t.Errorf("Expected a fresh game, got:\n%s", text)
	}
	if strings.Count(text, ". . . . . . . .") != 8 {
		t.Errorf("Expected 8 closed rows, got:\n%s", text)
	}
}
