package command

import (
	"errors"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want Command
	}{
		{"g", Command{Verb: Get}},
		{"  o 3 4 ", Command{Verb: Open, Col: 3, Row: 4}},
		{"F 0 7", Command{Verb: Flag, Col: 0, Row: 7}},
		{"n", Command{Verb: NewGame}},
		{"n hard", Command{Verb: NewGame, Difficulty: "hard"}},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			have, err := Parse(test.line)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", test.line, err)
			}
			if have != test.want {
				t.Errorf("Parse(%q) = %+v, want %+v", test.line, have, test.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		err  error
	}{
		{"", ErrUnknownCommand},
		{"r", ErrUnknownCommand},
		{"o 1", ErrArgCount},
		{"f 1 2 3", ErrArgCount},
		{"g now", ErrArgCount},
		{"n easy hard", ErrArgCount},
		{"o a 1", nil},
		{"o 1 b", nil},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := Parse(test.line)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", test.line)
			}
			if test.err != nil && !errors.Is(err, test.err) {
				t.Errorf("Parse(%q) error = %v, want %v", test.line, err, test.err)
			}
		})
	}
}

func TestCommandStringParsesBack(t *testing.T) {
	t.Parallel()
	for _, c := range []Command{
		{Verb: Get},
		{Verb: Open, Col: 2, Row: 9},
		{Verb: Flag, Col: 11, Row: 0},
		{Verb: NewGame},
		{Verb: NewGame, Difficulty: "normal"},
	} {
		back, err := Parse(c.String())
		if err != nil || back != c {
			t.Errorf("Parse(%q) = %+v, %v", c.String(), back, err)
		}
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"o 1 2", []string{"o 1 2"}},
		{"o 1 2\nf 3 4\n\n  g  \n", []string{"o 1 2", "f 3 4", "g"}},
		{"", nil},
	}
	for _, test := range tests {
		have := slices.Collect(Lines(test.input))
		if !slices.Equal(have, test.want) {
			t.Errorf("Lines(%q) = %q, want %q", test.input, have, test.want)
		}
	}
}
