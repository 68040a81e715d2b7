package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line   string
		action ActionType
		dir    Direction
	}{
		{"w", MoveAction, Up},
		{"UP", MoveAction, Up},
		{"  s ", MoveAction, Down},
		{"down", MoveAction, Down},
		{"a", MoveAction, Left},
		{"Left", MoveAction, Left},
		{"d", MoveAction, Right},
		{"right", MoveAction, Right},
		{"t", ToggleAction, NoDirection},
		{"T", ToggleAction, NoDirection},
		{"q", QuitAction, NoDirection},
		{"quit", QuitAction, NoDirection},
		{"", UnknownAction, NoDirection},
		{"jump", UnknownAction, NoDirection},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := ParseCommand(tt.line)
			require.Equal(t, tt.action, cmd.Action)
			require.Equal(t, tt.dir, cmd.Dir)
		})
	}
}

func TestParseToggleDirection(t *testing.T) {
	tests := map[string]Direction{
		"u": Up, "w": Up,
		"d": Down, "s": Down, "D ": Down,
		"l": Left, "a": Left,
		"r": Right, "e": Right,
		"x": NoDirection, "": NoDirection,
	}
	for line, want := range tests {
		require.Equal(t, want, ParseToggleDirection(line), "Toggle direction for %q", line)
	}
}
