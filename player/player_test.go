package player

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"dsagame/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestConsole(t *testing.T) {
	t.Run("reads moves and toggles", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("d\nT\n d \nfoo\nq\n"), &out)

		cmd, err := c.NextCommand(game.Snapshot{})
		require.NoError(t, err)
		require.Equal(t, game.MoveAction, cmd.Action)
		require.Equal(t, game.Right, cmd.Dir, "d moves right")

		cmd, err = c.NextCommand(game.Snapshot{})
		require.NoError(t, err)
		require.Equal(t, game.ToggleAction, cmd.Action)
		require.Equal(t, game.Down, cmd.Dir, "d at the toggle prompt means down")

		cmd, err = c.NextCommand(game.Snapshot{})
		require.NoError(t, err)
		require.Equal(t, game.UnknownAction, cmd.Action)

		cmd, err = c.NextCommand(game.Snapshot{})
		require.NoError(t, err)
		require.Equal(t, game.QuitAction, cmd.Action)

		require.Equal(t, 5, strings.Count(out.String(), ":"), "One prompt per line read")
		require.Contains(t, out.String(), "toggle direction (u/d/l/r): ")
	})

	t.Run("end of input", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), io.Discard)
		_, err := c.NextCommand(game.Snapshot{})
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("toggle without an answer", func(t *testing.T) {
		c := NewConsole(strings.NewReader("t\n"), io.Discard)
		cmd, err := c.NextCommand(game.Snapshot{})
		require.NoError(t, err)
		require.Equal(t, game.ToggleAction, cmd.Action)
		require.Equal(t, game.NoDirection, cmd.Dir)
	})

	t.Run("read failure after toggle", func(t *testing.T) {
		broken := errors.New("terminal went away")
		in := io.MultiReader(strings.NewReader("t\n"), iotest.ErrReader(broken))
		c := NewConsole(in, io.Discard)
		_, err := c.NextCommand(game.Snapshot{})
		require.ErrorIs(t, err, broken, "A failed read is reported, not played as a toggle")
	})
}

func TestBot(t *testing.T) {
	t.Run("toggles before crossing", func(t *testing.T) {
		cfg := game.NewConfig(game.WithGrid(1, 3), game.WithGuards(0), game.WithEnergy(20), game.WithActivation(0, 0))
		gs, err := game.NewGameState(cfg)
		require.NoError(t, err)
		bot := NewBot(gs, 1)

		cmd, err := bot.NextCommand(gs.Snapshot())
		require.NoError(t, err)
		require.Equal(t, game.Toggle(game.Right), cmd)

		require.NoError(t, gs.Play(cmd))
		cmd, _ = bot.NextCommand(gs.Snapshot())
		require.Equal(t, game.Move(game.Right), cmd)
	})

	t.Run("wins an open grid", func(t *testing.T) {
		cfg := game.NewConfig(game.WithGrid(4, 4), game.WithGuards(0), game.WithEnergy(40), game.WithActivation(1, 1))
		gs, err := game.NewGameState(cfg)
		require.NoError(t, err)
		bot := NewBot(gs, 1)

		for gs.Evaluate() == game.Playing {
			cmd, err := bot.NextCommand(gs.Snapshot())
			require.NoError(t, err)
			require.NoError(t, gs.Play(cmd))
		}
		require.Equal(t, game.Won, gs.Status)
		require.Equal(t, 6, gs.Turn, "Six moves cross a 4x4 grid")
	})

	t.Run("walks around a guard", func(t *testing.T) {
		// 0 1 2
		// 3 4 5   guard parked on 1
		// 6 7 8
		cfg := game.NewConfig(game.WithEnergy(40), game.WithPursuit(game.PursuitHold))
		g := game.NewGraph(3, 3, rand.New(rand.NewSource(1)), 1, 9)
		for _, e := range g.Edges() {
			g.SetActive(e.A, e.B, true)
		}
		gs, err := game.NewGameStateFromGraph(g, []int{1}, cfg)
		require.NoError(t, err)

		cmd, _ := NewBot(gs, 1).NextCommand(gs.Snapshot())
		require.Equal(t, game.Move(game.Down), cmd, "Bot should avoid the edge into the guard")
	})

	t.Run("exploration is reproducible", func(t *testing.T) {
		gs, err := game.NewGameState(game.DefaultConfig())
		require.NoError(t, err)
		b1 := NewBot(gs, 9, WithExplore(1))
		b2 := NewBot(gs, 9, WithExplore(1))
		for i := 0; i < 20; i++ {
			c1, _ := b1.NextCommand(gs.Snapshot())
			c2, _ := b2.NextCommand(gs.Snapshot())
			require.Equal(t, c1, c2)
			require.NotEqual(t, game.NoDirection, c1.Dir)
		}
	})
}
