package engine

import (
	"errors"
	"io"
	"testing"

	"dsagame/experiments/metrics"
	"dsagame/game"

	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	commands []game.Command
	asked    int
}

func (s *scriptedSource) NextCommand(snap game.Snapshot) (game.Command, error) {
	if s.asked >= len(s.commands) {
		return game.Command{}, io.EOF
	}
	cmd := s.commands[s.asked]
	s.asked++
	return cmd, nil
}

type recordingRenderer struct {
	frames []game.Snapshot
	err    error
}

func (r *recordingRenderer) Render(snap game.Snapshot) error {
	r.frames = append(r.frames, snap)
	return r.err
}

func newState(t *testing.T, options ...game.Option) *game.GameState {
	options = append([]game.Option{game.WithGrid(2, 2), game.WithGuards(0), game.WithActivation(1, 1)}, options...)
	gs, err := game.NewGameState(game.NewConfig(options...))
	require.NoError(t, err)
	return gs
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("wins in two moves", func(t *testing.T) {
		gs := newState(t, game.WithEnergy(5))
		source := &scriptedSource{commands: []game.Command{game.Move(game.Right), game.Move(game.Down)}}
		renderer := &recordingRenderer{}

		_, err := LocalEngine(gs, source, WithRenderer(renderer)).Run()
		require.NoError(t, err)

		require.Equal(t, game.Won, gs.Status)
		require.Equal(t, 2, gs.Turn)
		require.Equal(t, 3, gs.Energy)
		require.Len(t, renderer.frames, 3, "Initial frame, one per turn")
		last := renderer.frames[2]
		require.True(t, last.Over)
		require.Equal(t, game.ReasonWon, last.Reason)
		require.Equal(t, 2, source.asked, "No command is read after the game ends")
	})

	t.Run("out of energy before the next command", func(t *testing.T) {
		gs := newState(t, game.WithEnergy(1))
		source := &scriptedSource{commands: []game.Command{game.Move(game.Right), game.Move(game.Down)}}

		_, err := LocalEngine(gs, source).Run()
		require.NoError(t, err)
		require.Equal(t, game.LostNoEnergy, gs.Status)
		require.Equal(t, 1, source.asked)
		require.Equal(t, 1, gs.Player)
	})

	t.Run("diagnostics reach the renderer", func(t *testing.T) {
		gs := newState(t, game.WithEnergy(10))
		source := &scriptedSource{commands: []game.Command{game.Toggle(game.Up), game.QuitCommand()}}
		renderer := &recordingRenderer{}

		_, err := LocalEngine(gs, source, WithRenderer(renderer)).Run()
		require.NoError(t, err)
		require.Equal(t, game.Quit, gs.Status)
		require.Equal(t, 9, gs.Energy, "Boundary toggle charges only the turn")
		require.Len(t, renderer.frames, 3)
		require.Contains(t, renderer.frames[1].Diagnostic, game.ErrNoEdge.Error())
		require.Empty(t, renderer.frames[2].Diagnostic, "Quit is not a diagnostic")
	})

	t.Run("end of input quits", func(t *testing.T) {
		gs := newState(t, game.WithEnergy(10))
		_, err := LocalEngine(gs, &scriptedSource{}).Run()
		require.NoError(t, err)
		require.Equal(t, game.Quit, gs.Status)
		require.Equal(t, 10, gs.Energy)
	})

	t.Run("immediate win is detected on the first frame", func(t *testing.T) {
		gs := newState(t, game.WithGrid(1, 1))
		source := &scriptedSource{}
		renderer := &recordingRenderer{}
		_, err := LocalEngine(gs, source, WithRenderer(renderer)).Run()
		require.NoError(t, err)
		require.Equal(t, game.Won, gs.Status)
		require.Len(t, renderer.frames, 1)
		require.Zero(t, source.asked)
	})

	t.Run("render failure stops the loop", func(t *testing.T) {
		gs := newState(t, game.WithEnergy(10))
		boom := errors.New("boom")
		_, err := LocalEngine(gs, &scriptedSource{}, WithRenderer(&recordingRenderer{err: boom})).Run()
		require.ErrorIs(t, err, boom)
		require.Equal(t, game.Playing, gs.Status)
	})

	t.Run("collects metrics", func(t *testing.T) {
		gs := newState(t, game.WithEnergy(10))
		source := &scriptedSource{commands: []game.Command{
			game.Toggle(game.Right), game.Toggle(game.Right), game.Move(game.Left), game.Move(game.Right), game.Move(game.Down),
		}}
		metric, err := LocalEngine(gs, source, WithMetrics(metrics.NewCollector())).Run()
		require.NoError(t, err)
		require.Equal(t, "won", metric.Status)
		require.Equal(t, 2, metric.Toggles)
		require.Equal(t, 2, metric.Moves)
		require.Equal(t, 1, metric.Diagnostics)
		require.Equal(t, 5, metric.Turns)
		require.Equal(t, 1, metric.EnergyLeft)
	})
}

func TestLocalEnginePanics(t *testing.T) {
	require.Panics(t, func() { LocalEngine(nil, &scriptedSource{}) })
	gs := newState(t)
	require.Panics(t, func() { LocalEngine(gs, nil) })
}
