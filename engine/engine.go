package engine

import "dsagame/game"

// CommandSource supplies the player's command for the next turn. It may
// block until input arrives; io.EOF ends the game as a quit.
type CommandSource interface {
	NextCommand(snap game.Snapshot) (game.Command, error)
}

// Renderer consumes a snapshot after every evaluation, including the final one.
type Renderer interface {
	Render(snap game.Snapshot) error
}
