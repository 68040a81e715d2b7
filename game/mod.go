package game

import "errors"

// Status is the phase of the turn loop. Every status other than Playing is terminal.
type Status int

const (
	Playing Status = iota
	Won
	LostCaptured
	LostNoEnergy
	Quit
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case LostCaptured:
		return "captured"
	case LostNoEnergy:
		return "out of energy"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s != Playing
}

// Reasons shown to the player when the game ends.
const (
	ReasonWon         = "CONGRATULATIONS! You reached the exit with network connected."
	ReasonCaptured    = "CAPTURED! A guard caught you."
	ReasonOutOfEnergy = "OUT OF ENERGY! You failed to finish."
	ReasonQuit        = "Goodbye"
)

var (
	// ErrInvalidConfig is wrapped by every construction-time validation failure.
	ErrInvalidConfig = errors.New("game: invalid configuration")

	// Gameplay diagnostics. They never end the game; the turn is still consumed.
	ErrNoEdge         = errors.New("no edge there")
	ErrEdgeInactive   = errors.New("edge inactive, use toggle to activate")
	ErrUnknownCommand = errors.New("unknown command")

	// ErrGameOver is returned when a command is played after the game ended.
	ErrGameOver = errors.New("game is over - no moves allowed")
)
