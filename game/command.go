package game

import "strings"

// ActionType is what a command asks the player to do.
type ActionType int

const (
	UnknownAction ActionType = iota
	MoveAction
	ToggleAction
	QuitAction
)

func (a ActionType) String() string {
	switch a {
	case MoveAction:
		return "move"
	case ToggleAction:
		return "toggle"
	case QuitAction:
		return "quit"
	}
	return "unknown"
}

// Command is one turn's worth of player input.
type Command struct {
	Action ActionType
	Dir    Direction
	Raw    string // input as typed, kept for diagnostics
}

func Move(dir Direction) Command {
	return Command{Action: MoveAction, Dir: dir}
}

func Toggle(dir Direction) Command {
	return Command{Action: ToggleAction, Dir: dir}
}

func QuitCommand() Command {
	return Command{Action: QuitAction}
}

var moveWords = map[string]Direction{
	"w": Up, "up": Up,
	"s": Down, "down": Down,
	"a": Left, "left": Left,
	"d": Right, "right": Right,
}

// At the toggle prompt "d" means down, not right.
var toggleWords = map[string]Direction{
	"u": Up, "w": Up,
	"d": Down, "s": Down,
	"l": Left, "a": Left,
	"r": Right, "e": Right,
}

// ParseCommand reads one line of input. A bare "t" yields a ToggleAction with
// NoDirection; the caller asks for the direction with ParseToggleDirection.
func ParseCommand(line string) Command {
	word := strings.ToLower(strings.TrimSpace(line))
	if dir, ok := moveWords[word]; ok {
		return Command{Action: MoveAction, Dir: dir, Raw: word}
	}
	switch word {
	case "t":
		return Command{Action: ToggleAction, Raw: word}
	case "q", "quit":
		return Command{Action: QuitAction, Raw: word}
	}
	return Command{Action: UnknownAction, Raw: word}
}

// ParseToggleDirection reads the answer to the toggle prompt. Unrecognised
// input yields NoDirection, which Play reports as ErrNoEdge.
func ParseToggleDirection(line string) Direction {
	return toggleWords[strings.ToLower(strings.TrimSpace(line))]
}
