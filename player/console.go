package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"dsagame/game"
)

// Console reads commands typed by a human, one line per turn.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) NextCommand(snap game.Snapshot) (game.Command, error) {
	line, err := c.prompt("cmd: ")
	if err != nil {
		return game.Command{}, err
	}
	cmd := game.ParseCommand(line)
	if cmd.Action == game.ToggleAction {
		// A missing answer leaves NoDirection, which plays as "no edge there".
		answer, err := c.prompt("toggle direction (u/d/l/r): ")
		if err != nil && !errors.Is(err, io.EOF) {
			return game.Command{}, err
		}
		cmd.Dir = game.ParseToggleDirection(answer)
	}
	return cmd, nil
}

func (c *Console) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
