package render

import (
	"fmt"
	"io"
	"strings"

	"dsagame/game"

	"github.com/logrusorgru/aurora"
)

// Text draws the grid as ASCII art. Cells sit on even rows and columns of a
// (2*rows-1) x (2*cols-1) canvas; edges sit between them.
type Text struct {
	out   io.Writer
	au    aurora.Aurora
	clear bool
}

type TextOption func(t *Text)

// WithClear wipes the terminal before every frame.
func WithClear() TextOption {
	return func(t *Text) {
		t.clear = true
	}
}

func NewText(out io.Writer, colors bool, options ...TextOption) *Text {
	t := &Text{
		out: out,
		au:  aurora.NewAurora(colors),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Text) Render(snap game.Snapshot) error {
	var b strings.Builder
	if t.clear {
		b.WriteString("\033[H\033[2J")
	}

	fmt.Fprintf(&b, "Turn: %d Energy: %d (t to toggle edge, wasd to move, q quit)\n", snap.Turn, snap.Energy)
	b.WriteString("Legend: P=you X=exit G=guard !=caught -/| active edge =/: critical inactive edge\n")
	for _, row := range t.canvas(snap) {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Critical edges remaining to activate: %d\n", snap.CriticalInactive)
	if snap.Diagnostic != "" {
		fmt.Fprintln(&b, t.au.Yellow(snap.Diagnostic))
	}
	if snap.Over {
		fmt.Fprintln(&b, t.au.Bold(snap.Reason))
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Text) canvas(snap game.Snapshot) [][]string {
	h, w := 2*snap.Rows-1, 2*snap.Cols-1
	grid := make([][]string, h)
	for i := range grid {
		grid[i] = make([]string, w)
		for j := range grid[i] {
			if i%2 == 0 && j%2 == 0 {
				grid[i][j] = "."
			} else {
				grid[i][j] = " "
			}
		}
	}

	for _, e := range snap.Edges {
		ar, ac := e.A/snap.Cols, e.A%snap.Cols
		br, bc := e.B/snap.Cols, e.B%snap.Cols
		grid[ar+br][ac+bc] = t.edge(e)
	}

	put := func(node int, s string) {
		grid[2*(node/snap.Cols)][2*(node%snap.Cols)] = s
	}
	put(snap.Player, t.au.Bold(t.au.Cyan("P")).String())
	put(snap.Exit, t.au.Magenta("X").String())
	for _, guard := range snap.Guards {
		if guard == snap.Player {
			put(guard, t.au.Bold(t.au.Red("!")).String())
		} else {
			put(guard, t.au.Red("G").String())
		}
	}
	return grid
}

func (t *Text) edge(e game.Edge) string {
	switch {
	case e.Active && e.Horizontal():
		return t.au.Green("-").String()
	case e.Active:
		return t.au.Green("|").String()
	case e.Critical && e.Horizontal():
		return t.au.Yellow("=").String()
	case e.Critical:
		return t.au.Yellow(":").String()
	}
	return " "
}
