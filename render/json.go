package render

import (
	"fmt"
	"io"

	"dsagame/game"

	"github.com/bytedance/sonic"
)

// JSON writes one snapshot object per line, for tools that drive the game.
type JSON struct {
	out io.Writer
}

func NewJSON(out io.Writer) *JSON {
	return &JSON{out: out}
}

func (j *JSON) Render(snap game.Snapshot) error {
	data, err := sonic.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = j.out.Write(append(data, '\n'))
	return err
}
