package gallery

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method records how a copy reached the user.
type Method string

const (
	ViaClipboard Method = "clipboard"
	ViaOSC52     Method = "osc52"
)

// Copier places text on the user's clipboard. The system clipboard is
// tried first; when no clipboard utility is available the text is sent to
// the terminal as an OSC 52 sequence instead.
type Copier struct {
	// Out receives the OSC 52 sequence.
	Out io.Writer
	// Getenv detects tmux and screen. Defaults to os.Getenv.
	Getenv func(string) string

	write       func(string) error
	unsupported bool
}

// NewCopier returns a copier writing escape sequences to out.
func NewCopier(out io.Writer) *Copier {
	return &Copier{
		Out:         out,
		Getenv:      os.Getenv,
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// Copy places text on the clipboard and reports which path was used.
func (c *Copier) Copy(text string) (Method, error) {
	if !c.unsupported && c.write != nil {
		if err := c.write(text); err == nil {
			return ViaClipboard, nil
		}
	}
	if c.Out == nil {
		return "", fmt.Errorf("gallery: no clipboard and no terminal to copy to")
	}
	seq := osc52.New(text)
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.Out); err != nil {
		return "", fmt.Errorf("gallery: osc52 copy: %w", err)
	}
	return ViaOSC52, nil
}
