package printer

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the rendering of data structures.
type Config struct {
	Colors  bool           // color element labels
	Width   int            // line length in en; 0 switches wrapping off
	Context *uax11.Context // for measuring labels; nil means uax11.LatinContext
}

// DefaultConfig creates a config suitable for w. If w is a terminal, colors
// are switched on and the line length is derived from the terminal's width.
// Otherwise output is plain and lines are 65 en long.
func DefaultConfig(w io.Writer) Config {
	config := Config{Width: 65}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return config
	}
	config.Colors = true
	config.Context = uax11.ContextFromEnvironment()
	width, _, err := term.GetSize(int(f.Fd()))
	switch {
	case err != nil:
	case width > 65:
		config.Width = width - 10
	case width > 30:
		config.Width = width - 5
	case width > 10:
		config.Width = width
	default:
		config.Width = 10
	}
	tracer().Debugf("printer: setting line length to %d en", config.Width)
	return config
}

var graphemeSetup sync.Once

// width returns the display width of s in en.
func (c Config) width(s string) int {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	context := c.Context
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 { // ASCII; uax11 counts digits, '#' and '*' as emoji
			w++
			continue
		}
		w += uax11.Width([]byte(g), context)
	}
	return w
}

// palette holds the colors used for rendering.
type palette struct {
	label, frame, slot *color.Color
}

func (c Config) palette() palette {
	p := palette{
		label: color.New(color.FgBlue),
		frame: color.New(color.FgHiBlack),
		slot:  color.New(color.FgRed),
	}
	for _, col := range []*color.Color{p.label, p.frame, p.slot} {
		if c.Colors {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return p
}
