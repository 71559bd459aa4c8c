package diagnostics

import (
	"fmt"

	"github.com/fatih/color"
)

// Kind classifies a diagnostic event.
type Kind int

const (
	// KindFound reports something that matched, it never signals failure.
	KindFound Kind = iota
	// KindNotFound reports a line or chip that did not match expectations.
	KindNotFound
	// KindError reports a claimed line or an unusable device.
	KindError
)

var glyphs = map[Kind]struct {
	glyph string
	attr  color.Attribute
}{
	KindFound:    {"✔", color.FgGreen},
	KindNotFound: {"✘", color.FgYellow},
	KindError:    {"⚠", color.FgRed},
}

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNotFound:
		return "not-found"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Failure returns true for kinds that make a candidate unusable.
func (k Kind) Failure() bool {
	return k == KindNotFound || k == KindError
}

// Glyph returns the severity tag printed in front of each digest line.
func (k Kind) Glyph() string {
	if g, ok := glyphs[k]; ok {
		return g.glyph
	}
	return "?"
}

func (k Kind) colorGlyph(colored bool) string {
	g, ok := glyphs[k]
	if !ok {
		return "?"
	}

	c := color.New(g.attr, color.Bold)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(g.glyph)
}

// Event is a single observation made while scanning for a chip.
type Event struct {
	Kind    Kind
	Message string
}

func (e Event) String() string {
	return e.Kind.Glyph() + " " + e.Message
}
