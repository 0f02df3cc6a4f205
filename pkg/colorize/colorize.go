// Package colorize styles text for the terminal with ANSI SGR sequences.
//
// A Colorize value collects styles through chained calls and renders them
// around the text, followed by the matching reset codes. Color is dropped
// when the destination cannot show it.
//
// Example usage:
//
//	import "github.com/nicdgonzalez/colorize/pkg/colorize"
//
//	fmt.Println(colorize.New("error").Bold().Red())
//	fmt.Println(colorize.New(" 1 ").OnCyan().Concat(colorize.New(" name?").Bold()))
//	fmt.Println(colorize.New("custom").TrueColor(255, 136, 0).Render(colorize.Always(true)))
package colorize

import (
	"fmt"
	"strings"

	"github.com/nicdgonzalez/colorize/internal/capability"
	"github.com/nicdgonzalez/colorize/internal/exporter"
	"github.com/nicdgonzalez/colorize/internal/types"
)

// Type aliases for public API
type (
	// Probe reports whether the destination renders ANSI color
	Probe = types.Probe

	// ProbeFunc adapts a function to Probe
	ProbeFunc = types.ProbeFunc

	// ColorValue is an extended (palette or RGB) color
	ColorValue = types.ColorValue

	// InvalidCodeError is the panic value of a malformed code sequence
	InvalidCodeError = types.InvalidCodeError

	// Detector is the default environment and terminal based probe
	Detector = capability.Detector
)

// ErrUnknownStyle is returned by Style for names outside StyleNames.
var ErrUnknownStyle = types.ErrUnknownStyle

// Always returns a probe with a fixed answer.
func Always(supported bool) Probe {
	return capability.Always(supported)
}

// Stdout returns the probe used by String: it inspects the environment and
// os.Stdout on every call.
func Stdout() *Detector {
	return capability.Stdout()
}

// StyleNames lists the names accepted by Style.
func StyleNames() []string {
	return types.StyleNames()
}

// Colorize wraps a string to add color-related functionality.
// Every style method mutates the receiver and returns it for chaining.
type Colorize struct {
	st *types.StyledText
}

func New(s string) *Colorize {
	return &Colorize{st: types.NewStyledText(s)}
}

// String renders for standard output.
func (c *Colorize) String() string {
	return c.Render(Stdout())
}

// Render renders with an explicit capability probe, queried once.
func (c *Colorize) Render(probe Probe) string {
	return exporter.Render(c.st, probe)
}

// Plain returns the text without styling.
func (c *Colorize) Plain() string {
	return exporter.ExportText(c.st)
}

// Codes returns a copy of the accumulated SGR codes.
func (c *Colorize) Codes() []uint8 {
	return c.st.Codes()
}

// Style applies simple styles by name, e.g. "bold" or "on_blue".
// Styles before an unknown name stay applied.
func (c *Colorize) Style(names ...string) (*Colorize, error) {
	for _, name := range names {
		if err := c.st.Apply(name); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Concat renders c followed by others. Elements may be *Colorize, string
// or any fmt.Stringer; everything else is formatted with %v.
func (c *Colorize) Concat(others ...any) string {
	var b strings.Builder
	b.WriteString(c.String())
	writeAll(&b, others)
	return b.String()
}

// Prepend renders others followed by c, as in "Hello, " + name.
// Elements follow the same rules as Concat.
func (c *Colorize) Prepend(others ...any) string {
	var b strings.Builder
	writeAll(&b, others)
	b.WriteString(c.String())
	return b.String()
}

func writeAll(b *strings.Builder, values []any) {
	for _, o := range values {
		switch v := o.(type) {
		case string:
			b.WriteString(v)
		case fmt.Stringer:
			b.WriteString(v.String())
		default:
			fmt.Fprintf(b, "%v", v)
		}
	}
}

// Equal compares rendered forms. other may be a *Colorize or a string.
func (c *Colorize) Equal(other any) bool {
	switch v := other.(type) {
	case *Colorize:
		return c.String() == v.String()
	case string:
		return c.String() == v
	}
	return false
}

func (c *Colorize) Bold() *Colorize          { c.st.Bold(); return c }
func (c *Colorize) Dim() *Colorize           { c.st.Dim(); return c }
func (c *Colorize) Italic() *Colorize        { c.st.Italic(); return c }
func (c *Colorize) Underline() *Colorize     { c.st.Underline(); return c }
func (c *Colorize) Blink() *Colorize         { c.st.Blink(); return c }
func (c *Colorize) Inverse() *Colorize       { c.st.Inverse(); return c }
func (c *Colorize) Hidden() *Colorize        { c.st.Hidden(); return c }
func (c *Colorize) Strikethrough() *Colorize { c.st.Strikethrough(); return c }

func (c *Colorize) Black() *Colorize   { c.st.Black(); return c }
func (c *Colorize) Red() *Colorize     { c.st.Red(); return c }
func (c *Colorize) Green() *Colorize   { c.st.Green(); return c }
func (c *Colorize) Yellow() *Colorize  { c.st.Yellow(); return c }
func (c *Colorize) Blue() *Colorize    { c.st.Blue(); return c }
func (c *Colorize) Magenta() *Colorize { c.st.Magenta(); return c }
func (c *Colorize) Cyan() *Colorize    { c.st.Cyan(); return c }
func (c *Colorize) White() *Colorize   { c.st.White(); return c }

// Color256 sets an 8-bit foreground color.
func (c *Colorize) Color256(color uint8) *Colorize { c.st.Color256(color); return c }

// TrueColor sets a 24-bit foreground color.
func (c *Colorize) TrueColor(red, green, blue uint8) *Colorize {
	c.st.TrueColor(red, green, blue)
	return c
}

func (c *Colorize) OnBlack() *Colorize   { c.st.OnBlack(); return c }
func (c *Colorize) OnRed() *Colorize     { c.st.OnRed(); return c }
func (c *Colorize) OnGreen() *Colorize   { c.st.OnGreen(); return c }
func (c *Colorize) OnYellow() *Colorize  { c.st.OnYellow(); return c }
func (c *Colorize) OnBlue() *Colorize    { c.st.OnBlue(); return c }
func (c *Colorize) OnMagenta() *Colorize { c.st.OnMagenta(); return c }
func (c *Colorize) OnCyan() *Colorize    { c.st.OnCyan(); return c }
func (c *Colorize) OnWhite() *Colorize   { c.st.OnWhite(); return c }

// OnColor256 sets an 8-bit background color.
func (c *Colorize) OnColor256(color uint8) *Colorize { c.st.OnColor256(color); return c }

// OnTrueColor sets a 24-bit background color.
func (c *Colorize) OnTrueColor(red, green, blue uint8) *Colorize {
	c.st.OnTrueColor(red, green, blue)
	return c
}
