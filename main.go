package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/nicdgonzalez/colorize/internal/capability"
	"github.com/nicdgonzalez/colorize/internal/config"
	"github.com/nicdgonzalez/colorize/internal/exporter"
	"github.com/nicdgonzalez/colorize/internal/logging"
	"github.com/nicdgonzalez/colorize/internal/types"
)

// CLI holds the command line. Styles are applied in this order: attribute
// flags, --style, --preset, --fg, --color256, --rgb, --bg, --on-color256,
// --on-rgb.
type CLI struct {
	Text []string `arg:"" optional:"" help:"Text to style, words joined by a space. Reads stdin line by line when empty."`

	Bold          bool `help:"Bold."`
	Dim           bool `help:"Dim."`
	Italic        bool `help:"Italic."`
	Underline     bool `help:"Underline."`
	Blink         bool `help:"Blink."`
	Inverse       bool `help:"Swap foreground and background."`
	Hidden        bool `help:"Hidden."`
	Strikethrough bool `help:"Strikethrough."`

	Fg         string `help:"Basic foreground color (black, red, green, yellow, blue, magenta, cyan, white)."`
	Bg         string `help:"Basic background color."`
	Color256   int    `name:"color256" default:"-1" help:"8-bit foreground color (0-255)."`
	OnColor256 int    `name:"on-color256" default:"-1" help:"8-bit background color (0-255)."`
	RGB        string `name:"rgb" help:"24-bit foreground color, #rrggbb or r,g,b."`
	OnRGB      string `name:"on-rgb" help:"24-bit background color, #rrggbb or r,g,b."`

	Style   []string `short:"s" help:"Named style, repeatable (bold, red, on_blue, ...)."`
	Preset  []string `short:"p" help:"Preset from the presets file, repeatable."`
	Presets string   `type:"path" env:"COLORIZE_PRESETS" help:"Presets TOML file. Defaults to colorize/presets.toml in the XDG config dirs."`

	Color      string `enum:"auto,always,never" default:"auto" help:"When to emit escape sequences (auto, always, never)."`
	Encoding   string `short:"e" enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8" help:"Output encoding."`
	NoNewline  bool   `short:"n" help:"Do not print the trailing newline."`
	ListStyles bool   `help:"List style names and exit."`
	Verbose    int    `short:"v" type:"counter" help:"Increase log verbosity."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("colorize"),
		kong.Description("Style text with ANSI SGR escape sequences."),
		kong.UsageOnError(),
	)

	logging.SetupLogger(cli.Verbose, os.Stderr)

	probe := capability.FromMode(cli.Color, os.Stdout)
	if err := cli.Run(os.Stdin, os.Stdout, probe); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Run styles the text arguments, or each stdin line, and writes the result.
func (c *CLI) Run(stdin io.Reader, stdout io.Writer, probe types.Probe) error {
	logger := logging.GetLogger("cli")

	if c.ListStyles {
		for _, name := range types.StyleNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	presets, err := c.loadPresets()
	if err != nil {
		return err
	}

	// Validate once against an empty text so stdin lines cannot fail half way.
	if err := c.apply(types.NewStyledText(""), presets); err != nil {
		return err
	}

	var lines []string
	if len(c.Text) > 0 {
		lines = []string{strings.Join(c.Text, " ")}
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("error reading from stdin: %w", err)
		}
		lines = splitLines(string(data))
	}

	logger.Debug().Int("lines", len(lines)).Str("encoding", c.Encoding).Msg("Styling input")

	var out strings.Builder
	for i, line := range lines {
		st := types.NewStyledText(line)
		if err := c.apply(st, presets); err != nil {
			return err
		}
		out.WriteString(exporter.Render(st, probe))
		if i < len(lines)-1 || !c.NoNewline {
			out.WriteByte('\n')
		}
	}

	data, err := exporter.ConvertToEncoding([]byte(out.String()), c.Encoding)
	if err != nil {
		return err
	}

	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

func (c *CLI) apply(st *types.StyledText, presets *config.Presets) error {
	attrs := []struct {
		on    bool
		apply func()
	}{
		{c.Bold, st.Bold},
		{c.Dim, st.Dim},
		{c.Italic, st.Italic},
		{c.Underline, st.Underline},
		{c.Blink, st.Blink},
		{c.Inverse, st.Inverse},
		{c.Hidden, st.Hidden},
		{c.Strikethrough, st.Strikethrough},
	}
	for _, a := range attrs {
		if a.on {
			a.apply()
		}
	}

	for _, name := range c.Style {
		if err := st.Apply(name); err != nil {
			return err
		}
	}

	for _, name := range c.Preset {
		if presets == nil {
			return fmt.Errorf("%w: %q (no presets file)", config.ErrPresetNotFound, name)
		}
		if err := presets.Apply(name, st); err != nil {
			return err
		}
	}

	if err := applyBasic(st, c.Fg, false); err != nil {
		return fmt.Errorf("--fg: %w", err)
	}
	if err := applyIndexed(st, c.Color256, false); err != nil {
		return fmt.Errorf("--color256: %w", err)
	}
	if err := applyRGB(st, c.RGB, false); err != nil {
		return fmt.Errorf("--rgb: %w", err)
	}

	if err := applyBasic(st, c.Bg, true); err != nil {
		return fmt.Errorf("--bg: %w", err)
	}
	if err := applyIndexed(st, c.OnColor256, true); err != nil {
		return fmt.Errorf("--on-color256: %w", err)
	}
	if err := applyRGB(st, c.OnRGB, true); err != nil {
		return fmt.Errorf("--on-rgb: %w", err)
	}

	return nil
}

func (c *CLI) loadPresets() (*config.Presets, error) {
	if len(c.Preset) == 0 {
		return nil, nil
	}

	path := c.Presets
	if path == "" {
		p, ok := config.FindPresetsFile()
		if !ok {
			return nil, nil
		}
		path = p
	}

	log.Debug().Str("path", path).Msg("Loading presets")
	return config.LoadPresets(path)
}

// splitLines splits on '\n', dropping one trailing newline and any '\r'
// ending a line. Lines have no length limit.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func applyBasic(st *types.StyledText, name string, background bool) error {
	if name == "" {
		return nil
	}

	key, lo, hi := name, types.CodeFgBlack, types.CodeFgWhite
	if background {
		key, lo, hi = "on_"+name, types.CodeBgBlack, types.CodeBgWhite
	}

	code, ok := types.LookupStyle(key)
	if !ok || code < lo || code > hi {
		return fmt.Errorf("%w: %q is not a basic color", types.ErrUnknownStyle, name)
	}
	return st.Apply(key)
}

// unsetIndex is the default of --color256 and --on-color256.
const unsetIndex = -1

func applyIndexed(st *types.StyledText, index int, background bool) error {
	if index == unsetIndex {
		return nil
	}
	if index < 0 || index > 255 {
		return fmt.Errorf("%d is not between 0 and 255", index)
	}
	st.Color(types.ColorValue{Type: types.ColorIndexed, Index: uint8(index)}, background)
	return nil
}

func applyRGB(st *types.StyledText, literal string, background bool) error {
	if literal == "" {
		return nil
	}
	c, err := config.ParseColor(literal)
	if err != nil {
		return err
	}
	if c.Type != types.ColorRGB {
		return fmt.Errorf("%q is not a 24-bit color", literal)
	}
	st.Color(c, background)
	return nil
}
