package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicdgonzalez/colorize/internal/capability"
	"github.com/nicdgonzalez/colorize/internal/types"
)

func newCLI() *CLI {
	return &CLI{Color256: -1, OnColor256: -1, Encoding: "utf8", Color: "auto"}
}

func run(t *testing.T, c *CLI, stdin string, supported bool) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := c.Run(strings.NewReader(stdin), &out, capability.Always(supported))
	return out.String(), err
}

func TestRunStylesArguments(t *testing.T) {
	c := newCLI()
	c.Text = []string{"hello", "world"}
	c.Bold = true
	c.Fg = "red"
	c.Bg = "blue"

	out, err := run(t, c, "", true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;31;44mhello world\x1b[22;39;49m\n", out)
}

func TestRunWithoutColor(t *testing.T) {
	c := newCLI()
	c.Text = []string{"plain"}
	c.Underline = true
	c.NoNewline = true

	out, err := run(t, c, "", false)
	require.NoError(t, err)
	assert.Equal(t, "plain", out)
}

func TestRunExtendedColors(t *testing.T) {
	c := newCLI()
	c.Text = []string{"x"}
	c.Color256 = 200
	c.OnRGB = "#0a141e"
	c.NoNewline = true

	out, err := run(t, c, "", true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;5;200;48;2;10;20;30mx\x1b[39;49m", out)
}

func TestRunStylesEachStdinLine(t *testing.T) {
	c := newCLI()
	c.Style = []string{"green"}

	out, err := run(t, c, "a\nb\n", true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32ma\x1b[39m\n\x1b[32mb\x1b[39m\n", out)
}

func TestRunStylesLongStdinLines(t *testing.T) {
	long := strings.Repeat("a", 70*1024)

	c := newCLI()
	c.Style = []string{"red"}

	out, err := run(t, c, long+"\r\nshort", true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31m"+long+"\x1b[39m\n\x1b[31mshort\x1b[39m\n", out)
}

func TestRunEmptyStdin(t *testing.T) {
	c := newCLI()
	c.Bold = true

	out, err := run(t, c, "", true)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunColor256Bounds(t *testing.T) {
	for _, index := range []int{0, 255} {
		c := newCLI()
		c.Text = []string{"x"}
		c.OnColor256 = index
		c.NoNewline = true

		out, err := run(t, c, "", true)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("\x1b[48;5;%dmx\x1b[49m", index), out)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CLI)
	}{
		{"UnknownStyle", func(c *CLI) { c.Style = []string{"sparkly"} }},
		{"FgNotAColor", func(c *CLI) { c.Fg = "bold" }},
		{"BgUnknown", func(c *CLI) { c.Bg = "pink" }},
		{"Color256OutOfRange", func(c *CLI) { c.Color256 = 256 }},
		{"Color256Negative", func(c *CLI) { c.Color256 = -5 }},
		{"OnColor256Negative", func(c *CLI) { c.OnColor256 = -2 }},
		{"RGBNotTrueColor", func(c *CLI) { c.RGB = "12" }},
		{"RGBInvalid", func(c *CLI) { c.RGB = "#12" }},
		{"PresetWithoutFile", func(c *CLI) {
			c.Preset = []string{"error"}
			c.Presets = filepath.Join(os.TempDir(), "colorize-does-not-exist.toml")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI()
			c.Text = []string{"x"}
			tt.mutate(c)

			out, err := run(t, c, "", true)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestRunPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("[presets.error]\nstyles = [\"bold\", \"red\"]\n"), 0o644))

	c := newCLI()
	c.Text = []string{"boom"}
	c.Preset = []string{"error"}
	c.Presets = path
	c.NoNewline = true

	out, err := run(t, c, "", true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;31mboom\x1b[22;39m", out)
}

func TestRunEncoding(t *testing.T) {
	c := newCLI()
	c.Text = []string{"█"}
	c.Encoding = "cp437"
	c.NoNewline = true

	out, err := run(t, c, "", false)
	require.NoError(t, err)
	assert.Equal(t, "\xdb", out)
}

func TestRunEncodingSubstitutesUnencodableRunes(t *testing.T) {
	c := newCLI()
	c.Text = []string{"done", "✓"}
	c.Fg = "green"
	c.Encoding = "cp437"
	c.NoNewline = true

	out, err := run(t, c, "", true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mdone \x1a\x1b[39m", out)
}

func TestRunListStyles(t *testing.T) {
	c := newCLI()
	c.ListStyles = true

	out, err := run(t, c, "", true)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(types.StyleNames(), "\n")+"\n", out)
}
