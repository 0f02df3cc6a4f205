package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicdgonzalez/colorize/internal/types"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  types.ColorValue
	}{
		{"#ff8800", types.ColorValue{Type: types.ColorRGB, R: 255, G: 136, B: 0}},
		{"#FFFFFF", types.ColorValue{Type: types.ColorRGB, R: 255, G: 255, B: 255}},
		{"10, 20 ,30", types.ColorValue{Type: types.ColorRGB, R: 10, G: 20, B: 30}},
		{"208", types.ColorValue{Type: types.ColorIndexed, Index: 208}},
		{" 0 ", types.ColorValue{Type: types.ColorIndexed, Index: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"", "#zzzzzz", "1,2", "1,2,256", "256", "-1", "red"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			assert.Error(t, err)
		})
	}
}

const samplePresets = `
[presets.error]
styles = ["bold", "red"]

[presets.banner]
styles = ["italic"]
fg = "#ff8800"
bg = "17"
`

func TestParsePresetsAndApply(t *testing.T) {
	presets, err := ParsePresets([]byte(samplePresets))
	require.NoError(t, err)
	assert.Equal(t, []string{"banner", "error"}, presets.Names())

	st := types.NewStyledText("x")
	require.NoError(t, presets.Apply("error", st))
	require.NoError(t, presets.Apply("banner", st))

	assert.Equal(t, []uint8{1, 31, 3, 38, 2, 255, 136, 0, 48, 5, 17}, st.Codes())
}

func TestPresetsUnknownName(t *testing.T) {
	presets, err := ParsePresets([]byte(samplePresets))
	require.NoError(t, err)

	err = presets.Apply("missing", types.NewStyledText("x"))
	assert.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestParsePresetsRejectsBadEntries(t *testing.T) {
	_, err := ParsePresets([]byte("[presets.bad]\nstyles = [\"sparkly\"]\n"))
	assert.ErrorIs(t, err, types.ErrUnknownStyle)

	_, err = ParsePresets([]byte("[presets.bad]\nfg = \"#nothex\"\n"))
	assert.Error(t, err)

	_, err = ParsePresets([]byte("not = [toml"))
	assert.Error(t, err)
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(samplePresets), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Len(t, presets.Presets, 2)

	_, err = LoadPresets(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFindPresetsFileFromEnv(t *testing.T) {
	t.Setenv(EnvPresets, "/tmp/custom.toml")

	path, ok := FindPresetsFile()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/custom.toml", path)
}
