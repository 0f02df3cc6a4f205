package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"github.com/nicdgonzalez/colorize/internal/types"
)

const (
	// EnvPresets overrides the presets file location.
	EnvPresets = "COLORIZE_PRESETS"

	presetsRelPath = "colorize/presets.toml"
)

var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named list of styles, for example
//
//	[presets.error]
//	styles = ["bold", "red"]
//	bg = "#202020"
type Preset struct {
	Styles []string `toml:"styles"`
	Fg     string   `toml:"fg"`
	Bg     string   `toml:"bg"`
}

// Presets is the content of a presets.toml file.
type Presets struct {
	Presets map[string]Preset `toml:"presets"`
}

// Names returns the preset names, sorted.
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.Presets))
	for name := range p.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply appends the styles of the named preset to st, in file order:
// styles first, then fg, then bg.
func (p *Presets) Apply(name string, st *types.StyledText) error {
	preset, ok := p.Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return preset.ApplyTo(st)
}

// Validate checks every preset without touching any text.
func (p *Presets) Validate() error {
	for _, name := range p.Names() {
		if err := p.Presets[name].ApplyTo(types.NewStyledText("")); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}

func (p Preset) ApplyTo(st *types.StyledText) error {
	for _, style := range p.Styles {
		if err := st.Apply(style); err != nil {
			return err
		}
	}

	if p.Fg != "" {
		c, err := ParseColor(p.Fg)
		if err != nil {
			return fmt.Errorf("fg: %w", err)
		}
		st.Color(c, false)
	}

	if p.Bg != "" {
		c, err := ParseColor(p.Bg)
		if err != nil {
			return fmt.Errorf("bg: %w", err)
		}
		st.Color(c, true)
	}

	return nil
}

// ParsePresets decodes presets from TOML and validates them.
func ParsePresets(data []byte) (*Presets, error) {
	var presets Presets
	if err := toml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if presets.Presets == nil {
		presets.Presets = map[string]Preset{}
	}
	if err := presets.Validate(); err != nil {
		return nil, err
	}
	return &presets, nil
}

// LoadPresets reads and parses a presets file.
func LoadPresets(path string) (*Presets, error) {
	logger := log.With().Str("presetsPath", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	presets, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug().
		Int("presets", len(presets.Presets)).
		Msg("Presets loaded")

	return presets, nil
}

// FindPresetsFile returns the presets file to use: $COLORIZE_PRESETS when
// set, else colorize/presets.toml in the XDG config directories.
// ok is false when no file exists.
func FindPresetsFile() (path string, ok bool) {
	if p := os.Getenv(EnvPresets); p != "" {
		return p, true
	}

	p, err := xdg.SearchConfigFile(presetsRelPath)
	if err != nil {
		return "", false
	}
	return p, true
}
