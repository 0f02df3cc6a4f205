package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nicdgonzalez/colorize/internal/types"
)

// ParseColor reads an extended color literal:
//
//	"#ff8800" or "#f80"  24-bit hex
//	"255,136,0"          24-bit components
//	"208"                palette index
func ParseColor(s string) (types.ColorValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.ColorValue{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return types.ColorValue{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return types.ColorValue{Type: types.ColorRGB, R: r, G: g, B: b}, nil
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return types.ColorValue{}, fmt.Errorf("invalid rgb color %q: expected 3 components", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := parseByte(p)
			if err != nil {
				return types.ColorValue{}, fmt.Errorf("invalid rgb color %q: %w", s, err)
			}
			rgb[i] = v
		}
		return types.ColorValue{Type: types.ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}

	idx, err := parseByte(s)
	if err != nil {
		return types.ColorValue{}, fmt.Errorf("invalid palette color %q: %w", s, err)
	}
	return types.ColorValue{Type: types.ColorIndexed, Index: idx}, nil
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%q is not between 0 and 255", s)
	}
	return uint8(v), nil
}

