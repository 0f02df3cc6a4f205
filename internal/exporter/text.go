package exporter

import (
	"github.com/nicdgonzalez/colorize/internal/types"
)

// ExportText exports the styled text without any escape sequence.
func ExportText(st *types.StyledText) string {
	return ExportANSI(st, false)
}
