package exporter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/nicdgonzalez/colorize/internal/types"
)

// Basic ANSI colors 0-7 as tcell names them.
var tcellBasicColors = [8]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

// ExportTcellStyle folds the applied codes into a tcell.Style, later codes
// overriding earlier ones the way a terminal would.
// Hidden has no tcell counterpart and is ignored.
func ExportTcellStyle(st *types.StyledText) tcell.Style {
	style := tcell.StyleDefault

	for _, seg := range types.Segments(st.Codes()) {
		switch seg.Code() {
		case types.CodeBold:
			style = style.Bold(true)
		case types.CodeDim:
			style = style.Dim(true)
		case types.CodeItalic:
			style = style.Italic(true)
		case types.CodeUnderline:
			style = style.Underline(true)
		case types.CodeBlink:
			style = style.Blink(true)
		case types.CodeInverse:
			style = style.Reverse(true)
		case types.CodeStrikethrough:
			style = style.StrikeThrough(true)
		case types.CodeHidden:
		default:
			color := tcellColor(seg.Color())
			if seg.IsBackground() {
				style = style.Background(color)
			} else {
				style = style.Foreground(color)
			}
		}
	}

	return style
}

func tcellColor(c types.ColorValue) tcell.Color {
	switch c.Type {
	case types.ColorStandard:
		return tcellBasicColors[c.Index%8]
	case types.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case types.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}
