package exporter

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nicdgonzalez/colorize/internal/types"
)

const csi = "\x1b["

// ExportANSI wraps the text in its SGR sequence and the matching resets.
// The original text is returned untouched when no style was applied or
// supported is false.
func ExportANSI(st *types.StyledText, supported bool) string {
	codes := st.Codes()
	if len(codes) == 0 || !supported {
		return st.Original()
	}

	segments := types.Segments(codes)

	var b strings.Builder
	// Each value takes at most 3 digits plus a separator.
	b.Grow(len(csi)*2 + len(codes)*4 + len(segments)*3 + len(st.Original()) + 2)

	b.WriteString(csi)
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte(';')
		}
		writeParams(&b, seg.Params)
	}
	b.WriteByte('m')

	b.WriteString(st.Original())

	b.WriteString(csi)
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(seg.Reset)))
	}
	b.WriteByte('m')

	return b.String()
}

// Render asks probe once and exports accordingly.
func Render(st *types.StyledText, probe types.Probe) string {
	supported := probe.SupportsColor()

	log.Trace().
		Bool("supported", supported).
		Int("codes", st.Len()).
		Msg("Rendering styled text")

	return ExportANSI(st, supported)
}

// SequenceOf returns the style and reset parameter lists without the
// surrounding escape bytes, e.g. "31;44" and "39;49".
func SequenceOf(st *types.StyledText) (style string, reset string) {
	segments := types.Segments(st.Codes())

	styles := make([]string, 0, len(segments))
	resets := make([]string, 0, len(segments))
	for _, seg := range segments {
		var b strings.Builder
		writeParams(&b, seg.Params)
		styles = append(styles, b.String())
		resets = append(resets, strconv.Itoa(int(seg.Reset)))
	}

	return strings.Join(styles, ";"), strings.Join(resets, ";")
}

func writeParams(b *strings.Builder, params []uint8) {
	for i, p := range params {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(p)))
	}
}
