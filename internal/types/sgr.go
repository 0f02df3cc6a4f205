package types

import (
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// SGR CODES
/////////////////////////////////////////////////////////////////////////////

const (
	CodeBold          uint8 = 1
	CodeDim           uint8 = 2
	CodeItalic        uint8 = 3
	CodeUnderline     uint8 = 4
	CodeBlink         uint8 = 5
	CodeInverse       uint8 = 7
	CodeHidden        uint8 = 8
	CodeStrikethrough uint8 = 9

	CodeFgBlack   uint8 = 30
	CodeFgWhite   uint8 = 37
	CodeFgExtend  uint8 = 38
	CodeFgDefault uint8 = 39

	CodeBgBlack   uint8 = 40
	CodeBgWhite   uint8 = 47
	CodeBgExtend  uint8 = 48
	CodeBgDefault uint8 = 49

	// Mode selectors following 38/48
	ModeRGB     uint8 = 2
	ModeIndexed uint8 = 5

	// bold and dim share the normal intensity reset
	ResetIntensity uint8 = 22
)

// ResetCode returns the SGR parameter undoing a top-level style code.
// ok is false when code is not part of the grammar.
func ResetCode(code uint8) (reset uint8, ok bool) {
	switch {
	case code == CodeBold, code == CodeDim:
		return ResetIntensity, true
	case code >= CodeItalic && code <= CodeBlink,
		code >= CodeInverse && code <= CodeStrikethrough:
		return code + 20, true
	case code >= CodeFgBlack && code <= CodeFgExtend:
		return CodeFgDefault, true
	case code >= CodeBgBlack && code <= CodeBgExtend:
		return CodeBgDefault, true
	}
	return 0, false
}

// IsExtended reports whether code is a composite color prefix (38 or 48).
func IsExtended(code uint8) bool {
	return code == CodeFgExtend || code == CodeBgExtend
}

// ModeArity returns how many components follow a 38/48 mode selector.
func ModeArity(mode uint8) (int, bool) {
	switch mode {
	case ModeIndexed:
		return 1, true
	case ModeRGB:
		return 3, true
	}
	return 0, false
}

/////////////////////////////////////////////////////////////////////////////
// INVALID CODE
/////////////////////////////////////////////////////////////////////////////

// InvalidCodeError is the panic value raised when a code sequence breaks the
// grammar. Only a defect in StyledText can produce one.
type InvalidCodeError struct {
	Offset int
	Code   uint8
	Reason string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %d at offset %d: %s", e.Code, e.Offset, e.Reason)
}

/////////////////////////////////////////////////////////////////////////////
// SEGMENTS
/////////////////////////////////////////////////////////////////////////////

// Segment is one top-level style entry: its code, any trailing parameters
// of a composite color, and the code that resets it.
type Segment struct {
	Params []uint8
	Reset  uint8
}

// Code returns the leading SGR code of the segment.
func (s Segment) Code() uint8 {
	return s.Params[0]
}

// Segments splits codes into top-level entries, left to right.
// It panics with *InvalidCodeError on anything outside the grammar.
func Segments(codes []uint8) []Segment {
	segments := make([]Segment, 0, len(codes))

	for i := 0; i < len(codes); i++ {
		code := codes[i]

		reset, ok := ResetCode(code)
		if !ok {
			panic(&InvalidCodeError{Offset: i, Code: code, Reason: "unknown code"})
		}

		if !IsExtended(code) {
			segments = append(segments, Segment{Params: codes[i : i+1], Reset: reset})
			continue
		}

		if i+1 >= len(codes) {
			panic(&InvalidCodeError{Offset: i, Code: code, Reason: "expected 8-bit or 24-bit color sequence"})
		}

		mode := codes[i+1]
		arity, ok := ModeArity(mode)
		if !ok {
			panic(&InvalidCodeError{Offset: i + 1, Code: mode, Reason: "unknown color mode"})
		}

		end := i + 2 + arity
		if end > len(codes) {
			panic(&InvalidCodeError{Offset: i, Code: code, Reason: "truncated color sequence"})
		}

		segments = append(segments, Segment{Params: codes[i:end], Reset: reset})
		i = end - 1
	}

	return segments
}

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

type ColorType int

const (
	ColorDefault  ColorType = iota
	ColorStandard           // 0-7 (codes 30-37, 40-47)
	ColorIndexed            // 0-255 (ESC[38;5;n)
	ColorRGB                // RGB (ESC[38;2;r;g;b)
)

type ColorValue struct {
	Type    ColorType
	R, G, B uint8
	Index   uint8
}

func (c ColorValue) IsDefault() bool {
	return c.Type == ColorDefault
}

func (c ColorValue) String() string {
	switch c.Type {
	case ColorDefault:
		return "default"
	case ColorStandard:
		return fmt.Sprintf("std:%d", c.Index)
	case ColorIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}

// Color decodes the color carried by a foreground or background segment.
// Attribute segments return the default color.
func (s Segment) Color() ColorValue {
	code := s.Code()

	switch {
	case code >= CodeFgBlack && code <= CodeFgWhite:
		return ColorValue{Type: ColorStandard, Index: code - CodeFgBlack}
	case code >= CodeBgBlack && code <= CodeBgWhite:
		return ColorValue{Type: ColorStandard, Index: code - CodeBgBlack}
	case IsExtended(code):
		if s.Params[1] == ModeIndexed {
			return ColorValue{Type: ColorIndexed, Index: s.Params[2]}
		}
		return ColorValue{Type: ColorRGB, R: s.Params[2], G: s.Params[3], B: s.Params[4]}
	}

	return ColorValue{Type: ColorDefault}
}

// IsBackground reports whether the segment sets the background color.
func (s Segment) IsBackground() bool {
	code := s.Code()
	return code >= CodeBgBlack && code <= CodeBgExtend
}
