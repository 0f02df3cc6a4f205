package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownStyle is returned by Apply for names outside the style table.
var ErrUnknownStyle = errors.New("unknown style")

/////////////////////////////////////////////////////////////////////////////
// STYLE TABLE
/////////////////////////////////////////////////////////////////////////////

// simpleStyles maps every zero-argument style to the code it appends.
var simpleStyles = map[string]uint8{
	"bold":          CodeBold,
	"dim":           CodeDim,
	"italic":        CodeItalic,
	"underline":     CodeUnderline,
	"blink":         CodeBlink,
	"inverse":       CodeInverse,
	"hidden":        CodeHidden,
	"strikethrough": CodeStrikethrough,

	"black":   30,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,

	"on_black":   40,
	"on_red":     41,
	"on_green":   42,
	"on_yellow":  43,
	"on_blue":    44,
	"on_magenta": 45,
	"on_cyan":    46,
	"on_white":   47,
}

// StyleNames returns the names accepted by Apply, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(simpleStyles))
	for name := range simpleStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupStyle returns the code of a simple style. Names are case-insensitive
// and accept '-' in place of '_'.
func LookupStyle(name string) (uint8, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	code, ok := simpleStyles[key]
	return code, ok
}

/////////////////////////////////////////////////////////////////////////////
// STYLED TEXT
/////////////////////////////////////////////////////////////////////////////

// StyledText holds a string and the ordered SGR codes applied to it.
// Codes can only be appended; every method leaves them well-formed.
type StyledText struct {
	original string
	codes    []uint8
}

func NewStyledText(text string) *StyledText {
	return &StyledText{original: text}
}

func (s *StyledText) Original() string {
	return s.original
}

// Codes returns a copy of the accumulated codes.
func (s *StyledText) Codes() []uint8 {
	out := make([]uint8, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of raw code values, parameters included.
func (s *StyledText) Len() int {
	return len(s.codes)
}

func (s *StyledText) push(codes ...uint8) {
	s.codes = append(s.codes, codes...)
}

// Apply appends the simple style called name.
func (s *StyledText) Apply(name string) error {
	code, ok := LookupStyle(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	s.push(code)
	return nil
}

// Attributes

func (s *StyledText) Bold()          { s.push(CodeBold) }
func (s *StyledText) Dim()           { s.push(CodeDim) }
func (s *StyledText) Italic()        { s.push(CodeItalic) }
func (s *StyledText) Underline()     { s.push(CodeUnderline) }
func (s *StyledText) Blink()         { s.push(CodeBlink) }
func (s *StyledText) Inverse()       { s.push(CodeInverse) }
func (s *StyledText) Hidden()        { s.push(CodeHidden) }
func (s *StyledText) Strikethrough() { s.push(CodeStrikethrough) }

// Foreground

func (s *StyledText) Black()   { s.push(30) }
func (s *StyledText) Red()     { s.push(31) }
func (s *StyledText) Green()   { s.push(32) }
func (s *StyledText) Yellow()  { s.push(33) }
func (s *StyledText) Blue()    { s.push(34) }
func (s *StyledText) Magenta() { s.push(35) }
func (s *StyledText) Cyan()    { s.push(36) }
func (s *StyledText) White()   { s.push(37) }

// Color256 sets the foreground to an entry of the 256-color palette.
func (s *StyledText) Color256(index uint8) {
	s.push(CodeFgExtend, ModeIndexed, index)
}

// TrueColor sets a 24-bit foreground color.
func (s *StyledText) TrueColor(r, g, b uint8) {
	s.push(CodeFgExtend, ModeRGB, r, g, b)
}

// Background

func (s *StyledText) OnBlack()   { s.push(40) }
func (s *StyledText) OnRed()     { s.push(41) }
func (s *StyledText) OnGreen()   { s.push(42) }
func (s *StyledText) OnYellow()  { s.push(43) }
func (s *StyledText) OnBlue()    { s.push(44) }
func (s *StyledText) OnMagenta() { s.push(45) }
func (s *StyledText) OnCyan()    { s.push(46) }
func (s *StyledText) OnWhite()   { s.push(47) }

func (s *StyledText) OnColor256(index uint8) {
	s.push(CodeBgExtend, ModeIndexed, index)
}

func (s *StyledText) OnTrueColor(r, g, b uint8) {
	s.push(CodeBgExtend, ModeRGB, r, g, b)
}

// Color appends an extended color value on the foreground, or on the
// background when background is true. Standard colors map to their basic
// codes and the default color appends nothing.
func (s *StyledText) Color(c ColorValue, background bool) {
	base, extend := CodeFgBlack, CodeFgExtend
	if background {
		base, extend = CodeBgBlack, CodeBgExtend
	}

	switch c.Type {
	case ColorStandard:
		s.push(base + c.Index%8)
	case ColorIndexed:
		s.push(extend, ModeIndexed, c.Index)
	case ColorRGB:
		s.push(extend, ModeRGB, c.R, c.G, c.B)
	}
}

func (s *StyledText) String() string {
	return fmt.Sprintf("%q %v", s.original, s.codes)
}
