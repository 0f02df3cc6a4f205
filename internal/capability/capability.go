// Package capability decides whether an output stream renders ANSI color.
//
// The Detector is evaluated on every call so that redirections made while
// the process runs are picked up. Precedence, first match wins:
//
//   - FORCE_COLOR or CLICOLOR_FORCE set and not "0"/"false": color
//   - NO_COLOR non-empty: no color (https://no-color.org)
//   - TERM=dumb: no color
//   - stream is not a terminal: no color
//   - termenv reports the Ascii profile: no color
package capability

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"github.com/nicdgonzalez/colorize/internal/types"
)

// Reason names the rule that produced a decision.
type Reason string

const (
	ReasonForced      Reason = "force"
	ReasonNoColor     Reason = "no_color"
	ReasonDumbTerm    Reason = "dumb_term"
	ReasonNotTerminal Reason = "not_terminal"
	ReasonAscii       Reason = "ascii_profile"
	ReasonTerminal    Reason = "terminal"
)

// Detector is the default color capability probe.
// Every field may be replaced, which is how tests avoid touching the real
// environment and streams.
type Detector struct {
	Out        *os.File
	LookupEnv  func(key string) (string, bool)
	IsTerminal func(fd uintptr) bool
	Profile    func(out *os.File) termenv.Profile
}

var _ types.Probe = (*Detector)(nil)

// NewDetector returns a detector for out backed by the process state.
func NewDetector(out *os.File) *Detector {
	return &Detector{
		Out:        out,
		LookupEnv:  os.LookupEnv,
		IsTerminal: isTerminal,
		Profile:    profile,
	}
}

// Stdout returns a detector for the process standard output.
func Stdout() *Detector {
	return NewDetector(os.Stdout)
}

func (d *Detector) SupportsColor() bool {
	ok, _ := d.Detect()
	return ok
}

// Detect returns the decision and the rule that produced it.
func (d *Detector) Detect() (bool, Reason) {
	ok, reason := d.detect()

	log.Debug().
		Bool("supported", ok).
		Str("reason", string(reason)).
		Str("TERM", d.env("TERM")).
		Msg("Color capability detected")

	return ok, reason
}

func (d *Detector) detect() (bool, Reason) {
	if forced(d.env("FORCE_COLOR")) || forced(d.env("CLICOLOR_FORCE")) {
		return true, ReasonForced
	}

	if d.env("NO_COLOR") != "" {
		return false, ReasonNoColor
	}

	if d.env("TERM") == "dumb" {
		return false, ReasonDumbTerm
	}

	if d.Out == nil || !d.IsTerminal(d.Out.Fd()) {
		return false, ReasonNotTerminal
	}

	if d.Profile(d.Out) == termenv.Ascii {
		return false, ReasonAscii
	}

	return true, ReasonTerminal
}

func (d *Detector) env(key string) string {
	if d.LookupEnv == nil {
		return ""
	}
	v, _ := d.LookupEnv(key)
	return v
}

func forced(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false":
		return false
	}
	return true
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func profile(out *os.File) termenv.Profile {
	return termenv.NewOutput(out).EnvColorProfile()
}

// Always returns a probe with a fixed answer.
func Always(supported bool) types.Probe {
	return types.ProbeFunc(func() bool { return supported })
}

// FromMode maps the --color flag values auto, always and never to a probe.
// Unknown values behave like auto.
func FromMode(mode string, out *os.File) types.Probe {
	switch mode {
	case "always":
		return Always(true)
	case "never":
		return Always(false)
	}
	return NewDetector(out)
}
