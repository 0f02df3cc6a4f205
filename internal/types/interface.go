package types

// Probe reports whether the output destination renders ANSI color.
type Probe interface {
	SupportsColor() bool
}

// ProbeFunc adapts a plain function to Probe.
type ProbeFunc func() bool

func (f ProbeFunc) SupportsColor() bool {
	return f()
}
