// Package output builds termenv outputs with a consistent color profile for
// every writer hoop prints to.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the profile for interactive terminals.
// NO_COLOR forces plain ASCII output.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New returns an output bound to w. A nil writer means stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Interactive reports whether f is a terminal and the process is not running in CI.
func Interactive(f *os.File) bool {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
