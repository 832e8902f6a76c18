// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/haripath/render"
	"github.com/katalvlaran/haripath/route"
)

const (
	colorOK    = "#22c55e"
	colorWarn  = "#eab308"
	colorError = "#ef4444"
)

// printOutcome writes o like render.Text, with the title colored by severity
// when w is a terminal.
func printOutcome(w io.Writer, o route.Outcome) error {
	out := termenv.NewOutput(w)

	c := colorOK
	switch o.Kind.Severity() {
	case route.Warning:
		c = colorWarn
	case route.Error:
		c = colorError
	}
	o.Title = out.String(o.Title).Foreground(out.Color(c)).Bold().String()

	return render.Text(w, o)
}

// heading styles a section title.
func heading(w io.Writer, s string) string {
	out := termenv.NewOutput(w)
	return out.String(s).Bold().Underline().String()
}
