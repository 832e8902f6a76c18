// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/haripath/route"
)

// OutcomeJSON is the JSON shape of a route outcome, shared by the CLI and
// the HTTP server. Path and Cost are present only for found routes.
type OutcomeJSON struct {
	Outcome  string   `json:"outcome"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Path     []string `json:"path,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
	Expanded int      `json:"expanded"`
	Error    string   `json:"error,omitempty"`
}

// NewOutcomeJSON converts o to its JSON view.
func NewOutcomeJSON(o route.Outcome) OutcomeJSON {
	v := OutcomeJSON{
		Outcome:  o.Kind.String(),
		Title:    o.Title,
		Message:  o.Message,
		Expanded: o.Expanded,
	}
	if o.Kind == route.Found {
		cost := o.Path.Cost
		v.Path, v.Cost = o.Path.Nodes, &cost
	}
	if o.Err != nil {
		v.Error = o.Err.Error()
	}

	return v
}
