// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/geo"
	"github.com/katalvlaran/haripath/townmap"
)

// Kind classifies an Outcome.
type Kind int

const (
	Found Kind = iota
	SameLocation
	InvalidLocation
	NoPath
	Failed
)

// String returns the snake_case label used in logs, JSON and metrics.
func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case SameLocation:
		return "same_location"
	case InvalidLocation:
		return "invalid_location"
	case NoPath:
		return "no_path"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Severity ranks how an outcome should be shown.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Severity returns the display severity of k.
func (k Kind) Severity() Severity {
	switch k {
	case Found:
		return Info
	case SameLocation:
		return Warning
	default:
		return Error
	}
}

// Messages shown to the user.
const (
	MsgSameLocation    = "Start and goal cannot be the same."
	MsgInvalidLocation = "Invalid locations selected."
	MsgNoPath          = "No path found between selected locations."
	MsgFailed          = "Route search failed."
)

// Outcome is the presentable answer to one query.
type Outcome struct {
	Kind     Kind
	Start    string
	Goal     string
	Title    string
	Message  string
	Path     astar.Path // set when Kind == Found
	Expanded int        // locations expanded by the search, 0 if none ran
	Err      error      // set when Kind == Failed
}

// Observer is notified of every planned outcome.
type Observer interface {
	ObserveOutcome(o Outcome, elapsed time.Duration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(o Outcome, elapsed time.Duration)

// ObserveOutcome calls f.
func (f ObserverFunc) ObserveOutcome(o Outcome, elapsed time.Duration) { f(o, elapsed) }

// Planner answers route queries over one map.
// Heuristic defaults to geo.Euclidean; Logger, Observer and Options are optional.
type Planner struct {
	Map       *townmap.Map
	Heuristic geo.Heuristic
	Logger    *slog.Logger
	Observer  Observer
	Options   []astar.Option // passed to every search, e.g. astar.WithMaxExpansions
}

// Plan classifies the query start → goal and runs the search when needed.
func (p *Planner) Plan(start, goal string) Outcome {
	began := time.Now()
	out := p.plan(start, goal)

	elapsed := time.Since(began)
	if p.Observer != nil {
		p.Observer.ObserveOutcome(out, elapsed)
	}
	if p.Logger != nil {
		p.log(out, elapsed)
	}

	return out
}

func (p *Planner) plan(start, goal string) Outcome {
	out := Outcome{Start: start, Goal: goal}

	if start == goal {
		return out.with(SameLocation, "Warning", MsgSameLocation)
	}
	if !p.Map.Has(start) || !p.Map.Has(goal) {
		return out.with(InvalidLocation, "Error", MsgInvalidLocation)
	}

	h := p.Heuristic
	if h == nil {
		h = geo.Euclidean
	}
	res, err := p.Map.FindPath(start, goal, h, p.Options...)
	out.Expanded = res.Expanded
	switch {
	case errors.Is(err, astar.ErrInvalidNode):
		return out.with(InvalidLocation, "Error", MsgInvalidLocation)
	case err != nil:
		out.Err = err
		return out.with(Failed, "Error", MsgFailed)
	case !res.Found:
		return out.with(NoPath, "No Path", MsgNoPath)
	}

	out.Path = res.Path
	return out.with(Found, "Path Found", res.Path.String())
}

func (o Outcome) with(k Kind, title, msg string) Outcome {
	o.Kind, o.Title, o.Message = k, title, msg
	return o
}

func (p *Planner) log(o Outcome, elapsed time.Duration) {
	attrs := []any{
		"from", o.Start,
		"to", o.Goal,
		"outcome", o.Kind.String(),
		"expanded", o.Expanded,
		"elapsed", elapsed,
	}
	switch o.Kind {
	case Found:
		p.Logger.Debug("route planned", append(attrs, "cost", o.Path.Cost, "stops", o.Path.Len())...)
	case Failed:
		p.Logger.Error("route search failed", append(attrs, "error", o.Err)...)
	default:
		p.Logger.Info("route rejected", attrs...)
	}
}
