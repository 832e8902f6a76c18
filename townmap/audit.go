// SPDX-License-Identifier: MIT

package townmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/haripath/dijkstra"
	"github.com/katalvlaran/haripath/geo"
)

// auditSlack absorbs float rounding when comparing estimates with distances.
const auditSlack = 1e-9

// FindingKind classifies an audit finding.
type FindingKind int

const (
	// Inadmissible: h(Node, Goal) exceeds the true distance Limit.
	Inadmissible FindingKind = iota + 1
	// Inconsistent: h(Node, Goal) exceeds cost(Node→Via) + h(Via, Goal) = Limit.
	Inconsistent
)

func (k FindingKind) String() string {
	switch k {
	case Inadmissible:
		return "inadmissible"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("FindingKind(%d)", int(k))
	}
}

// Finding is one heuristic violation.
type Finding struct {
	Kind     FindingKind
	Node     string
	Goal     string
	Via      string // set for Inconsistent only
	Estimate float64
	Limit    float64
}

func (f Finding) String() string {
	if f.Kind == Inconsistent {
		return fmt.Sprintf("%s: h(%s→%s)=%g > %g via %s", f.Kind, f.Node, f.Goal, f.Estimate, f.Limit, f.Via)
	}

	return fmt.Sprintf("%s: h(%s→%s)=%g > %g", f.Kind, f.Node, f.Goal, f.Estimate, f.Limit)
}

// AuditReport is the outcome of Map.Audit.
type AuditReport struct {
	Pairs    int // reachable (node, goal) pairs compared
	Findings []Finding
}

// OK reports whether the heuristic passed every check.
func (r AuditReport) OK() bool { return len(r.Findings) == 0 }

// Audit compares h against the true road distances of the map.
//
// For every goal it reports locations whose estimate overestimates the
// remaining distance (Inadmissible), and roads u→v along which the estimate
// drops by more than the road cost (Inconsistent). A* stays optimal with an
// inconsistent but admissible heuristic; it only re-expands more.
func (m *Map) Audit(h geo.Heuristic) (AuditReport, error) {
	var rep AuditReport
	if h == nil {
		return rep, fmt.Errorf("townmap: audit: nil heuristic")
	}

	dist := make(map[string]map[string]float64, len(m.order))
	for _, src := range m.order {
		d, _, err := dijkstra.Dijkstra(m.graph, dijkstra.Source(src))
		if err != nil {
			return rep, fmt.Errorf("townmap: audit from %q: %w", src, err)
		}
		dist[src] = d
	}

	roads := m.Roads()
	for _, goal := range m.order {
		at := m.coords[goal]
		est := func(n string) float64 { return h(m.coords[n], at) }

		for _, node := range m.order {
			if node == goal {
				continue
			}
			d := dist[node][goal]
			if math.IsInf(d, 1) {
				continue
			}
			rep.Pairs++
			if e := est(node); e > d+auditSlack {
				rep.Findings = append(rep.Findings, Finding{
					Kind: Inadmissible, Node: node, Goal: goal, Estimate: e, Limit: d,
				})
			}
		}

		for _, r := range roads {
			limit := r.Cost + est(r.To)
			if e := est(r.From); e > limit+auditSlack {
				rep.Findings = append(rep.Findings, Finding{
					Kind: Inconsistent, Node: r.From, Goal: goal, Via: r.To, Estimate: e, Limit: limit,
				})
			}
		}
	}

	return rep, nil
}
