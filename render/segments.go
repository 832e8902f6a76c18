// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/townmap"
)

// Segment is one undirected road of a diagram.
type Segment struct {
	A, B   string
	Weight float64
	OnPath bool
}

// Segments returns the undirected road list of m in first-declaration order.
// Reciprocal roads share one segment; the later declaration sets its weight.
func Segments(m *townmap.Map, path astar.Path) []Segment {
	type pair struct{ lo, hi string }
	key := func(a, b string) pair {
		if a < b {
			return pair{a, b}
		}
		return pair{b, a}
	}

	var out []Segment
	at := make(map[pair]int)
	for _, r := range m.Roads() {
		k := key(r.From, r.To)
		if i, ok := at[k]; ok {
			out[i].Weight = r.Cost
			continue
		}
		at[k] = len(out)
		out = append(out, Segment{A: r.From, B: r.To, Weight: r.Cost})
	}
	for i := range out {
		out[i].OnPath = path.Contains(out[i].A, out[i].B)
	}

	return out
}

// onPath reports whether name is a stop of path.
func onPath(path astar.Path, name string) bool {
	for _, n := range path.Nodes {
		if n == name {
			return true
		}
	}

	return false
}
