// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/townmap"
)

// DOT writes m as an undirected Graphviz graph with pinned positions.
// Route segments are red with penwidth 2; route stops are outlined in red.
func DOT(w io.Writer, m *townmap.Map, path astar.Path) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "graph %s {\n", quote(m.Name()))
	fmt.Fprintln(bw, "  node [shape=circle, style=filled, fillcolor=lightgreen];")

	coords := m.Coordinates()
	for _, name := range m.Locations() {
		p := coords[name]
		attrs := fmt.Sprintf("pos=\"%s,%s!\"", formatWeight(p.X()), formatWeight(p.Y()))
		if onPath(path, name) {
			attrs += ", color=red"
		}
		fmt.Fprintf(bw, "  %s [%s];\n", quote(name), attrs)
	}

	for _, s := range Segments(m, path) {
		style := "color=black"
		if s.OnPath {
			style = "color=red, penwidth=2"
		}
		fmt.Fprintf(bw, "  %s -- %s [label=%s, %s];\n",
			quote(s.A), quote(s.B), quote(formatWeight(s.Weight)), style)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// quote renders s as a DOT double-quoted ID.
func quote(s string) string {
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}
