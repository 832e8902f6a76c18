// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/haripath/route"
)

// Text writes o as a title line followed by its message. Found outcomes add
// the route cost.
func Text(w io.Writer, o route.Outcome) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", o.Title, o.Message); err != nil {
		return err
	}
	if o.Kind == route.Found {
		_, err := fmt.Fprintf(w, "Cost: %s\n", formatWeight(o.Path.Cost))
		return err
	}

	return nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
