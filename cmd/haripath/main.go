// SPDX-License-Identifier: MIT

// Command haripath finds shortest routes across a town map.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var oe *outcomeError
		if !errors.As(err, &oe) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
