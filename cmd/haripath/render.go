// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/render"
	"github.com/katalvlaran/haripath/route"
)

func newRenderCmd(e *env) *cobra.Command {
	var (
		from, to string
		format   string
		outPath  string
		width    int
		height   int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the map, optionally highlighting a route",
		Example: `  haripath render --format dot --from "Main Bazar" --to Ghazi | dot -Kneato -n -Tsvg
  haripath render --format png --from "Main Bazar" --to Ghazi -o route.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if !knownFormat(format) {
				return fmt.Errorf("unknown format %q (want %s)", format, strings.Join(formats, ", "))
			}

			var path astar.Path
			if from != "" || to != "" {
				o := e.planner(nil).Plan(from, to)
				switch o.Kind {
				case route.Found:
					path = o.Path
				case route.NoPath:
					e.log.Warn("drawing map without route", "from", from, "to", to)
				default:
					_ = printOutcome(cmd.ErrOrStderr(), o)
					return &outcomeError{o: o}
				}
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, createErr := os.Create(outPath)
				if createErr != nil {
					return createErr
				}
				defer func() {
					if closeErr := f.Close(); err == nil {
						err = closeErr
					}
				}()
				w = f
			}

			return draw(w, e, format, path, width, height)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "route start")
	cmd.Flags().StringVar(&to, "to", "", "route goal")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, geojson, png")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&width, "width", render.DefaultPNGOptions().Width, "PNG width in pixels")
	cmd.Flags().IntVar(&height, "height", render.DefaultPNGOptions().Height, "PNG height in pixels")

	return cmd
}

var formats = []string{"dot", "geojson", "png"}

func knownFormat(f string) bool {
	for _, k := range formats {
		if k == f {
			return true
		}
	}

	return false
}

func draw(w io.Writer, e *env, format string, path astar.Path, width, height int) error {
	switch format {
	case "dot":
		return render.DOT(w, e.m, path)
	case "geojson":
		raw, err := render.GeoJSON(e.m, path).MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", raw)
		return err
	case "png":
		opts := render.DefaultPNGOptions()
		opts.Width, opts.Height = width, height
		return render.PNG(w, e.m, path, opts)
	default:
		return fmt.Errorf("unknown format %q (want dot, geojson or png)", format)
	}
}
