// SPDX-License-Identifier: MIT

package townmap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/haripath/core"
	"github.com/katalvlaran/haripath/geo"
)

//go:embed data/haripur.yaml
var haripurYAML []byte

// document is the on-disk shape of a map file.
type document struct {
	Name      string        `yaml:"name"`
	Locations []locationDoc `yaml:"locations"`
}

type locationDoc struct {
	Name  string    `yaml:"name"`
	At    []float64 `yaml:"at"`
	Roads []roadDoc `yaml:"roads"`
}

type roadDoc struct {
	To   string   `yaml:"to"`
	Cost *float64 `yaml:"cost"` // nil when the key is absent
}

var haripur = sync.OnceValue(func() *Map {
	m, err := Load(bytes.NewReader(haripurYAML))
	if err != nil {
		panic(fmt.Sprintf("townmap: built-in Haripur map is invalid: %v", err))
	}

	return m
})

// Haripur returns the built-in Haripur town map.
// The same immutable value is returned on every call.
func Haripur() *Map {
	return haripur()
}

// LoadFile reads a map from the YAML file at path.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("townmap: open map: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Load decodes a YAML map from r and validates it.
// Unknown keys are rejected. All validation problems are returned together
// as a *ValidationError.
func Load(r io.Reader) (*Map, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("townmap: decode map: %w", err)
	}

	return build(doc)
}

// build validates doc and assembles the immutable Map.
//
// Stage 1: location names and coordinates.
// Stage 2: roads, checked against the full set of names from stage 1.
// Stage 3: graph construction in declaration order.
func build(doc document) (*Map, error) {
	if len(doc.Locations) == 0 {
		return nil, ErrNoLocations
	}

	var problems []error
	names := make(map[string]struct{}, len(doc.Locations))
	order := make([]string, 0, len(doc.Locations))
	coords := make(geo.Coordinates, len(doc.Locations))

	for i, loc := range doc.Locations {
		if loc.Name == "" {
			problems = append(problems, fmt.Errorf("%w: location #%d", ErrEmptyName, i+1))
			continue
		}
		if _, dup := names[loc.Name]; dup {
			problems = append(problems, fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Name))
			continue
		}
		names[loc.Name] = struct{}{}
		order = append(order, loc.Name)

		if len(loc.At) != 2 || !finite(loc.At[0]) || !finite(loc.At[1]) {
			problems = append(problems, fmt.Errorf("%w: %q has at=%v", ErrBadCoordinate, loc.Name, loc.At))
			continue
		}
		coords[loc.Name] = orb.Point{loc.At[0], loc.At[1]}
	}

	type roadKey struct{ from, to string }
	seen := make(map[roadKey]struct{})
	for _, loc := range doc.Locations {
		if loc.Name == "" {
			continue
		}
		for _, rd := range loc.Roads {
			switch {
			case !has(names, rd.To):
				problems = append(problems, fmt.Errorf("%w: %q → %q", ErrUndefinedTarget, loc.Name, rd.To))
			case rd.To == loc.Name:
				problems = append(problems, fmt.Errorf("%w: %q", ErrSelfRoad, loc.Name))
			case rd.Cost == nil:
				problems = append(problems, fmt.Errorf("%w: %q → %q", ErrMissingCost, loc.Name, rd.To))
			case *rd.Cost < 0 || !finite(*rd.Cost):
				problems = append(problems, fmt.Errorf("%w: %q → %q costs %v", ErrBadCost, loc.Name, rd.To, *rd.Cost))
			}
			k := roadKey{loc.Name, rd.To}
			if _, dup := seen[k]; dup {
				problems = append(problems, fmt.Errorf("%w: %q → %q", ErrDuplicateRoad, loc.Name, rd.To))
			}
			seen[k] = struct{}{}
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	g := core.NewGraph()
	for _, name := range order {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("townmap: add location %q: %w", name, err)
		}
	}
	for _, loc := range doc.Locations {
		for _, rd := range loc.Roads {
			if _, err := g.AddEdge(loc.Name, rd.To, *rd.Cost); err != nil {
				return nil, fmt.Errorf("townmap: add road %q → %q: %w", loc.Name, rd.To, err)
			}
		}
	}

	name := doc.Name
	if name == "" {
		name = "Untitled"
	}

	return &Map{
		name:   name,
		graph:  g,
		coords: coords,
		order:  order,
		index:  geo.NewIndex(coords),
	}, nil
}

func has(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
