// Package cities exposes the fixed list of cities a pharmacy can be listed in.
package cities

import (
	_ "embed"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var raw []byte

type document struct {
	Country string   `yaml:"country"`
	Cities  []string `yaml:"cities"`
}

var load = sync.OnceValue(func() []string {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		panic("cities: malformed embedded list: " + err.Error())
	}
	slices.Sort(doc.Cities)
	return doc.Cities
})

// List returns the cities in sorted order. The caller owns the slice.
func List() []string {
	return slices.Clone(load())
}

// Valid reports whether name is an exact entry of the list.
func Valid(name string) bool {
	_, ok := slices.BinarySearch(load(), name)
	return ok
}
