package core

import (
	"sort"

	"lifegrid/pkg/life"
)

// Size describes the dimensions of a board.
type Size struct {
	Rows int
	Cols int
}

// Seeder builds an initial board of the given size. random is a per-cell
// initializer for seeders that scatter live cells; fixed patterns ignore it.
type Seeder func(size Size, random func() bool) *life.Grid

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of available seeders.
func Seeders() map[string]Seeder {
	return seeders
}

// SeederNames lists the registered seeder names in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
