// Package seeds registers the initial boards offered by the toolbar and the
// -pattern flag.
package seeds

import (
	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

const (
	// Random scatters live cells using the session's density.
	Random = "random"
	// Clear produces an all-dead board.
	Clear = "clear"
)

var patterns = map[string]string{
	"blinker": `
		OOO
	`,
	"block": `
		OO
		OO
	`,
	"glider": `
		.O.
		..O
		OOO
	`,
	"r-pentomino": `
		.OO
		OO.
		.O.
	`,
	"glider-gun": `
		........................O...........
		......................O.O...........
		............OO......OO............OO
		...........O...O....OO............OO
		OO........O.....O...OO..............
		OO........O...O.OO....O.O...........
		..........O.....O.......O...........
		...........O...O....................
		............OO......................
	`,
}

// Stamp returns a new board of the given size with pattern copied onto its
// center. Cells that fall off an edge wrap around to the opposite side.
func Stamp(size core.Size, pattern *life.Grid) *life.Grid {
	g := life.New(size.Rows, size.Cols)
	if size.Rows == 0 || size.Cols == 0 {
		return g
	}
	top := (size.Rows - pattern.Rows()) / 2
	left := (size.Cols - pattern.Cols()) / 2
	for i := 0; i < pattern.Rows(); i++ {
		for k := 0; k < pattern.Cols(); k++ {
			if !pattern.Alive(i, k) {
				continue
			}
			gi, gk := g.Wrap(top+i, left+k)
			g.Set(gi, gk, true)
		}
	}
	return g
}

func patternSeeder(pattern *life.Grid) core.Seeder {
	return func(size core.Size, _ func() bool) *life.Grid {
		return Stamp(size, pattern)
	}
}

func init() {
	core.Register(Random, func(size core.Size, random func() bool) *life.Grid {
		return life.Create(size.Rows, size.Cols, random)
	})
	core.Register(Clear, func(size core.Size, _ func() bool) *life.Grid {
		return life.New(size.Rows, size.Cols)
	})
	for name, text := range patterns {
		core.Register(name, patternSeeder(life.MustParse(text)))
	}
}
