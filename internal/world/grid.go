// Package world holds the static tile map the camera moves through.
package world

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	wallTile  = '#'
	emptyTile = '.'
)

// sampleMap is the built-in 8x8 level. Rows run top to bottom (+y), columns
// left to right (+x).
var sampleMap = []string{
	"########",
	"#......#",
	"####...#",
	"#......#",
	"#......#",
	"#....#.#",
	"#......#",
	"########",
}

// Grid is a read-only square occupancy map.
type Grid struct {
	size  int
	cells []bool // row-major, true = wall
}

// Sample returns the built-in level.
func Sample() *Grid {
	g, err := Parse(sampleMap)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse builds a grid from text rows where '#' is a wall and '.' is empty.
// The rows must form a square.
func Parse(rows []string) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New("map is empty")
	}
	g := &Grid{size: n, cells: make([]bool, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, errors.Errorf("map row %d has %d tiles, want %d", y, len(row), n)
		}
		for x := 0; x < n; x++ {
			switch row[x] {
			case wallTile:
				g.cells[y*n+x] = true
			case emptyTile:
			default:
				return nil, errors.Errorf("map row %d col %d: unknown tile %q", y, x, row[x])
			}
		}
	}
	return g, nil
}

// Load reads a grid in the Parse format. Blank lines are skipped.
func Load(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read map")
	}
	g, err := Parse(rows)
	if err != nil {
		return nil, errors.Wrap(err, "parse map")
	}
	return g, nil
}

// Size is the edge length in tiles.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (col, row) addresses a tile.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.size && row < g.size
}

// IsWall reports whether the tile at (col, row) is a wall. Callers must
// check InBounds first.
func (g *Grid) IsWall(col, row int) bool {
	return g.cells[row*g.size+col]
}

// Blocked reports whether the camera may not enter (col, row). Tiles outside
// the map count as blocked.
func (g *Grid) Blocked(col, row int) bool {
	return !g.InBounds(col, row) || g.IsWall(col, row)
}

// String renders the grid back into its text form.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.size; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.size; x++ {
			if g.IsWall(x, y) {
				b.WriteByte(wallTile)
			} else {
				b.WriteByte(emptyTile)
			}
		}
	}
	return b.String()
}
