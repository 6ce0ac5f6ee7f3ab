// Package raycast finds the nearest wall along a ray by stepping across grid
// lines one tile at a time.
package raycast

import (
	"raycli/internal/vmath"
	"raycli/internal/world"
)

// epsilon nudges a ray that steps left or up off the grid line it starts on,
// so the tile behind the line is indexed rather than the one in front.
const epsilon = 0.0001

// Orientation tells which family of grid lines a ray hit.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Hit is the result of casting one ray.
type Hit struct {
	Distance    float64
	Orientation Orientation
}

// Caster casts rays through a grid whose tiles are unit distance wide.
type Caster struct {
	grid *world.Grid
	unit int
}

// New returns a caster over g.
func New(g *world.Grid, unit int) *Caster {
	return &Caster{grid: g, unit: unit}
}

// MaxDistance is reported when a march leaves the grid without a hit.
func (c *Caster) MaxDistance() float64 {
	return float64(c.grid.Size() * c.unit)
}

// Cast shoots a ray from (x, y) at angle degrees and returns the closer of
// the vertical and horizontal line hits. Distances are measured along the
// ray direction and are not corrected for fisheye. Ties go to horizontal.
func (c *Caster) Cast(x, y, angle float64) Hit {
	sin, cos := vmath.SinCos(angle)
	distV := c.castVertical(x, y, sin, cos)
	distH := c.castHorizontal(x, y, sin, cos)
	if distV < distH {
		return Hit{Distance: distV, Orientation: Vertical}
	}
	return Hit{Distance: distH, Orientation: Horizontal}
}

func (c *Caster) castVertical(x, y, sin, cos float64) float64 {
	if cos == 0 {
		// Straight up or down, no vertical line can be crossed.
		return c.MaxDistance()
	}
	u := float64(c.unit)
	tg := sin / cos

	var rx, ox float64
	if cos > 0 {
		rx = float64((int(x)/c.unit + 1) * c.unit)
		ox = u
	} else {
		rx = float64(int(x)/c.unit*c.unit) - epsilon
		ox = -u
	}
	ry := (x-rx)*tg + y
	oy := -ox * tg

	return c.march(x, y, rx, ry, ox, oy, sin, cos)
}

func (c *Caster) castHorizontal(x, y, sin, cos float64) float64 {
	if sin == 0 {
		// Straight left or right, no horizontal line can be crossed.
		return c.MaxDistance()
	}
	u := float64(c.unit)
	ct := cos / sin

	var ry, oy float64
	if sin > 0 {
		// Looking up, toward smaller y.
		ry = float64(int(y)/c.unit*c.unit) - epsilon
		oy = -u
	} else {
		ry = float64((int(y)/c.unit + 1) * c.unit)
		oy = u
	}
	rx := (y-ry)*ct + x
	ox := -oy * ct

	return c.march(x, y, rx, ry, ox, oy, sin, cos)
}

// march steps (rx, ry) by (ox, oy) at most Size times and returns the
// projected distance of the first wall tile it lands in.
func (c *Caster) march(x, y, rx, ry, ox, oy, sin, cos float64) float64 {
	for depth := 0; depth < c.grid.Size(); depth++ {
		mx, okx := c.tile(rx)
		my, oky := c.tile(ry)
		if okx && oky && c.grid.InBounds(mx, my) && c.grid.IsWall(mx, my) {
			return cos*(rx-x) - sin*(ry-y)
		}
		rx += ox
		ry += oy
	}
	return c.MaxDistance()
}

// tile converts a coordinate to a tile index, truncating toward zero. It
// reports false for coordinates that cannot land on the grid, including
// values too large to convert.
func (c *Caster) tile(v float64) (int, bool) {
	u := float64(c.unit)
	if !(v > -u && v < c.MaxDistance()) {
		return 0, false
	}
	return int(v) / c.unit, true
}
