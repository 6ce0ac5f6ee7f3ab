package render

import (
	"math"

	"raycli/internal/camera"
	"raycli/internal/config"
	"raycli/internal/raycast"
	"raycli/internal/vmath"
	"raycli/internal/world"
)

// Ray is one column's cast.
type Ray struct {
	Column      int
	Angle       float64 // degrees
	Distance    float64 // along the ray
	Corrected   float64 // perpendicular to the view plane
	Height      int     // projected wall height in half-rows
	Orientation raycast.Orientation
}

// Renderer projects the grid for a camera pose. It keeps one column buffer
// that is overwritten on every frame.
type Renderer struct {
	cfg    config.Config
	caster *raycast.Caster
	glyphs Glyphs

	rays    []Ray
	columns [][]rune
}

// NewRenderer prepares a renderer for cfg's viewport.
func NewRenderer(cfg config.Config, g *world.Grid) *Renderer {
	r := &Renderer{
		cfg:     cfg,
		caster:  raycast.New(g, cfg.Unit),
		glyphs:  DefaultGlyphs,
		rays:    make([]Ray, cfg.ScreenWidth),
		columns: make([][]rune, cfg.ScreenWidth),
	}
	for i := range r.columns {
		r.columns[i] = make([]rune, cfg.ScreenHeight)
	}
	return r
}

// Cast fills dst with one ray per column, left to right, and returns it.
// dst is grown when it is too short.
func (r *Renderer) Cast(p camera.Pose, dst []Ray) []Ray {
	if cap(dst) < r.cfg.ScreenWidth {
		dst = make([]Ray, r.cfg.ScreenWidth)
	}
	dst = dst[:r.cfg.ScreenWidth]

	for i := range dst {
		angle := p.Heading + r.cfg.FOVHalf - float64(i)*r.cfg.AngleStep
		hit := r.caster.Cast(p.X, p.Y, angle)
		_, cos := vmath.SinCos(p.Heading - angle)
		corrected := hit.Distance * cos
		dst[i] = Ray{
			Column:      i,
			Angle:       angle,
			Distance:    hit.Distance,
			Corrected:   corrected,
			Height:      r.projectedHeight(corrected),
			Orientation: hit.Orientation,
		}
	}
	return dst
}

// projectedHeight maps a corrected distance to a wall height. A zero or tiny
// distance saturates at the full-column height; NaN becomes the negative
// error height.
func (r *Renderer) projectedHeight(dist float64) int {
	limit := 2 * r.cfg.ScreenHeight
	h := float64(r.cfg.Unit*r.cfg.ScreenHeight*2) / dist
	switch {
	case math.IsNaN(h):
		return -1
	case h >= float64(limit):
		return limit
	case h <= -float64(limit):
		return -limit
	}
	return int(h)
}

// RenderInto draws the view from p into dst, which must match the viewport.
func (r *Renderer) RenderInto(dst *Frame, p camera.Pose) {
	r.rays = r.Cast(p, r.rays)
	for i, ray := range r.rays {
		wall := r.glyphs.HorizontalWall
		if ray.Orientation == raycast.Vertical {
			wall = r.glyphs.VerticalWall
		}
		shadeInto(r.columns[i], ray.Height, wall, r.glyphs)
	}

	// Columns are shaded top to bottom; the frame is emitted row by row.
	for row := 0; row < dst.Height; row++ {
		for col := 0; col < dst.Width; col++ {
			dst.Set(col, row, r.columns[col][row])
		}
	}
}

// Render draws the view from p into a new frame.
func (r *Renderer) Render(p camera.Pose) *Frame {
	f := NewFrame(r.cfg.ScreenWidth, r.cfg.ScreenHeight)
	r.RenderInto(f, p)
	return f
}
