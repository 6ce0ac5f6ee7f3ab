package render

import (
	"math"
	"strings"
	"testing"

	"raycli/internal/camera"
	"raycli/internal/config"
	"raycli/internal/raycast"
	"raycli/internal/world"
)

func newTestRenderer() (*Renderer, camera.Pose) {
	cfg := config.Default()
	return NewRenderer(cfg, world.Sample()), camera.NewPose(cfg.StartX, cfg.StartY, cfg.StartHeading)
}

func TestCastColumnAngles(t *testing.T) {
	r, p := newTestRenderer()
	rays := r.Cast(p, nil)
	if len(rays) != 120 {
		t.Fatalf("%d rays, want 120", len(rays))
	}
	if rays[0].Angle != 120 || rays[60].Angle != 90 || rays[119].Angle != 60.5 {
		t.Errorf("angles: first %v center %v last %v", rays[0].Angle, rays[60].Angle, rays[119].Angle)
	}
}

func TestFisheyeCorrection(t *testing.T) {
	r, p := newTestRenderer()
	for _, ray := range r.Cast(p, nil) {
		want := ray.Distance * math.Cos((p.Heading-ray.Angle)*math.Pi/180)
		if math.Abs(ray.Corrected-want) > 1e-9 {
			t.Fatalf("column %d: corrected %v, want %v", ray.Column, ray.Corrected, want)
		}
	}
}

// Start pose looking straight up the map: the center ray meets the bottom
// edge of the wall at row 2, 208 units away.
func TestRenderCenterColumn(t *testing.T) {
	r, p := newTestRenderer()
	rays := r.Cast(p, nil)
	center := rays[60]
	if center.Orientation != raycast.Horizontal {
		t.Fatalf("center ray orientation = %v, want horizontal", center.Orientation)
	}
	if math.Abs(center.Distance-208.0001) > 1e-6 {
		t.Errorf("center distance = %v, want 208.0001", center.Distance)
	}
	if center.Height != 18 {
		t.Errorf("center height = %d, want 18", center.Height)
	}

	f := r.Render(p)
	want := strings.Repeat(" ", 10) + "▄" + strings.Repeat("█", 8) + "▀" + strings.Repeat("░", 10)
	if got := string(f.Column(60)); got != want {
		t.Errorf("column 60:\n got %q\nwant %q", got, want)
	}
}

func TestRenderTransposesColumns(t *testing.T) {
	r, p := newTestRenderer()
	rays := r.Cast(p, nil)
	f := r.Render(p)
	for _, ray := range rays {
		wall := DefaultGlyphs.HorizontalWall
		if ray.Orientation == raycast.Vertical {
			wall = DefaultGlyphs.VerticalWall
		}
		want := string(ShadeColumn(ray.Height, 30, wall, DefaultGlyphs))
		if got := string(f.Column(ray.Column)); got != want {
			t.Fatalf("column %d:\n got %q\nwant %q", ray.Column, got, want)
		}
	}
	if n := len(strings.Split(f.String(), "\n")); n != 30 {
		t.Errorf("frame has %d lines, want 30", n)
	}
}

func TestRenderIsPure(t *testing.T) {
	r, p := newTestRenderer()
	a := r.Render(p)
	b := r.Render(p)
	if !a.Equal(b) {
		t.Error("same pose rendered different frames")
	}

	into := NewFrame(120, 30)
	r.RenderInto(into, p)
	if !a.Equal(into) {
		t.Error("RenderInto differs from Render")
	}
}

func TestRenderOnlyKnownGlyphs(t *testing.T) {
	r, _ := newTestRenderer()
	allowed := "█▓▒░▄▀ ?"
	for _, heading := range []float64{0, 45, 90, 135, 180, 270, 300} {
		f := r.Render(camera.NewPose(200, 400, heading))
		for _, c := range f.String() {
			if c != '\n' && !strings.ContainsRune(allowed, c) {
				t.Fatalf("heading %v: unexpected glyph %q", heading, c)
			}
		}
	}
}

func TestProjectedHeightEdges(t *testing.T) {
	r, _ := newTestRenderer()
	tests := []struct {
		dist float64
		want int
	}{
		{0, 60},
		{math.Copysign(0, -1), -60},
		{1, 60},
		{3840, 1},
		{512, 7},
		{-100, -38},
		{math.NaN(), -1},
	}
	for _, tt := range tests {
		if got := r.projectedHeight(tt.dist); got != tt.want {
			t.Errorf("projectedHeight(%v) = %d, want %d", tt.dist, got, tt.want)
		}
	}
}

func TestRenderDegenerateOnWallBoundary(t *testing.T) {
	r, _ := newTestRenderer()
	// Camera exactly on the boundary of the wall block at row 2.
	f := r.Render(camera.NewPose(200, 192, 90))
	if got := string(f.Column(60)); got != strings.Repeat("█", 30) {
		t.Errorf("column 60 = %q, want full wall", got)
	}
}
