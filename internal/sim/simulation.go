// Package sim owns the state of one session: the map, the camera and the
// frame buffer it is drawn into.
package sim

import (
	"log"

	"raycli/internal/camera"
	"raycli/internal/config"
	"raycli/internal/render"
	"raycli/internal/world"
)

// Simulation advances the camera one command at a time and renders it.
type Simulation struct {
	cfg      config.Config
	grid     *world.Grid
	pose     camera.Pose
	renderer *render.Renderer
	frame    *render.Frame
}

// New places the camera at cfg's start pose on g.
func New(cfg config.Config, g *world.Grid) *Simulation {
	return &Simulation{
		cfg:      cfg,
		grid:     g,
		pose:     camera.NewPose(cfg.StartX, cfg.StartY, cfg.StartHeading),
		renderer: render.NewRenderer(cfg, g),
		frame:    render.NewFrame(cfg.ScreenWidth, cfg.ScreenHeight),
	}
}

// Pose returns the current camera pose.
func (s *Simulation) Pose() camera.Pose { return s.pose }

// Step applies cmd and reports whether the session continues.
func (s *Simulation) Step(cmd camera.Command) bool {
	next, ok := camera.Apply(s.pose, s.grid, cmd, s.cfg)
	if !ok {
		log.Printf("sim: %v, stopping at %v", cmd, s.pose)
		return false
	}
	if (cmd == camera.Forward || cmd == camera.Back) && next == s.pose {
		log.Printf("sim: %v blocked at %v", cmd, s.pose)
	}
	s.pose = next
	return true
}

// Frame renders the current pose into the owned buffer and returns it. The
// buffer is reused, so the result is only valid until the next call.
func (s *Simulation) Frame() *render.Frame {
	s.renderer.RenderInto(s.frame, s.pose)
	return s.frame
}

// Rays returns the per-column casts for the current pose.
func (s *Simulation) Rays() []render.Ray {
	return s.renderer.Cast(s.pose, nil)
}
