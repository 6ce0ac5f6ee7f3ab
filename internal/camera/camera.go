// Package camera moves the viewpoint through the grid.
package camera

import (
	"fmt"

	"raycli/internal/config"
	"raycli/internal/vmath"
	"raycli/internal/world"
)

// Pose is the camera position in distance units and its heading in degrees.
// The map's y axis grows downward, so the direction vector is
// (cos heading, -sin heading): heading 90 looks toward row 0.
type Pose struct {
	X, Y       float64
	Heading    float64
	DirX, DirY float64
}

// NewPose returns a pose at (x, y) facing heading.
func NewPose(x, y, heading float64) Pose {
	p := Pose{X: x, Y: y}
	return p.withHeading(heading)
}

func (p Pose) withHeading(heading float64) Pose {
	sin, cos := vmath.SinCos(heading)
	p.Heading = heading
	p.DirX = cos
	p.DirY = -sin
	return p
}

// Tile returns the grid tile under the camera. Negative coordinates report
// ok=false.
func (p Pose) Tile(unit int) (col, row int, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	return int(p.X) / unit, int(p.Y) / unit, true
}

func (p Pose) String() string {
	return fmt.Sprintf("X=%3.2f, Y=%3.2f, A=%3.2f", p.X, p.Y, p.Heading)
}

// Command is one input event.
type Command uint8

const (
	Quit Command = iota
	Forward
	Back
	TurnLeft
	TurnRight
)

var commandNames = [...]string{
	Quit:      "quit",
	Forward:   "forward",
	Back:      "back",
	TurnLeft:  "turn-left",
	TurnRight: "turn-right",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// Apply returns the pose after cmd. A move whose destination tile is a wall
// or off the map is rejected and p comes back unchanged. The bool is false
// when cmd ends the session.
func Apply(p Pose, g *world.Grid, cmd Command, cfg config.Config) (Pose, bool) {
	switch cmd {
	case Forward:
		return move(p, g, cfg, cfg.Speed), true
	case Back:
		return move(p, g, cfg, -cfg.Speed), true
	case TurnLeft:
		return p.withHeading(vmath.NormalizeAngle(p.Heading + cfg.TurnStep)), true
	case TurnRight:
		return p.withHeading(vmath.NormalizeAngle(p.Heading - cfg.TurnStep)), true
	}
	return p, false
}

func move(p Pose, g *world.Grid, cfg config.Config, speed float64) Pose {
	next := p
	next.X += p.DirX * speed
	next.Y += p.DirY * speed
	col, row, ok := next.Tile(cfg.Unit)
	if !ok || g.Blocked(col, row) {
		return p
	}
	return next
}
