// Package config holds the tunable constants of the renderer.
package config

import "github.com/pkg/errors"

// MaxTurnStep bounds the per-tick heading change. vmath.NormalizeAngle only
// wraps by one turn, so larger steps would leave the heading out of range.
const MaxTurnStep = 10.0

// Config is the viewport, projection and movement setup.
type Config struct {
	ScreenWidth  int // columns, one ray each
	ScreenHeight int // rows
	Unit         int // distance units per map tile

	FOVHalf   float64 // degrees either side of the heading
	AngleStep float64 // degrees between adjacent columns

	Speed    float64 // distance units per move
	TurnStep float64 // degrees per turn

	StartX, StartY float64
	StartHeading   float64
}

// Default returns the 120x30 console setup.
func Default() Config {
	return Config{
		ScreenWidth:  120,
		ScreenHeight: 30,
		Unit:         64,
		FOVHalf:      30,
		AngleStep:    0.5,
		Speed:        10,
		TurnStep:     10,
		StartX:       200,
		StartY:       400,
		StartHeading: 90,
	}
}

// Validate reports the first setting that cannot be rendered.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Errorf("invalid viewport %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.Unit <= 0:
		return errors.Errorf("invalid unit %d", c.Unit)
	case c.AngleStep <= 0:
		return errors.Errorf("invalid angle step %v", c.AngleStep)
	case c.FOVHalf <= 0 || c.FOVHalf >= 90:
		return errors.Errorf("field of view half-angle %v outside (0, 90)", c.FOVHalf)
	case c.Speed <= 0:
		return errors.Errorf("invalid speed %v", c.Speed)
	case c.TurnStep <= 0 || c.TurnStep > MaxTurnStep:
		return errors.Errorf("turn step %v outside (0, %v]", c.TurnStep, MaxTurnStep)
	case c.StartHeading < 0 || c.StartHeading >= 359:
		return errors.Errorf("start heading %v outside [0, 359)", c.StartHeading)
	}
	return nil
}
