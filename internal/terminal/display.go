// Package terminal draws frames with tcell and turns key presses into
// camera commands.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"raycli/internal/camera"
	"raycli/internal/render"
)

// Walls and floor are drawn dark on black; the status line is white.
var mazeStyle = tcell.StyleDefault.Background(tcell.ColorBlack).
	Foreground(tcell.ColorDarkSlateBlue)

var statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).
	Foreground(tcell.ColorWhite)

// Display is a tcell screen showing one frame at a time.
type Display struct {
	screen tcell.Screen
}

// Open creates and initialises the terminal screen.
func Open() (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	return New(s), nil
}

// New wraps an initialised screen.
func New(s tcell.Screen) *Display {
	s.HideCursor()
	s.SetStyle(mazeStyle)
	s.Clear()
	return &Display{screen: s}
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}

// Draw replaces the screen contents with f. A non-empty status line is
// written over the top row. Glyphs beyond the screen edge are dropped.
func (d *Display) Draw(f *render.Frame, status string) {
	d.screen.Clear()
	w, h := d.screen.Size()
	for row := 0; row < f.Height && row < h; row++ {
		for col := 0; col < f.Width && col < w; col++ {
			d.screen.SetContent(col, row, f.At(col, row), nil, mazeStyle)
		}
	}
	if status != "" {
		d.drawStatus(status, w)
	}
	d.screen.Show()
}

func (d *Display) drawStatus(s string, width int) {
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if col+rw > width {
			break
		}
		d.screen.SetContent(col, 0, r, nil, statusStyle)
		col += rw
	}
}

// ReadCommand blocks until a key is pressed. Resizes redraw the last frame
// and keep waiting; a closed screen reads as Quit.
func (d *Display) ReadCommand() camera.Command {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return camera.Quit
		case *tcell.EventKey:
			return keyCommand(ev)
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

func keyCommand(ev *tcell.EventKey) camera.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return camera.Forward
	case tcell.KeyDown:
		return camera.Back
	case tcell.KeyLeft:
		return camera.TurnLeft
	case tcell.KeyRight:
		return camera.TurnRight
	}
	return camera.Quit
}
