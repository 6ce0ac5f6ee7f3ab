package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"raycli/internal/camera"
	"raycli/internal/config"
	"raycli/internal/render"
	"raycli/internal/world"
)

func newSimDisplay(t *testing.T, w, h int) (*Display, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(w, h)
	d := New(screen)
	t.Cleanup(d.Close)
	return d, screen
}

func TestDrawFrame(t *testing.T) {
	d, screen := newSimDisplay(t, 120, 30)
	cfg := config.Default()
	f := render.NewRenderer(cfg, world.Sample()).Render(camera.NewPose(cfg.StartX, cfg.StartY, cfg.StartHeading))

	d.Draw(f, "")

	cells, w, h := screen.GetContents()
	if w != 120 || h != 30 {
		t.Fatalf("screen size %dx%d", w, h)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			cell := cells[row*w+col]
			if len(cell.Runes) == 0 || cell.Runes[0] != f.At(col, row) {
				t.Fatalf("cell (%d,%d) = %q, want %q", col, row, cell.Runes, f.At(col, row))
			}
		}
	}
}

func TestDrawClipsToScreen(t *testing.T) {
	d, screen := newSimDisplay(t, 10, 5)
	f := render.NewFrame(20, 8)
	f.Set(9, 4, '█')
	f.Set(15, 6, '▓')

	d.Draw(f, "0123456789abcdef")

	cells, w, _ := screen.GetContents()
	if got := cells[4*w+9].Runes[0]; got != '█' {
		t.Errorf("corner cell = %q", got)
	}
	if got := cells[9].Runes[0]; got != '9' {
		t.Errorf("status clipped wrong, last cell = %q", got)
	}
}

func TestReadCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want camera.Command
	}{
		{"up", tcell.KeyUp, 0, camera.Forward},
		{"down", tcell.KeyDown, 0, camera.Back},
		{"left", tcell.KeyLeft, 0, camera.TurnLeft},
		{"right", tcell.KeyRight, 0, camera.TurnRight},
		{"escape", tcell.KeyEscape, 0, camera.Quit},
		{"letter", tcell.KeyRune, 'q', camera.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, screen := newSimDisplay(t, 20, 10)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)
			if got := d.ReadCommand(); got != tt.want {
				t.Errorf("ReadCommand() = %v, want %v", got, tt.want)
			}
		})
	}
}
