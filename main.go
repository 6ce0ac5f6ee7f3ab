// raycli renders a tile map as a first-person view in the terminal. Arrow
// keys move and turn; any other key quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"golang.org/x/term"

	"raycli/internal/config"
	"raycli/internal/sim"
	"raycli/internal/terminal"
	"raycli/internal/world"
)

const (
	logDir      = "logs"
	logFileName = "raycli.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	debugFlag = flag.Bool("debug", false, "show the camera pose on the top row and log to "+logDir)
	mapFlag   = flag.String("map", "", "load the map from a text file of '#' and '.' rows")
	dumpFlag  = flag.Bool("dump", false, "print the first frame to stdout and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	grid, err := loadGrid(*mapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load map: %v\n", err)
		os.Exit(1)
	}

	s := sim.New(cfg, grid)
	if col, row, ok := s.Pose().Tile(cfg.Unit); !ok || grid.Blocked(col, row) {
		fmt.Fprintf(os.Stderr, "Start position %v is not on an open tile\n", s.Pose())
		os.Exit(1)
	}

	if *dumpFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(s.Frame())
		return
	}

	d, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start tcell: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash.
	defer func() {
		if r := recover(); r != nil {
			d.Close()
			fmt.Fprintf(os.Stderr, "raycli crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	run(d, s, *debugFlag)
	d.Close()
}

// run draws, waits for a key and applies it until the session ends.
func run(d *terminal.Display, s *sim.Simulation, showPose bool) {
	log.Printf("session start at %v", s.Pose())
	for {
		status := ""
		if showPose {
			status = s.Pose().String()
		}
		d.Draw(s.Frame(), status)
		if !s.Step(d.ReadCommand()) {
			break
		}
	}
	log.Printf("session end at %v", s.Pose())
}

func loadGrid(path string) (*world.Grid, error) {
	if path == "" {
		return world.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return world.Load(f)
}

// setupLogging sends the standard logger to logs/raycli.log when debug is
// set and discards it otherwise. A log over maxLogSize is rotated aside
// first.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("raycli-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
