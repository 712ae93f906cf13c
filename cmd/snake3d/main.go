package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"

	"snake3d/internal/game"
	"snake3d/internal/termview"
)

const (
	logDir      = "logs"
	logFileName = "snake3d.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	termFlag  = flag.Bool("term", false, "Play in the terminal instead of a window")
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/"+logFileName)
	seedFlag  = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	levelFlag = flag.Int("level", 0, "Start level")
	stepFlag  = flag.Duration("step", 0, "Fixed step interval, e.g. 150ms")
	muteFlag  = flag.Bool("mute", false, "Disable sound")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "snake3d crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	flag.Parse()

	// A missing .env is fine; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}
	opts, err := resolveOptions(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if f := setupLogging(opts.Debug); f != nil {
		defer f.Close()
	}
	log.Printf("snake3d starting: seed %d, level %d, terminal %v", opts.Seed, opts.Level, *termFlag)

	if *termFlag {
		if err := termview.Run(opts); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}
	game.RunDesktop(opts)
}

// resolveOptions layers flags explicitly set on the command line over the
// environment.
func resolveOptions(lookup func(string) (string, bool)) (game.Options, error) {
	opts, err := game.OptionsFromEnv(lookup)
	if err != nil {
		return opts, err
	}
	var ferr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			opts.Debug = *debugFlag
		case "seed":
			opts.Seed = *seedFlag
		case "level":
			if *levelFlag < 1 {
				ferr = fmt.Errorf("-level %d must be at least 1", *levelFlag)
			}
			opts.Level = *levelFlag
		case "step":
			if *stepFlag <= 0 {
				ferr = fmt.Errorf("-step %v must be positive", *stepFlag)
			}
			opts.StepInterval = *stepFlag
		case "mute":
			opts.Mute = *muteFlag
		}
	})
	if ferr != nil {
		return opts, ferr
	}
	return opts.WithDefaults(), nil
}

// setupLogging sends the standard logger to a rotating file when enabled
// and discards it otherwise. The terminal frontend owns stdout.
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake3d_%s.log", time.Now().Format("20060102_150405")))
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
