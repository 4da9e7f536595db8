package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envSeed  = "RUNCHICKEN_SEED"
	envDebug = "RUNCHICKEN_DEBUG"
	envScale = "RUNCHICKEN_SCALE"
)

// Config holds the viewer settings. Defaults come from the environment or a
// .env file; command line flags override them.
type Config struct {
	// Seed of the terrain generator. Zero picks a random seed.
	Seed uint64
	// Debug shows the Dear ImGui overlay.
	Debug bool
	// Scale multiplies the window size.
	Scale  float64
	Width  int
	Height int
}

// loadConfig reads envFile if it exists, then the process environment, then
// args. Variables already set in the environment win over the file.
func loadConfig(args []string, envFile string) (Config, error) {
	fileEnv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	cfg := Config{Scale: 1, Width: 1000, Height: 500}
	if v, ok := lookup(envSeed); ok {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
	}
	if v, ok := lookup(envDebug); ok {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envDebug, err)
		}
	}
	if v, ok := lookup(envScale); ok {
		if cfg.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envScale, err)
		}
	}

	flags := flag.NewFlagSet("runchicken", flag.ContinueOnError)
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the terrain generator, 0 for a random seed.")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug overlay.")
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels before scaling.")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels before scaling.")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Scale <= 0 {
		return Config{}, fmt.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// WindowSize returns the scaled window size.
func (c Config) WindowSize() (int, int) {
	return int(float64(c.Width) * c.Scale), int(float64(c.Height) * c.Scale)
}
