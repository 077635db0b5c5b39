package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixge/fgprof"
	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// config holds the optional settings from advent.ini:
//
//	[input]
//	dir = inputs
//
//	[profile]
//	file = advent.pprof
type config struct {
	inputDir    string
	profileFile string
}

func configPath() string {
	if p := os.Getenv("ADVENT_CONFIG"); p != "" {
		return p
	}
	return defaultConfigFile
}

// loadConfig reads the config at path. A missing file yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := &config{inputDir: "."}
	f, err := ini.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if dir, ok := f.Get("input", "dir"); ok && dir != "" {
		cfg.inputDir = dir
	}
	if file, ok := f.Get("profile", "file"); ok {
		cfg.profileFile = file
	}
	return cfg, nil
}

// inputPath returns the file a solution should read: the first argument if
// given, otherwise the named file in the configured input directory.
func (c *config) inputPath(args []string, name string) string {
	if len(args) > 0 {
		return args[0]
	}
	return filepath.Join(c.inputDir, name)
}

// startProfile begins an fgprof wall-clock profile written to file.
// If file is empty, the returned stop function does nothing.
func startProfile(file string) (stop func() error, err error) {
	if file == "" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(file)
	if err != nil {
		return nil, fmt.Errorf("cannot create profile: %s", err)
	}
	stopProf := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProf(); err != nil {
			f.Close()
			return fmt.Errorf("error writing profile: %s", err)
		}
		return f.Close()
	}, nil
}
