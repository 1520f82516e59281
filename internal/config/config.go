package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the paths and settings for one binding job.
type Config struct {
	// Paths
	DataDir  string `json:"data_dir"`  // root scanned for texture candidates
	Manifest string `json:"manifest"`  // scene manifest JSON
	DumpDir  string `json:"dump_dir"`  // optional: bound textures written here as WebP

	// Job settings
	ScanDepth int `json:"scan_depth"` // directory levels below data_dir to search
	Workers   int `json:"workers"`
}

// Load reads a JSON config file. Fields absent from the file keep their
// zero values until Resolve fills defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DataDir  string
	Manifest string
	DumpDir  string
	Workers  int
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.DumpDir != "" {
		c.DumpDir = flags.DumpDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.DataDir == "" {
		cwd, _ := os.Getwd()
		for _, base := range []string{cwd, filepath.Dir(cwd)} {
			if _, err := os.Stat(filepath.Join(base, "Data")); err == nil {
				c.DataDir = filepath.Join(base, "Data")
				break
			}
		}
	}
	if c.Manifest == "" && c.DataDir != "" {
		c.Manifest = filepath.Join(c.DataDir, "scene.json")
	}
	if c.DumpDir != "" && !filepath.IsAbs(c.DumpDir) && c.DataDir != "" {
		c.DumpDir = filepath.Join(c.DataDir, c.DumpDir)
	}

	if c.ScanDepth <= 0 {
		c.ScanDepth = 4
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
