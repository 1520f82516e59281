package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"mu-texture-binder/internal/binder"
	"mu-texture-binder/internal/config"
	"mu-texture-binder/internal/scene"
	"mu-texture-binder/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	dataDir := flag.String("data", "", "Directory scanned for texture candidates")
	manifest := flag.String("manifest", "", "Scene manifest JSON file")
	dumpDir := flag.String("dump", "", "Write bound textures as WebP into this directory")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Print every diagnostic")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		DataDir:  *dataDir,
		Manifest: *manifest,
		DumpDir:  *dumpDir,
		Workers:  *workers,
	})

	if cfg.DataDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no texture directory. Use -data flag or config.json.")
		os.Exit(1)
	}

	root, err := scene.LoadManifest(cfg.Manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	candidates, err := texture.Discover(cfg.DataDir, cfg.ScanDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", cfg.DataDir, err)
		os.Exit(1)
	}
	fmt.Printf("Discovered %d texture names in %s\n", candidates.Len(), cfg.DataDir)

	b := binder.New(candidates, nil)
	report := b.Run(root, cfg.Workers)

	fmt.Printf("Bound %d meshes, %d unbound (%.2fs)\n",
		report.Bound, report.Unbound, time.Since(start).Seconds())

	if *verbose {
		for _, d := range report.Diagnostics {
			fmt.Printf("  %s\n", d)
		}
	} else {
		for _, d := range report.Failed() {
			fmt.Fprintf(os.Stderr, "  %s\n", d)
		}
	}

	if cfg.DumpDir != "" {
		if err := dumpTextures(root, cfg.DumpDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error dumping textures: %v\n", err)
			os.Exit(1)
		}
	}
}

// dumpTextures writes each distinct bound texture as WebP, named after
// its source file's base name.
func dumpTextures(root *scene.Node, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	written := make(map[string]bool)
	var firstErr error
	root.Walk(func(n *scene.Node) {
		if n.Kind != scene.KindMesh || n.Mesh == nil {
			return
		}
		tex := n.Mesh.Material.Map
		if tex == nil || tex.Released() {
			return
		}
		ref := texture.Normalize(tex.Source)
		if written[ref.Base] {
			return
		}
		written[ref.Base] = true

		outPath := filepath.Join(dir, ref.Base+".webp")
		f, err := os.Create(outPath)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		if err := nativewebp.Encode(f, tex.Image, nil); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("WebP encode %s: %w", outPath, err)
		}
		f.Close()
	})
	if firstErr == nil {
		fmt.Printf("Dumped %d textures to %s\n", len(written), dir)
	}
	return firstErr
}
