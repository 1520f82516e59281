package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/anthonynsimon/bild/transform"

	"mu-texture-binder/internal/postprocess"
	"mu-texture-binder/internal/texture"
)

// result holds the outcome of converting one file.
type result struct {
	src string
	dst string
	err error
}

func main() {
	inDir := flag.String("in", ".", "Directory scanned for OZJ/OZT files")
	outDir := flag.String("out", "", "Output directory (default: alongside sources)")
	workers := flag.Int("workers", 4, "Number of worker goroutines")
	maxSize := flag.Int("size", 0, "Downscale so the longer side is at most this many pixels (0 = keep)")
	flipV := flag.Bool("flipv", false, "Flip output vertically (inspection aid for row-order review)")

	flag.Parse()

	var files []string
	err := filepath.WalkDir(*inDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ozj", ".ozt":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", *inDir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No OZJ/OZT files under %s\n", *inDir)
		os.Exit(1)
	}

	total := len(files)
	results := make([]result, total)
	var processed atomic.Int64
	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
				}
			}
		}
	}()

	idxChan := make(chan int, *workers*2)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range idxChan {
				results[idx] = convert(files[idx], *outDir, *maxSize, *flipV)
				processed.Add(1)
			}
		}()
	}
	for i := range files {
		idxChan <- i
	}
	close(idxChan)
	wg.Wait()
	close(done)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.src, r.err)
		}
	}
	fmt.Printf("Converted %d/%d files in %.2fs\n", total-failed, total, time.Since(start).Seconds())
	if failed > 0 {
		os.Exit(1)
	}
}

func convert(src, outDir string, maxSize int, flipV bool) result {
	img, err := texture.Load(src)
	if err != nil {
		return result{src: src, err: err}
	}

	if maxSize > 0 {
		img = postprocess.Resize(img, maxSize)
	}

	var out image.Image = img
	if flipV {
		out = transform.FlipV(img)
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(src)
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return result{src: src, err: err}
	}
	dst := filepath.Join(dir, base+".webp")

	f, err := os.Create(dst)
	if err != nil {
		return result{src: src, err: err}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, out, nil); err != nil {
		return result{src: src, err: fmt.Errorf("WebP encode: %w", err)}
	}
	return result{src: src, dst: dst}
}
