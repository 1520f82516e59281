package main

import (
	"fmt"
	"os"

	"mu-texture-binder/internal/container"
	"mu-texture-binder/internal/texture"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file>...")
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Printf("%s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func inspect(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	info, err := container.Sniff(raw)
	if err != nil {
		return err
	}

	switch info.Kind {
	case container.KindOZJ:
		fmt.Printf("%s: OZJ, stream at offset %d, orientation byte 0x%02X, %d bytes\n",
			path, info.StreamOffset, info.Orientation, len(raw))
	case container.KindOZT:
		fmt.Printf("%s: OZT, %dx%d, %d bpp, %d bytes\n",
			path, info.Width, info.Height, info.Depth, len(raw))
	}

	img, err := texture.Decode(raw, path)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	b := img.Bounds()
	fmt.Printf("  decoded %dx%d\n", b.Dx(), b.Dy())
	return nil
}
