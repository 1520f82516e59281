package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/ftrvxmtrx/tga"

	"mu-texture-binder/internal/container"
)

// Load reads and decodes one texture file into an NRGBA bitmap.
// The buffer is sniffed first: OZJ and OZT containers go through the
// container decoders, anything else through the standard image codecs
// (JPEG, PNG, TGA) with no channel reordering.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(raw, path)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes a raw texture buffer. path supplies the extension used
// to pick a standard codec when the buffer is not an OZJ/OZT container.
func Decode(raw []byte, path string) (*image.NRGBA, error) {
	info, err := container.Sniff(raw)
	switch {
	case err == nil && info.Kind == container.KindOZJ:
		return container.DecodeOZJ(raw, info.StreamOffset)
	case err == nil && info.Kind == container.KindOZT:
		return container.DecodeOZT(raw)
	case err != nil && !errors.Is(err, container.ErrUnsupported):
		return nil, err
	}

	// Not a proprietary container: delegate to the standard codecs.
	if Normalize(path).Ext == "tga" {
		img, err := tga.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, &container.DecodeError{Path: path, Err: err}
		}
		return container.ToNRGBA(img), nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &container.DecodeError{Path: path, Err: err}
	}
	return container.ToNRGBA(img), nil
}
