package container

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/jpeg"
)

// DecodeOZJ decodes the JPEG stream embedded at streamOffset and returns
// it as an NRGBA image.
//
// Header byte 17 carries an orientation flag that was historically meant
// to trigger a vertical flip. No flip is applied: the embedded stream's
// natural orientation is preserved. See cmd/inspect to examine the flag.
func DecodeOZJ(raw []byte, streamOffset int) (*image.NRGBA, error) {
	if streamOffset < 0 || streamOffset >= len(raw) {
		return nil, ErrTruncated
	}

	img, _, err := image.Decode(bytes.NewReader(raw[streamOffset:]))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return ToNRGBA(img), nil
}

// ToNRGBA converts any decoded image to NRGBA without reordering
// channels. Fully opaque formats (JPEG's YCbCr, grayscale) get alpha 255.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	}
	return dst
}
