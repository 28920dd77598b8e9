package imageocr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	// Register decoders for the upload formats the service accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// normalizeToPNG decodes an uploaded image and re-encodes it as opaque
// PNG so tesseract always sees a format it handles.
func normalizeToPNG(content []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	flat := flatten(src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return nil, fmt.Errorf("encode %s as png: %w", format, err)
	}
	return buf.Bytes(), nil
}

// flatten drops the alpha channel, keeping the color channels as they
// are. Transparency is discarded, not composited against a background,
// so text drawn in the color channels of a transparent-background image
// stays visible to OCR.
func flatten(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
