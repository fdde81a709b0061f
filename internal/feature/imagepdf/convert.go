// Package imagepdf converts a single photo or image document into a one-page
// PDF sized to the image.
package imagepdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/jung-kurt/gofpdf"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUnreadableImage indicates the payload is not a decodable image.
var ErrUnreadableImage = errors.New("unreadable image")

const jpegQuality = 90

// Convert decodes an image and returns a PDF with a single page matching the
// image dimensions. Transparent pixels are composited onto white, matching how
// the page background would show through.
func Convert(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	bounds := src.Bounds()
	flattened := image.NewRGBA(bounds)
	draw.Draw(flattened, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flattened, bounds, src, bounds.Min, draw.Over)

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, flattened, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode page image: %w", err)
	}

	width := float64(bounds.Dx())
	height := float64(bounds.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()

	options := gofpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader("page", options, &encoded)
	pdf.ImageOptions("page", 0, 0, width, height, false, options, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return out.Bytes(), nil
}
