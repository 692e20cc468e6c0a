package adapters

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/pawz-connect/backend/internal/application/adapter"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	compressedContentType = "image/jpeg"

	// maxDecodedPixels caps width*height before the full decode.
	maxDecodedPixels = 40_000_000
)

// imageProcessor implements adapter.ImageProcessor.
type imageProcessor struct {
	maxDimension int
	quality      int
}

// NewImageProcessor creates an image processor that fits images inside a
// maxDimension square and re-encodes them as JPEG at the given quality.
func NewImageProcessor(maxDimension, quality int) adapter.ImageProcessor {
	return &imageProcessor{
		maxDimension: maxDimension,
		quality:      quality,
	}
}

// DetectContentType sniffs the MIME type from the content, ignoring any
// client supplied header.
func (p *imageProcessor) DetectContentType(data []byte) string {
	return mimetype.Detect(data).String()
}

// Compress decodes the image, scales it down if either side exceeds the
// limit and re-encodes it as JPEG. The header is read first so a small file
// declaring huge dimensions is rejected without allocating its pixels.
func (p *imageProcessor) Compress(data []byte) (*adapter.ProcessedImage, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrImageDecodeFailed, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxDecodedPixels {
		return nil, fmt.Errorf("%w: %dx%d", domainerror.ErrImageDimensionsTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrImageDecodeFailed, err)
	}

	bounds := src.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), p.maxDimension)

	// JPEG has no alpha channel, so transparent areas become white.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return &adapter.ProcessedImage{
		Data:        buf.Bytes(),
		ContentType: compressedContentType,
		Width:       width,
		Height:      height,
	}, nil
}

// fitWithin scales width and height so the longer side is at most limit,
// keeping the aspect ratio. Smaller images are returned unchanged.
func fitWithin(width, height, limit int) (int, int) {
	if limit <= 0 || (width <= limit && height <= limit) {
		return width, height
	}

	if width >= height {
		scaled := height * limit / width
		return limit, max(scaled, 1)
	}
	scaled := width * limit / height
	return max(scaled, 1), limit
}
