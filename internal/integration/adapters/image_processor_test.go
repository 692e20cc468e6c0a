package adapters

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageProcessor_DetectContentType(t *testing.T) {
	processor := NewImageProcessor(1200, 85)

	assert.Equal(t, "image/png", processor.DetectContentType(encodePNG(t, 4, 4)))
	assert.Equal(t, "text/plain; charset=utf-8", processor.DetectContentType([]byte("definitely not an image")))
}

func TestImageProcessor_CompressDownscalesLargeImages(t *testing.T) {
	processor := NewImageProcessor(1200, 85)

	out, err := processor.Compress(encodePNG(t, 2400, 1600))
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", out.ContentType)
	assert.Equal(t, 1200, out.Width)
	assert.Equal(t, 800, out.Height)

	decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1200, 800), decoded.Bounds())
}

func TestImageProcessor_CompressKeepsSmallImages(t *testing.T) {
	processor := NewImageProcessor(1200, 85)

	out, err := processor.Compress(encodePNG(t, 300, 900))
	require.NoError(t, err)

	assert.Equal(t, 300, out.Width)
	assert.Equal(t, 900, out.Height)
}

func TestImageProcessor_CompressRejectsGarbage(t *testing.T) {
	processor := NewImageProcessor(1200, 85)

	_, err := processor.Compress([]byte("\x89PNG\r\n\x1a\nnot really"))
	assert.ErrorIs(t, err, domainerror.ErrImageDecodeFailed)
}

// withDeclaredSize rewrites the IHDR dimensions of a PNG without touching
// its pixel data, producing a small file that claims to be huge.
func withDeclaredSize(t *testing.T, data []byte, width, height uint32) []byte {
	t.Helper()
	require.Equal(t, "IHDR", string(data[12:16]))

	out := bytes.Clone(data)
	binary.BigEndian.PutUint32(out[16:20], width)
	binary.BigEndian.PutUint32(out[20:24], height)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestImageProcessor_CompressRejectsOversizedDimensions(t *testing.T) {
	processor := NewImageProcessor(1200, 85)

	tests := []struct {
		name          string
		width, height uint32
	}{
		{name: "16000 square", width: 16000, height: 16000},
		{name: "just over the pixel cap", width: 8001, height: 5000},
		{name: "absurd strip", width: 1 << 30, height: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bomb := withDeclaredSize(t, encodePNG(t, 1, 1), tt.width, tt.height)

			_, err := processor.Compress(bomb)
			assert.ErrorIs(t, err, domainerror.ErrImageDimensionsTooLarge)
		})
	}

	t.Run("at the cap header is accepted", func(t *testing.T) {
		header := withDeclaredSize(t, encodePNG(t, 1, 1), 8000, 5000)

		cfg, _, err := image.DecodeConfig(bytes.NewReader(header))
		require.NoError(t, err)
		assert.Equal(t, int64(maxDecodedPixels), int64(cfg.Width)*int64(cfg.Height))
	})
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{name: "landscape", width: 4000, height: 3000, wantW: 1200, wantH: 900},
		{name: "portrait", width: 1000, height: 2000, wantW: 600, wantH: 1200},
		{name: "square", width: 1500, height: 1500, wantW: 1200, wantH: 1200},
		{name: "already small", width: 640, height: 480, wantW: 640, wantH: 480},
		{name: "extreme ratio keeps one pixel", width: 100000, height: 10, wantW: 1200, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitWithin(tt.width, tt.height, 1200)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
