package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"mime"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	_ "image/gif"
)

const (
	DefaultMaxDimension = 2560
	jpegQuality         = 85
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type Result struct {
	Bytes       []byte
	ContentType string
	Resized     bool
}

type Processor interface {
	Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error)
}

// ImageProcessor validates uploaded images and downscales any that exceed
// the configured maximum dimension. Scaling is done in-process with
// x/image/draw; webp and gif inputs are re-encoded as jpeg when resized
// because only jpeg and png encoders are available.
type ImageProcessor struct {
	maxDimension int
}

func NewImageProcessor(maxDimension int) *ImageProcessor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &ImageProcessor{maxDimension: maxDimension}
}

func (p *ImageProcessor) Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error) {
	if upload.Reader == nil {
		return nil, fmt.Errorf("media: empty reader")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media: empty image data")
	}

	contentType := normalizeContentType(upload.ContentType, upload.FileName)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode dimensions: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("media: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	targetMax := maxDimension
	if targetMax <= 0 {
		targetMax = p.maxDimension
	}
	if cfg.Width <= targetMax && cfg.Height <= targetMax {
		return &Result{Bytes: data, ContentType: contentType, Resized: false}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode image: %w", err)
	}

	targetW, targetH := scaleToFit(cfg.Width, cfg.Height, targetMax)
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	outType := contentType
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	default:
		// jpeg, webp and gif all come back out as jpeg
		outType = "image/jpeg"
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("media: encode image: %w", err)
	}

	return &Result{
		Bytes:       buf.Bytes(),
		ContentType: outType,
		Resized:     true,
	}, nil
}

func scaleToFit(width, height, maxDim int) (int, int) {
	if width >= height {
		newW := maxDim
		newH := int(math.Round(float64(height) * float64(maxDim) / float64(width)))
		return ensureMin(newW), ensureMin(newH)
	}
	newH := maxDim
	newW := int(math.Round(float64(width) * float64(maxDim) / float64(height)))
	return ensureMin(newW), ensureMin(newH)
}

func ensureMin(value int) int {
	if value < 2 {
		return 2
	}
	return value
}

func normalizeContentType(value, fileName string) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if ct != "" {
		if ct == "image/jpg" {
			return "image/jpeg"
		}
		return ct
	}
	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName)))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	if ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strings.ToLower(mt)
		}
	}
	return "application/octet-stream"
}

// IsImage reports whether the content type names a decodable image format.
func IsImage(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}
