package media

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessPassesThroughSmallImages(t *testing.T) {
	data := encodePNG(t, 100, 60)
	p := NewImageProcessor(200)

	result, err := p.Process(context.Background(), Upload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "small.png",
		ContentType: "image/png",
	}, 200)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.Resized {
		t.Fatalf("image under the limit must not be resized")
	}
	if !bytes.Equal(result.Bytes, data) {
		t.Fatalf("pass-through must keep the original bytes")
	}
}

func TestProcessDownscalesLargeImages(t *testing.T) {
	data := encodePNG(t, 400, 200)
	p := NewImageProcessor(100)

	result, err := p.Process(context.Background(), Upload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "big.png",
		ContentType: "image/png",
	}, 100)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !result.Resized {
		t.Fatalf("expected the image to be resized")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(result.Bytes))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("expected 100x50, got %dx%d", cfg.Width, cfg.Height)
	}
	if result.ContentType != "image/png" {
		t.Fatalf("png input must stay png, got %q", result.ContentType)
	}
}

func TestProcessRejectsNonImageData(t *testing.T) {
	p := NewImageProcessor(100)
	_, err := p.Process(context.Background(), Upload{
		Reader:      bytes.NewReader([]byte("definitely not an image")),
		Size:        23,
		FileName:    "junk.png",
		ContentType: "image/png",
	}, 100)
	if err == nil {
		t.Fatalf("expected error for undecodable data")
	}
}

func TestNormalizeContentType(t *testing.T) {
	cases := []struct {
		value, fileName, want string
	}{
		{"image/jpg", "photo.jpg", "image/jpeg"},
		{"IMAGE/PNG", "photo.png", "image/png"},
		{"", "photo.webp", "image/webp"},
		{"", "doc.unknownext", "application/octet-stream"},
	}
	for _, tc := range cases {
		if got := normalizeContentType(tc.value, tc.fileName); got != tc.want {
			t.Fatalf("normalizeContentType(%q, %q) = %q, want %q", tc.value, tc.fileName, got, tc.want)
		}
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage("image/png") || !IsImage(" IMAGE/JPEG ") {
		t.Fatalf("expected image content types to be recognized")
	}
	if IsImage("application/pdf") || IsImage("") {
		t.Fatalf("non-image content types must not be recognized")
	}
}
