package imagemeta

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"server/internal/domain"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProbeReadsDimensionsAndSize(t *testing.T) {
	data := encodePNG(t, 120, 80)
	prober := NewProber(0)

	meta, err := prober.Probe("room.png", "interior_main", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
	if meta.Width != 120 || meta.Height != 80 {
		t.Fatalf("dimensions = %dx%d, want 120x80", meta.Width, meta.Height)
	}
	if meta.FileSizeBytes != int64(len(data)) {
		t.Fatalf("size = %d, want %d", meta.FileSizeBytes, len(data))
	}
	if meta.Slot != "interior_main" || meta.Filename != "room.png" {
		t.Fatalf("identity not carried through: %+v", meta)
	}
	if meta.QualityScore != nil {
		t.Fatal("prober must not score images")
	}
}

func TestProbeAcceptsJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 60, 40)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	meta, err := NewProber(0).Probe("a.jpg", "hero", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
	if meta.Width != 60 || meta.Height != 40 {
		t.Fatalf("dimensions = %dx%d, want 60x40", meta.Width, meta.Height)
	}
}

func TestProbeRejectsNonImage(t *testing.T) {
	_, err := NewProber(0).Probe("notes.txt", "hero", bytes.NewReader([]byte("plain text, not pixels")))
	if !errors.Is(err, domain.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestProbeRejectsOversizedFile(t *testing.T) {
	data := encodePNG(t, 400, 400)
	prober := NewProber(int64(len(data)) - 1)

	_, err := prober.Probe("big.png", "hero", bytes.NewReader(data))
	if !errors.Is(err, domain.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestProbeRejectsEmptyFile(t *testing.T) {
	_, err := NewProber(0).Probe("empty.png", "hero", bytes.NewReader(nil))
	if !errors.Is(err, domain.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestProbeRejectsTruncatedImage(t *testing.T) {
	data := encodePNG(t, 200, 200)
	_, err := NewProber(0).Probe("broken.png", "hero", bytes.NewReader(data[:40]))
	if !errors.Is(err, domain.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}
