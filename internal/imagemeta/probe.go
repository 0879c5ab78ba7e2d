package imagemeta

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"server/internal/domain"
	"server/internal/domain/slotcfg"

	"github.com/disintegration/imaging"
)

// DefaultMaxBytes is the per-file upload ceiling.
const DefaultMaxBytes = 15 << 20

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// Prober turns raw uploaded files into the technical metadata the validator
// judges. File-level failures (wrong type, oversized, undecodable) are
// returned as errors so the request can be rejected before validation runs.
type Prober struct {
	MaxBytes int64
}

func NewProber(maxBytes int64) *Prober {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Prober{MaxBytes: maxBytes}
}

// Probe reads one file and derives its metadata. slot is carried through
// untouched; the validator owns slot semantics.
func (p *Prober) Probe(filename, slot string, r io.Reader) (slotcfg.ImageMetadata, error) {
	var meta slotcfg.ImageMetadata

	data, err := io.ReadAll(io.LimitReader(r, p.MaxBytes+1))
	if err != nil {
		return meta, fmt.Errorf("read %s: %w", filename, err)
	}
	if int64(len(data)) > p.MaxBytes {
		return meta, fmt.Errorf("%w: %s exceeds %dMB", domain.ErrUnsupportedFile, filename, p.MaxBytes>>20)
	}
	if len(data) == 0 {
		return meta, fmt.Errorf("%w: %s is empty", domain.ErrUnsupportedFile, filename)
	}

	contentType := http.DetectContentType(data)
	if _, ok := allowedContentTypes[contentType]; !ok {
		return meta, fmt.Errorf("%w: %s has type %s, only JPEG and PNG are accepted", domain.ErrUnsupportedFile, filename, contentType)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return meta, fmt.Errorf("%w: %s could not be decoded", domain.ErrUnsupportedFile, filename)
	}
	bounds := img.Bounds()

	return slotcfg.ImageMetadata{
		Filename:      filename,
		Slot:          slot,
		FileSizeBytes: int64(len(data)),
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
	}, nil
}
