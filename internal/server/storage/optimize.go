// Package storage keeps recipe pictures in S3-compatible object storage and
// normalises uploads before they are stored.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// Upload normalisation parameters.
const (
	MaxPictureWidth = 1290
	JPEGQuality     = 60
)

// ErrNotImage is returned for uploads that do not decode as JPEG or PNG.
var ErrNotImage = errors.New("not an image")

// Optimize decodes a JPEG or PNG, scales it down to MaxPictureWidth keeping
// the aspect ratio and re-encodes it as JPEG at JPEGQuality.
func Optimize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	if img.Bounds().Dx() > MaxPictureWidth {
		img = resize.Resize(MaxPictureWidth, 0, img, resize.Lanczos3)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Bytes(), nil
}
