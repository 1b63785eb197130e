// Package images prepares uploaded screenshots for vision extraction:
// decode, flatten transparency onto white, downscale to a maximum
// width and re-encode as JPEG.
package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log/slog"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"linkedopt/internal/errors"
)

const (
	// MaxWidth is the widest image sent to the vision model.
	MaxWidth = 1024
	// jpegQuality matches the quality the vision pipeline was tuned on.
	jpegQuality = 85
)

// Info describes a decoded image.
type Info struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Inspect decodes just the image header.
func Inspect(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, errors.NewValidationError(errors.ErrCodeInvalidImage, "could not read image", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Prepare decodes, flattens, downscales and re-encodes one image as
// JPEG bytes.
func Prepare(data []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = MaxWidth
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidImage, "could not decode image", err)
	}

	rgb := flatten(src)
	if rgb.Bounds().Dx() > maxWidth {
		rgb = downscale(rgb, maxWidth)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidImage, "could not encode image", err)
	}
	return buf.Bytes(), nil
}

// PrepareBase64 is Prepare with base64 output, the form the hosted
// vision APIs accept inline.
func PrepareBase64(data []byte, maxWidth int) (string, error) {
	jpg, err := Prepare(data, maxWidth)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jpg), nil
}

// File is one uploaded image.
type File struct {
	Name string
	Data []byte
}

// PrepareAll processes a batch in order, skipping images that fail
// rather than aborting the whole upload.
func PrepareAll(files []File, maxWidth int, logger *slog.Logger) []string {
	var out []string
	for _, f := range files {
		encoded, err := PrepareBase64(f.Data, maxWidth)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping image", "name", f.Name, "error", err)
			}
			continue
		}
		out = append(out, encoded)
	}
	return out
}

// flatten composites the image over a white background, dropping any
// alpha channel.
func flatten(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	return dst
}

// downscale resizes to maxWidth preserving aspect ratio.
func downscale(src *image.RGBA, maxWidth int) *image.RGBA {
	bounds := src.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
