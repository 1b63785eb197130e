package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid JPEG: %v", err)
	}
	return img
}

func TestInspect(t *testing.T) {
	info, err := Inspect(pngBytes(t, 120, 80, color.White))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Format != "png" || info.Width != 120 || info.Height != 80 {
		t.Errorf("unexpected info: %+v", info)
	}

	if _, err := Inspect([]byte("not an image")); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestPrepareKeepsSmallImages(t *testing.T) {
	out, err := Prepare(pngBytes(t, 200, 100, color.White), MaxWidth)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	img := decodeJPEG(t, out)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("dimensions changed: %v", img.Bounds())
	}
}

func TestPrepareDownscalesWideImages(t *testing.T) {
	out, err := Prepare(pngBytes(t, 2048, 1000, color.White), MaxWidth)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	img := decodeJPEG(t, out)
	if img.Bounds().Dx() != MaxWidth {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), MaxWidth)
	}
	if img.Bounds().Dy() != 500 {
		t.Errorf("height = %d, want 500 to keep the aspect ratio", img.Bounds().Dy())
	}
}

func TestPrepareFlattensTransparency(t *testing.T) {
	out, err := Prepare(pngBytes(t, 10, 10, color.NRGBA{0, 0, 0, 0}), MaxWidth)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	img := decodeJPEG(t, out)
	r, g, b, _ := img.At(5, 5).RGBA()
	// fully transparent pixels composite to white
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("transparent pixel became %v, want near-white", img.At(5, 5))
	}
}

func TestPrepareRejectsGarbage(t *testing.T) {
	if _, err := Prepare([]byte("garbage"), MaxWidth); err == nil {
		t.Error("expected decode error")
	}
}

func TestPrepareBase64(t *testing.T) {
	encoded, err := PrepareBase64(pngBytes(t, 10, 10, color.White), MaxWidth)
	if err != nil {
		t.Fatalf("PrepareBase64: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	decodeJPEG(t, raw)
}

func TestPrepareAllSkipsFailures(t *testing.T) {
	files := []File{
		{Name: "good.png", Data: pngBytes(t, 10, 10, color.White)},
		{Name: "bad.bin", Data: []byte("junk")},
		{Name: "also-good.png", Data: pngBytes(t, 10, 10, color.Black)},
	}
	out := PrepareAll(files, MaxWidth, nil)
	if len(out) != 2 {
		t.Errorf("got %d images, want 2", len(out))
	}
}
