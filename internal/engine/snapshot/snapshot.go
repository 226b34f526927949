// Package snapshot saves rendered frames as PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer names and writes snapshot files into one directory.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewWriter creates a writer. An empty dir means the working directory.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next snapshot of the given model will use.
func (w *Writer) Filename(model string) string {
	name := fmt.Sprintf("%s_%s_%s.png", w.prefix, model, w.now().Format("2006-01-02_15-04-05.000"))
	if w.dir != "" {
		name = filepath.Join(w.dir, name)
	}
	return name
}

// FromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save encodes img and returns the written path.
func (w *Writer) Save(img image.Image, model string) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := w.Filename(model)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}
