package pixel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.asNRGBA())
}

// EncodeBMP writes the pixmap to w in BMP format.
func (p *Pixmap) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, p.asNRGBA())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.save(path, p.EncodePNG)
}

// SaveBMP saves the pixmap to a BMP file.
func (p *Pixmap) SaveBMP(path string) error {
	return p.save(path, p.EncodeBMP)
}

func (p *Pixmap) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixel: create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f)
}

// LoadPNG loads a PNG file into a new pixmap.
func LoadPNG(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pixel: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pixel: decode png: %w", err)
	}
	return FromImage(img)
}

// Scale returns a new pixmap resampled to the given dimensions using
// bilinear interpolation. Returns an error when width or height is not
// positive.
func (p *Pixmap) Scale(width, height int) (*Pixmap, error) {
	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}
	xdraw.BiLinear.Scale(dst.asNRGBA(), image.Rect(0, 0, width, height),
		p.asNRGBA(), p.Bounds(), xdraw.Src, nil)
	return dst, nil
}
