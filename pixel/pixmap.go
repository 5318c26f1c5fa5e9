// Package pixel provides an RGBA pixel buffer backed by a grid view.
//
// A Pixmap stores non-premultiplied RGBA bytes in a flat slice and
// addresses scanlines through grid.Grid: each grid row is one scanline of
// width*4 bytes. The package exists both as a ready-made image type and as
// a worked example of embedding a grid view in a larger structure.
package pixel

import (
	"image"
	"image/color"

	"github.com/gogpu/grid"
)

// bytesPerPixel is the size of one RGBA pixel.
const bytesPerPixel = 4

// Pixmap is a rectangular buffer of non-premultiplied RGBA pixels.
//
// Thread safety: Pixmap is safe for concurrent reads. Writes require
// external synchronization.
type Pixmap struct {
	width  int
	height int
	g      *grid.Grid[uint8]
}

// New creates a pixmap with the given dimensions, all pixels transparent.
// Returns an error when width or height is not positive.
func New(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, &grid.ShapeError{Rows: height, Cols: width * bytesPerPixel}
	}
	g, err := grid.New(make([]uint8, width*height*bytesPerPixel), height, width*bytesPerPixel)
	if err != nil {
		return nil, err
	}
	return &Pixmap{width: width, height: height, g: g}, nil
}

// FromRaw wraps existing RGBA data without copying. data must hold exactly
// width*height*4 bytes; writes through the pixmap are visible to the caller.
func FromRaw(data []uint8, width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, &grid.ShapeError{BufferLen: len(data), Rows: height, Cols: width * bytesPerPixel}
	}
	g, err := grid.New(data, height, width*bytesPerPixel)
	if err != nil {
		return nil, err
	}
	return &Pixmap{width: width, height: height, g: g}, nil
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw RGBA data in row-major scanline order.
func (p *Pixmap) Data() []uint8 { return p.g.Data() }

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	row := p.g.MustRow(y)
	i := x * bytesPerPixel
	row[i+0] = c.R
	row[i+1] = c.G
	row[i+2] = c.B
	row[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return the zero (transparent) color.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	row := p.g.MustRow(y)
	i := x * bytesPerPixel
	return color.NRGBA{R: row[i+0], G: row[i+1], B: row[i+2], A: row[i+3]}
}

// Row returns scanline y as a zero-copy byte slice of width*4 bytes.
// Returns grid.ErrRowOutOfRange when y is outside the pixmap.
func (p *Pixmap) Row(y int) ([]uint8, error) {
	return p.g.Row(y)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	data := p.g.Data()
	for i := 0; i < len(data); i += bytesPerPixel {
		data[i+0] = c.R
		data[i+1] = c.G
		data[i+2] = c.B
		data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.NRGBA, copying the pixels.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.g.Data())
	return img
}

// asNRGBA wraps the pixmap's data in an image.NRGBA header without copying.
func (p *Pixmap) asNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.g.Data(),
		Stride: p.width * bytesPerPixel,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from an image, copying the pixels.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetPixel(x, y, c)
		}
	}
	return pm, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
