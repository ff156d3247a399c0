package tga

import (
	"image"
	"image/color"
)

// BytesPerPixel is the pixel size of every decoded image.
const BytesPerPixel = 4

// Image is a decoded TGA image.
//
// Pixels are tightly packed, 4 bytes each, in blue, green, red, alpha
// order. This matches BGRA8 texture formats directly. Use RGBABytes or
// ToNRGBA when a consumer expects red first.
//
// Image implements image.Image. It is not modified after Decode returns
// and is safe for concurrent reads.
type Image struct {
	header Header
	width  int
	height int
	pix    []byte
}

// Header returns the parsed file header.
func (m *Image) Header() Header {
	return m.header
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Stride returns the number of bytes per row.
func (m *Image) Stride() int {
	return m.width * BytesPerPixel
}

// Pix returns the BGRA pixel data. The slice is shared with the Image and
// must not be modified.
func (m *Image) Pix() []byte {
	return m.pix
}

// HasAlpha reports whether the source image carried an alpha channel.
func (m *Image) HasAlpha() bool {
	return m.header.BitsPerPixel == 32
}

// PixelOffset returns the byte offset of pixel (x, y) in Pix.
// Returns -1 if the coordinates are out of bounds.
func (m *Image) PixelOffset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return -1
	}
	return y*m.Stride() + x*BytesPerPixel
}

// BGRA returns the channels of pixel (x, y) in storage order.
// Out-of-bounds coordinates return all zeros.
func (m *Image) BGRA(x, y int) (b, g, r, a uint8) {
	off := m.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := m.pix[off : off+4]
	return p[0], p[1], p[2], p[3]
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	b, g, r, a := m.BGRA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBABytes returns a copy of the pixel data with red and blue swapped.
//
// Decode keeps the file's blue-first order because BGRA textures consume it
// as is. Consumers that expect red first must go through this swizzle.
func (m *Image) RGBABytes() []byte {
	out := make([]byte, len(m.pix))
	for i := 0; i+3 < len(m.pix); i += 4 {
		out[i] = m.pix[i+2]
		out[i+1] = m.pix[i+1]
		out[i+2] = m.pix[i]
		out[i+3] = m.pix[i+3]
	}
	return out
}

// ToNRGBA converts the image to a standard library *image.NRGBA.
func (m *Image) ToNRGBA() *image.NRGBA {
	nrgba := &image.NRGBA{
		Pix:    m.RGBABytes(),
		Stride: m.Stride(),
		Rect:   m.Bounds(),
	}
	return nrgba
}
