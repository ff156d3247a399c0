package tga

import (
	"fmt"
	"math"

	"github.com/gogpu/tga/internal/extract"
)

// defaultDecoder backs the package-level functions.
var defaultDecoder = NewDecoder()

// Decode decodes a TGA file held in memory.
//
// Only uncompressed true-color images without a color map, with a zero
// origin and a bit depth of 24 or 32 are accepted. The result always has
// 4 bytes per pixel in blue, green, red, alpha order; 24-bit images get an
// opaque alpha channel. Rows are returned in file order.
//
// Decode does not retain data and does not modify it. Failures wrap one of
// the Err* values of this package.
func Decode(data []byte) (*Image, error) {
	return defaultDecoder.Decode(data)
}

// Decode decodes a TGA file held in memory. See the package-level Decode.
func (d *Decoder) Decode(data []byte) (*Image, error) {
	e := extract.New(data)

	h, err := readHeader(e)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if d.maxPixels > 0 && h.PixelCount() > uint64(d.maxPixels) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrImageTooLarge, h.Width, h.Height, d.maxPixels)
	}

	start := h.PixelDataOffset()
	length := h.PayloadLength()
	var avail uint64
	if start < len(data) {
		avail = uint64(len(data) - start)
	}
	if start > len(data) || avail < length {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncatedPixelData, length, start, avail)
	}

	// The payload fits in data, but the expanded 24-bit output may not fit
	// an int on 32-bit platforms.
	if h.PixelCount() > uint64(math.MaxInt/BytesPerPixel) {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, h.Width, h.Height)
	}

	return &Image{
		header: h,
		width:  int(h.Width),
		height: int(h.Height),
		pix:    normalize(h, data[start:start+int(length)]),
	}, nil
}

// normalize expands a validated payload to 4 bytes per pixel.
// Channel order is kept as stored.
func normalize(h Header, payload []byte) []byte {
	width, height := int(h.Width), int(h.Height)
	out := make([]byte, width*height*4)

	if h.BitsPerPixel == 32 {
		copy(out, payload)
		return out
	}

	for y := range height {
		for x := range width {
			i := y*width + x
			src := payload[i*3 : i*3+3]
			dst := out[i*4 : i*4+4]
			dst[0] = src[0]
			dst[1] = src[1]
			dst[2] = src[2]
			dst[3] = 255
		}
	}
	return out
}
