package tga

import (
	"fmt"

	"github.com/gogpu/tga/internal/extract"
)

// HeaderSize is the size in bytes of the fixed TGA header.
const HeaderSize = 18

// Descriptor byte layout.
const (
	// DescriptorAlphaMask selects the alpha channel bit count.
	DescriptorAlphaMask = 0x0f

	// DescriptorRightToLeft is set when pixels are stored right to left.
	DescriptorRightToLeft = 0x10

	// DescriptorTopToBottom is set when rows are stored top to bottom.
	DescriptorTopToBottom = 0x20
)

// ImageType is the TGA image type code.
type ImageType uint8

// Image type codes defined by the TGA format. Only ImageTypeTrueColor is
// decoded.
const (
	ImageTypeNoData         ImageType = 0
	ImageTypeColorMapped    ImageType = 1
	ImageTypeTrueColor      ImageType = 2
	ImageTypeGrayscale      ImageType = 3
	ImageTypeRLEColorMapped ImageType = 9
	ImageTypeRLETrueColor   ImageType = 10
	ImageTypeRLEGrayscale   ImageType = 11
)

// String returns a short description of the image type.
func (t ImageType) String() string {
	switch t {
	case ImageTypeNoData:
		return "no image data"
	case ImageTypeColorMapped:
		return "uncompressed color-mapped"
	case ImageTypeTrueColor:
		return "uncompressed true-color"
	case ImageTypeGrayscale:
		return "uncompressed grayscale"
	case ImageTypeRLEColorMapped:
		return "RLE color-mapped"
	case ImageTypeRLETrueColor:
		return "RLE true-color"
	case ImageTypeRLEGrayscale:
		return "RLE grayscale"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(t))
	}
}

// Header is the fixed 18-byte TGA file header. Fields are listed in file
// order.
type Header struct {
	IDSize         uint8 // length of the image ID block following the header
	ColorMapType   uint8
	ImageType      ImageType
	ColorMapStart  uint16
	ColorMapLength uint16
	ColorMapBpp    uint8
	XOffset        uint16
	YOffset        uint16
	Width          uint16
	Height         uint16
	BitsPerPixel   uint8
	Descriptor     uint8
}

// fieldReader reads header fields in sequence and keeps the first error.
type fieldReader struct {
	e   *extract.Extractor
	err error
}

func (r *fieldReader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	var v uint8
	v, r.err = r.e.Uint8()
	return v
}

func (r *fieldReader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	var v uint16
	v, r.err = r.e.Uint16()
	return v
}

// ParseHeader reads the header fields from the start of data.
// It does not validate them; see Header.Validate.
func ParseHeader(data []byte) (Header, error) {
	return readHeader(extract.New(data))
}

func readHeader(e *extract.Extractor) (Header, error) {
	r := &fieldReader{e: e}

	// Each assignment is one read, in file order.
	var h Header
	h.IDSize = r.u8()
	h.ColorMapType = r.u8()
	h.ImageType = ImageType(r.u8())
	h.ColorMapStart = r.u16()
	h.ColorMapLength = r.u16()
	h.ColorMapBpp = r.u8()
	h.XOffset = r.u16()
	h.YOffset = r.u16()
	h.Width = r.u16()
	h.Height = r.u16()
	h.BitsPerPixel = r.u8()
	h.Descriptor = r.u8()

	if r.err != nil {
		return Header{}, fmt.Errorf("tga: read header: %w", r.err)
	}
	return h, nil
}

// Validate checks the header against the supported subset and returns the
// first violation found.
func (h Header) Validate() error {
	if h.ImageType != ImageTypeTrueColor {
		return fmt.Errorf("%w: %v", ErrUnsupportedCompression, h.ImageType)
	}
	if h.ColorMapType != 0 {
		return fmt.Errorf("%w: color map type %d", ErrUnsupportedColorMap, h.ColorMapType)
	}
	if h.XOffset != 0 || h.YOffset != 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrUnsupportedOrigin, h.XOffset, h.YOffset)
	}
	if h.BitsPerPixel != 24 && h.BitsPerPixel != 32 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, h.BitsPerPixel)
	}
	if h.BitsPerPixel == 32 {
		if h.AlphaBits() != 8 {
			return fmt.Errorf("%w: descriptor %#02x", ErrUnsupportedAlphaDescriptor, h.Descriptor)
		}
	} else if h.Descriptor != 0 {
		return fmt.Errorf("%w: descriptor %#02x", ErrUnsupportedDescriptor, h.Descriptor)
	}
	return nil
}

// AlphaBits returns the alpha bit count encoded in the descriptor.
func (h Header) AlphaBits() int {
	return int(h.Descriptor & DescriptorAlphaMask)
}

// BytesPerPixel returns the number of source bytes per pixel.
func (h Header) BytesPerPixel() int {
	return int(h.BitsPerPixel) / 8
}

// PixelDataOffset returns the byte offset of the pixel payload.
func (h Header) PixelDataOffset() int {
	return HeaderSize + int(h.IDSize)
}

// PixelCount returns width * height. The product of two 16-bit dimensions
// does not fit a 32-bit int, so it is returned as uint64.
func (h Header) PixelCount() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// PayloadLength returns the number of pixel bytes the header declares.
func (h Header) PayloadLength() uint64 {
	return h.PixelCount() * uint64(h.BytesPerPixel()) //nolint:gosec // at most 4
}

// String returns a one-line summary of the header.
func (h Header) String() string {
	return fmt.Sprintf("%dx%d %d-bit %v (id %d bytes, descriptor %#02x)",
		h.Width, h.Height, h.BitsPerPixel, h.ImageType, h.IDSize, h.Descriptor)
}
