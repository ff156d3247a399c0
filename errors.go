package tga

import (
	"errors"

	"github.com/gogpu/tga/internal/extract"
)

// Decode errors. Every failure returned by Decode wraps exactly one of
// these, so callers can match with errors.Is.
var (
	// ErrOutOfBounds is returned when the header runs past the end of the
	// input buffer.
	ErrOutOfBounds = extract.ErrOutOfBounds

	// ErrUnsupportedCompression is returned for any image type other than
	// uncompressed true-color (type 2).
	ErrUnsupportedCompression = errors.New("tga: unsupported image type")

	// ErrUnsupportedColorMap is returned when the image carries a color map.
	ErrUnsupportedColorMap = errors.New("tga: color-mapped images are not supported")

	// ErrUnsupportedOrigin is returned when either origin offset is non-zero.
	ErrUnsupportedOrigin = errors.New("tga: non-zero image origin is not supported")

	// ErrUnsupportedBitDepth is returned for bit depths other than 24 and 32.
	ErrUnsupportedBitDepth = errors.New("tga: unsupported bit depth")

	// ErrUnsupportedAlphaDescriptor is returned for 32-bit images whose
	// descriptor does not declare 8 alpha bits.
	ErrUnsupportedAlphaDescriptor = errors.New("tga: 32-bit images must have 8 alpha bits")

	// ErrUnsupportedDescriptor is returned for 24-bit images with a
	// non-zero descriptor.
	ErrUnsupportedDescriptor = errors.New("tga: 24-bit images must have a zero descriptor")

	// ErrTruncatedPixelData is returned when the buffer holds fewer pixel
	// bytes than the header declares.
	ErrTruncatedPixelData = errors.New("tga: truncated pixel data")
)

// Loader errors.
var (
	// ErrImageTooLarge is returned when the declared pixel count exceeds the
	// limit set with WithMaxPixels.
	ErrImageTooLarge = errors.New("tga: image too large")

	// ErrUnsupportedExtension is returned by Load for files whose extension
	// is not accepted.
	ErrUnsupportedExtension = errors.New("tga: unsupported file extension")

	// ErrEmptyData is returned when there is no input at all.
	ErrEmptyData = errors.New("tga: empty data")
)
