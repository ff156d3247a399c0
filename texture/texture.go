// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tga"
)

// Errors returned by this package.
var (
	// ErrUnsupportedFormat is returned when a texture format cannot be fed
	// from 8-bit BGRA pixels.
	ErrUnsupportedFormat = errors.New("texture: unsupported texture format")

	// ErrNilImage is returned when no image is given.
	ErrNilImage = errors.New("texture: nil image")

	// ErrNoCreator is returned when NewFromImage gets a nil creator.
	ErrNoCreator = errors.New("texture: nil texture creator")

	// ErrEmptyImage is returned for images with zero width or height.
	// GPU textures must be at least 1x1.
	ErrEmptyImage = errors.New("texture: empty image")
)

// Format is the native texture format of decoded images.
const Format = gputypes.TextureFormatBGRA8Unorm

// Descriptor describes a 2D texture for a decoded image.
type Descriptor struct {
	// Label is an optional debug name.
	Label string

	// Size is the texture dimensions.
	Size gputypes.Extent3D

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32

	// SampleCount is the number of samples per pixel.
	SampleCount uint32

	// Dimension is always 2D for images.
	Dimension gputypes.TextureDimension

	// Format is the texel format.
	Format gputypes.TextureFormat

	// Usage allows sampling and copy-in.
	Usage gputypes.TextureUsage
}

// Layout describes how pixel bytes are arranged in the upload buffer.
type Layout struct {
	Offset       uint64
	BytesPerRow  uint32
	RowsPerImage uint32
}

// Queue writes pixel data into a texture. It is implemented by thin
// adapters over a device queue.
type Queue interface {
	WriteTexture(desc *Descriptor, data []byte, layout *Layout) error
}

// NewDescriptor returns the descriptor of a sampled BGRA8 texture matching
// img.
func NewDescriptor(label string, img *tga.Image) (*Descriptor, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	return &Descriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              uint32(img.Width()),  //nolint:gosec // TGA dimensions are 16-bit
			Height:             uint32(img.Height()), //nolint:gosec // TGA dimensions are 16-bit
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        Format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}, nil
}

// NewLayout returns the upload layout of img's pixel data.
func NewLayout(img *tga.Image) *Layout {
	return &Layout{
		Offset:       0,
		BytesPerRow:  uint32(img.Stride()), //nolint:gosec // at most 65535*4
		RowsPerImage: uint32(img.Height()), //nolint:gosec // TGA dimensions are 16-bit
	}
}

// Pixels returns img's pixel data arranged for format.
//
// BGRA8Unorm returns the decoded data without copying. RGBA8Unorm returns
// a copy with red and blue swapped. Any other format fails with
// ErrUnsupportedFormat.
func Pixels(img *tga.Image, format gputypes.TextureFormat) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	switch format {
	case gputypes.TextureFormatBGRA8Unorm:
		return img.Pix(), nil
	case gputypes.TextureFormatRGBA8Unorm:
		return img.RGBABytes(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// Upload writes img into a new BGRA8 texture through q and returns the
// descriptor used.
func Upload(q Queue, label string, img *tga.Image) (*Descriptor, error) {
	desc, err := NewDescriptor(label, img)
	if err != nil {
		return nil, err
	}
	if err := q.WriteTexture(desc, img.Pix(), NewLayout(img)); err != nil {
		return nil, fmt.Errorf("texture: write %q: %w", label, err)
	}

	tga.Logger().Debug("texture: uploaded image",
		"label", label,
		"width", desc.Size.Width,
		"height", desc.Size.Height,
		"format", "BGRA8Unorm")
	return desc, nil
}

// NewFromImage creates a texture through a gpucontext creator.
// TextureCreator takes red-first data, so the pixels are swizzled first.
func NewFromImage(creator gpucontext.TextureCreator, img *tga.Image) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, ErrNoCreator
	}
	if err := checkImage(img); err != nil {
		return nil, err
	}

	tex, err := creator.NewTextureFromRGBA(img.Width(), img.Height(), img.RGBABytes())
	if err != nil {
		return nil, fmt.Errorf("texture: NewTextureFromRGBA failed: %w", err)
	}

	tga.Logger().Debug("texture: created from image",
		"width", img.Width(),
		"height", img.Height())
	return tex, nil
}

func checkImage(img *tga.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if img.Width() == 0 || img.Height() == 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, img.Width(), img.Height())
	}
	return nil
}
