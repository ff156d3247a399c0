package tga

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// LoadFile reads and decodes the TGA file at path using the default
// Decoder. Files without a ".tga" extension are rejected with
// ErrUnsupportedExtension before they are opened.
func LoadFile(path string) (*Image, error) {
	return defaultDecoder.Load(path)
}

// DecodeReader reads r to the end and decodes the result.
func DecodeReader(r io.Reader) (*Image, error) {
	return defaultDecoder.DecodeReader(r)
}

// Load reads and decodes the file at path. The extension is checked against
// the accepted list (see WithExtensions) before the file is opened.
func (d *Decoder) Load(path string) (*Image, error) {
	ext := filepath.Ext(path)
	if !d.acceptsExt(ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, strings.ToLower(ext))
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("tga: read file: %w", err)
	}

	img, err := d.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	d.log().Debug("tga: loaded image",
		"path", path,
		"width", img.Width(),
		"height", img.Height(),
		"bpp", img.header.BitsPerPixel,
		"bytes", len(data))
	return img, nil
}

// DecodeReader reads r to the end and decodes the result.
func (d *Decoder) DecodeReader(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tga: read: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return d.Decode(data)
}

// EncodePNG writes the image as PNG to w.
func (m *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, m.ToNRGBA()); err != nil {
		return fmt.Errorf("tga: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes the image as BMP to w. Fully opaque images are written
// as 24-bit BMP, all others as 32-bit.
func (m *Image) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, m.ToNRGBA()); err != nil {
		return fmt.Errorf("tga: encode BMP: %w", err)
	}
	return nil
}

// SavePNG writes the image as a PNG file.
func (m *Image) SavePNG(path string) error {
	return saveFile(path, m.EncodePNG)
}

// SaveBMP writes the image as a BMP file.
func (m *Image) SaveBMP(path string) error {
	return saveFile(path, m.EncodeBMP)
}

// EncodeToBytes encodes the image to PNG and returns the bytes.
func (m *Image) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scale returns a resampled copy of the image at the given size using
// Catmull-Rom interpolation. The source image is not changed.
func (m *Image) Scale(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tga: invalid scale size %dx%d", width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), m.ToNRGBA(), m.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// SaveImage writes src to path, choosing PNG or BMP from the extension.
// Other extensions fail with ErrUnsupportedExtension before the file is
// created. A file left incomplete by an encoding error is removed.
func SaveImage(path string, src image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	return saveFile(path, func(w io.Writer) error {
		if err := encode(w, src); err != nil {
			return fmt.Errorf("tga: encode %s: %w", filepath.Base(path), err)
		}
		return nil
	})
}

func saveFile(path string, encode func(io.Writer) error) error {
	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tga: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	return f.Close()
}
