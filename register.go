package tga

import (
	"image"
	"image/color"
	"io"
)

// magic matches the supported subset: any ID length, no color map,
// uncompressed true-color. TGA has no signature of its own.
const magic = "?\x00\x02"

func init() {
	image.RegisterFormat("tga", magic, decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, err := DecodeReader(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeConfig returns the color model and dimensions of a TGA image
// without decoding its pixels. The header is validated as in Decode.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return image.Config{}, err
	}

	h, err := ParseHeader(buf[:n])
	if err != nil {
		return image.Config{}, err
	}
	if err := h.Validate(); err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}
