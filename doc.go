// Package tga decodes Truevision Targa (TGA) images for texture upload.
//
// # Overview
//
// tga reads the subset of TGA used for game and tutorial assets:
// uncompressed true-color images (image type 2) at 24 or 32 bits per pixel,
// with no color map and a zero origin. Every decoded image has the same
// layout, 4 bytes per pixel in blue, green, red, alpha order, so it can be
// copied straight into a BGRA8 texture.
//
// # Quick Start
//
//	import "github.com/gogpu/tga"
//
//	data, _ := os.ReadFile("brick.tga")
//	img, err := tga.Decode(data)
//	if err != nil {
//	    return err
//	}
//	upload(img.Width(), img.Height(), img.Pix())
//
// # Errors
//
// Decode reports every rejected input with an error wrapping one of the
// package's Err* values, for example ErrUnsupportedCompression for RLE
// files or ErrTruncatedPixelData for short payloads. Partial results are
// never returned.
//
// # Channel Order
//
// Pixel data stays in the file's blue-first order. 24-bit images gain an
// alpha byte of 255. Use Image.RGBABytes or Image.ToNRGBA for consumers
// that expect red first.
//
// # Related Packages
//
//   - texture: GPU texture descriptors and uploads for decoded images
//   - cmd/tgaconv: command line inspector and PNG/BMP converter
package tga
