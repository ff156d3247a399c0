// Command tgaconv inspects TGA files and converts them to PNG or BMP.
//
// Usage:
//
//	tgaconv -in brick.tga -info
//	tgaconv -in brick.tga -out brick.png
//	tgaconv -in brick.tga -out brick.bmp -scale 0.5
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/tga"
)

func main() {
	var (
		in        = flag.String("in", "", "input .tga file")
		out       = flag.String("out", "", "output file (.png or .bmp)")
		scale     = flag.Float64("scale", 1, "resize factor applied before writing")
		info      = flag.Bool("info", false, "print the file header")
		maxPixels = flag.Int("max-pixels", 0, "reject images with more pixels (0 = no limit)")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(*verbose),
	}))
	tga.SetLogger(logger)

	d := tga.NewDecoder(tga.WithMaxPixels(*maxPixels))
	img, err := d.Load(*in)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	if *info {
		printHeader(img.Header())
	}

	if *out == "" {
		return
	}

	if err := convert(img, *out, *scale); err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}
	logger.Info("converted", "in", *in, "out", *out, "width", img.Width(), "height", img.Height())
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func printHeader(h tga.Header) {
	fmt.Printf("Image type:\t%d (%v)\n", uint8(h.ImageType), h.ImageType)
	fmt.Printf("Size:\t\t%dx%d px\n", h.Width, h.Height)
	fmt.Printf("Bits/pixel:\t%d\n", h.BitsPerPixel)
	fmt.Printf("Alpha bits:\t%d\n", h.AlphaBits())
	fmt.Printf("Descriptor:\t%#02x\n", h.Descriptor)
	fmt.Printf("ID length:\t%d bytes\n", h.IDSize)
	fmt.Printf("Pixel offset:\t%d bytes\n", h.PixelDataOffset())
	fmt.Printf("Payload:\t%d bytes\n", h.PayloadLength())
}

func convert(img *tga.Image, path string, scale float64) error {
	var src image.Image = img.ToNRGBA()
	if scale != 1 {
		w := int(float64(img.Width())*scale + 0.5)
		h := int(float64(img.Height())*scale + 0.5)
		scaled, err := img.Scale(w, h)
		if err != nil {
			return err
		}
		src = scaled
	}
	return tga.SaveImage(path, src)
}
