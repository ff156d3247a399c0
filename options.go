package tga

import (
	"log/slog"
	"slices"
	"strings"
)

// Decoder decodes TGA images with a fixed configuration.
// A Decoder holds no per-call state and is safe for concurrent use.
type Decoder struct {
	logger     *slog.Logger
	maxPixels  int
	extensions []string
}

// Option configures a Decoder.
//
// Example:
//
//	d := tga.NewDecoder(
//	    tga.WithMaxPixels(4096*4096),
//	    tga.WithLogger(slog.Default()),
//	)
//	img, err := d.Load("assets/brick.tga")
type Option func(*Decoder)

// NewDecoder returns a Decoder with the given options applied.
// With no options it accepts any image size and only the ".tga" extension,
// and logs through the package logger (see SetLogger).
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		extensions: []string{".tga"},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithLogger sets the logger used by Load. Decode itself never logs.
// A nil logger falls back to the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// WithMaxPixels rejects images whose width*height exceeds n with
// ErrImageTooLarge before any pixel memory is allocated.
// Zero or a negative value disables the limit.
func WithMaxPixels(n int) Option {
	return func(d *Decoder) {
		d.maxPixels = n
	}
}

// WithExtensions sets the file extensions accepted by Load.
// Extensions are matched case-insensitively and may be given with or
// without the leading dot.
func WithExtensions(exts ...string) Option {
	return func(d *Decoder) {
		d.extensions = nil
		for _, ext := range exts {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			d.extensions = append(d.extensions, ext)
		}
	}
}

func (d *Decoder) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return Logger()
}

func (d *Decoder) acceptsExt(ext string) bool {
	return slices.Contains(d.extensions, strings.ToLower(ext))
}
