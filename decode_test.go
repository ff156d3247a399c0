package tga

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestDecode_24Bit2x1(t *testing.T) {
	data := encodeTGA(testHeader(2, 1, 24), nil, []byte{10, 20, 30, 40, 50, 60})

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Width() != 2 || img.Height() != 1 {
		t.Errorf("Dimensions = (%d, %d), want (2, 1)", img.Width(), img.Height())
	}

	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(img.Pix(), want) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), want)
	}
}

func TestDecode_RLERejected(t *testing.T) {
	h := testHeader(2, 1, 24)
	h.ImageType = ImageTypeRLETrueColor
	data := encodeTGA(h, nil, []byte{10, 20, 30, 40, 50, 60})

	img, err := Decode(data)
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("Decode() error = %v, want ErrUnsupportedCompression", err)
	}
	if img != nil {
		t.Errorf("Decode() returned image %v on error", img)
	}
}

func TestDecode_24BitProperty(t *testing.T) {
	sizes := [][2]uint16{{1, 1}, {3, 1}, {1, 5}, {7, 3}, {16, 16}, {33, 2}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			n := int(w) * int(h)
			payload := patternPayload(n * 3)

			img, err := Decode(encodeTGA(testHeader(w, h, 24), nil, payload))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			pix := img.Pix()
			if len(pix) != n*4 {
				t.Fatalf("len(Pix()) = %d, want %d", len(pix), n*4)
			}
			for i := range n {
				if !bytes.Equal(pix[i*4:i*4+3], payload[i*3:i*3+3]) {
					t.Fatalf("pixel %d = %v, want %v", i, pix[i*4:i*4+3], payload[i*3:i*3+3])
				}
				if pix[i*4+3] != 255 {
					t.Fatalf("pixel %d alpha = %d, want 255", i, pix[i*4+3])
				}
			}
		})
	}
}

func TestDecode_32BitIdentity(t *testing.T) {
	sizes := [][2]uint16{{1, 1}, {2, 2}, {5, 3}, {64, 1}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			payload := patternPayload(int(w) * int(h) * 4)

			img, err := Decode(encodeTGA(testHeader(w, h, 32), nil, payload))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(img.Pix(), payload) {
				t.Errorf("Pix() differs from source payload")
			}
			if !img.HasAlpha() {
				t.Error("HasAlpha() = false, want true")
			}
		})
	}
}

func TestDecode_SkipsImageID(t *testing.T) {
	h := testHeader(1, 2, 24)
	h.IDSize = 4
	data := encodeTGA(h, []byte("abcd"), []byte{1, 2, 3, 4, 5, 6})

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	if !bytes.Equal(img.Pix(), want) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), want)
	}
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	data := encodeTGA(testHeader(1, 1, 32), nil, append(payload, []byte("TRUEVISION-XFILE.\x00")...))

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(img.Pix(), payload) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), payload)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	data := encodeTGA(testHeader(9, 4, 24), nil, patternPayload(9*4*3))

	a, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	b, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if a.Header() != b.Header() {
		t.Errorf("headers differ: %+v vs %+v", a.Header(), b.Header())
	}
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("pixel data differs between decodes")
	}
	if &a.Pix()[0] == &b.Pix()[0] {
		t.Error("decodes share pixel memory")
	}
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	data := encodeTGA(testHeader(1, 1, 32), nil, payload)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	data[HeaderSize] = 99
	if img.Pix()[0] != 1 {
		t.Errorf("Pix()[0] = %d after input change, want 1", img.Pix()[0])
	}
}

func TestDecode_ShortBufferFailsBeforeValidation(t *testing.T) {
	// The first bytes describe an RLE image; with a short buffer the
	// bounds failure still wins.
	full := encodeTGA(Header{ImageType: ImageTypeRLETrueColor, BitsPerPixel: 16}, nil, nil)

	for n := 0; n < HeaderSize; n++ {
		_, err := Decode(full[:n])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Decode(%d bytes) error = %v, want ErrOutOfBounds", n, err)
		}
		if errors.Is(err, ErrUnsupportedCompression) || errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("Decode(%d bytes) ran validation: %v", n, err)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data func() []byte
		want error
	}{
		{
			name: "RLE",
			data: func() []byte {
				h := testHeader(1, 1, 24)
				h.ImageType = ImageTypeRLETrueColor
				return encodeTGA(h, nil, []byte{1, 2, 3})
			},
			want: ErrUnsupportedCompression,
		},
		{
			name: "color map",
			data: func() []byte {
				h := testHeader(1, 1, 24)
				h.ColorMapType = 1
				return encodeTGA(h, nil, []byte{1, 2, 3})
			},
			want: ErrUnsupportedColorMap,
		},
		{
			name: "origin",
			data: func() []byte {
				h := testHeader(1, 1, 24)
				h.YOffset = 1
				return encodeTGA(h, nil, []byte{1, 2, 3})
			},
			want: ErrUnsupportedOrigin,
		},
		{
			name: "16-bit",
			data: func() []byte {
				return encodeTGA(testHeader(1, 1, 16), nil, []byte{1, 2})
			},
			want: ErrUnsupportedBitDepth,
		},
		{
			name: "32-bit without alpha",
			data: func() []byte {
				h := testHeader(1, 1, 32)
				h.Descriptor = 0
				return encodeTGA(h, nil, []byte{1, 2, 3, 4})
			},
			want: ErrUnsupportedAlphaDescriptor,
		},
		{
			name: "24-bit flipped",
			data: func() []byte {
				h := testHeader(1, 1, 24)
				h.Descriptor = DescriptorTopToBottom
				return encodeTGA(h, nil, []byte{1, 2, 3})
			},
			want: ErrUnsupportedDescriptor,
		},
		{
			name: "2x2 24-bit with 11 bytes",
			data: func() []byte {
				return encodeTGA(testHeader(2, 2, 24), nil, make([]byte, 11))
			},
			want: ErrTruncatedPixelData,
		},
		{
			name: "2x2 24-bit with no payload",
			data: func() []byte {
				return encodeTGA(testHeader(2, 2, 24), nil, nil)
			},
			want: ErrTruncatedPixelData,
		},
		{
			name: "image ID past end",
			data: func() []byte {
				h := testHeader(1, 1, 32)
				h.IDSize = 200
				return encodeTGA(h, nil, []byte{1, 2, 3, 4})
			},
			want: ErrTruncatedPixelData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}
			if img != nil {
				t.Error("Decode() returned a partial image")
			}
		})
	}
}

func TestDecode_MaxDimensionsTruncated(t *testing.T) {
	// 65535*65535*4 overflows a 32-bit int; the length check must still
	// report truncation instead of slicing past the buffer.
	for _, bpp := range []uint8{24, 32} {
		t.Run(fmt.Sprint(bpp), func(t *testing.T) {
			data := encodeTGA(testHeader(65535, 65535, bpp), nil, []byte{1, 2, 3, 4})

			img, err := Decode(data)
			if !errors.Is(err, ErrTruncatedPixelData) {
				t.Fatalf("Decode() error = %v, want ErrTruncatedPixelData", err)
			}
			if img != nil {
				t.Error("Decode() returned a partial image")
			}
		})
	}
}

func TestDecode_IDPastEndWithEmptyImage(t *testing.T) {
	h := testHeader(0, 0, 24)
	h.IDSize = 10
	if _, err := Decode(encodeTGA(h, nil, nil)); !errors.Is(err, ErrTruncatedPixelData) {
		t.Errorf("Decode() error = %v, want ErrTruncatedPixelData", err)
	}
}

func TestDecode_EmptyImage(t *testing.T) {
	img, err := Decode(encodeTGA(testHeader(0, 5, 24), nil, nil))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(img.Pix()) != 0 {
		t.Errorf("len(Pix()) = %d, want 0", len(img.Pix()))
	}
}

func TestDecoder_MaxPixels(t *testing.T) {
	data := encodeTGA(testHeader(4, 4, 24), nil, patternPayload(4*4*3))

	tests := []struct {
		limit int
		want  error
	}{
		{0, nil},
		{-1, nil},
		{16, nil},
		{15, ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.limit), func(t *testing.T) {
			_, err := NewDecoder(WithMaxPixels(tt.limit)).Decode(data)
			if tt.want == nil && err != nil {
				t.Fatalf("Decode() error = %v, want nil", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_Concurrent(t *testing.T) {
	data := encodeTGA(testHeader(8, 8, 24), nil, patternPayload(8*8*3))
	want, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	errs := make(chan error, 8)
	for range 8 {
		go func() {
			img, err := Decode(data)
			if err == nil && !bytes.Equal(img.Pix(), want.Pix()) {
				err = errors.New("pixel data differs")
			}
			errs <- err
		}()
	}
	for range 8 {
		if err := <-errs; err != nil {
			t.Error(err)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(encodeTGA(testHeader(2, 1, 24), nil, []byte{10, 20, 30, 40, 50, 60}))
	f.Add(encodeTGA(testHeader(1, 1, 32), nil, []byte{1, 2, 3, 4}))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		img, err := NewDecoder(WithMaxPixels(1 << 20)).Decode(data)
		if err != nil {
			if img != nil {
				t.Fatal("non-nil image with error")
			}
			return
		}
		if got, want := len(img.Pix()), img.Width()*img.Height()*4; got != want {
			t.Fatalf("len(Pix()) = %d, want %d", got, want)
		}
	})
}

func BenchmarkDecode24(b *testing.B) {
	data := encodeTGA(testHeader(512, 512, 24), nil, patternPayload(512*512*3))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode32(b *testing.B) {
	data := encodeTGA(testHeader(512, 512, 32), nil, patternPayload(512*512*4))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
