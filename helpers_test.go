package tga

import "encoding/binary"

// testHeader returns a valid header for a width x height image at bpp.
func testHeader(width, height uint16, bpp uint8) Header {
	h := Header{
		ImageType:    ImageTypeTrueColor,
		Width:        width,
		Height:       height,
		BitsPerPixel: bpp,
	}
	if bpp == 32 {
		h.Descriptor = 8
	}
	return h
}

// encodeTGA serializes h followed by id and payload. IDSize is taken from h
// as is, so tests can declare a length that does not match id.
func encodeTGA(h Header, id, payload []byte) []byte {
	buf := make([]byte, HeaderSize, HeaderSize+len(id)+len(payload))
	buf[0] = h.IDSize
	buf[1] = h.ColorMapType
	buf[2] = uint8(h.ImageType)
	binary.LittleEndian.PutUint16(buf[3:], h.ColorMapStart)
	binary.LittleEndian.PutUint16(buf[5:], h.ColorMapLength)
	buf[7] = h.ColorMapBpp
	binary.LittleEndian.PutUint16(buf[8:], h.XOffset)
	binary.LittleEndian.PutUint16(buf[10:], h.YOffset)
	binary.LittleEndian.PutUint16(buf[12:], h.Width)
	binary.LittleEndian.PutUint16(buf[14:], h.Height)
	buf[16] = h.BitsPerPixel
	buf[17] = h.Descriptor
	buf = append(buf, id...)
	return append(buf, payload...)
}

// patternPayload returns n bytes with a repeating, position-dependent value.
func patternPayload(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}
	return p
}
