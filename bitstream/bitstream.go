// Package bitstream stores the binary code of a digitized image as real
// bits: fields are packed MSB first and the container is zstd-compressed.
//
// Container layout before compression:
//
//	magic      [4]byte  "DGTZ"
//	version    uint8    1
//	resolution uint16   big endian, grid side R
//	levels     uint8    gradation count G
//	payload    []byte   ceil(R*R*log2(G)/8) packed bytes
package bitstream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/digitize"
)

// Container constants.
const (
	Magic   = "DGTZ"
	Version = 1

	headerSize = len(Magic) + 1 + 2 + 1

	// maxContainer is the size of the largest valid container: R=256, G=16.
	maxContainer = headerSize + (digitize.MaxResolution*digitize.MaxResolution*4+7)/8
)

// Sentinel errors for the bitstream package.
var (
	// ErrBadMagic is returned when a stream does not start with Magic.
	ErrBadMagic = errors.New("bitstream: bad magic")

	// ErrVersion is returned for containers written by a newer version.
	ErrVersion = errors.New("bitstream: unsupported version")

	// ErrTruncated is returned when the payload is shorter than the header announces.
	ErrTruncated = errors.New("bitstream: truncated payload")

	// ErrNotBinary is returned when Pack meets a character other than '0' or '1'.
	ErrNotBinary = errors.New("bitstream: not a binary string")

	// ErrTooLarge is returned when a stream decompresses past the largest
	// valid container.
	ErrTooLarge = errors.New("bitstream: container too large")
)

// Pack packs a string of '0' and '1' characters into bytes, most
// significant bit first. The last byte is zero-padded.
func Pack(bits string) ([]byte, error) {
	out := make([]byte, (len(bits)+7)/8)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			out[i/8] |= 0x80 >> (i % 8)
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrNotBinary, bits[i], i)
		}
	}
	return out, nil
}

// Unpack returns the first n bits of data as a string of '0' and '1'.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 || n > len(data)*8 {
		return "", fmt.Errorf("%w: %d bits from %d bytes", ErrTruncated, n, len(data))
	}
	buf := make([]byte, n)
	for i := range buf {
		if data[i/8]&(0x80>>(i%8)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf), nil
}

// Write encodes sel with palette p and writes the compressed container to w.
// It returns the number of compressed bytes written.
func Write(w io.Writer, sel *digitize.SelectionGrid, p digitize.Palette) (int64, error) {
	code, err := digitize.Encode(sel, p)
	if err != nil {
		return 0, err
	}
	payload, err := Pack(code)
	if err != nil {
		return 0, err
	}

	raw := make([]byte, headerSize, headerSize+len(payload))
	copy(raw, Magic)
	raw[4] = Version
	binary.BigEndian.PutUint16(raw[5:7], uint16(sel.Size()))
	raw[7] = uint8(p.Len())
	raw = append(raw, payload...)

	enc := encoderPool.Get().(*zstd.Encoder)
	defer encoderPool.Put(enc)
	compressed := enc.EncodeAll(raw, nil)

	n, err := w.Write(compressed)
	if err != nil {
		return int64(n), fmt.Errorf("bitstream: write: %w", err)
	}
	digitize.Logger().Info("bitstream: written",
		"resolution", sel.Size(), "levels", p.Len(),
		"bits", len(code), "packed", len(payload), "compressed", n)
	return int64(n), nil
}

// Read decompresses a container from r and returns the selection grid
// together with the palette it was coded with.
func Read(r io.Reader) (*digitize.SelectionGrid, digitize.Palette, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("bitstream: %w", err)
	}
	defer dec.Close()

	var raw bytes.Buffer
	if _, err := raw.ReadFrom(io.LimitReader(dec, int64(maxContainer)+1)); err != nil {
		return nil, nil, fmt.Errorf("bitstream: decompress: %w", err)
	}
	if raw.Len() > maxContainer {
		return nil, nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, maxContainer)
	}
	data := raw.Bytes()

	if len(data) < headerSize || string(data[:4]) != Magic {
		return nil, nil, ErrBadMagic
	}
	if data[4] != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrVersion, data[4])
	}
	res := int(binary.BigEndian.Uint16(data[5:7]))
	p, err := digitize.NewPalette(int(data[7]))
	if err != nil {
		return nil, nil, err
	}
	if err := digitize.ValidateResolution(res); err != nil {
		return nil, nil, err
	}

	code, err := Unpack(data[headerSize:], res*res*p.Bits())
	if err != nil {
		return nil, nil, err
	}
	sel, err := digitize.Decode(code, res, p)
	if err != nil {
		return nil, nil, err
	}
	return sel, p, nil
}
