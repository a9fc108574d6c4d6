package m3d

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Decode errors. Every failure unwinds the whole decode; there is no
// partial-result mode.
var (
	ErrInvalidMagic      = errors.New("invalid 3DS magic")
	ErrTruncatedData     = errors.New("truncated 3DS data")
	ErrChunkHeader       = errors.New("invalid 3DS chunk header")
	ErrChunkSizeMismatch = errors.New("3DS chunk size mismatch")
	ErrStringTooLong     = errors.New("unterminated 3DS string")
	ErrSmoothingGroup    = errors.New("invalid smoothing group value")
)

// maxStringLen caps name strings, terminator included.
const maxStringLen = 1024

// reader is a forward-only cursor over the raw file bytes. All multi-byte
// fields in a 3DS file are little-endian.
type reader struct {
	r *bytes.Reader
}

func newReader(data []byte) *reader {
	return &reader{r: bytes.NewReader(data)}
}

func (r *reader) readByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, ErrTruncatedData
	}
	return b, nil
}

func (r *reader) readUint16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, ErrTruncatedData
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (r *reader) readInt16() (int16, error) {
	v, err := r.readUint16()
	return int16(v), err
}

func (r *reader) readInt32() (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, ErrTruncatedData
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func (r *reader) readFloat32() (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, ErrTruncatedData
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

// readString reads a null-terminated string of at most maxStringLen bytes.
// It returns the string and the number of bytes consumed, terminator
// included; callers need the count for chunk byte accounting.
func (r *reader) readString() (string, int32, error) {
	var buf []byte
	for count := 0; count < maxStringLen; count++ {
		b, err := r.r.ReadByte()
		if err != nil {
			return "", 0, ErrTruncatedData
		}
		if b == 0 {
			return string(buf), int32(count + 1), nil
		}
		buf = append(buf, b)
	}
	return "", 0, ErrStringTooLong
}

// skip advances the cursor past n content bytes. Skipping past the end of
// the data is a failure: the bytes a chunk declares must actually exist.
func (r *reader) skip(n int32) error {
	if n < 0 || int64(n) > int64(r.r.Len()) {
		return ErrTruncatedData
	}
	if _, err := r.r.Seek(int64(n), io.SeekCurrent); err != nil {
		return ErrTruncatedData
	}
	return nil
}
