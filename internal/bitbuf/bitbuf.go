// Package bitbuf implements the little-endian growable buffer and the
// coordinate/float24 codecs shared by the flat icon formats.
package bitbuf

import (
	"encoding/binary"
	"errors"

	"github.com/chewxy/math32"
)

// ErrTruncated is returned by any Read* call that would run past the end
// of the buffer.
var ErrTruncated = errors.New("bitbuf: truncated")

const initialCapacity = 64

// Buffer is a growable little-endian byte buffer with an independent
// write cursor (append-only) and read cursor (sequential). A zero value
// is ready to use for writing; use NewReader to wrap existing bytes for
// reading.
type Buffer struct {
	data []byte
	pos  int
}

// New returns an empty Buffer ready for writing.
func New() *Buffer {
	return &Buffer{data: make([]byte, 0, initialCapacity)}
}

// NewReader wraps buf for sequential reading; buf is not copied.
func NewReader(buf []byte) *Buffer {
	return &Buffer{data: buf}
}

// Bytes returns the accumulated bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written (or, for a reader, the total size).
func (b *Buffer) Len() int {
	return len(b.data)
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Reset clears written data and rewinds the read cursor.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.pos = 0
}

// Skip advances the read cursor by n bytes without decoding them.
func (b *Buffer) Skip(n int) error {
	if b.Remaining() < n {
		return ErrTruncated
	}
	b.pos += n
	return nil
}

// WriteBuffer appends the full contents of other, as the original format's
// command-buffer-then-point-buffer concatenation does.
func (b *Buffer) WriteBuffer(other *Buffer) {
	b.data = append(b.data, other.data...)
}

// WriteU8 appends a single byte.
func (b *Buffer) WriteU8(v uint8) {
	b.data = append(b.data, v)
}

// WriteU16 appends a little-endian uint16.
func (b *Buffer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// WriteU32 appends a little-endian uint32.
func (b *Buffer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// WriteF32 appends a raw little-endian IEEE-754 single (not the 3-byte
// float24 encoding — used for the top-level section counts only when
// callers need a raw float, which the flat format otherwise never does).
func (b *Buffer) WriteF32(v float32) {
	b.WriteU32(math32.Float32bits(v))
}

// ReadU8 reads one byte.
func (b *Buffer) ReadU8() (uint8, error) {
	if b.Remaining() < 1 {
		return 0, ErrTruncated
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// ReadU16 reads a little-endian uint16.
func (b *Buffer) ReadU16() (uint16, error) {
	if b.Remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint16(b.data[b.pos:])
	b.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (b *Buffer) ReadU32() (uint32, error) {
	if b.Remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(b.data[b.pos:])
	b.pos += 4
	return v, nil
}

// ReadF32 reads a raw little-endian IEEE-754 single.
func (b *Buffer) ReadF32() (float32, error) {
	v, err := b.ReadU32()
	if err != nil {
		return 0, err
	}
	return math32.Float32frombits(v), nil
}

// ReadBytes reads n raw bytes and returns them wrapped in a fresh reader
// Buffer, mirroring LittleEndianBuffer::Read(LittleEndianBuffer&, size_t).
func (b *Buffer) ReadBytes(n int) (*Buffer, error) {
	if b.Remaining() < n {
		return nil, ErrTruncated
	}
	sub := b.data[b.pos : b.pos+n]
	b.pos += n
	return NewReader(sub), nil
}

// --- coord codec -----------------------------------------------------------

// WriteCoord writes a nominal 0..64-space coordinate using the variable
// one- or two-byte encoding.
func (b *Buffer) WriteCoord(v float32) {
	if v < -128 {
		v = -128
	}
	if v > 192 {
		v = 192
	}

	if float32(int32(v*100)) == float32(int32(v))*100 && v >= -32 && v <= 95 {
		b.WriteU8(uint8(v + 32))
		return
	}

	value := uint16((v + 128) * 102)
	value |= 0x8000
	b.WriteU8(uint8(value >> 8))
	b.WriteU8(uint8(value & 0xff))
}

// ReadCoord reads a coordinate written by WriteCoord.
func (b *Buffer) ReadCoord() (float32, error) {
	hi, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	if hi&0x80 != 0 {
		lo, err := b.ReadU8()
		if err != nil {
			return 0, err
		}
		v := hi & 0x7f
		coordValue := uint16(v)<<8 | uint16(lo)
		return float32(coordValue)/102.0 - 128.0, nil
	}
	return float32(hi) - 32.0, nil
}

// --- float24 codec -----------------------------------------------------------

// WriteFloat24 writes the 3-byte sign(1)/exponent(6)/mantissa(17) float
// used throughout the flat format for affine matrix elements. Values whose
// unbiased exponent falls outside [-32, 32) encode as three zero bytes.
func (b *Buffer) WriteFloat24(v float32) {
	bits := math32.Float32bits(v)
	sign := int32(bits>>31) & 1
	exponent := int32(bits>>23&0xff) - 127
	mantissa := int32(bits & 0x7fffff)

	if exponent >= 32 || exponent < -32 {
		b.WriteU8(0)
		b.WriteU8(0)
		b.WriteU8(0)
		return
	}

	packed := sign<<23 | (exponent+32)<<17 | (mantissa >> 6)
	b.WriteU8(uint8(packed >> 16))
	b.WriteU8(uint8(packed >> 8 & 0xff))
	b.WriteU8(uint8(packed & 0xff))
}

// ReadFloat24 reads a value written by WriteFloat24.
func (b *Buffer) ReadFloat24() (float32, error) {
	b0, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	b1, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	b2, err := b.ReadU8()
	if err != nil {
		return 0, err
	}

	packed := int32(b0)<<16 | int32(b1)<<8 | int32(b2)
	if packed == 0 {
		return 0, nil
	}

	sign := (packed & 0x800000) >> 23
	exponent := ((packed & 0x7e0000) >> 17) - 32
	mantissa := (packed & 0x01ffff) << 6

	bits := uint32(sign)<<31 | uint32(exponent+127)<<23 | uint32(mantissa)
	return math32.Float32frombits(bits), nil
}
