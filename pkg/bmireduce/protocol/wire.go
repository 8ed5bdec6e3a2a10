package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
)

// PartialSize is the number of bytes a worker writes to its result pipe:
// the sum as IEEE-754 bits followed by the count, both little-endian 64-bit.
const PartialSize = 16

// EncodePartial serializes p into its fixed-size wire form.
func EncodePartial(p bmireduce.Partial) [PartialSize]byte {
	var buf [PartialSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.Sum))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(p.Count))
	return buf
}

// DecodePartial parses one wire record. Any length other than PartialSize
// is rejected.
func DecodePartial(b []byte) (bmireduce.Partial, error) {
	if len(b) != PartialSize {
		return bmireduce.Partial{}, fmt.Errorf("%w: got %d bytes, want %d", ErrShortRecord, len(b), PartialSize)
	}

	p := bmireduce.Partial{
		Sum:   math.Float64frombits(binary.LittleEndian.Uint64(b[0:8])),
		Count: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
	if p.Count < 0 {
		return bmireduce.Partial{}, fmt.Errorf("%w: negative count %d", ErrCorruptRecord, p.Count)
	}
	return p, nil
}

// WritePartial writes one wire record to w.
func WritePartial(w io.Writer, p bmireduce.Partial) error {
	buf := EncodePartial(p)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write partial: %w", err)
	}
	return nil
}

// ReadPartial reads exactly one wire record from r. A missing or truncated
// record is ErrShortRecord.
func ReadPartial(r io.Reader) (bmireduce.Partial, error) {
	var buf [PartialSize]byte
	n, err := io.ReadFull(r, buf[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return bmireduce.Partial{}, fmt.Errorf("%w: got %d bytes, want %d", ErrShortRecord, n, PartialSize)
	}
	if err != nil {
		return bmireduce.Partial{}, fmt.Errorf("read partial: %w", err)
	}
	return DecodePartial(buf[:])
}
