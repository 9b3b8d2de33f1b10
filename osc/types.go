package osc

import (
	"encoding/binary"
	"math"
)

// RGBA is the 32-bit argument variant holding a packed color: red in
// the most significant byte, alpha in the least significant.
type RGBA struct {
	R, G, B, A uint8
}

// appendBytes appends the 4-byte wire form of an RGBA value to dst.
func (c RGBA) appendBytes(dst []byte) []byte {
	return append(dst, c.R, c.G, c.B, c.A)
}

func rgbaFromBytes(src []byte) RGBA {
	return RGBA{R: src[0], G: src[1], B: src[2], A: src[3]}
}

// MIDI is the 32-bit argument variant holding a MIDI message: port ID
// in the most significant byte, then status, data1, data2.
type MIDI struct {
	PortID, Status, Data1, Data2 uint8
}

// appendBytes appends the 4-byte wire form of a MIDI value to dst.
func (m MIDI) appendBytes(dst []byte) []byte {
	return append(dst, m.PortID, m.Status, m.Data1, m.Data2)
}

func midiFromBytes(src []byte) MIDI {
	return MIDI{PortID: src[0], Status: src[1], Data1: src[2], Data2: src[3]}
}

// The append* helpers below write the big-endian wire form of each
// value-bearing argument type, appending to and returning a plain
// []byte rather than going through a *bytes.Buffer, since Message
// stores its payload as a flat slice under two cursors.

func appendInt32(dst []byte, v int32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return append(dst, b[:]...)
}

func appendFloat32(dst []byte, v float32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(v))
	return append(dst, b[:]...)
}

func appendInt64(dst []byte, v int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return append(dst, b[:]...)
}

func appendFloat64(dst []byte, v float64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	return append(dst, b[:]...)
}

func appendChar(dst []byte, v byte) []byte {
	return append(dst, 0, 0, 0, v)
}

// appendString appends s followed by one or more null bytes, bringing
// the total appended length to a multiple of four.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	pad := padBytesNeeded(len(s))
	for i := 0; i < pad; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// appendBlob appends a 4-byte big-endian size, then the raw bytes,
// then zero-padding to a multiple of four.
func appendBlob(dst []byte, data []byte) []byte {
	dst = appendInt32(dst, int32(len(data)))
	dst = append(dst, data...)
	pad := padBytesNeeded(len(data)) % 4
	for i := 0; i < pad; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// blobWireSize returns the total wire size (4-byte length prefix plus
// data plus 0-3 padding bytes) of a blob holding n bytes. Unlike a
// string, a blob has no null terminator to force at least one pad
// byte, so the padding count is padBytesNeeded(n) reduced mod 4 (it
// maps the string convention's 1..4 range down to 0..3).
func blobWireSize(n int) int {
	return 4 + n + padBytesNeeded(n)%4
}

func readInt32(src []byte) int32 {
	return int32(binary.BigEndian.Uint32(src))
}

func readFloat32(src []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(src))
}

func readInt64(src []byte) int64 {
	return int64(binary.BigEndian.Uint64(src))
}

func readFloat64(src []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(src))
}

func readChar(src []byte) byte {
	return src[3]
}
