package osc

import (
	"encoding/binary"
	"time"
)

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01) and the Unix epoch (1970-01-01), used to convert
// between time.Time and the OSC time-tag's seconds-since-1900 field.
const ntpEpochOffset = 2208988800

// Timetag is an opaque 64-bit OSC time-tag: the top 32 bits count
// seconds since midnight on 1 January 1900, the bottom 32 bits count
// fractions of a second. The value 0 is the sentinel meaning
// "immediately" / "irrelevant".
//
// Timetag is a plain value type, not a wrapper around time.Time,
// since nothing in this package needs repeated round-trips through
// time.Time.
type Timetag uint64

// Immediately is the zero Timetag, meaning "now" / "don't care".
const Immediately Timetag = 0

// NewTimetag builds a Timetag from a wall-clock time.
func NewTimetag(t time.Time) Timetag {
	secs := uint64(t.Unix()+ntpEpochOffset) << 32
	frac := uint64(float64(t.Nanosecond()) / 1e9 * (1 << 32))
	return Timetag(secs | frac)
}

// Seconds returns the top 32 bits: seconds since the NTP epoch.
func (t Timetag) Seconds() uint32 {
	return uint32(t >> 32)
}

// Fraction returns the bottom 32 bits: fractional seconds.
func (t Timetag) Fraction() uint32 {
	return uint32(t)
}

// Time converts the Timetag back to a wall-clock time.
func (t Timetag) Time() time.Time {
	secs := int64(t.Seconds()) - ntpEpochOffset
	nsec := int64(float64(t.Fraction()) / (1 << 32) * 1e9)
	return time.Unix(secs, nsec)
}

// Immediate reports whether this Timetag is the "now"/"irrelevant"
// sentinel.
func (t Timetag) Immediate() bool {
	return t == Immediately
}

// ExpiresIn returns how long a caller should wait before treating a
// bundle carrying this Timetag as due, relative to wall-clock now. An
// immediate Timetag expires instantly.
func (t Timetag) ExpiresIn() time.Duration {
	if t.Immediate() {
		return 0
	}
	d := t.Time().Sub(time.Now())
	if d < 0 {
		return 0
	}
	return d
}

// appendBytes appends the big-endian wire form of the Timetag to dst.
func (t Timetag) appendBytes(dst []byte) []byte {
	var b [timetagSize]byte
	binary.BigEndian.PutUint64(b[:], uint64(t))
	return append(dst, b[:]...)
}

// timetagFromBytes reads a big-endian Timetag from the front of src.
// The caller must ensure len(src) >= timetagSize.
func timetagFromBytes(src []byte) Timetag {
	return Timetag(binary.BigEndian.Uint64(src))
}
