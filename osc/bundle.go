package osc

import (
	"bytes"
)

// Bundle is a time-tagged container of elements, each either a
// message or a nested bundle. Like Message, it stores its payload
// (the element area) as a flat, already-encoded byte slice rather
// than a slice of decoded sub-entities, so add/serialize/parse/iterate
// all operate on the same buffer without an intermediate tree.
type Bundle struct {
	timetag  Timetag
	elements []byte

	readCursor int
}

// NewBundle returns a new Bundle with the given time-tag.
func NewBundle(tt Timetag) *Bundle {
	b := &Bundle{}
	b.Init(tt)
	return b
}

// Init resets the bundle to empty and stores the given time-tag.
func (b *Bundle) Init(tt Timetag) {
	b.timetag = tt
	b.elements = b.elements[:0]
	b.readCursor = 0
}

// Timetag returns the bundle's time-tag.
func (b *Bundle) Timetag() Timetag { return b.timetag }

// SetTimetag replaces the bundle's time-tag without touching its
// elements.
func (b *Bundle) SetTimetag(tt Timetag) { b.timetag = tt }

// Empty clears the element area, preserving the time-tag.
func (b *Bundle) Empty() {
	b.elements = b.elements[:0]
	b.readCursor = 0
}

// IsEmpty reports whether the bundle holds no elements.
func (b *Bundle) IsEmpty() bool { return len(b.elements) == 0 }

// Size returns the total serialized size: the 8-byte header, the
// 8-byte time-tag, and the element area.
func (b *Bundle) Size() int {
	return bundleHeaderSize + timetagSize + len(b.elements)
}

// RemainingCapacity returns how many bytes of element content could
// still be added via AddContents, after reserving room for that
// element's own 4-byte size prefix. Never negative.
func (b *Bundle) RemainingCapacity() int {
	used := len(b.elements)
	remaining := MaxElementsSize - used - 4
	if remaining < 0 {
		return 0
	}
	return remaining
}

// contentsMarshaler is satisfied by both *Message and *Bundle.
type contentsMarshaler interface {
	MarshalBinary() ([]byte, error)
}

// AddContents serializes msgOrBundle and appends it to the element
// area as a 4-byte big-endian size followed by the serialized bytes.
// msgOrBundle must be a *Message or a *Bundle.
func (b *Bundle) AddContents(msgOrBundle contentsMarshaler) error {
	var encoded []byte
	var err error

	switch v := msgOrBundle.(type) {
	case *Message:
		encoded, err = v.MarshalBinary()
	case *Bundle:
		encoded, err = v.MarshalBinary()
	default:
		return ErrInvalidContents
	}
	if err != nil {
		return err
	}

	if len(encoded) > b.RemainingCapacity() {
		return ErrBundleFull
	}

	b.elements = appendInt32(b.elements, int32(len(encoded)))
	b.elements = append(b.elements, encoded...)
	return nil
}

// Serialize writes the bundle's wire form into dst, which must be at
// least Size() bytes long, and returns the number of bytes written.
func (b *Bundle) Serialize(dst []byte) (int, error) {
	size := b.Size()
	if len(dst) < size {
		return 0, ErrDestTooSmall
	}
	pos := copy(dst, bundleTag)
	dst[pos] = 0
	pos++
	pos += copy(dst[pos:], b.timetag.appendBytes(nil))
	pos += copy(dst[pos:], b.elements)
	return pos, nil
}

// MarshalBinary serializes the bundle to a freshly allocated byte
// slice. Implements encoding.BinaryMarshaler.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	buf := make([]byte, b.Size())
	n, err := b.Serialize(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// ParseBundle parses a serialized bundle from src.
func ParseBundle(src []byte) (*Bundle, error) {
	b := &Bundle{}
	if err := b.Parse(src); err != nil {
		return nil, err
	}
	return b, nil
}

// Parse decodes a serialized bundle from src into b, replacing any
// existing content and resetting the element iterator.
func (b *Bundle) Parse(src []byte) error {
	n := len(src)
	if n%4 != 0 {
		return ErrSizeNotMultipleOfFour
	}
	if n < MinBundleSize {
		return ErrBundleSizeTooSmall
	}
	if n > MaxBundleSize {
		return ErrBundleSizeTooLarge
	}
	if !bytes.Equal(src[:bundleHeaderSize], append([]byte(bundleTag), 0)) {
		return ErrNoHashAtStartOfBundle
	}

	tt := timetagFromBytes(src[bundleHeaderSize : bundleHeaderSize+timetagSize])
	elements := src[bundleHeaderSize+timetagSize:]

	b.timetag = tt
	b.elements = append(b.elements[:0], elements...)
	b.readCursor = 0
	return nil
}

// IsElementAvailable reports whether there is an unread element left
// in the iterator.
func (b *Bundle) IsElementAvailable() bool {
	return b.readCursor < len(b.elements)
}

// NextElement reads the next element's content (the bytes after its
// 4-byte size prefix) and advances the iterator past it.
func (b *Bundle) NextElement() ([]byte, error) {
	if !b.IsElementAvailable() {
		return nil, ErrBundleElementNotAvailable
	}
	rest := b.elements[b.readCursor:]
	if len(rest) < 4 {
		return nil, ErrInvalidElementSize
	}
	size := int(readInt32(rest))
	if size < 0 {
		return nil, ErrNegativeBundleElementSize
	}
	if size%4 != 0 {
		return nil, ErrSizeNotMultipleOfFour
	}
	if 4+size > len(rest) {
		return nil, ErrInvalidElementSize
	}
	content := rest[4 : 4+size]
	b.readCursor += 4 + size
	return content, nil
}
