package osc

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
)

// Message represents a single OSC message: a non-empty address
// pattern starting with '/', a type-tag string (stored without its
// leading comma, which is implicit), and a payload of concatenated
// argument bytes in type-tag order.
//
// Message doubles as both a builder (the Add* methods append to
// typeTags/payload) and a cursor-based reader (the Get*/ArgAs*
// methods walk tagCursor/payloadCursor forward). Arguments are kept
// as a raw, already-encoded payload rather than an eagerly-decoded
// slice of values, so that availability checks, type inspection, and
// skipping can all happen without decoding an argument's value.
type Message struct {
	address  string
	typeTags []byte
	payload  []byte

	tagCursor     int
	payloadCursor int
}

// NewMessage returns a new Message with the given address pattern. An
// empty pattern leaves the address unset (Serialize will then fail
// with ErrUndefinedAddressPattern).
func NewMessage(pattern string) *Message {
	m := &Message{}
	m.Init(pattern)
	return m
}

// Init clears the message (address, type tags, payload, and both
// cursors) and, if pattern is non-empty, sets the address to it. A
// pattern that AppendAddress rejects (no leading '/', or longer than
// MaxAddressLen) is ignored and leaves the address unset.
func (m *Message) Init(pattern string) {
	m.address = ""
	m.typeTags = m.typeTags[:0]
	m.payload = m.payload[:0]
	m.tagCursor = 0
	m.payloadCursor = 0
	if pattern != "" {
		_ = m.AppendAddress(pattern)
	}
}

// Address returns the current address pattern.
func (m *Message) Address() string { return m.address }

// SetAddress replaces the address pattern.
func (m *Message) SetAddress(pattern string) error {
	m.address = ""
	return m.AppendAddress(pattern)
}

// AppendAddress appends more characters to the address pattern. If
// this is the first content added to the address, more's first
// character must be '/'.
func (m *Message) AppendAddress(more string) error {
	if m.address == "" {
		if len(more) == 0 || more[0] != '/' {
			return ErrNoSlashAtStartOfMessage
		}
	}
	if len(m.address)+len(more) > MaxAddressLen {
		return ErrAddressPatternTooLong
	}
	m.address += more
	return nil
}

// TypeTags returns the type-tag string including its leading comma.
func (m *Message) TypeTags() string {
	return "," + string(m.typeTags)
}

// CountArguments returns the number of type-tag characters (the
// number of arguments, value-bearing or not).
func (m *Message) CountArguments() int {
	return len(m.typeTags)
}

// Size returns the total serialized size in bytes: the address and
// type-tag string each padded to a four-byte boundary, plus the
// argument payload (already four-byte aligned argument by argument).
func (m *Message) Size() int {
	return align4(len(m.address)+1) + align4(len(m.typeTags)+2) + len(m.payload)
}

// Equals reports whether m and other have the same address, type
// tags, and payload.
func (m *Message) Equals(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.address == other.address &&
		reflect.DeepEqual(m.typeTags, other.typeTags) &&
		reflect.DeepEqual(m.payload, other.payload)
}

// String implements fmt.Stringer for debug output. It replays the
// type tags through the reader accessors on a scratch copy, so
// printing never disturbs m's own cursors.
func (m *Message) String() string {
	if m == nil {
		return ""
	}
	scratch := *m
	scratch.tagCursor, scratch.payloadCursor = 0, 0

	s := m.address + " " + m.TypeTags()
	for scratch.IsArgAvailable() {
		tag := scratch.typeTags[scratch.tagCursor]
		switch tag {
		case 'i':
			v, _ := scratch.GetInt32()
			s += fmt.Sprintf(" %d", v)
		case 'f':
			v, _ := scratch.GetFloat32()
			s += fmt.Sprintf(" %v", v)
		case 'h':
			v, _ := scratch.GetInt64()
			s += fmt.Sprintf(" %d", v)
		case 'd':
			v, _ := scratch.GetFloat64()
			s += fmt.Sprintf(" %v", v)
		case 's':
			v, _ := scratch.GetString()
			s += fmt.Sprintf(" %s", v)
		case 'S':
			v, _ := scratch.GetAltString()
			s += fmt.Sprintf(" %s", v)
		case 'b':
			v, _ := scratch.GetBlob()
			s += fmt.Sprintf(" blob(%d)", len(v))
		case 't':
			v, _ := scratch.GetTimetag()
			s += fmt.Sprintf(" %d", uint64(v))
		case 'c':
			v, _ := scratch.GetChar()
			s += fmt.Sprintf(" %c", v)
		case 'r':
			v, _ := scratch.GetRGBA()
			s += fmt.Sprintf(" rgba(%d,%d,%d,%d)", v.R, v.G, v.B, v.A)
		case 'm':
			v, _ := scratch.GetMIDI()
			s += fmt.Sprintf(" midi(%d,%d,%d,%d)", v.PortID, v.Status, v.Data1, v.Data2)
		case 'T', 'F':
			v, _ := scratch.GetBool()
			s += fmt.Sprintf(" %v", v)
		case 'N':
			_ = scratch.GetNil()
			s += " Nil"
		case 'I':
			_ = scratch.GetInfinitum()
			s += " Infinitum"
		case '[':
			_ = scratch.GetBeginArray()
			s += " ["
		case ']':
			_ = scratch.GetEndArray()
			s += " ]"
		default:
			_ = scratch.SkipArg()
			s += " ?"
		}
	}
	return s
}

////
// Construction (Add*)
////

func (m *Message) addArg(tag byte, size int, encode func([]byte) []byte) error {
	if len(m.typeTags) >= MaxArgs {
		return ErrTooManyArguments
	}
	if len(m.payload)+size > MaxArgsSize {
		return ErrArgumentsSizeTooLarge
	}
	m.typeTags = append(m.typeTags, tag)
	m.payload = encode(m.payload)
	return nil
}

// AddInt32 appends a signed 32-bit integer argument.
func (m *Message) AddInt32(v int32) error {
	return m.addArg('i', 4, func(b []byte) []byte { return appendInt32(b, v) })
}

// AddFloat32 appends an IEEE-754 binary32 argument.
func (m *Message) AddFloat32(v float32) error {
	return m.addArg('f', 4, func(b []byte) []byte { return appendFloat32(b, v) })
}

// AddInt64 appends a signed 64-bit integer argument.
func (m *Message) AddInt64(v int64) error {
	return m.addArg('h', 8, func(b []byte) []byte { return appendInt64(b, v) })
}

// AddFloat64 appends an IEEE-754 binary64 argument.
func (m *Message) AddFloat64(v float64) error {
	return m.addArg('d', 8, func(b []byte) []byte { return appendFloat64(b, v) })
}

// AddTimetag appends a time-tag argument.
func (m *Message) AddTimetag(v Timetag) error {
	return m.addArg('t', 8, func(b []byte) []byte { return v.appendBytes(b) })
}

// AddChar appends a character argument.
func (m *Message) AddChar(v byte) error {
	return m.addArg('c', 4, func(b []byte) []byte { return appendChar(b, v) })
}

// AddRGBA appends an RGBA color argument.
func (m *Message) AddRGBA(v RGBA) error {
	return m.addArg('r', 4, func(b []byte) []byte { return v.appendBytes(b) })
}

// AddMIDI appends a MIDI message argument.
func (m *Message) AddMIDI(v MIDI) error {
	return m.addArg('m', 4, func(b []byte) []byte { return v.appendBytes(b) })
}

// AddString appends a string argument.
func (m *Message) AddString(s string) error {
	return m.addArg('s', align4(len(s)+1), func(b []byte) []byte { return appendString(b, s) })
}

// AddAltString appends an OSC "symbol" (alternate string) argument.
func (m *Message) AddAltString(s string) error {
	return m.addArg('S', align4(len(s)+1), func(b []byte) []byte { return appendString(b, s) })
}

// AddBlob appends a binary blob argument.
func (m *Message) AddBlob(data []byte) error {
	return m.addArg('b', blobWireSize(len(data)), func(b []byte) []byte { return appendBlob(b, data) })
}

// AddBool appends a boolean argument (tag 'T' or 'F', no payload).
func (m *Message) AddBool(v bool) error {
	tag := byte('F')
	if v {
		tag = 'T'
	}
	return m.addArg(tag, 0, func(b []byte) []byte { return b })
}

// AddNil appends a nil argument (tag 'N', no payload).
func (m *Message) AddNil() error {
	return m.addArg('N', 0, func(b []byte) []byte { return b })
}

// AddInfinitum appends an infinitum argument (tag 'I', no payload).
func (m *Message) AddInfinitum() error {
	return m.addArg('I', 0, func(b []byte) []byte { return b })
}

// AddBeginArray appends the array-start marker (tag '[').
func (m *Message) AddBeginArray() error {
	return m.addArg('[', 0, func(b []byte) []byte { return b })
}

// AddEndArray appends the array-end marker (tag ']').
func (m *Message) AddEndArray() error {
	return m.addArg(']', 0, func(b []byte) []byte { return b })
}

////
// Serialization
////

// Serialize writes the message's wire form into dst, which must be at
// least Size() bytes long, and returns the number of bytes written.
func (m *Message) Serialize(dst []byte) (int, error) {
	if m.address == "" {
		return 0, ErrUndefinedAddressPattern
	}
	if m.address[0] != '/' {
		return 0, ErrNoSlashAtStartOfMessage
	}
	size := m.Size()
	if len(dst) < size {
		return 0, ErrDestTooSmall
	}

	pos := copy(dst, m.address)
	addrField := align4(len(m.address) + 1)
	for i := pos; i < addrField; i++ {
		dst[i] = 0
	}
	pos = addrField

	dst[pos] = ','
	pos++
	pos += copy(dst[pos:], m.typeTags)
	ttField := align4(len(m.typeTags) + 2)
	for i := pos; i < addrField+ttField; i++ {
		dst[i] = 0
	}
	pos = addrField + ttField

	pos += copy(dst[pos:], m.payload)
	return pos, nil
}

// MarshalBinary serializes the message to a freshly allocated byte
// slice. Implements encoding.BinaryMarshaler.
func (m *Message) MarshalBinary() ([]byte, error) {
	buf := make([]byte, m.Size())
	n, err := m.Serialize(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// ParseMessage parses a serialized message from src.
func ParseMessage(src []byte) (*Message, error) {
	m := &Message{}
	if err := m.Parse(src); err != nil {
		return nil, err
	}
	return m, nil
}

// Parse decodes a serialized message from src into m, replacing any
// existing content and resetting both cursors.
func (m *Message) Parse(src []byte) error {
	n := len(src)
	if n%4 != 0 {
		return ErrSizeNotMultipleOfFour
	}
	if n < MinMessageSize {
		return ErrMessageSizeTooSmall
	}
	if n > MaxMessageSize {
		return ErrMessageSizeTooLarge
	}
	if src[0] != '/' {
		return ErrNoSlashAtStartOfMessage
	}

	addrEnd := bytes.IndexByte(src, 0)
	if addrEnd == -1 {
		return ErrSourceEndsBeforeEndOfAddress
	}
	if addrEnd > MaxAddressLen {
		return ErrAddressPatternTooLong
	}
	address := string(src[:addrEnd])

	ttTagStart := align4(addrEnd + 1)
	if ttTagStart >= n {
		return ErrSourceEndsBeforeStartOfTypeTag
	}
	if src[ttTagStart] != ',' {
		return ErrSourceEndsBeforeStartOfTypeTag
	}

	ttBody := src[ttTagStart+1:]
	ttLen := bytes.IndexByte(ttBody, 0)
	if ttLen == -1 {
		return ErrSourceEndsBeforeEndOfTypeTag
	}
	if ttLen > MaxArgs {
		return ErrTypeTagStringTooLong
	}
	typeTags := ttBody[:ttLen]

	payloadStart := ttTagStart + align4(ttLen+2)
	if payloadStart > n {
		return ErrSourceEndsBeforeEndOfTypeTag
	}
	payload := src[payloadStart:n]

	m.address = address
	m.typeTags = append(m.typeTags[:0], typeTags...)
	m.payload = append(m.payload[:0], payload...)
	m.tagCursor = 0
	m.payloadCursor = 0
	return nil
}

////
// Deconstruction (pull-based cursor accessors)
////

// IsArgAvailable reports whether there is an unread type-tag
// character at the cursor. The last tag character is reachable: the
// comparison is strictly less-than len(typeTags), not len-1.
func (m *Message) IsArgAvailable() bool {
	return m.tagCursor < len(m.typeTags)
}

// ArgType returns the type-tag character at the cursor, or false if
// no argument is available.
func (m *Message) ArgType() (byte, bool) {
	if !m.IsArgAvailable() {
		return 0, false
	}
	return m.typeTags[m.tagCursor], true
}

// SkipArg advances the type-tag cursor forward by one but does NOT
// advance the payload cursor by the skipped argument's wire size,
// leaving it pointing at the start of the skipped argument's payload
// bytes. Use SkipArgStrict to advance both cursors consistently.
func (m *Message) SkipArg() error {
	if !m.IsArgAvailable() {
		return ErrNoArgumentsAvailable
	}
	m.tagCursor++
	return nil
}

// SkipArgStrict advances past the current argument, moving both the
// type-tag cursor and the payload cursor forward by the argument's
// wire size.
func (m *Message) SkipArgStrict() error {
	if !m.IsArgAvailable() {
		return ErrNoArgumentsAvailable
	}
	tag := m.typeTags[m.tagCursor]
	size, err := m.argWireSize(tag)
	if err != nil {
		return err
	}
	if m.payloadCursor+size > len(m.payload) {
		return ErrMessageTooShortForArgumentType
	}
	m.tagCursor++
	m.payloadCursor += size
	return nil
}

// argWireSize returns the number of payload bytes the given type tag
// consumes, inspecting the payload at the current cursor for the
// variable-length types (string, alt-string, blob).
func (m *Message) argWireSize(tag byte) (int, error) {
	switch tag {
	case 'i', 'f', 'r', 'm', 'c':
		return 4, nil
	case 'h', 'd', 't':
		return 8, nil
	case 'T', 'F', 'N', 'I', '[', ']':
		return 0, nil
	case 's', 'S':
		rest := m.payload[m.payloadCursor:]
		idx := bytes.IndexByte(rest, 0)
		if idx == -1 {
			return 0, ErrUnexpectedEndOfSource
		}
		return align4(idx + 1), nil
	case 'b':
		rest := m.payload[m.payloadCursor:]
		if len(rest) < 4 {
			return 0, ErrMessageTooShortForArgumentType
		}
		blobLen := int(readInt32(rest))
		if blobLen < 0 || len(rest) < 4+blobLen {
			return 0, ErrMessageTooShortForArgumentType
		}
		return blobWireSize(blobLen), nil
	default:
		return 0, ErrUnexpectedArgumentType
	}
}

// getFixedArg reads a fixed-size argument of the given tag at the
// cursor, decodes it with decode, and advances both cursors by size.
// On any failure neither cursor moves, so the caller can retry with a
// different accessor.
func getFixedArg[T any](m *Message, tag byte, size int, decode func([]byte) T) (T, error) {
	var zero T
	if !m.IsArgAvailable() {
		return zero, ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != tag {
		return zero, ErrUnexpectedArgumentType
	}
	if m.payloadCursor+size > len(m.payload) {
		return zero, ErrMessageTooShortForArgumentType
	}
	v := decode(m.payload[m.payloadCursor : m.payloadCursor+size])
	m.tagCursor++
	m.payloadCursor += size
	return v, nil
}

// GetInt32 reads a signed 32-bit integer argument ('i').
func (m *Message) GetInt32() (int32, error) { return getFixedArg(m, 'i', 4, readInt32) }

// GetFloat32 reads an IEEE-754 binary32 argument ('f').
func (m *Message) GetFloat32() (float32, error) { return getFixedArg(m, 'f', 4, readFloat32) }

// GetInt64 reads a signed 64-bit integer argument ('h').
func (m *Message) GetInt64() (int64, error) { return getFixedArg(m, 'h', 8, readInt64) }

// GetFloat64 reads an IEEE-754 binary64 argument ('d').
func (m *Message) GetFloat64() (float64, error) { return getFixedArg(m, 'd', 8, readFloat64) }

// GetTimetag reads a time-tag argument ('t').
func (m *Message) GetTimetag() (Timetag, error) { return getFixedArg(m, 't', 8, timetagFromBytes) }

// GetChar reads a character argument ('c').
func (m *Message) GetChar() (byte, error) { return getFixedArg(m, 'c', 4, readChar) }

// GetRGBA reads an RGBA color argument ('r').
func (m *Message) GetRGBA() (RGBA, error) { return getFixedArg(m, 'r', 4, rgbaFromBytes) }

// GetMIDI reads a MIDI message argument ('m').
func (m *Message) GetMIDI() (MIDI, error) { return getFixedArg(m, 'm', 4, midiFromBytes) }

// GetBool reads a boolean argument ('T' or 'F'). Booleans consume no
// payload bytes; only the type-tag cursor advances.
func (m *Message) GetBool() (bool, error) {
	if !m.IsArgAvailable() {
		return false, ErrNoArgumentsAvailable
	}
	switch m.typeTags[m.tagCursor] {
	case 'T':
		m.tagCursor++
		return true, nil
	case 'F':
		m.tagCursor++
		return false, nil
	default:
		return false, ErrUnexpectedArgumentType
	}
}

// GetNil consumes a nil argument ('N'), advancing the type-tag cursor
// only.
func (m *Message) GetNil() error {
	if !m.IsArgAvailable() {
		return ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != 'N' {
		return ErrUnexpectedArgumentType
	}
	m.tagCursor++
	return nil
}

// GetInfinitum consumes an infinitum argument ('I'), advancing the
// type-tag cursor only.
func (m *Message) GetInfinitum() error {
	if !m.IsArgAvailable() {
		return ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != 'I' {
		return ErrUnexpectedArgumentType
	}
	m.tagCursor++
	return nil
}

// GetBeginArray consumes an array-start marker ('['), advancing the
// type-tag cursor only.
func (m *Message) GetBeginArray() error {
	if !m.IsArgAvailable() {
		return ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != '[' {
		return ErrUnexpectedArgumentType
	}
	m.tagCursor++
	return nil
}

// GetEndArray consumes an array-end marker (']'), advancing the
// type-tag cursor only.
func (m *Message) GetEndArray() error {
	if !m.IsArgAvailable() {
		return ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != ']' {
		return ErrUnexpectedArgumentType
	}
	m.tagCursor++
	return nil
}

// getStringTag reads a string-shaped argument of the given tag ('s'
// or 'S').
func (m *Message) getStringTag(want byte) (string, error) {
	if !m.IsArgAvailable() {
		return "", ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != want {
		return "", ErrUnexpectedArgumentType
	}
	rest := m.payload[m.payloadCursor:]
	idx := bytes.IndexByte(rest, 0)
	if idx == -1 {
		return "", ErrUnexpectedEndOfSource
	}
	size := align4(idx + 1)
	if m.payloadCursor+size > len(m.payload) {
		return "", ErrMessageTooShortForArgumentType
	}
	s := string(rest[:idx])
	m.tagCursor++
	m.payloadCursor += size
	return s, nil
}

// GetString reads a string argument ('s').
func (m *Message) GetString() (string, error) { return m.getStringTag('s') }

// GetAltString reads an alternate-string (symbol) argument ('S').
func (m *Message) GetAltString() (string, error) { return m.getStringTag('S') }

// GetBlob reads a binary blob argument ('b').
func (m *Message) GetBlob() ([]byte, error) {
	if !m.IsArgAvailable() {
		return nil, ErrNoArgumentsAvailable
	}
	if m.typeTags[m.tagCursor] != 'b' {
		return nil, ErrUnexpectedArgumentType
	}
	rest := m.payload[m.payloadCursor:]
	if len(rest) < 4 {
		return nil, ErrMessageTooShortForArgumentType
	}
	blobLen := int(readInt32(rest))
	if blobLen < 0 || len(rest) < 4+blobLen {
		return nil, ErrMessageTooShortForArgumentType
	}
	size := blobWireSize(blobLen)
	if m.payloadCursor+size > len(m.payload) {
		return nil, ErrMessageTooShortForArgumentType
	}
	data := make([]byte, blobLen)
	copy(data, rest[4:4+blobLen])
	m.tagCursor++
	m.payloadCursor += size
	return data, nil
}

////
// Coercion accessors (get_as_*)
////

// numericArg is the intermediate result of reading any numeric-ish
// argument (including the zero-payload T/F/N/I tags), used to share
// one decode path across the ArgAs* coercion methods.
type numericArg struct {
	f64         float64
	i64         int64
	isBool      bool
	boolVal     bool
	isNil       bool
	isInfinitum bool
}

func (m *Message) readNumericArg() (numericArg, error) {
	tag, ok := m.ArgType()
	if !ok {
		return numericArg{}, ErrNoArgumentsAvailable
	}
	switch tag {
	case 'i':
		v, err := m.GetInt32()
		if err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: float64(v), i64: int64(v)}, nil
	case 'f':
		v, err := m.GetFloat32()
		if err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: float64(v), i64: int64(v)}, nil
	case 'h':
		v, err := m.GetInt64()
		if err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: float64(v), i64: v}, nil
	case 'd':
		v, err := m.GetFloat64()
		if err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: v, i64: int64(v)}, nil
	case 't':
		v, err := m.GetTimetag()
		if err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: float64(uint64(v)), i64: int64(uint64(v))}, nil
	case 'c':
		v, err := m.GetChar()
		if err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: float64(v), i64: int64(v)}, nil
	case 'T':
		if _, err := m.GetBool(); err != nil {
			return numericArg{}, err
		}
		return numericArg{f64: 1, i64: 1, isBool: true, boolVal: true}, nil
	case 'F':
		if _, err := m.GetBool(); err != nil {
			return numericArg{}, err
		}
		return numericArg{isBool: true, boolVal: false}, nil
	case 'N':
		if err := m.GetNil(); err != nil {
			return numericArg{}, err
		}
		return numericArg{isNil: true}, nil
	case 'I':
		if err := m.GetInfinitum(); err != nil {
			return numericArg{}, err
		}
		return numericArg{isInfinitum: true}, nil
	default:
		return numericArg{}, ErrUnexpectedArgumentType
	}
}

// ArgAsInt32 coerces the current argument to int32. Infinitum
// converts to the bit pattern of math.MaxUint32.
func (m *Message) ArgAsInt32() (int32, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return 0, err
	}
	if nv.isInfinitum {
		var u32 uint32 = math.MaxUint32
		return int32(u32), nil
	}
	return int32(nv.i64), nil
}

// ArgAsInt64 coerces the current argument to int64.
func (m *Message) ArgAsInt64() (int64, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return 0, err
	}
	if nv.isInfinitum {
		return int64(uint32(math.MaxUint32)), nil
	}
	return nv.i64, nil
}

// ArgAsFloat32 coerces the current argument to float32. Infinitum
// converts to +Inf.
func (m *Message) ArgAsFloat32() (float32, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return 0, err
	}
	if nv.isInfinitum {
		return float32(math.Inf(1)), nil
	}
	return float32(nv.f64), nil
}

// ArgAsFloat64 coerces the current argument to float64.
func (m *Message) ArgAsFloat64() (float64, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return 0, err
	}
	if nv.isInfinitum {
		return math.Inf(1), nil
	}
	return nv.f64, nil
}

// ArgAsBool coerces the current argument to bool. Infinitum converts
// to true.
func (m *Message) ArgAsBool() (bool, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return false, err
	}
	if nv.isInfinitum {
		return true, nil
	}
	if nv.isBool {
		return nv.boolVal, nil
	}
	if nv.isNil {
		return false, nil
	}
	return nv.i64 != 0 || nv.f64 != 0, nil
}

// ArgAsTimetag coerces the current argument to a Timetag.
func (m *Message) ArgAsTimetag() (Timetag, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return 0, err
	}
	if nv.isInfinitum {
		return Timetag(uint64(uint32(math.MaxUint32))), nil
	}
	return Timetag(uint64(nv.i64)), nil
}

// ArgAsChar coerces the current argument to a character byte.
func (m *Message) ArgAsChar() (byte, error) {
	nv, err := m.readNumericArg()
	if err != nil {
		return 0, err
	}
	if nv.isInfinitum {
		return 0xFF, nil
	}
	return byte(nv.i64), nil
}

// ArgAsString coerces the current argument to a string. Strings and
// alt-strings pass through as-is; blobs are reinterpreted as raw
// bytes; a character becomes a one-rune string.
func (m *Message) ArgAsString() (string, error) {
	tag, ok := m.ArgType()
	if !ok {
		return "", ErrNoArgumentsAvailable
	}
	switch tag {
	case 's':
		return m.GetString()
	case 'S':
		return m.GetAltString()
	case 'b':
		data, err := m.GetBlob()
		if err != nil {
			return "", err
		}
		return string(data), nil
	case 'c':
		v, err := m.GetChar()
		if err != nil {
			return "", err
		}
		return string(rune(v)), nil
	default:
		return "", ErrUnexpectedArgumentType
	}
}

// ArgAsBlob coerces the current argument to a byte slice. Strings and
// alt-strings are copied verbatim (without their null terminator);
// blobs pass through as-is; a character becomes a one-byte blob.
func (m *Message) ArgAsBlob() ([]byte, error) {
	tag, ok := m.ArgType()
	if !ok {
		return nil, ErrNoArgumentsAvailable
	}
	switch tag {
	case 'b':
		return m.GetBlob()
	case 's':
		s, err := m.GetString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case 'S':
		s, err := m.GetAltString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case 'c':
		v, err := m.GetChar()
		if err != nil {
			return nil, err
		}
		return []byte{v}, nil
	default:
		return nil, ErrUnexpectedArgumentType
	}
}

// ArgAsRGBA coerces the current argument to an RGBA value. An RGBA
// argument passes through; a 4-byte blob is reinterpreted in place.
func (m *Message) ArgAsRGBA() (RGBA, error) {
	tag, ok := m.ArgType()
	if !ok {
		return RGBA{}, ErrNoArgumentsAvailable
	}
	switch tag {
	case 'r':
		return m.GetRGBA()
	case 'b':
		data, err := m.GetBlob()
		if err != nil {
			return RGBA{}, err
		}
		if len(data) != 4 {
			return RGBA{}, ErrUnexpectedArgumentType
		}
		return rgbaFromBytes(data), nil
	default:
		return RGBA{}, ErrUnexpectedArgumentType
	}
}

// ArgAsMIDI coerces the current argument to a MIDI value. A MIDI
// argument passes through; a 4-byte blob is reinterpreted in place.
func (m *Message) ArgAsMIDI() (MIDI, error) {
	tag, ok := m.ArgType()
	if !ok {
		return MIDI{}, ErrNoArgumentsAvailable
	}
	switch tag {
	case 'm':
		return m.GetMIDI()
	case 'b':
		data, err := m.GetBlob()
		if err != nil {
			return MIDI{}, err
		}
		if len(data) != 4 {
			return MIDI{}, ErrUnexpectedArgumentType
		}
		return midiFromBytes(data), nil
	default:
		return MIDI{}, ErrUnexpectedArgumentType
	}
}
