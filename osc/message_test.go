package osc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageMinimal(t *testing.T) {
	msg := NewMessage("/a")
	buf := make([]byte, msg.Size())
	n, err := msg.Serialize(buf)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{0x2f, 0x61, 0, 0, 0x2c, 0, 0, 0}, buf[:n])
}

func TestMessageTypedArgumentsRoundTrip(t *testing.T) {
	msg := NewMessage("/t")
	require.NoError(t, msg.AddInt32(1))
	require.NoError(t, msg.AddFloat32(2.5))
	require.NoError(t, msg.AddString("hi"))
	require.NoError(t, msg.AddBlob([]byte{0xAA, 0xBB, 0xCC}))

	buf := make([]byte, msg.Size())
	n, err := msg.Serialize(buf)
	require.NoError(t, err)

	want := []byte{
		0x2f, 0x74, 0x00, 0x00,
		0x2c, 0x69, 0x66, 0x73,
		0x62, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
		0x40, 0x20, 0x00, 0x00,
		0x68, 0x69, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x03,
		0xAA, 0xBB, 0xCC, 0x00,
	}
	require.Equal(t, want, buf[:n])

	parsed, err := ParseMessage(buf[:n])
	require.NoError(t, err)
	require.Equal(t, "/t", parsed.Address())

	i, err := parsed.GetInt32()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)

	f, err := parsed.GetFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(2.5), f)

	s, err := parsed.GetString()
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	b, err := parsed.GetBlob()
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, b)

	require.False(t, parsed.IsArgAvailable())
}

func TestMessageAddressRequiresLeadingSlash(t *testing.T) {
	msg := NewMessage("")
	err := msg.AppendAddress("nope")
	require.ErrorIs(t, err, ErrNoSlashAtStartOfMessage)
}

func TestMessageSerializeRequiresAddress(t *testing.T) {
	msg := NewMessage("")
	_, err := msg.Serialize(make([]byte, 32))
	require.ErrorIs(t, err, ErrUndefinedAddressPattern)
}

func TestMessageGetWrongTypeDoesNotAdvanceCursor(t *testing.T) {
	msg := NewMessage("/x")
	require.NoError(t, msg.AddInt32(7))

	_, err := msg.GetFloat32()
	require.ErrorIs(t, err, ErrUnexpectedArgumentType)

	require.True(t, msg.IsArgAvailable())
	tag, ok := msg.ArgType()
	require.True(t, ok)
	require.Equal(t, byte('i'), tag)

	v, err := msg.GetInt32()
	require.NoError(t, err)
	require.Equal(t, int32(7), v)
}

func TestMessageSkipArgDoesNotAdvancePayloadCursor(t *testing.T) {
	msg := NewMessage("/x")
	require.NoError(t, msg.AddInt32(1))
	require.NoError(t, msg.AddInt32(2))

	require.NoError(t, msg.SkipArg())
	// Payload cursor wasn't moved, so the second type tag reads the
	// first argument's bytes again.
	v, err := msg.GetInt32()
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestMessageSkipArgStrictAdvancesBothCursors(t *testing.T) {
	msg := NewMessage("/x")
	require.NoError(t, msg.AddInt32(1))
	require.NoError(t, msg.AddInt32(2))

	require.NoError(t, msg.SkipArgStrict())
	v, err := msg.GetInt32()
	require.NoError(t, err)
	require.Equal(t, int32(2), v)
}

func TestMessageIsArgAvailableReachesLastArgument(t *testing.T) {
	msg := NewMessage("/x")
	require.NoError(t, msg.AddInt32(1))
	require.NoError(t, msg.AddInt32(2))
	require.NoError(t, msg.AddInt32(3))

	count := 0
	for msg.IsArgAvailable() {
		_, err := msg.GetInt32()
		require.NoError(t, err)
		count++
	}
	require.Equal(t, 3, count)
}

func TestMessageArgAsCoercions(t *testing.T) {
	msg := NewMessage("/x")
	require.NoError(t, msg.AddInfinitum())
	require.NoError(t, msg.AddBlob([]byte{1, 2, 3, 4}))

	i, err := msg.ArgAsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), i) // bit pattern of math.MaxUint32

	rgba, err := msg.ArgAsRGBA()
	require.NoError(t, err)
	require.Equal(t, RGBA{R: 1, G: 2, B: 3, A: 4}, rgba)
}

func TestMessageEquals(t *testing.T) {
	m1 := NewMessage("/address")
	m2 := NewMessage("/address")
	require.NoError(t, m1.AddInt32(1234))
	require.NoError(t, m2.AddInt32(1234))
	require.NoError(t, m1.AddString("test string"))
	require.NoError(t, m2.AddString("test string"))

	require.True(t, m1.Equals(m2))
}

func TestMessageString(t *testing.T) {
	msg := NewMessage("/foo/bar")
	require.NoError(t, msg.AddString("123"))
	require.NoError(t, msg.AddInt32(456))
	require.Equal(t, "/foo/bar ,si 123 456", msg.String())
}
