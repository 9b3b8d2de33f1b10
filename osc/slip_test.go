package osc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSLIPEscapingRoundTrip(t *testing.T) {
	contents := []byte{0xC0, 0x00, 0xDB, 0xFF}

	dst := make([]byte, 2*len(contents)+1)
	n, err := EncodeSLIP(contents, dst)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDB, 0xDC, 0x00, 0xDB, 0xDD, 0xFF, 0xC0}, dst[:n])

	var decoded []byte
	dec := NewSLIPDecoder()
	dec.SetHandler(func(c []byte) error {
		decoded = append([]byte{}, c...)
		return nil
	})
	for _, b := range dst[:n] {
		require.NoError(t, dec.Feed(b))
	}
	require.Equal(t, contents, decoded)
}

func TestSLIPDecoderUnexpectedByteAfterEsc(t *testing.T) {
	dec := NewSLIPDecoder()
	dec.SetHandler(func(c []byte) error { return nil })

	require.NoError(t, dec.Feed(slipEsc))
	require.NoError(t, dec.Feed(0xAA))
	err := dec.Feed(slipEnd)
	require.ErrorIs(t, err, ErrUnexpectedByteAfterSlipEsc)
}

func TestSLIPDecoderRequiresHandler(t *testing.T) {
	dec := NewSLIPDecoder()
	err := dec.Feed(slipEnd)
	require.ErrorIs(t, err, ErrCallbackUndefined)
}

func TestSLIPReaderWriterRoundTrip(t *testing.T) {
	msg := NewMessage("/a/b")
	require.NoError(t, msg.AddInt32(42))
	encoded, err := msg.MarshalBinary()
	require.NoError(t, err)

	var wire bytes.Buffer
	w := NewSLIPWriter(&wire)
	require.NoError(t, w.WritePacket(encoded))

	var got []byte
	r := NewSLIPReader(&wire, func(contents []byte) error {
		got = append([]byte{}, contents...)
		return nil
	})
	require.NoError(t, r.Run())
	require.Equal(t, encoded, got)
}
