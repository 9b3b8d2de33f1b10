package osc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundleCapacityMonotonicity(t *testing.T) {
	b := NewBundle(Immediately)
	before := b.RemainingCapacity()

	msg := NewMessage("/a")
	encoded, err := msg.MarshalBinary()
	require.NoError(t, err)

	require.NoError(t, b.AddContents(msg))
	after := b.RemainingCapacity()
	require.Equal(t, before-len(encoded)-4, after)
}

func TestBundleEmptyPreservesTimetag(t *testing.T) {
	b := NewBundle(Timetag(12345))
	msg := NewMessage("/a")
	require.NoError(t, b.AddContents(msg))
	require.False(t, b.IsEmpty())

	b.Empty()
	require.True(t, b.IsEmpty())
	require.Equal(t, Timetag(12345), b.Timetag())
}

func TestBundleRecursiveRoundTrip(t *testing.T) {
	outer := NewBundle(Timetag(uint64(1) << 32))

	a := NewMessage("/a")
	require.NoError(t, outer.AddContents(a))

	b := NewMessage("/b")
	require.NoError(t, b.AddInt32(7))
	require.NoError(t, outer.AddContents(b))

	inner := NewBundle(Immediately)
	c := NewMessage("/c")
	require.NoError(t, c.AddString("x"))
	require.NoError(t, inner.AddContents(c))
	require.NoError(t, outer.AddContents(inner))

	encoded, err := outer.MarshalBinary()
	require.NoError(t, err)

	var got []struct {
		tt   Timetag
		addr string
	}
	packet := NewPacket()
	packet.SetHandler(func(tt *Timetag, msg *Message) error {
		var recorded Timetag
		if tt != nil {
			recorded = *tt
		}
		got = append(got, struct {
			tt   Timetag
			addr string
		}{recorded, msg.Address()})
		return nil
	})
	require.NoError(t, packet.InitFromBytes(encoded))
	require.NoError(t, packet.ProcessMessages())

	require.Len(t, got, 3)
	require.Equal(t, "/a", got[0].addr)
	require.Equal(t, Timetag(uint64(1)<<32), got[0].tt)
	require.Equal(t, "/b", got[1].addr)
	require.Equal(t, Timetag(uint64(1)<<32), got[1].tt)
	require.Equal(t, "/c", got[2].addr)
	require.Equal(t, Immediately, got[2].tt)
}

func TestBundleParseRejectsMissingHeader(t *testing.T) {
	b := &Bundle{}
	err := b.Parse(make([]byte, 16))
	require.ErrorIs(t, err, ErrNoHashAtStartOfBundle)
}

func TestBundleNegativeElementSize(t *testing.T) {
	src := make([]byte, bundleHeaderSize+timetagSize+4)
	copy(src, bundleTag)
	// Element size field of -4.
	src[bundleHeaderSize+timetagSize+0] = 0xFF
	src[bundleHeaderSize+timetagSize+1] = 0xFF
	src[bundleHeaderSize+timetagSize+2] = 0xFF
	src[bundleHeaderSize+timetagSize+3] = 0xFC

	b := &Bundle{}
	require.NoError(t, b.Parse(src))
	_, err := b.NextElement()
	require.ErrorIs(t, err, ErrNegativeBundleElementSize)
}
