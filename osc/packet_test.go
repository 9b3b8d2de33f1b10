package osc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketProcessMessagesRequiresHandler(t *testing.T) {
	p := NewPacket()
	msg := NewMessage("/a")
	require.NoError(t, p.InitFromContents(msg))

	err := p.ProcessMessages()
	require.ErrorIs(t, err, ErrCallbackUndefined)
}

func TestPacketProcessMessagesRequiresContents(t *testing.T) {
	p := NewPacket()
	p.SetHandler(func(tt *Timetag, msg *Message) error { return nil })

	err := p.ProcessMessages()
	require.ErrorIs(t, err, ErrContentsEmpty)
}

func TestPacketInitFromContentsMessage(t *testing.T) {
	msg := NewMessage("/a/b/c")
	require.NoError(t, msg.AddString("foo"))

	p := NewPacket()
	require.NoError(t, p.InitFromContents(msg))

	var seen string
	p.SetHandler(func(tt *Timetag, m *Message) error {
		seen = m.Address()
		s, err := m.GetString()
		require.NoError(t, err)
		require.Equal(t, "foo", s)
		return nil
	})
	require.NoError(t, p.ProcessMessages())
	require.Equal(t, "/a/b/c", seen)
}

func TestPacketPropagatesHandlerError(t *testing.T) {
	msg := NewMessage("/a")
	p := NewPacket()
	require.NoError(t, p.InitFromContents(msg))

	want := ErrUnexpectedArgumentType
	p.SetHandler(func(tt *Timetag, m *Message) error { return want })

	err := p.ProcessMessages()
	require.ErrorIs(t, err, want)
}
