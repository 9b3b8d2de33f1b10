package osc

// MessageHandler is invoked once per message found while a packet's
// contents are walked. tt is the time-tag of the innermost bundle
// enclosing msg, or nil if msg was not found inside any bundle. The
// handler may read and consume msg's arguments; neither the handler
// nor its caller retains msg beyond the call.
type MessageHandler func(tt *Timetag, msg *Message) error

// Packet wraps a serialized message or bundle in a transport-sized
// buffer and, optionally, the handler that ProcessMessages will
// invoke for each message it finds.
type Packet struct {
	contents []byte
	handler  MessageHandler
}

// NewPacket returns an empty Packet.
func NewPacket() *Packet {
	return &Packet{}
}

// Init clears the packet's contents and handler.
func (p *Packet) Init() {
	p.contents = p.contents[:0]
	p.handler = nil
}

// SetHandler installs the handler ProcessMessages will invoke.
func (p *Packet) SetHandler(h MessageHandler) { p.handler = h }

// Contents returns the packet's raw serialized contents.
func (p *Packet) Contents() []byte { return p.contents }

// InitFromContents serializes msgOrBundle and stores the result as
// the packet's contents.
func (p *Packet) InitFromContents(msgOrBundle contentsMarshaler) error {
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
	if len(encoded) > MaxPacketSize {
		return ErrPacketSizeTooLarge
	}
	p.contents = append(p.contents[:0], encoded...)
	return nil
}

// InitFromBytes copies src into the packet's contents buffer.
func (p *Packet) InitFromBytes(src []byte) error {
	if len(src) > MaxPacketSize {
		return ErrPacketSizeTooLarge
	}
	p.contents = append(p.contents[:0], src...)
	return nil
}

// ProcessMessages walks the packet's contents depth-first, invoking
// the installed handler once per message with the time-tag of its
// innermost enclosing bundle (nil at the top level, outside any
// bundle). A bundle's elements are visited in buffer order; recursion
// into a nested bundle happens before moving on to the next element
// at the current level.
func (p *Packet) ProcessMessages() error {
	if p.handler == nil {
		return ErrCallbackUndefined
	}
	if len(p.contents) == 0 {
		return ErrContentsEmpty
	}
	return dispatchContents(p.contents, nil, p.handler)
}

func dispatchContents(contents []byte, enclosing *Timetag, handler MessageHandler) error {
	if len(contents) == 0 {
		return ErrContentsEmpty
	}
	switch contents[0] {
	case '/':
		msg, err := ParseMessage(contents)
		if err != nil {
			return err
		}
		return handler(enclosing, msg)
	case '#':
		bundle, err := ParseBundle(contents)
		if err != nil {
			return err
		}
		tt := bundle.Timetag()
		for bundle.IsElementAvailable() {
			element, err := bundle.NextElement()
			if err != nil {
				return err
			}
			if err := dispatchContents(element, &tt, handler); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrInvalidContents
	}
}
