package osc

import (
	"bufio"
	"io"
)

const (
	slipEnd    = 0xC0
	slipEsc    = 0xDB
	slipEscEnd = 0xDC
	slipEscEsc = 0xDD
)

// EncodeSLIP writes the SLIP-framed form of contents into dst, which
// must be large enough to hold the worst case (every byte escaped,
// plus the trailing END), and returns the number of bytes written.
func EncodeSLIP(contents []byte, dst []byte) (int, error) {
	pos := 0
	for _, b := range contents {
		switch b {
		case slipEnd:
			if pos+2 > len(dst) {
				return 0, ErrDestTooSmall
			}
			dst[pos], dst[pos+1] = slipEsc, slipEscEnd
			pos += 2
		case slipEsc:
			if pos+2 > len(dst) {
				return 0, ErrDestTooSmall
			}
			dst[pos], dst[pos+1] = slipEsc, slipEscEsc
			pos += 2
		default:
			if pos+1 > len(dst) {
				return 0, ErrDestTooSmall
			}
			dst[pos] = b
			pos++
		}
	}
	if pos+1 > len(dst) {
		return 0, ErrDestTooSmall
	}
	dst[pos] = slipEnd
	pos++
	return pos, nil
}

// PacketHandler is invoked once per SLIP frame decoded by a
// SLIPDecoder, with the decoded packet contents.
type PacketHandler func(contents []byte) error

// SLIPDecoder accumulates bytes fed one at a time and, on each
// completed frame (an END byte), decodes the buffered bytes and
// invokes the installed handler with the result.
type SLIPDecoder struct {
	buf     [MaxTransportSize]byte
	n       int
	handler PacketHandler
}

// NewSLIPDecoder returns a SLIPDecoder with no handler installed.
func NewSLIPDecoder() *SLIPDecoder {
	return &SLIPDecoder{}
}

// SetHandler installs the handler invoked on each decoded frame.
func (d *SLIPDecoder) SetHandler(h PacketHandler) { d.handler = h }

// Clear discards any partially buffered frame.
func (d *SLIPDecoder) Clear() { d.n = 0 }

// Feed processes one incoming byte. Non-END bytes are buffered;
// overflowing the buffer before an END arrives discards the partial
// frame and returns ErrEncodedSlipPacketTooLong. An END byte triggers
// decoding of the buffered frame and, on success, invocation of the
// installed handler.
func (d *SLIPDecoder) Feed(b byte) error {
	d.buf[d.n] = b
	d.n++
	if d.n >= MaxTransportSize {
		d.n = 0
		return ErrEncodedSlipPacketTooLong
	}
	if b != slipEnd {
		return nil
	}

	encoded := d.buf[:d.n]
	d.n = 0

	var decoded [MaxTransportSize]byte
	decodedLen := 0
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == slipEnd {
			break
		}
		if c == slipEsc {
			i++
			if i >= len(encoded) {
				return ErrUnexpectedByteAfterSlipEsc
			}
			switch encoded[i] {
			case slipEscEnd:
				c = slipEnd
			case slipEscEsc:
				c = slipEsc
			default:
				return ErrUnexpectedByteAfterSlipEsc
			}
		}
		if decodedLen >= MaxTransportSize {
			return ErrDecodedSlipPacketTooLong
		}
		decoded[decodedLen] = c
		decodedLen++
	}

	if d.handler == nil {
		return ErrCallbackUndefined
	}
	return d.handler(decoded[:decodedLen])
}

// SLIPReader drives a SLIPDecoder from an io.Reader, feeding it one
// byte at a time until the reader is exhausted or returns an error.
// It mirrors the collaborator loop shape of a byte-stream server
// dispatch loop, retargeted from a network socket onto a plain
// io.Reader so SLIP framing can be exercised over any transport
// (a serial port, a pipe, an in-memory buffer) without this package
// depending on net.
type SLIPReader struct {
	src     *bufio.Reader
	decoder *SLIPDecoder
}

// NewSLIPReader returns a SLIPReader that decodes frames from src and
// invokes handler once per decoded packet.
func NewSLIPReader(src io.Reader, handler PacketHandler) *SLIPReader {
	d := NewSLIPDecoder()
	d.SetHandler(handler)
	return &SLIPReader{src: bufio.NewReader(src), decoder: d}
}

// Run feeds bytes from the underlying reader to the decoder until the
// reader returns io.EOF (returned as nil) or another error.
func (r *SLIPReader) Run() error {
	for {
		b, err := r.src.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := r.decoder.Feed(b); err != nil {
			return err
		}
	}
}

// SLIPWriter SLIP-encodes packet contents and writes the framed bytes
// to an io.Writer.
type SLIPWriter struct {
	dst io.Writer
	buf [2*MaxTransportSize + 1]byte
}

// NewSLIPWriter returns a SLIPWriter that writes framed packets to dst.
func NewSLIPWriter(dst io.Writer) *SLIPWriter {
	return &SLIPWriter{dst: dst}
}

// WritePacket SLIP-encodes contents and writes the framed bytes.
func (w *SLIPWriter) WritePacket(contents []byte) error {
	n, err := EncodeSLIP(contents, w.buf[:])
	if err != nil {
		return err
	}
	_, err = w.dst.Write(w.buf[:n])
	return err
}
