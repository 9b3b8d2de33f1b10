// Package osc implements a portable codec for Open Sound Control (OSC)
// 1.0 messages and bundles, the recursive packet dispatcher that walks
// a bundle tree invoking a handler per contained message, the OSC
// address-pattern glob matcher, and the SLIP byte-stream framing used
// to carry OSC packets over unframed transports (serial lines, etc).
//
// The package does not open sockets, schedule time-tagged execution,
// or synchronize clocks: callers supply bytes in, bytes out, and a
// message handler.
package osc

// Tuning parameters. These cap buffer and payload sizes across the
// message, bundle, packet, and SLIP codecs, the same way the standard
// library caps protocol limits with plain consts (e.g. net/http's
// header size caps).
const (
	// MaxTransportSize caps the size of a packet, bundle, message, or
	// SLIP-decoded buffer.
	MaxTransportSize = 1472

	// MaxAddressLen caps the number of bytes in an address pattern,
	// excluding the null terminator.
	MaxAddressLen = 64

	// MaxArgs caps the number of type-tag characters in a message,
	// excluding the leading comma.
	MaxArgs = 16

	// MaxTypeTagLen caps the length of the type-tag string including
	// the leading comma.
	MaxTypeTagLen = MaxArgs + 1
)

// align4 rounds n up to the next multiple of four.
func align4(n int) int {
	return (n + 3) &^ 3
}

// padBytesNeeded returns the number of zero bytes needed to bring a
// field of length n (a string or blob payload, not yet counting its
// own null terminator) up to the next four-byte boundary after adding
// one terminating null byte.
func padBytesNeeded(n int) int {
	return 4*(n/4+1) - n
}

const (
	// maxAddressSize is the worst-case wire size of an address
	// (pattern + null terminator, aligned to 4 bytes).
	maxAddressSize = ((MaxAddressLen + 1 + 3) / 4) * 4

	// maxTypeTagSize is the worst-case wire size of a type-tag string
	// (comma + tags + null terminator, aligned to 4 bytes).
	maxTypeTagSize = ((MaxTypeTagLen + 1 + 3) / 4) * 4

	// MaxArgsSize caps the total size in bytes of a message's argument
	// payload (the concatenated, already-aligned argument values).
	MaxArgsSize = MaxTransportSize - maxAddressSize - maxTypeTagSize

	// MinMessageSize is the smallest possible serialized message: a
	// one-character address ("/") and an empty type-tag string (","),
	// each padded to four bytes.
	MinMessageSize = 8

	// MaxMessageSize caps the total serialized size of a message.
	MaxMessageSize = MaxTransportSize

	// bundleHeaderSize is the size of the literal "#bundle\0" header.
	bundleHeaderSize = 8

	// timetagSize is the wire size of a time-tag.
	timetagSize = 8

	// MinBundleSize is the smallest possible serialized bundle: header
	// and time-tag, no elements.
	MinBundleSize = bundleHeaderSize + timetagSize

	// MaxBundleSize caps the total serialized size of a bundle.
	MaxBundleSize = MaxTransportSize

	// MaxElementsSize caps the bytes available for a bundle's element
	// area (size-prefixed sub-messages/sub-bundles).
	MaxElementsSize = MaxBundleSize - MinBundleSize

	// MaxPacketSize caps the size of a packet's contents buffer.
	MaxPacketSize = MaxTransportSize
)

// bundleTag is the 7-byte text of the bundle header, without its null
// terminator; the 8-byte wire header is bundleTag followed by one null
// byte.
const bundleTag = "#bundle"
