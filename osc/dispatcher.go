package osc

import (
	"github.com/cespare/xxhash/v2"
)

// handlerEntry pairs a registered address pattern with its handler.
type handlerEntry struct {
	pattern string
	handler MessageHandler
}

// AddressDispatcher routes messages to handlers registered against
// address patterns. Registrations whose pattern contains no glob
// metacharacters are indexed by an xxhash digest of the literal
// address for O(1) lookup; everything else falls back to a linear
// scan through Match.
type AddressDispatcher struct {
	literal map[uint64][]handlerEntry
	pattern []handlerEntry
}

// NewAddressDispatcher returns an empty AddressDispatcher.
func NewAddressDispatcher() *AddressDispatcher {
	return &AddressDispatcher{literal: make(map[uint64][]handlerEntry)}
}

// AddHandler registers handler for addr. If addr is a literal address
// (IsLiteral), it is indexed for the fast path; otherwise it is
// matched against incoming addresses with Match on every Dispatch.
func (d *AddressDispatcher) AddHandler(addr string, handler MessageHandler) {
	entry := handlerEntry{pattern: addr, handler: handler}
	if IsLiteral(addr) {
		key := xxhash.Sum64String(addr)
		d.literal[key] = append(d.literal[key], entry)
		return
	}
	d.pattern = append(d.pattern, entry)
}

// Dispatch invokes every handler registered against a pattern that
// matches msg's address, passing tt through unchanged.
func (d *AddressDispatcher) Dispatch(tt *Timetag, msg *Message) error {
	key := xxhash.Sum64String(msg.Address())
	for _, entry := range d.literal[key] {
		if entry.pattern == msg.Address() {
			if err := entry.handler(tt, msg); err != nil {
				return err
			}
		}
	}
	for _, entry := range d.pattern {
		if Match(entry.pattern, msg.Address()) {
			if err := entry.handler(tt, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// AsMessageHandler adapts the dispatcher to the MessageHandler
// signature, so it can be installed directly on a Packet.
func (d *AddressDispatcher) AsMessageHandler() MessageHandler {
	return d.Dispatch
}
