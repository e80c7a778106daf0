package ucwire

// Packet layout:
//
//	byte 0       start marker
//	byte 1       payload length N (0..=255)
//	bytes 2..2+N payload
//	byte 2+N     stop marker
//	byte 3+N     CRC-8 over bytes [0..3+N)
const (
	// MaxPayload is the largest payload a single packet can carry.
	MaxPayload = 255
	// Overhead is the number of framing bytes around a payload.
	Overhead = 4
)

// Frame wraps payload in the packet envelope and appends the checksum.
func (c *Codec) Frame(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, ErrPayloadTooLarge
	}
	out := make([]byte, 0, len(payload)+Overhead)
	out = append(out, c.start, byte(len(payload)))
	out = append(out, payload...)
	out = append(out, c.stop)
	return append(out, Checksum(out)), nil
}

// Unframe validates a packet at the head of buf and returns its payload and
// the total number of bytes consumed. The payload aliases buf; no copy is
// made. ErrIncomplete means buf may still grow into a valid packet and the
// caller should retry with more bytes; ErrBadStart, ErrBadStop and
// ErrChecksum mean the head of buf is not a packet and the caller should
// resync to the next start marker.
func (c *Codec) Unframe(buf []byte) ([]byte, int, error) {
	if len(buf) == 0 {
		return nil, 0, ErrIncomplete
	}
	if buf[0] != c.start {
		return nil, 0, ErrBadStart
	}
	if len(buf) < 2 {
		return nil, 0, ErrIncomplete
	}
	n := int(buf[1])
	total := n + Overhead
	if len(buf) < total {
		return nil, 0, ErrIncomplete
	}
	if buf[2+n] != c.stop {
		return nil, 0, ErrBadStop
	}
	if Checksum(buf[:total-1]) != buf[total-1] {
		return nil, 0, ErrChecksum
	}
	return buf[2 : 2+n], total, nil
}
