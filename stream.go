package ucwire

import (
	"bytes"
	"errors"
)

// Scanner recovers packet payloads from an unreliable byte stream. Feed it
// whatever the transport delivers with Push, then drain complete payloads
// with Next. On a structural error (wrong stop marker, bad checksum, a
// length byte that lied) it drops bytes up to the next candidate start
// marker and retries, so a desynced stream realigns on its own.
//
// A Scanner is a single stream's cursor and is not safe for concurrent use;
// the Codec behind it is.
type Scanner struct {
	c       *Codec
	buf     []byte
	dropped int
}

// NewScanner returns a Scanner reading packets framed by c.
func NewScanner(c *Codec) *Scanner {
	return &Scanner{c: c}
}

// Push appends raw bytes received from the transport.
func (s *Scanner) Push(p []byte) {
	s.buf = append(s.buf, p...)
}

// Next returns the next complete payload, copied out of the internal buffer.
// ErrIncomplete means no full packet is buffered yet; push more bytes and
// call again. Buffered bytes are never discarded on ErrIncomplete.
func (s *Scanner) Next() ([]byte, error) {
	for {
		i := bytes.IndexByte(s.buf, s.c.start)
		if i < 0 {
			s.dropped += len(s.buf)
			s.buf = s.buf[:0]
			return nil, ErrIncomplete
		}
		if i > 0 {
			s.dropped += i
			s.buf = s.buf[i:]
		}

		payload, n, err := s.c.Unframe(s.buf)
		switch {
		case err == nil:
			out := append([]byte(nil), payload...)
			s.buf = s.buf[n:]
			return out, nil
		case errors.Is(err, ErrIncomplete):
			return nil, ErrIncomplete
		default:
			// false start marker: discard it and rescan
			s.dropped++
			s.buf = s.buf[1:]
		}
	}
}

// Dropped returns the number of bytes discarded while resynchronizing.
func (s *Scanner) Dropped() int {
	return s.dropped
}

// Buffered returns the number of bytes held waiting for a complete packet.
func (s *Scanner) Buffered() int {
	return len(s.buf)
}
