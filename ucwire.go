// Package ucwire frames and (de)serializes small structured messages for
// byte-oriented links to microcontroller peripherals. Values are limited to
// what a tiny peer can parse in place: booleans, integers up to 16 bits,
// float32, fixed-size arrays, optionals (pointers), structs and tagged
// unions. Variable-length sequences, maps and wider integers are rejected.
package ucwire

import (
	"fmt"
	"reflect"
)

// Default marker bytes, 'A' and '#'.
const (
	DefaultStart byte = 'A'
	DefaultStop  byte = '#'
)

// Codec holds the two marker bytes and the declared union variant sets. It
// is immutable after New and safe for concurrent use; every call works only
// on its own buffers.
type Codec struct {
	start  byte
	stop   byte
	unions map[reflect.Type][]reflect.Type
}

type Option func(*Codec)

// WithUnion declares the variant set of an interface type, in tag order.
// iface must be a nil interface pointer such as (*Command)(nil); variants
// are prototype values of the concrete types, at most 256 of them. A struct
// with no fields makes a unit variant (tag byte only on the wire).
// Misdeclarations panic, since they are construction-time programming
// errors, not runtime conditions.
func WithUnion(iface any, variants ...any) Option {
	return func(c *Codec) {
		pt := reflect.TypeOf(iface)
		if pt == nil || pt.Kind() != reflect.Pointer || pt.Elem().Kind() != reflect.Interface {
			panic("ucwire: WithUnion wants a nil interface pointer like (*Command)(nil)")
		}
		it := pt.Elem()
		if len(variants) > 256 {
			panic(fmt.Sprintf("ucwire: %s declares %d variants, tag is one byte", it, len(variants)))
		}
		vts := make([]reflect.Type, 0, len(variants))
		for _, v := range variants {
			vt := reflect.TypeOf(v)
			if vt == nil || !vt.Implements(it) {
				panic(fmt.Sprintf("ucwire: %T does not implement %s", v, it))
			}
			vts = append(vts, vt)
		}
		c.unions[it] = vts
	}
}

// New returns a Codec using the given marker bytes. Marker choice does not
// affect correctness, only wire compatibility between peers.
func New(start, stop byte, opts ...Option) *Codec {
	c := &Codec{start: start, stop: stop, unions: make(map[reflect.Type][]reflect.Type)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a Codec with the 'A'/'#' markers.
func Default(opts ...Option) *Codec {
	return New(DefaultStart, DefaultStop, opts...)
}

// Serialize encodes v and frames the result into a ready-to-send packet.
func (c *Codec) Serialize(v any) ([]byte, error) {
	payload, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return c.Frame(payload)
}

// SerializeTo writes the framed packet for v into buf and returns the number
// of bytes written, ErrBufferFull if buf cannot hold it.
func (c *Codec) SerializeTo(buf []byte, v any) (int, error) {
	pkt, err := c.Serialize(v)
	if err != nil {
		return 0, err
	}
	if len(pkt) > len(buf) {
		return 0, ErrBufferFull
	}
	return copy(buf, pkt), nil
}

// Deserialize validates the packet at the head of buf, decodes its payload
// into out and returns the packet's total size so the caller can advance.
func (c *Codec) Deserialize(buf []byte, out any) (int, error) {
	payload, n, err := c.Unframe(buf)
	if err != nil {
		return 0, err
	}
	if err := c.Decode(payload, out); err != nil {
		return 0, err
	}
	return n, nil
}
