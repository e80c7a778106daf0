package ucwire

import (
	"fmt"
	"reflect"

	"github.com/rawbytedev/ucwire/internal/common"
)

// Decode reconstructs out from payload, mirroring Encode shape-for-shape.
// out must be a non-nil pointer. Payload bytes left over after the value is
// complete are an error (ErrTrailingBytes); use DecodeFrom when several
// values share one payload.
func (c *Codec) Decode(payload []byte, out any) error {
	n, err := c.DecodeFrom(payload, out)
	if err != nil {
		return err
	}
	if n != len(payload) {
		return fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingBytes, n, len(payload))
	}
	return nil
}

// DecodeFrom decodes one value from the head of payload into out and returns
// the number of payload bytes consumed.
func (c *Codec) DecodeFrom(payload []byte, out any) (int, error) {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0, ErrNotPointer
	}
	d := decoder{c: c, buf: payload}
	if err := d.value(rv.Elem()); err != nil {
		return 0, err
	}
	return d.pos, nil
}

type decoder struct {
	c   *Codec
	buf []byte
	pos int
}

func (d *decoder) take(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, ErrUnexpectedEnd
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) value(v reflect.Value) error {
	k := v.Kind()
	if k == reflect.Bool {
		b, err := d.take(1)
		if err != nil {
			return err
		}
		if b[0] > 1 {
			return fmt.Errorf("%w: bool byte %#02x", ErrInvalidData, b[0])
		}
		v.SetBool(b[0] == 1)
		return nil
	}
	if sz := common.WireSize(k); sz >= 0 {
		b, err := d.take(sz)
		if err != nil {
			return err
		}
		common.SetFixed(v, b, k)
		return nil
	}

	switch k {
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := d.value(v.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Pointer:
		b, err := d.take(1)
		if err != nil {
			return err
		}
		switch b[0] {
		case 0:
			v.SetZero()
			return nil
		case 1:
			nv := reflect.New(v.Type().Elem())
			if err := d.value(nv.Elem()); err != nil {
				return err
			}
			v.Set(nv)
			return nil
		default:
			return fmt.Errorf("%w: presence byte %#02x", ErrInvalidData, b[0])
		}

	case reflect.Struct:
		for _, field := range planFor(v.Type()).fields {
			if err := d.value(v.Field(field.idx)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Interface:
		return d.union(v)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, v.Type())
	}
}

func (d *decoder) union(v reflect.Value) error {
	variants, ok := d.c.unions[v.Type()]
	if !ok {
		return fmt.Errorf("%w: %s is not a registered union", ErrUnsupported, v.Type())
	}
	b, err := d.take(1)
	if err != nil {
		return err
	}
	if int(b[0]) >= len(variants) {
		return fmt.Errorf("%w: tag %#02x, %s has %d variants", ErrInvalidTag, b[0], v.Type(), len(variants))
	}
	nv := reflect.New(variants[b[0]]).Elem()
	if err := d.value(nv); err != nil {
		return err
	}
	v.Set(nv)
	return nil
}
