package ucwire

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/ucwire/internal/common"
)

// Per-struct field plans, shared by encode and decode. Plans depend only on
// the struct type, never on codec configuration, so a single process-wide
// cache is safe.
var plans sync.Map // reflect.Type -> *fieldPlan

type fieldPlan struct {
	fields []fieldInfo
	// size is the exact payload size of the struct, or -1 when a field is
	// dynamic (optional or union). Used only as an allocation hint.
	size int
}

type fieldInfo struct {
	idx int
}

func planFor(t reflect.Type) *fieldPlan {
	if p, ok := plans.Load(t); ok {
		return p.(*fieldPlan)
	}
	p := &fieldPlan{size: 0}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // skip unexported
		}
		p.fields = append(p.fields, fieldInfo{idx: i})
		if p.size >= 0 {
			if sz := staticSize(sf.Type); sz >= 0 {
				p.size += sz
			} else {
				p.size = -1
			}
		}
	}
	actual, _ := plans.LoadOrStore(t, p)
	return actual.(*fieldPlan)
}

// staticSize returns t's encoded size when it is the same for every value of
// t, -1 when it varies (optionals, unions) or t is unsupported.
func staticSize(t reflect.Type) int {
	if sz := common.WireSize(t.Kind()); sz >= 0 {
		return sz
	}
	switch t.Kind() {
	case reflect.Array:
		elem := staticSize(t.Elem())
		if elem < 0 {
			return -1
		}
		return t.Len() * elem
	case reflect.Struct:
		return planFor(t).size
	default:
		return -1
	}
}

// Encode walks v's shape and produces its payload bytes. A top-level
// pointer is followed; nested pointers encode as optionals (one presence
// byte, then the value if present). On error no bytes are returned.
func (c *Codec) Encode(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil", ErrInvalidData)
	}
	hint := staticSize(rv.Type())
	if hint < 0 {
		hint = 32
	}
	return c.appendValue(make([]byte, 0, hint), rv)
}

func (c *Codec) appendValue(dst []byte, v reflect.Value) ([]byte, error) {
	if common.IsWireKind(v.Kind()) {
		return common.AppendFixed(dst, v), nil
	}

	var err error
	switch v.Kind() {
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if dst, err = c.appendValue(dst, v.Index(i)); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case reflect.Pointer:
		if v.IsNil() {
			return append(dst, 0), nil
		}
		return c.appendValue(append(dst, 1), v.Elem())

	case reflect.Struct:
		for _, field := range planFor(v.Type()).fields {
			if dst, err = c.appendValue(dst, v.Field(field.idx)); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case reflect.Interface:
		return c.appendUnion(dst, v)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, v.Type())
	}
}

func (c *Codec) appendUnion(dst []byte, v reflect.Value) ([]byte, error) {
	variants, ok := c.unions[v.Type()]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a registered union", ErrUnsupported, v.Type())
	}
	if v.IsNil() {
		return nil, fmt.Errorf("%w: nil %s union value", ErrInvalidData, v.Type())
	}
	inner := v.Elem()
	for tag, vt := range variants {
		if inner.Type() == vt {
			return c.appendValue(append(dst, byte(tag)), inner)
		}
	}
	return nil, fmt.Errorf("%w: %s is not a declared variant of %s", ErrUnsupported, inner.Type(), v.Type())
}
