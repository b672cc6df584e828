package pure

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrUnhashableKey = errors.New("pure: argument is neither comparable nor a fmt.Stringer")
	ErrEmptyKeys     = errors.New("pure: empty key path")
)

// Key is one segment of a memo table path: either a comparable argument
// itself or a digest of a non-comparable fmt.Stringer.
type Key any

type stringerKey struct {
	typ reflect.Type
	sum uint64
}

// KeyOf derives the table key for a single argument. Comparable values key
// by themselves; non-comparable values fall back to an xxhash digest of their
// String() form, tagged with their dynamic type. Anything else panics with
// ErrUnhashableKey. A struct or array whose interface fields hold slices,
// maps or funcs counts as non-comparable.
func KeyOf(arg any) Key {
	if arg == nil {
		return nil
	}
	typ := reflect.TypeOf(arg)
	if typ.Comparable() && reflect.ValueOf(arg).Comparable() {
		return arg
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return stringerKey{typ: typ, sum: xxhash.Sum64String(s.String())}
	}
	panic(fmt.Errorf("%w: %T", ErrUnhashableKey, arg))
}

// KeysOf derives the full key path of an argument list, one segment per argument.
func KeysOf(args ...any) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		keys[i] = KeyOf(arg)
	}
	return keys
}

// encodeKeys flattens a key path into a single string. Each segment is
// length-prefixed and spells out the dynamic type of every value it holds,
// so int(1) and float64(1) differ. Pointers and channels encode their
// address: two pointers to equal values are different keys, as they are
// under ==.
func encodeKeys(keys []Key) string {
	var b, seg strings.Builder
	for _, k := range keys {
		seg.Reset()
		writeKey(&seg, reflect.ValueOf(k))
		b.WriteString(strconv.Itoa(seg.Len()))
		b.WriteByte(':')
		b.WriteString(seg.String())
	}
	return b.String()
}

func writeKey(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}
	t := v.Type()
	if t.PkgPath() != "" {
		b.WriteString(t.PkgPath())
		b.WriteByte('/')
	}
	b.WriteString(t.String())
	b.WriteByte('=')

	switch v.Kind() {
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		b.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
	case reflect.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		writeKey(b, v.Elem())
	case reflect.Struct:
		b.WriteByte('{')
		for i := range v.NumField() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, v.Field(i))
		}
		b.WriteByte('}')
	case reflect.Array:
		b.WriteByte('[')
		for i := range v.Len() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, v.Index(i))
		}
		b.WriteByte(']')
	default:
		// maps, slices and funcs never come out of KeyOf
		panic(fmt.Errorf("%w: %s", ErrUnhashableKey, t))
	}
}
