package collection

import (
	"fmt"
	"reflect"
)

// fieldOf reads the exported struct field (or string-keyed map entry) called
// name from v, following pointers and interfaces.
func fieldOf(v any, name string) (any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %q on nil %s", ErrFieldNotFound, name, rv.Type())
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, fmt.Errorf("%w: %q in %s", ErrFieldNotFound, name, rv.Type())
		}
		return rv.FieldByIndex(f.Index).Interface(), nil
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %q in map keyed by %s", ErrFieldNotFound, name, kt)
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return nil, nil
		}
		return mv.Interface(), nil
	case reflect.Invalid:
		return nil, fmt.Errorf("%w: %q on nil", ErrFieldNotFound, name)
	default:
		return nil, fmt.Errorf("%w: %q on %s", ErrFieldNotFound, name, rv.Type())
	}
}

// fieldAs reads a field and converts it to O. Numeric fields convert to any
// numeric O, string-kinded fields to any string-kinded O.
func fieldAs[O any](v any, name string) (O, error) {
	var zero O
	raw, err := fieldOf(v, name)
	if err != nil {
		return zero, err
	}
	if o, ok := raw.(O); ok {
		return o, nil
	}

	want := reflect.TypeFor[O]()
	rv := reflect.ValueOf(raw)
	if rv.IsValid() && sameFamily(rv.Kind(), want.Kind()) {
		return rv.Convert(want).Interface().(O), nil
	}
	return zero, fmt.Errorf("%w: %q is %T, want %s", ErrFieldType, name, raw, want)
}

func sameFamily(a, b reflect.Kind) bool {
	family := func(k reflect.Kind) int {
		switch k {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.Float32, reflect.Float64:
			return 1
		case reflect.String:
			return 2
		}
		return 0
	}
	fa := family(a)
	return fa != 0 && fa == family(b)
}
