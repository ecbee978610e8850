package gltf

import (
	"fmt"
	"math"
)

type int64er interface {
	Int64() (int64, error)
}

// intField reads a non-negative integer member. ok is false when the key is absent.
func intField(obj Object, key string) (n int, ok bool, err error) {
	v, present := obj[key]
	if !present {
		return 0, false, nil
	}
	var i64 int64
	switch x := v.(type) {
	case int:
		i64 = int64(x)
	case int64:
		i64 = x
	case float64:
		if x != math.Trunc(x) {
			return 0, true, fmt.Errorf("%w: %s=%v is not an integer", ErrInvalidField, key, x)
		}
		i64 = int64(x)
	case int64er:
		i64, err = x.Int64()
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s=%v is not an integer", ErrInvalidField, key, x)
		}
	default:
		return 0, true, fmt.Errorf("%w: %s has type %T", ErrInvalidField, key, v)
	}
	if i64 < 0 || i64 > math.MaxUint32 {
		return 0, true, fmt.Errorf("%w: %s=%d out of range", ErrInvalidField, key, i64)
	}
	return int(i64), true, nil
}

// requireInt reads an integer member that must be present.
func requireInt(obj Object, where, key string) (int, error) {
	n, ok, err := intField(obj, key)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", where, err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s", ErrMissingField, where, key)
	}
	return n, nil
}

// optionalInt reads an integer member, defaulting to def when absent.
func optionalInt(obj Object, where, key string, def int) (int, error) {
	n, ok, err := intField(obj, key)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", where, err)
	}
	if !ok {
		return def, nil
	}
	return n, nil
}

// stringField reads a string member. ok is false when the key is absent.
func stringField(obj Object, key string) (s string, ok bool, err error) {
	v, present := obj[key]
	if !present {
		return "", false, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", true, fmt.Errorf("%w: %s has type %T", ErrInvalidField, key, v)
	}
	return s, true, nil
}

// viewRange resolves a buffer view to its owning buffer and byte range.
func viewRange(view Object, where string) (buffer, offset, length int, err error) {
	if buffer, err = requireInt(view, where, "buffer"); err != nil {
		return
	}
	if offset, err = optionalInt(view, where, "byteOffset", 0); err != nil {
		return
	}
	length, err = requireInt(view, where, "byteLength")
	return
}
