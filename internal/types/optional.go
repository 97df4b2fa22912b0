package types

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Optional wraps a value together with whether the caller supplied it.
//
// An absent Optional means "leave the stored value alone"; a present one means
// "write this value", even when it is the zero value. For nullable columns use
// a pointer type so that an explicit JSON null is kept as a present nil.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether the value was supplied
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was supplied
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value if supplied, otherwise fallback
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// UnmarshalJSON marks the field as present. An explicit null is kept as a
// present nil for nullable types (pointers, slices, maps) and is treated as
// absent otherwise, so a null never zeroes a non-nullable column.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var v T
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		if !nullable[T]() {
			*o = Optional[T]{}
			return nil
		}
	} else if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = v
	o.set = true
	return nil
}

func nullable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// MarshalJSON encodes the wrapped value, or null when absent
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
