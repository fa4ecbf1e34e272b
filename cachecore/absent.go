package cachecore

import "reflect"

// IsAbsent reports whether value cannot be stored: an untyped nil or a nil
// pointer, map, slice, chan, func or interface.
func IsAbsent(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
