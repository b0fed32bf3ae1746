// SPDX-License-Identifier: MIT

package validate

import (
	"math"
	"reflect"
)

// InfSentinel replaces ±Inf in sanitized values.
const InfSentinel = capSentinel

// Sanitize rewrites, in place, every float reachable from v through
// pointers, structs, slices, arrays, maps and interfaces: NaN becomes 0 and
// ±Inf becomes ±InfSentinel. v must be a pointer (or a map/slice) for the
// changes to be visible. Unexported struct fields are left alone.
func Sanitize(v any) {
	sanitizeValue(reflect.ValueOf(v))
}

func cleanFloat(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return InfSentinel
	case math.IsInf(f, -1):
		return -InfSentinel
	}
	return f
}

func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if rv.CanSet() {
			rv.SetFloat(cleanFloat(rv.Float()))
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem())
		}
	case reflect.Interface:
		if rv.IsNil() {
			return
		}
		elem := rv.Elem()
		cp := reflect.New(elem.Type()).Elem()
		cp.Set(elem)
		sanitizeValue(cp)
		if rv.CanSet() {
			rv.Set(cp)
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if f := rv.Field(i); f.CanSet() {
				sanitizeValue(f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			sanitizeValue(rv.Index(i))
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			cp := reflect.New(iter.Value().Type()).Elem()
			cp.Set(iter.Value())
			sanitizeValue(cp)
			rv.SetMapIndex(iter.Key(), cp)
		}
	}
}
