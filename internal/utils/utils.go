// Package utils collects a handful of small cross-cutting helpers: a
// null-check guard and hex encode/decode convenience wrappers.  Everything
// time- or byte-order-related lives in the clock and wire packages
// respectively, since those are exercised by more than one caller and
// deserve their own home.
package utils

import (
	"encoding/hex"
	"fmt"
	"reflect"
)

// CheckNotNull panics with a descriptive message if v is nil, including a
// typed nil (a nil pointer, slice, map, channel, or func boxed in the
// interface{}) rather than only a literal untyped nil.  Used at the
// boundary of constructors that the caller is expected to never invoke with
// a nil argument (a programmer error, not a runtime condition to recover
// from).
func CheckNotNull(v interface{}, what string) {
	if v == nil {
		panic(fmt.Sprintf("%s must not be nil", what))
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			panic(fmt.Sprintf("%s must not be nil", what))
		}
	}
}

// HexEncode returns the lowercase hexadecimal encoding of b.
func HexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

// HexDecode decodes a hexadecimal string into bytes.
func HexDecode(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
