// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"testing"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrTruncated, "ErrTruncated"},
		{ErrBadAddress, "ErrBadAddress"},
		{ErrNoAddress, "ErrNoAddress"},
		{ErrUnsupportedVersion, "ErrUnsupportedVersion"},
		{ErrMalformedCmd, "ErrMalformedCmd"},
		{ErrUnknownCmd, "ErrUnknownCmd"},
		{ErrWrongNetwork, "ErrWrongNetwork"},
		{ErrPayloadTooLarge, "ErrPayloadTooLarge"},
		{ErrPayloadChecksum, "ErrPayloadChecksum"},
		{ErrCmdTooLong, "ErrCmdTooLong"},
		{ErrNonCanonicalVarInt, "ErrNonCanonicalVarInt"},
		{ErrVarStringTooLong, "ErrVarStringTooLong"},
		{ErrVarBytesTooLong, "ErrVarBytesTooLong"},
		{ErrTooManyAddrs, "ErrTooManyAddrs"},
	}

	for i, test := range tests {
		if result := test.in.Error(); result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

func TestWireError(t *testing.T) {
	tests := []struct {
		in   *WireError
		want string
	}{
		{&WireError{Description: "some error"}, "some error"},
		{messageError("op", ErrTruncated, "human-readable error"), "human-readable error"},
	}

	for i, test := range tests {
		if result := test.in.Error(); result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "ErrTruncated == ErrTruncated",
			err:       ErrTruncated,
			target:    ErrTruncated,
			wantMatch: true,
		},
		{
			name:      "WireError.ErrTruncated == ErrTruncated",
			err:       messageError("op", ErrTruncated, ""),
			target:    ErrTruncated,
			wantMatch: true,
		},
		{
			name:      "ErrBadAddress != ErrTruncated",
			err:       ErrBadAddress,
			target:    ErrTruncated,
			wantMatch: false,
		},
		{
			name:      "WireError.ErrBadAddress != ErrTruncated",
			err:       messageError("op", ErrBadAddress, ""),
			target:    ErrTruncated,
			wantMatch: false,
		},
	}

	for _, test := range tests {
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: got %v want %v", test.name, result, test.wantMatch)
		}
	}
}

func TestErrNeedMoreIsSentinel(t *testing.T) {
	if errors.Is(ErrNeedMore, ErrTruncated) {
		t.Fatalf("ErrNeedMore must not be confused with ErrTruncated")
	}
}
