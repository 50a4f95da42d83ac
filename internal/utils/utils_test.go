// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utils

import (
	"bytes"
	"net"
	"testing"
)

func TestCheckNotNullPanicsOnNilPointer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil pointer")
		}
	}()
	var p *int
	CheckNotNull(p, "p")
}

func TestCheckNotNullPanicsOnTypedNilSlice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on a nil net.IP boxed in an interface")
		}
	}()
	var addr net.IP
	CheckNotNull(addr, "addr")
}

func TestCheckNotNullAllowsNonNil(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	CheckNotNull(net.IPv4(1, 2, 3, 4), "addr")
}

func TestHexEncodeDecodeRoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := HexEncode(want)
	if encoded != "deadbeef" {
		t.Fatalf("got %q, want %q", encoded, "deadbeef")
	}

	got, err := HexDecode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestHexDecodeRejectsOddLength(t *testing.T) {
	if _, err := HexDecode("abc"); err == nil {
		t.Fatalf("expected error decoding odd-length hex string")
	}
}
