// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadUint16BE(t *testing.T) {
	ctx := NewParseContext([]byte{0x20, 0x8D}, 0)
	v, err := ctx.ReadUint16BE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 8333 {
		t.Fatalf("got %d want 8333", v)
	}
	if ctx.Cursor() != 2 {
		t.Fatalf("cursor at %d, want 2", ctx.Cursor())
	}
}

func TestReadUint32LE(t *testing.T) {
	ctx := NewParseContext([]byte{0x01, 0x00, 0x00, 0x00}, 0)
	v, err := ctx.ReadUint32LE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Fatalf("got %d want 1", v)
	}
}

func TestReadTruncated(t *testing.T) {
	ctx := NewParseContext([]byte{0x01, 0x02}, 0)
	if _, err := ctx.ReadUint32LE(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	tests := []struct {
		in  uint64
		buf []byte
	}{
		{0, []byte{0x00}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, test := range tests {
		got := AppendVarInt(nil, test.in)
		if !bytes.Equal(got, test.buf) {
			t.Errorf("AppendVarInt #%d got %x want %x", i, got, test.buf)
		}

		ctx := NewParseContext(test.buf, 0)
		v, err := ctx.ReadVarInt()
		if err != nil {
			t.Errorf("ReadVarInt #%d error %v", i, err)
			continue
		}
		if v != test.in {
			t.Errorf("ReadVarInt #%d got %d want %d", i, v, test.in)
		}
	}
}

func TestVarIntNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"0 encoded with 2 byte discriminant", []byte{0xfd, 0x00, 0x00}},
		{"0xfc encoded with 2 byte discriminant", []byte{0xfd, 0xfc, 0x00}},
		{"0xffff encoded with 4 byte discriminant", []byte{0xfe, 0xff, 0xff, 0x00, 0x00}},
		{"0xffffffff encoded with 8 byte discriminant", []byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00,
		}},
	}

	for _, test := range tests {
		ctx := NewParseContext(test.buf, 0)
		if _, err := ctx.ReadVarInt(); !errors.Is(err, ErrNonCanonicalVarInt) {
			t.Errorf("%s: got %v, want ErrNonCanonicalVarInt", test.name, err)
		}
	}
}

func TestVarStringRoundTrip(t *testing.T) {
	const s = "onion"
	buf := AppendVarString(nil, s)

	ctx := NewParseContext(buf, 0)
	got, err := ctx.ReadVarString(MaxVarIntPayload * 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Fatalf("got %q want %q", got, s)
	}
}

func TestVarStringTooLong(t *testing.T) {
	buf := AppendVarString(nil, "hello")
	ctx := NewParseContext(buf, 0)
	if _, err := ctx.ReadVarString(2); !errors.Is(err, ErrVarStringTooLong) {
		t.Fatalf("got %v, want ErrVarStringTooLong", err)
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	buf := AppendVarBytes(nil, want)

	ctx := NewParseContext(buf, 0)
	got, err := ctx.ReadVarBytes(1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestVarIntSerializeSize(t *testing.T) {
	tests := []struct {
		in   uint64
		size int
	}{
		{0, 1},
		{0xfc, 1},
		{0xfd, 3},
		{0xffff, 3},
		{0x10000, 5},
		{0xffffffff, 5},
		{0x100000000, 9},
	}

	for i, test := range tests {
		if got := VarIntSerializeSize(test.in); got != test.size {
			t.Errorf("#%d: got %d want %d", i, got, test.size)
		}
	}
}
