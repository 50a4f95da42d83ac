// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// MaxVarIntPayload is the maximum payload size for a variable length
// integer.
const MaxVarIntPayload = 9

var (
	// littleEndian is a convenience variable since binary.LittleEndian is
	// quite long.
	littleEndian = binary.LittleEndian

	// bigEndian is a convenience variable since binary.BigEndian is quite
	// long.
	bigEndian = binary.BigEndian
)

// ParseContext threads a byte buffer and a mutable read cursor through the
// primitive readers below.  It replaces a hidden cursor field on the message
// being parsed: every reader takes a *ParseContext, reads from buf[cur:],
// and advances cur by the number of bytes consumed.
type ParseContext struct {
	buf []byte
	cur int
}

// NewParseContext returns a ParseContext over buf starting at offset.
func NewParseContext(buf []byte, offset int) *ParseContext {
	return &ParseContext{buf: buf, cur: offset}
}

// Cursor returns the current read position.
func (c *ParseContext) Cursor() int {
	return c.cur
}

// remaining returns the number of unread bytes left in the buffer.
func (c *ParseContext) remaining() int {
	return len(c.buf) - c.cur
}

// require returns ErrTruncated if fewer than n bytes remain to be read.
func (c *ParseContext) require(op string, n int) error {
	if c.remaining() < n {
		msg := fmt.Sprintf("need %d bytes, only %d remain", n, c.remaining())
		return messageError(op, ErrTruncated, msg)
	}
	return nil
}

// ReadUint16BE reads a 16-bit unsigned integer in network byte order
// (big-endian) and advances the cursor by 2.  PeerAddress.Port is the only
// field in this wire format encoded this way.
func (c *ParseContext) ReadUint16BE() (uint16, error) {
	const op = "ReadUint16BE"
	if err := c.require(op, 2); err != nil {
		return 0, err
	}
	v := bigEndian.Uint16(c.buf[c.cur : c.cur+2])
	c.cur += 2
	return v, nil
}

// ReadUint32LE reads a 32-bit unsigned little-endian integer and advances
// the cursor by 4.
func (c *ParseContext) ReadUint32LE() (uint32, error) {
	const op = "ReadUint32LE"
	if err := c.require(op, 4); err != nil {
		return 0, err
	}
	v := littleEndian.Uint32(c.buf[c.cur : c.cur+4])
	c.cur += 4
	return v, nil
}

// ReadUint64LE reads a 64-bit unsigned little-endian integer and advances
// the cursor by 8.
func (c *ParseContext) ReadUint64LE() (uint64, error) {
	const op = "ReadUint64LE"
	if err := c.require(op, 8); err != nil {
		return 0, err
	}
	v := littleEndian.Uint64(c.buf[c.cur : c.cur+8])
	c.cur += 8
	return v, nil
}

// ReadBytes returns a copy of the next n bytes and advances the cursor by n.
func (c *ParseContext) ReadBytes(n int) ([]byte, error) {
	const op = "ReadBytes"
	if err := c.require(op, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.cur:c.cur+n])
	c.cur += n
	return out, nil
}

// ReadVarInt reads a bitcoin-style variable length integer: a discriminant
// byte followed by zero or more bytes depending on its value.
func (c *ParseContext) ReadVarInt() (uint64, error) {
	const op = "ReadVarInt"
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	discriminant := b[0]

	var rv uint64
	switch discriminant {
	case 0xff:
		v, err := c.ReadUint64LE()
		if err != nil {
			return 0, err
		}
		rv = v
		if rv < 0x100000000 {
			return 0, nonCanonicalVarIntError(op, rv, discriminant, 0x100000000)
		}

	case 0xfe:
		v, err := c.readUint32LEAsVarInt()
		if err != nil {
			return 0, err
		}
		rv = v
		if rv < 0x10000 {
			return 0, nonCanonicalVarIntError(op, rv, discriminant, 0x10000)
		}

	case 0xfd:
		v, err := c.readUint16LEAsVarInt()
		if err != nil {
			return 0, err
		}
		rv = v
		if rv < 0xfd {
			return 0, nonCanonicalVarIntError(op, rv, discriminant, 0xfd)
		}

	default:
		rv = uint64(discriminant)
	}
	return rv, nil
}

// readUint16LEAsVarInt and readUint32LEAsVarInt avoid re-reading a
// discriminant byte that ReadVarInt already consumed.
func (c *ParseContext) readUint16LEAsVarInt() (uint64, error) {
	const op = "ReadVarInt"
	if err := c.require(op, 2); err != nil {
		return 0, err
	}
	v := littleEndian.Uint16(c.buf[c.cur : c.cur+2])
	c.cur += 2
	return uint64(v), nil
}

func (c *ParseContext) readUint32LEAsVarInt() (uint64, error) {
	const op = "ReadVarInt"
	if err := c.require(op, 4); err != nil {
		return 0, err
	}
	v := littleEndian.Uint32(c.buf[c.cur : c.cur+4])
	c.cur += 4
	return uint64(v), nil
}

func nonCanonicalVarIntError(op string, value uint64, discriminant byte, min uint64) error {
	msg := fmt.Sprintf("non-canonical varint %x - discriminant %x must encode "+
		"a value greater than or equal to %x", value, discriminant, min)
	return messageError(op, ErrNonCanonicalVarInt, msg)
}

// ReadVarString reads a variable length string: a varint length prefix
// followed by that many bytes.
func (c *ParseContext) ReadVarString(maxAllowed uint64) (string, error) {
	const op = "ReadVarString"
	count, err := c.ReadVarInt()
	if err != nil {
		return "", err
	}
	if count > maxAllowed {
		msg := fmt.Sprintf("variable length string is too long [count %d, max %d]",
			count, maxAllowed)
		return "", messageError(op, ErrVarStringTooLong, msg)
	}
	b, err := c.ReadBytes(int(count))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadVarBytes reads a variable length byte array: a varint length prefix
// followed by that many bytes.
func (c *ParseContext) ReadVarBytes(maxAllowed uint64) ([]byte, error) {
	const op = "ReadVarBytes"
	count, err := c.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if count > maxAllowed {
		msg := fmt.Sprintf("variable length byte array is too long [count %d, max %d]",
			count, maxAllowed)
		return nil, messageError(op, ErrVarBytesTooLong, msg)
	}
	return c.ReadBytes(int(count))
}

// WriteUint16BE writes n to sink as a 16-bit big-endian integer.
// PeerAddress.Port is the only field in this wire format encoded this way.
func WriteUint16BE(sink []byte, n uint16) {
	bigEndian.PutUint16(sink, n)
}

// WriteUint32LE writes n to sink as a 32-bit little-endian integer.
func WriteUint32LE(sink []byte, n uint32) {
	littleEndian.PutUint32(sink, n)
}

// WriteUint64LE writes n to sink as a 64-bit little-endian integer.
func WriteUint64LE(sink []byte, n uint64) {
	littleEndian.PutUint64(sink, n)
}

// VarIntSerializeSize returns the number of bytes it would take to encode
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= math.MaxUint16:
		return 3
	case val <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// AppendVarInt appends the variable length integer encoding of val to buf
// and returns the extended slice.
func AppendVarInt(buf []byte, val uint64) []byte {
	switch {
	case val < 0xfd:
		return append(buf, byte(val))
	case val <= math.MaxUint16:
		buf = append(buf, 0xfd, 0, 0)
		littleEndian.PutUint16(buf[len(buf)-2:], uint16(val))
		return buf
	case val <= math.MaxUint32:
		buf = append(buf, 0xfe, 0, 0, 0, 0)
		littleEndian.PutUint32(buf[len(buf)-4:], uint32(val))
		return buf
	default:
		buf = append(buf, 0xff, 0, 0, 0, 0, 0, 0, 0, 0)
		littleEndian.PutUint64(buf[len(buf)-8:], val)
		return buf
	}
}

// AppendVarString appends the variable length string encoding of s
// (varint length prefix followed by the raw bytes) to buf.
func AppendVarString(buf []byte, s string) []byte {
	buf = AppendVarInt(buf, uint64(len(s)))
	return append(buf, s...)
}

// AppendVarBytes appends the variable length byte array encoding of b
// (varint length prefix followed by the raw bytes) to buf.
func AppendVarBytes(buf []byte, b []byte) []byte {
	buf = AppendVarInt(buf, uint64(len(b)))
	return append(buf, b...)
}

// CurrentTimeSeconds returns the wall clock time in whole seconds since the
// Unix epoch.  It is the only non-deterministic primitive in this package;
// tests inject a fixed clock instead of calling it directly.
func CurrentTimeSeconds() int64 {
	return time.Now().Unix()
}
