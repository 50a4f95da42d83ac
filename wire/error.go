// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "errors"

// ErrNeedMore is returned by MessageSerializer.Next when buf does not yet
// hold a complete message header, or holds a header but not yet its full
// payload.  It is a plain sentinel rather than an ErrorKind: it signals "not
// enough data yet," not a malformed stream, and callers are expected to
// read more bytes and retry rather than treat it as a parse failure.
var ErrNeedMore = errors.New("wire: need more data")

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so callers can directly check against an error kind when
// determining how to react to a failure.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

const (
	// ErrTruncated indicates a reader ran out of bytes before a field
	// could be fully decoded.
	ErrTruncated = ErrorKind("ErrTruncated")

	// ErrBadAddress indicates the platform rejected a 16-byte address as
	// malformed.  This should never happen for well-formed input and is
	// escalated as an internal error rather than a protocol error.
	ErrBadAddress = ErrorKind("ErrBadAddress")

	// ErrNoAddress indicates an attempt to serialize a PeerAddress that
	// carries a hostname but no resolved IP.
	ErrNoAddress = ErrorKind("ErrNoAddress")

	// ErrUnsupportedVersion indicates a message was asked to encode or
	// decode itself for a protocol version it does not support.
	ErrUnsupportedVersion = ErrorKind("ErrUnsupportedVersion")

	// ErrMalformedCmd indicates a command string in a message header
	// contained bytes outside of strict ASCII.
	ErrMalformedCmd = ErrorKind("ErrMalformedCmd")

	// ErrUnknownCmd indicates a message header named a command for which
	// no concrete message type is registered.
	ErrUnknownCmd = ErrorKind("ErrUnknownCmd")

	// ErrWrongNetwork indicates a message's magic did not match the
	// network the serializer was configured for.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrPayloadTooLarge indicates a header declared a payload length
	// larger than MaxMessagePayload or the message-specific maximum.
	ErrPayloadTooLarge = ErrorKind("ErrPayloadTooLarge")

	// ErrPayloadChecksum indicates the checksum carried in a message
	// header did not match the double SHA-256 of the payload.
	ErrPayloadChecksum = ErrorKind("ErrPayloadChecksum")

	// ErrCmdTooLong indicates a command name exceeds CommandSize bytes.
	ErrCmdTooLong = ErrorKind("ErrCmdTooLong")

	// ErrNonCanonicalVarInt indicates a variable length integer was
	// encoded using more bytes than necessary for its value.
	ErrNonCanonicalVarInt = ErrorKind("ErrNonCanonicalVarInt")

	// ErrVarStringTooLong indicates a variable length string declared a
	// length larger than the maximum allowed.
	ErrVarStringTooLong = ErrorKind("ErrVarStringTooLong")

	// ErrVarBytesTooLong indicates a variable length byte array declared
	// a length larger than the maximum allowed.
	ErrVarBytesTooLong = ErrorKind("ErrVarBytesTooLong")

	// ErrTooManyAddrs indicates an addr message carries, or was asked to
	// carry, more than MaxAddrPerMsg addresses.
	ErrTooManyAddrs = ErrorKind("ErrTooManyAddrs")
)

// WireError identifies an error related to parsing, serializing, or framing
// a wire message.  It has full support for errors.Is and errors.As so
// callers can ascertain the specific reason for the error by checking the
// underlying ErrorKind.
//
// The taxonomy named in the design (ProtocolError, EnvelopeError,
// InternalError) is not expressed as distinct Go types; it is a grouping of
// the ErrorKind values above:
//
//	ProtocolError:  ErrTruncated, ErrNonCanonicalVarInt,
//	                ErrVarStringTooLong, ErrVarBytesTooLong,
//	                ErrUnsupportedVersion
//	EnvelopeError:  ErrWrongNetwork, ErrPayloadTooLarge, ErrPayloadChecksum,
//	                ErrUnknownCmd, ErrMalformedCmd, ErrCmdTooLong
//	InternalError:  ErrBadAddress, ErrNoAddress
//
// Callers that need to act on the category rather than the specific kind
// use errors.Is against the individual ErrorKind constants.
type WireError struct {
	Op          string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *WireError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error, which is always an ErrorKind
// for errors produced within this package.
func (e *WireError) Unwrap() error {
	return e.Err
}

// messageError creates a WireError given a set of arguments.
func messageError(op string, kind ErrorKind, desc string) *WireError {
	return &WireError{Op: op, Err: kind, Description: desc}
}
