// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
	"strings"

	"github.com/inchain/inchain/chaincfg/chainhash"
)

// MessageHeaderSize is the number of bytes in a message header: magic (4) +
// command (12) + payload length (4) + checksum (4).
const MessageHeaderSize = 24

// CommandSize is the fixed size of the command field in a message header.
// Shorter commands are zero padded to this size.
const CommandSize = 12

// MaxMessagePayload is the maximum bytes a message payload can be,
// regardless of any smaller limit a particular message type imposes.
const MaxMessagePayload = 1024 * 1024 * 32 // 32 MiB

// Commands used in message headers to describe the type of message.  Only
// CmdAddr has a concrete implementation.  The others are reserved names
// only: Next reports them, like any unregistered command, with
// ErrUnknownCmd.
const (
	CmdVersion = "version"
	CmdVerAck  = "verack"
	CmdAddr    = "addr"
	CmdGetAddr = "getaddr"
	CmdPing    = "ping"
	CmdPong    = "pong"
)

// Message is the contract every concrete wire message satisfies: it knows
// its own command name, the maximum payload size it will accept for a given
// protocol version, how to consume itself from a ParseContext, and how to
// write itself to a stream.
//
// parse is unexported deliberately: only this package's MessageSerializer
// constructs messages from the wire, via makeEmptyMessage followed by
// parse. Callers outside the package build messages with the exported
// constructors instead (e.g. NewPeerAddress) and never parse one directly.
type Message interface {
	// Command returns the message's command string, used as the 12-byte
	// command field of the envelope.
	Command() string

	// MaxPayloadLength returns the maximum payload size, in bytes, this
	// message type accepts for the given protocol version.
	MaxPayloadLength(protocolVersion uint32) uint32

	// parse consumes this message's body from ctx.
	parse(ctx *ParseContext) error

	// SerializeToStream writes this message's body to w.
	SerializeToStream(w io.Writer) error
}

// makeEmptyMessage returns a zero-valued concrete Message for command, or
// an ErrUnknownCmd error if no message type is registered for it.
func makeEmptyMessage(command string) (Message, error) {
	const op = "makeEmptyMessage"

	switch command {
	case CmdAddr:
		return &MsgAddr{}, nil
	default:
		return nil, messageError(op, ErrUnknownCmd, fmt.Sprintf("unhandled command [%s]", command))
	}
}

// isStrictAscii reports whether s contains only bytes in the printable
// ASCII range, which is the only alphabet a command name may use.
func isStrictAscii(s string) bool {
	for _, c := range s {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// MessageSerializer frames outgoing messages and incrementally parses
// incoming ones for a single, fixed network.  Unlike a reader/writer pair
// bound to a particular connection, it is a pure function of the bytes
// handed to it: Frame turns a Message into a ready-to-send
// envelope, and Next consumes as much of a leading envelope as is present
// in buf, returning ErrNeedMore when buf holds less than one complete
// message.  This lets a caller accumulate bytes from a socket into a
// growing buffer and repeatedly call Next rather than being forced to block
// on a blocking io.Reader.
type MessageSerializer struct {
	// Params supplies the magic bytes that identify this serializer's
	// network.
	Params NetworkParams
}

// NewMessageSerializer returns a MessageSerializer bound to params.
func NewMessageSerializer(params NetworkParams) *MessageSerializer {
	return &MessageSerializer{Params: params}
}

// Frame encodes msg's payload and wraps it in a complete envelope: magic,
// zero-padded command, payload length, double SHA-256 checksum, and the
// payload itself.
func (s *MessageSerializer) Frame(msg Message, protocolVersion uint32) ([]byte, error) {
	const op = "MessageSerializer.Frame"

	cmd := msg.Command()
	if len(cmd) > CommandSize {
		return nil, messageError(op, ErrCmdTooLong,
			fmt.Sprintf("command [%s] is too long [max %d]", cmd, CommandSize))
	}

	var payloadBuf writeBuffer
	if err := msg.SerializeToStream(&payloadBuf); err != nil {
		return nil, err
	}
	payload := payloadBuf.b

	if len(payload) > MaxMessagePayload {
		return nil, messageError(op, ErrPayloadTooLarge,
			fmt.Sprintf("message payload is too large - encoded %d bytes, "+
				"but maximum message payload is %d bytes", len(payload), MaxMessagePayload))
	}
	if mpl := msg.MaxPayloadLength(protocolVersion); uint32(len(payload)) > mpl {
		return nil, messageError(op, ErrPayloadTooLarge,
			fmt.Sprintf("message payload is too large - encoded %d bytes, but "+
				"maximum payload size for messages of type [%s] is %d", len(payload), cmd, mpl))
	}

	out := make([]byte, MessageHeaderSize+len(payload))
	WriteUint32LE(out[0:4], s.Params.Magic())
	copy(out[4:4+CommandSize], cmd)
	WriteUint32LE(out[16:20], uint32(len(payload)))

	checksum := chainhash.HashB(payload)
	copy(out[20:24], checksum[:4])

	copy(out[MessageHeaderSize:], payload)
	return out, nil
}

// Next attempts to parse one complete message starting at buf[0].  On
// success it returns the message, the number of bytes consumed from buf,
// and a nil error.  If buf does not yet hold a complete header or a
// complete payload, it returns ErrNeedMore and the caller should read more
// bytes and retry with a larger buf.  Any other error is a terminal framing
// or parse failure.
func (s *MessageSerializer) Next(buf []byte, protocolVersion uint32) (Message, int, error) {
	const op = "MessageSerializer.Next"

	if len(buf) < MessageHeaderSize {
		return nil, 0, ErrNeedMore
	}

	magic := littleEndian.Uint32(buf[0:4])
	if magic != s.Params.Magic() {
		return nil, 0, messageError(op, ErrWrongNetwork,
			fmt.Sprintf("message from other network [0x%08x]", magic))
	}

	rawCmd := buf[4 : 4+CommandSize]
	command := strings.TrimRight(string(rawCmd), "\x00")
	if !isStrictAscii(command) {
		return nil, 0, messageError(op, ErrMalformedCmd,
			fmt.Sprintf("invalid command %v", rawCmd))
	}

	length := littleEndian.Uint32(buf[16:20])
	if length > MaxMessagePayload {
		return nil, 0, messageError(op, ErrPayloadTooLarge,
			fmt.Sprintf("message payload is too large - header indicates %d bytes, "+
				"but max message payload is %d bytes", length, MaxMessagePayload))
	}

	checksum := buf[20:24]

	total := MessageHeaderSize + int(length)
	if len(buf) < total {
		return nil, 0, ErrNeedMore
	}
	payload := buf[MessageHeaderSize:total]

	msg, err := makeEmptyMessage(command)
	if err != nil {
		return nil, 0, err
	}

	if mpl := msg.MaxPayloadLength(protocolVersion); length > mpl {
		return nil, 0, messageError(op, ErrPayloadTooLarge,
			fmt.Sprintf("payload exceeds max length - header indicates %d bytes, but max "+
				"payload size for messages of type [%s] is %d", length, command, mpl))
	}

	wantChecksum := chainhash.HashB(payload)
	if !equalBytes4(checksum, wantChecksum[:4]) {
		return nil, 0, messageError(op, ErrPayloadChecksum,
			fmt.Sprintf("payload checksum failed - header indicates %x, but actual checksum is %x",
				checksum, wantChecksum[:4]))
	}

	ctx := NewParseContext(payload, 0)
	if err := msg.parse(ctx); err != nil {
		return nil, 0, err
	}

	return msg, total, nil
}

func equalBytes4(a, b []byte) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}
