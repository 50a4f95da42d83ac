// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
)

// MaxAddrPerMsg is the maximum number of addresses that can be carried in a
// single addr message.
const MaxAddrPerMsg = 1000

// MsgAddr represents an addr message: a list of known active peers relayed
// to another node.  It is the one dispatchable Message this module
// implements; every other command name in message.go is reserved but
// unhandled.
type MsgAddr struct {
	AddrList []*PeerAddress
}

// NewMsgAddr returns an empty MsgAddr ready to have addresses added to it.
func NewMsgAddr() *MsgAddr {
	return &MsgAddr{AddrList: make([]*PeerAddress, 0, MaxAddrPerMsg)}
}

// AddAddress adds a known peer to the message, failing once the message
// already holds MaxAddrPerMsg entries.
func (msg *MsgAddr) AddAddress(pa *PeerAddress) error {
	const op = "MsgAddr.AddAddress"
	if len(msg.AddrList)+1 > MaxAddrPerMsg {
		return messageError(op, ErrTooManyAddrs,
			fmt.Sprintf("too many addresses in message [max %d]", MaxAddrPerMsg))
	}
	msg.AddrList = append(msg.AddrList, pa)
	return nil
}

// AddAddresses adds multiple known peers to the message.
func (msg *MsgAddr) AddAddresses(addrs ...*PeerAddress) error {
	for _, pa := range addrs {
		if err := msg.AddAddress(pa); err != nil {
			return err
		}
	}
	return nil
}

// ClearAddresses removes all addresses from the message.
func (msg *MsgAddr) ClearAddresses() {
	msg.AddrList = msg.AddrList[:0]
}

// Command returns the command string for an addr message.
func (msg *MsgAddr) Command() string {
	return CmdAddr
}

// MaxPayloadLength returns the maximum payload size an addr message is
// allowed to occupy for the given protocol version: one varint count plus
// up to MaxAddrPerMsg fixed-size PeerAddress entries.
func (msg *MsgAddr) MaxPayloadLength(protocolVersion uint32) uint32 {
	return uint32(VarIntSerializeSize(MaxAddrPerMsg) + MaxAddrPerMsg*PeerAddressSize)
}

// parse consumes the addr message body from ctx: a varint count followed by
// that many fixed-size PeerAddress entries.
func (msg *MsgAddr) parse(ctx *ParseContext) error {
	const op = "MsgAddr.parse"

	count, err := ctx.ReadVarInt()
	if err != nil {
		return err
	}
	if count > MaxAddrPerMsg {
		return messageError(op, ErrTooManyAddrs,
			fmt.Sprintf("too many addresses for message [count %d, max %d]", count, MaxAddrPerMsg))
	}

	addrList := make([]PeerAddress, count)
	msg.AddrList = make([]*PeerAddress, 0, count)
	for i := uint64(0); i < count; i++ {
		pa := &addrList[i]
		start := ctx.Cursor()
		if err := pa.parse(ctx); err != nil {
			return err
		}
		pa.Payload = ctx.buf
		pa.Offset = start
		pa.Length = ctx.Cursor() - start
		if err := msg.AddAddress(pa); err != nil {
			return err
		}
	}
	return nil
}

// SerializeToStream writes the addr message body to w: a varint count
// followed by each address's 30-byte serialized form.
func (msg *MsgAddr) SerializeToStream(w io.Writer) error {
	const op = "MsgAddr.SerializeToStream"

	count := len(msg.AddrList)
	if count > MaxAddrPerMsg {
		return messageError(op, ErrTooManyAddrs,
			fmt.Sprintf("too many addresses for message [count %d, max %d]", count, MaxAddrPerMsg))
	}

	var countBuf []byte
	countBuf = AppendVarInt(countBuf, uint64(count))
	if _, err := w.Write(countBuf); err != nil {
		return err
	}

	for _, pa := range msg.AddrList {
		if err := pa.SerializeToStream(w); err != nil {
			return err
		}
	}
	return nil
}
