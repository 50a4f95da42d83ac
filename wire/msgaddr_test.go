// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/inchain/inchain/clock"
)

func TestMsgAddrRoundTrip(t *testing.T) {
	msg := NewMsgAddr()

	for i := 0; i < 3; i++ {
		pa := NewPeerAddressIPPort(net.IPv4(10, 0, 0, byte(i+1)), 8333, testParams.current)
		pa.SetClock(clock.NewTestClock(time.Unix(0x5A000000, 0)))
		if err := msg.AddAddress(pa); err != nil {
			t.Fatalf("AddAddress: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := msg.SerializeToStream(&buf); err != nil {
		t.Fatalf("SerializeToStream: %v", err)
	}

	got := &MsgAddr{}
	ctx := NewParseContext(buf.Bytes(), 0)
	if err := got.parse(ctx); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(got.AddrList) != 3 {
		t.Fatalf("got %d addresses, want 3", len(got.AddrList))
	}
	for i, pa := range got.AddrList {
		want := net.IPv4(10, 0, 0, byte(i+1))
		if !pa.Addr.Equal(want) {
			t.Errorf("address #%d = %v, want %v", i, pa.Addr, want)
		}
	}
}

func TestMsgAddrTooManyAddresses(t *testing.T) {
	msg := &MsgAddr{AddrList: make([]*PeerAddress, MaxAddrPerMsg)}
	for i := range msg.AddrList {
		msg.AddrList[i] = NewPeerAddressIPPort(net.IPv4(1, 1, 1, 1), 1, testParams.current)
	}

	extra := NewPeerAddressIPPort(net.IPv4(2, 2, 2, 2), 2, testParams.current)
	if err := msg.AddAddress(extra); err == nil {
		t.Fatalf("expected error adding beyond MaxAddrPerMsg")
	}
}

func TestMsgAddrCommand(t *testing.T) {
	msg := NewMsgAddr()
	if msg.Command() != CmdAddr {
		t.Fatalf("got %q want %q", msg.Command(), CmdAddr)
	}
}
