// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"net"
	"testing"
	"time"

	"github.com/inchain/inchain/chaincfg"
	"github.com/inchain/inchain/wire"
)

func TestPeerSendsAddrMessage(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	params := chaincfg.MainNetParams
	pver := params.ProtocolVersion(wire.ProtocolCurrent)

	sender := NewPeer(clientConn, params, pver, false)
	receiver := NewPeer(serverConn, params, pver, true)

	received := make(chan *wire.MsgAddr, 1)
	receiver.SetAddrListener(func(p *Peer, msg *wire.MsgAddr) {
		received <- msg
	})

	sender.Start()
	receiver.Start()
	defer sender.Disconnect()
	defer receiver.Disconnect()

	msg := wire.NewMsgAddr()
	pa := wire.NewPeerAddress(params, net.IPv4(9, 9, 9, 9), 8333)
	if err := msg.AddAddress(pa); err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	sender.QueueMessage(msg)

	select {
	case got := <-received:
		if len(got.AddrList) != 1 || !got.AddrList[0].Addr.Equal(net.IPv4(9, 9, 9, 9)) {
			t.Fatalf("unexpected addr list: %v", got.AddrList)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for addr message")
	}
}
