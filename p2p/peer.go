// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package p2p is a thin consumer of the wire package: it drives a net.Conn
// through read and write pumps that frame and parse messages, without
// implementing any block/transaction validation, handshake negotiation, or
// peer discovery. It exists to exercise wire.MessageSerializer end to end,
// not to be a complete node's networking stack.
package p2p

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/inchain/inchain/internal/utils"
	"github.com/inchain/inchain/log"
	"github.com/inchain/inchain/wire"
)

const (
	// outputBufferSize is the number of elements the outbound message
	// channel buffers before QueueMessage blocks.
	outputBufferSize = 50

	// idleTimeout is how long a single read from the connection may block
	// with no data arriving before the read pump gives up on it.
	idleTimeout = 5 * time.Minute

	// readBufferGrowth is how many bytes are requested from the
	// connection at a time while accumulating a message.
	readBufferGrowth = 4096
)

// AddrListener is invoked by the read pump whenever a complete addr message
// is parsed off the wire.
type AddrListener func(p *Peer, msg *wire.MsgAddr)

// Peer wraps a single net.Conn and drives it through a read pump and a
// write pump, using a wire.MessageSerializer bound to Params to frame
// outgoing messages and parse incoming ones.
type Peer struct {
	conn            net.Conn
	params          wire.NetworkParams
	serializer      *wire.MessageSerializer
	protocolVersion uint32
	inbound         bool

	onAddr AddrListener

	outputQueue chan wire.Message
	quit        chan struct{}
	wg          sync.WaitGroup

	disconnect int32 // atomic bool

	statsMtx      sync.Mutex
	bytesSent     uint64
	bytesReceived uint64

	readBuf []byte
}

// NewPeer returns a Peer that will read from and write to conn using the
// given network parameters and protocol version.  inbound marks whether
// conn was accepted from a listener rather than dialed out.
func NewPeer(conn net.Conn, params wire.NetworkParams, protocolVersion uint32, inbound bool) *Peer {
	return &Peer{
		conn:            conn,
		params:          params,
		serializer:      wire.NewMessageSerializer(params),
		protocolVersion: protocolVersion,
		inbound:         inbound,
		outputQueue:     make(chan wire.Message, outputBufferSize),
		quit:            make(chan struct{}),
	}
}

// SetAddrListener installs the callback invoked when an addr message
// arrives.  It must be called before Start.
func (p *Peer) SetAddrListener(l AddrListener) {
	p.onAddr = l
}

// String returns the remote address of the peer's connection.
func (p *Peer) String() string {
	return p.conn.RemoteAddr().String()
}

// Inbound reports whether this peer's connection was accepted rather than
// dialed.
func (p *Peer) Inbound() bool {
	return p.inbound
}

// BytesSent returns the total bytes written to this peer.
func (p *Peer) BytesSent() uint64 {
	p.statsMtx.Lock()
	defer p.statsMtx.Unlock()
	return p.bytesSent
}

// BytesReceived returns the total bytes read from this peer.
func (p *Peer) BytesReceived() uint64 {
	p.statsMtx.Lock()
	defer p.statsMtx.Unlock()
	return p.bytesReceived
}

// Start launches the read and write pumps.  It returns immediately; use
// WaitForShutdown to block until both pumps exit.
func (p *Peer) Start() {
	p.wg.Add(2)
	go p.inHandler()
	go p.outHandler()
}

// QueueMessage schedules msg to be written to the peer.  It is safe to call
// from any goroutine.
func (p *Peer) QueueMessage(msg wire.Message) {
	if atomic.LoadInt32(&p.disconnect) != 0 {
		return
	}
	select {
	case p.outputQueue <- msg:
	case <-p.quit:
	}
}

// Disconnect closes the peer's connection and signals both pumps to exit.
// It is idempotent.
func (p *Peer) Disconnect() {
	if !atomic.CompareAndSwapInt32(&p.disconnect, 0, 1) {
		return
	}
	close(p.quit)
	p.conn.Close()
}

// WaitForShutdown blocks until both the read and write pumps have exited.
func (p *Peer) WaitForShutdown() {
	p.wg.Wait()
}

// inHandler is the read pump: it accumulates bytes from the connection and
// repeatedly asks the serializer to carve a complete message off the front
// of the accumulated buffer, dispatching each one to the matching listener.
func (p *Peer) inHandler() {
	defer p.wg.Done()
	defer p.Disconnect()

	for atomic.LoadInt32(&p.disconnect) == 0 {
		p.conn.SetReadDeadline(time.Now().Add(idleTimeout))

		msg, consumed, err := p.tryParse()
		if err == wire.ErrNeedMore {
			if err := p.fill(); err != nil {
				log.PeerLog.Debugf("Can't read from %s: %v", p, err)
				return
			}
			continue
		}
		if err != nil {
			log.PeerLog.Errorf("Can't read message from %s: %v (buffered %s)",
				p, err, utils.HexEncode(p.readBuf))
			return
		}

		p.readBuf = p.readBuf[consumed:]

		p.statsMtx.Lock()
		p.bytesReceived += uint64(consumed)
		p.statsMtx.Unlock()

		p.dispatch(msg)
	}
}

// tryParse asks the serializer to parse one message out of the currently
// buffered bytes, without touching the network.
func (p *Peer) tryParse() (wire.Message, int, error) {
	if len(p.readBuf) == 0 {
		return nil, 0, wire.ErrNeedMore
	}
	return p.serializer.Next(p.readBuf, p.protocolVersion)
}

// fill reads more bytes from the connection into readBuf.
func (p *Peer) fill() error {
	chunk := make([]byte, readBufferGrowth)
	n, err := p.conn.Read(chunk)
	if n > 0 {
		p.readBuf = append(p.readBuf, chunk[:n]...)
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("wire: connection closed with no data")
	}
	return nil
}

// dispatch routes a fully parsed message to its listener, if one is set.
func (p *Peer) dispatch(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.MsgAddr:
		if p.onAddr != nil {
			p.onAddr(p, m)
		}
	default:
		log.PeerLog.Debugf("Received unhandled message %q from %s", msg.Command(), p)
	}
}

// outHandler is the write pump: it drains the output queue, framing and
// writing each message in turn.
func (p *Peer) outHandler() {
	defer p.wg.Done()

	for {
		select {
		case msg := <-p.outputQueue:
			p.writeMessage(msg)
		case <-p.quit:
			return
		}
	}
}

// writeMessage frames msg and writes it to the connection, disconnecting
// the peer on any write failure.
func (p *Peer) writeMessage(msg wire.Message) {
	framed, err := p.serializer.Frame(msg, p.protocolVersion)
	if err != nil {
		log.PeerLog.Errorf("Can't frame message for %s: %v", p, err)
		return
	}

	n, err := p.conn.Write(framed)
	p.statsMtx.Lock()
	p.bytesSent += uint64(n)
	p.statsMtx.Unlock()
	if err != nil {
		log.PeerLog.Errorf("Can't send message to %s: %v", p, err)
		p.Disconnect()
	}
}
