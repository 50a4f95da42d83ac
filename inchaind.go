// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"

	"github.com/inchain/inchain/chaincfg"
	"github.com/inchain/inchain/database"
	"github.com/inchain/inchain/log"
	"github.com/inchain/inchain/p2p"
	"github.com/inchain/inchain/wire"
)

var cfg *config

func main() {
	if err := inchaindMain(); err != nil {
		os.Exit(1)
	}
}

// inchaindMain loads configuration, opens the peer address database,
// starts listening for inbound peers, dials any peers named with --connect,
// and blocks until an interrupt signal or shutdown request arrives.
func inchaindMain() error {
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg
	defer func() {
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
	}()

	interrupt := interruptListener()
	defer log.SrvrLog.Info("Shutdown complete")

	log.SrvrLog.Infof("Version %s", version())
	log.SrvrLog.Infof("Active network: %s", networkName())

	db, err := database.OpenLevelDb(filepath.Join(cfg.DataDir, "peers"))
	if err != nil {
		log.SrvrLog.Errorf("Unable to open peer database: %v", err)
		return err
	}
	defer db.Close()

	params := chaincfg.ActiveNetParams()
	protocolVersion := params.ProtocolVersion(wire.ProtocolCurrent)
	addrMgr := p2p.NewAddrManager(db)

	n, err := newNode(params, protocolVersion, addrMgr)
	if err != nil {
		log.SrvrLog.Errorf("Unable to start node on %v: %v", cfg.Listen, err)
		return err
	}
	n.Start()
	defer func() {
		log.SrvrLog.Infof("Gracefully shutting down...")
		n.Stop()
	}()

	<-interrupt
	return nil
}

// node owns the listener that accepts inbound peers and the set of peers
// currently connected.  It is the small, scope-limited stand-in for a full
// server: no block sync, no mempool, no RPC front end.
type node struct {
	params          wire.NetworkParams
	protocolVersion uint32
	addrMgr         *p2p.AddrManager
	listener        net.Listener
	quit            chan struct{}
}

func newNode(params wire.NetworkParams, protocolVersion uint32, addrMgr *p2p.AddrManager) (*node, error) {
	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return nil, err
	}
	return &node{
		params:          params,
		protocolVersion: protocolVersion,
		addrMgr:         addrMgr,
		listener:        listener,
		quit:            make(chan struct{}),
	}, nil
}

// Start begins accepting inbound connections and dials every address named
// by --connect.
func (n *node) Start() {
	go n.acceptLoop()
	for _, addr := range cfg.ConnectPeers {
		go n.connectOutbound(addr)
	}
}

// Stop closes the listener, which causes acceptLoop to return.
func (n *node) Stop() error {
	close(n.quit)
	return n.listener.Close()
}

func (n *node) acceptLoop() {
	for {
		conn, err := n.listener.Accept()
		if err != nil {
			select {
			case <-n.quit:
				return
			default:
				log.SrvrLog.Errorf("Can't accept connection: %v", err)
				continue
			}
		}
		n.addPeer(conn, true)
	}
}

func (n *node) connectOutbound(addr string) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		log.SrvrLog.Errorf("Unable to connect to %s: %v", addr, err)
		return
	}
	n.addPeer(conn, false)
}

func (n *node) addPeer(conn net.Conn, inbound bool) {
	peer := p2p.NewPeer(conn, n.params, n.protocolVersion, inbound)
	peer.SetAddrListener(func(p *p2p.Peer, msg *wire.MsgAddr) {
		log.PeerLog.Debugf("Received %d addresses from %s", len(msg.AddrList), p)
		n.addrMgr.AddAddresses(msg.AddrList)
	})
	peer.Start()
	log.PeerLog.Infof("New %s peer %s", direction(inbound), peer)
}

func direction(inbound bool) string {
	if inbound {
		return "inbound"
	}
	return "outbound"
}

func networkName() string {
	if cfg.TestNet {
		return "testnet"
	}
	return "mainnet"
}

func version() string {
	return fmt.Sprintf("0.1.0 (%s)", runtime.Version())
}
