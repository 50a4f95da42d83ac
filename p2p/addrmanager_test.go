// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"net"
	"path/filepath"
	"testing"

	"github.com/inchain/inchain/chaincfg"
	"github.com/inchain/inchain/database"
	"github.com/inchain/inchain/wire"
)

func openTestDb(t *testing.T) *database.LevelDb {
	t.Helper()
	dir := t.TempDir()
	db, err := database.OpenLevelDb(filepath.Join(dir, "peers"))
	if err != nil {
		t.Fatalf("OpenLevelDb: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddrManagerAddAndList(t *testing.T) {
	mgr := NewAddrManager(openTestDb(t))

	pa := wire.NewPeerAddress(chaincfg.MainNetParams, net.IPv4(8, 8, 8, 8), 8333)
	mgr.AddAddress(pa)

	if mgr.NumAddresses() != 1 {
		t.Fatalf("got %d addresses, want 1", mgr.NumAddresses())
	}

	addrs := mgr.Addresses()
	if len(addrs) != 1 || !addrs[0].Addr.Equal(net.IPv4(8, 8, 8, 8)) {
		t.Fatalf("unexpected addresses: %v", addrs)
	}
}

func TestAddrManagerPersistsAndLoads(t *testing.T) {
	db := openTestDb(t)

	mgr := NewAddrManager(db)
	pa := wire.NewPeerAddress(chaincfg.MainNetParams, net.IPv4(1, 2, 3, 4), 8333)
	mgr.AddAddress(pa)

	key := addrKey(pa)

	reloaded := NewAddrManager(db)
	reloaded.Load(chaincfg.MainNetParams, []string{key}, chaincfg.MainNetParams.ProtocolVersion(wire.ProtocolCurrent))

	if reloaded.NumAddresses() != 1 {
		t.Fatalf("got %d addresses after reload, want 1", reloaded.NumAddresses())
	}
}

func TestAddrManagerRemoveAddress(t *testing.T) {
	mgr := NewAddrManager(openTestDb(t))
	pa := wire.NewPeerAddress(chaincfg.MainNetParams, net.IPv4(5, 5, 5, 5), 8333)
	mgr.AddAddress(pa)

	mgr.RemoveAddress(pa)
	if mgr.NumAddresses() != 0 {
		t.Fatalf("got %d addresses after remove, want 0", mgr.NumAddresses())
	}
}
