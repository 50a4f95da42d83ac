// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"fmt"
	"sync"

	"github.com/inchain/inchain/database"
	"github.com/inchain/inchain/log"
	"github.com/inchain/inchain/wire"
)

// addrDbKeyPrefix namespaces every key this manager writes to a Db so it
// can share storage with other future consumers without key collisions.
const addrDbKeyPrefix = "addr:"

// AddrManager is a deliberately small stand-in for a full bucketed address
// manager: it tracks known peer addresses in memory, keyed by host:port,
// and persists each one as its own entry in a Db under the addr: prefix.
// It does not implement the tried/new bucket aging, random eviction, or
// anti-eclipse selection strategy a production address manager needs —
// those are out of scope for a wire-protocol exercise.
type AddrManager struct {
	mu    sync.RWMutex
	addrs map[string]*wire.PeerAddress
	db    database.Db
}

// NewAddrManager returns an AddrManager backed by db.  db may be nil, in
// which case addresses are tracked only in memory.
func NewAddrManager(db database.Db) *AddrManager {
	return &AddrManager{
		addrs: make(map[string]*wire.PeerAddress),
		db:    db,
	}
}

// addrKey returns the map/Db key identifying pa by its address and port.
func addrKey(pa *wire.PeerAddress) string {
	host := pa.Hostname
	if pa.Addr != nil {
		host = pa.Addr.String()
	}
	return fmt.Sprintf("%s:%d", host, pa.Port)
}

// AddAddress records pa as a known peer, overwriting any previous entry
// for the same host:port, and persists it if a Db is configured.
func (a *AddrManager) AddAddress(pa *wire.PeerAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := addrKey(pa)
	a.addrs[key] = pa

	if a.db == nil {
		return
	}
	serialized, err := pa.BitcoinSerialize()
	if err != nil {
		log.AmgrLog.Warnf("Failed to serialize address %s: %v", key, err)
		return
	}
	if !a.db.Put([]byte(addrDbKeyPrefix+key), serialized) {
		log.AmgrLog.Warnf("Failed to persist address %s", key)
	}
}

// AddAddresses records every address in addrs.
func (a *AddrManager) AddAddresses(addrs []*wire.PeerAddress) {
	for _, pa := range addrs {
		a.AddAddress(pa)
	}
}

// RemoveAddress forgets pa, removing it from both memory and the backing
// Db if one is configured.
func (a *AddrManager) RemoveAddress(pa *wire.PeerAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := addrKey(pa)
	delete(a.addrs, key)
	if a.db != nil {
		a.db.Delete([]byte(addrDbKeyPrefix + key))
	}
}

// Addresses returns a snapshot of every known address.
func (a *AddrManager) Addresses() []*wire.PeerAddress {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*wire.PeerAddress, 0, len(a.addrs))
	for _, pa := range a.addrs {
		out = append(out, pa)
	}
	return out
}

// NumAddresses returns the number of known addresses.
func (a *AddrManager) NumAddresses() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.addrs)
}

// Load populates the manager from params's network by fetching every
// address previously persisted under the given keys.  The caller supplies
// the key list since this simplified Db contract has no range scan; a
// production address manager backed by a range-scanning store would not
// need this.
func (a *AddrManager) Load(params wire.NetworkParams, keys []string, protocolVersion uint32) {
	if a.db == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, key := range keys {
		raw := a.db.Get([]byte(addrDbKeyPrefix + key))
		if raw == nil {
			continue
		}
		pa, err := wire.ParsePeerAddress(params, raw, 0, protocolVersion)
		if err != nil {
			log.AmgrLog.Warnf("Failed to load address %s: %v", key, err)
			continue
		}
		a.addrs[key] = pa
	}
}
