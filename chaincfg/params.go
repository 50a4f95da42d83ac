// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network-parameter surface that the wire
// protocol layer consults: the magic bytes that identify a network on the
// wire, its default peer-to-peer port, and the numeric protocol version
// associated with each named milestone.  Params is created once at process
// startup and never mutated afterwards; it is passed explicitly down from
// the top of the node rather than read as implicit module-level global
// state.
package chaincfg

import "github.com/inchain/inchain/wire"

// Params is an immutable description of a single inchain network.  It
// satisfies wire.NetworkParams.
type Params struct {
	// Name is a human readable identifier for the network, used only for
	// logging and diagnostics.
	Name string

	// NetMagic is the 4-byte magic that identifies this network on the
	// wire.
	NetMagic uint32

	// Port is the default peer-to-peer TCP port for this network.
	Port uint16

	// ProtocolVersions maps a named milestone to the numeric protocol
	// version at which it became effective.
	ProtocolVersions map[wire.ProtocolMilestone]uint32
}

// Magic returns the 4-byte network magic.  It is part of the
// wire.NetworkParams interface.
func (p *Params) Magic() uint32 {
	return p.NetMagic
}

// DefaultPort returns the default TCP port for this network.  It is part of
// the wire.NetworkParams interface.
func (p *Params) DefaultPort() uint16 {
	return p.Port
}

// ProtocolVersion returns the numeric protocol version associated with the
// named milestone, or 0 if the milestone is not known to this network.  It
// is part of the wire.NetworkParams interface.
func (p *Params) ProtocolVersion(milestone wire.ProtocolMilestone) uint32 {
	return p.ProtocolVersions[milestone]
}

// protocolVersions is shared by every network defined in this package: the
// Bitcoin-derived protocol version history did not diverge per network.
var protocolVersions = map[wire.ProtocolMilestone]uint32{
	wire.ProtocolCurrent:      70013,
	wire.ProtocolMinimum:      209,
	wire.ProtocolBloomFilter:  70011,
	wire.ProtocolWitness:      70013,
}

// MainNetParams are the parameters for the main inchain network.
var MainNetParams = &Params{
	Name:             "mainnet",
	NetMagic:         0xD9B4BEF9,
	Port:             8333,
	ProtocolVersions: protocolVersions,
}

// TestNetParams are the parameters for the inchain test network.
var TestNetParams = &Params{
	Name:             "testnet",
	NetMagic:         0x0709110B,
	Port:             18333,
	ProtocolVersions: protocolVersions,
}

// activeNetParams holds the single NetworkParams instance chosen at process
// startup.  It defaults to MainNetParams.  The choice is fixed once at
// initialization (see config.go's selection of --testnet) and never changed
// afterwards, matching the "only one is active per process" invariant.
var activeNetParams wire.NetworkParams = MainNetParams

// ActiveNetParams returns the NetworkParams selected for this process.
func ActiveNetParams() wire.NetworkParams {
	return activeNetParams
}

// SetActiveNetParams fixes the NetworkParams used for the remainder of the
// process.  It must be called, if at all, during startup before any peer
// connections are established.
func SetActiveNetParams(p wire.NetworkParams) {
	activeNetParams = p
}
