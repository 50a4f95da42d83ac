// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// ServiceFlag identifies services supported by a peer on the network.
type ServiceFlag uint64

const (
	// SFNodeNetwork is the flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << 0

	// SFNodeBloomFilter indicates a peer supports bloom filtering.
	SFNodeBloomFilter ServiceFlag = 1 << 2

	// SFNodeWitness indicates a peer supports segregated witness blocks
	// and transactions.
	SFNodeWitness ServiceFlag = 1 << 3
)

// ProtocolMilestone names a point in the protocol's version history that
// NetworkParams maps to a concrete numeric version.  This is the "table
// mapping symbolic protocol milestones to numeric protocol versions"
// described by the network-parameter surface: messages consult it rather
// than hard-coding magic numbers for the version at which a wire feature
// became available.
type ProtocolMilestone string

const (
	// ProtocolCurrent is the highest protocol version this module speaks.
	ProtocolCurrent ProtocolMilestone = "CURRENT"

	// ProtocolMinimum is the lowest protocol version this module will
	// accept from a peer before refusing to continue the handshake.
	ProtocolMinimum ProtocolMilestone = "MINIMUM"

	// ProtocolBloomFilter is the version at which bloom filtering
	// (BIP37) became available.
	ProtocolBloomFilter ProtocolMilestone = "BLOOM_FILTER"

	// ProtocolWitness is the version at which segregated witness (BIP144)
	// became available.
	ProtocolWitness ProtocolMilestone = "WITNESS"
)

// NetworkParams is the surface that wire messages consult for the handful
// of network-specific constants they need: the magic that identifies the
// network on the wire, the default peer-to-peer port, and the protocol
// version number for a given named milestone.  It is declared here, rather
// than in the chaincfg package that provides the concrete implementation,
// so that wire never needs to import chaincfg — chaincfg imports wire for
// ProtocolMilestone, and satisfies this interface structurally.
type NetworkParams interface {
	// Magic returns the 4-byte network magic.
	Magic() uint32

	// DefaultPort returns the default TCP port for this network.
	DefaultPort() uint16

	// ProtocolVersion returns the numeric protocol version associated
	// with the named milestone.
	ProtocolVersion(milestone ProtocolMilestone) uint32
}
