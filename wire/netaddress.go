// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
	"net"

	"github.com/inchain/inchain/clock"
	"github.com/inchain/inchain/internal/utils"
)

// PeerAddressSize is the fixed number of bytes a PeerAddress occupies on the
// wire: 4 (time) + 8 (services) + 16 (address) + 2 (port).
const PeerAddressSize = 30

// v4InV6Prefix is the fixed 12-byte prefix that marks an IPv4 address mapped
// into IPv6 space: 10 zero bytes followed by 0xFF 0xFF.
var v4InV6Prefix = [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}

// PeerAddress holds an IP address and port number representing the network
// location of a peer, along with the time it was last seen and the
// services it advertises.  It exists primarily for serialization purposes.
//
// Instances of this type are not safe for use by multiple goroutines.
type PeerAddress struct {
	// Params is the owning network's parameters.  It may be nil for a
	// PeerAddress constructed purely for in-memory use that never needs
	// to resolve a default port.
	Params NetworkParams

	// Payload is the original byte slice this PeerAddress was parsed
	// from, or nil when the value was constructed in memory.
	Payload []byte

	// Offset is the index into Payload at which this PeerAddress began.
	Offset int

	// Length is the number of bytes this PeerAddress occupies, filled in
	// once parsing (or in-memory construction) completes.
	Length int

	// ProtocolVersion is the protocol version this PeerAddress was
	// parsed under, or will be serialized for.  It is immutable for the
	// lifetime of the instance.  Entries parsed as part of a MsgAddr do
	// not carry the negotiated version and hold 0 here.
	ProtocolVersion uint32

	// Time is the last time this address was seen alive, in seconds
	// since the Unix epoch.  It is not written on the wire as-is: see
	// SerializeToStream.
	Time uint32

	// Services is the bitfield of capabilities this peer advertises.
	Services ServiceFlag

	// Addr is the peer's address, stored as a 16-byte (IPv4-mapped or
	// native IPv6) net.IP.  Nil when the peer is known only by Hostname.
	Addr net.IP

	// Hostname is set instead of Addr for Tor .onion peers.
	Hostname string

	// Port is the peer's TCP port.
	Port uint16

	clock clock.Clock
}

// ParsePeerAddress constructs a PeerAddress from a serialized payload,
// parsing eagerly.  offset marks where within payload this PeerAddress
// begins; protocolVersion is the version negotiated with the peer that sent
// it.
func ParsePeerAddress(params NetworkParams, payload []byte, offset int, protocolVersion uint32) (*PeerAddress, error) {
	pa := &PeerAddress{
		Params:          params,
		Payload:         payload,
		Offset:          offset,
		ProtocolVersion: protocolVersion,
		clock:           clock.NewDefaultClock(),
	}
	ctx := NewParseContext(payload, offset)
	if err := pa.parse(ctx); err != nil {
		return nil, err
	}
	pa.Length = ctx.Cursor() - offset
	return pa, nil
}

// NewPeerAddressIPPort constructs a PeerAddress from an IP address and port
// for the given protocol version.  Services defaults to SFNodeNetwork, the
// base full-node service bit.
func NewPeerAddressIPPort(addr net.IP, port uint16, protocolVersion uint32) *PeerAddress {
	utils.CheckNotNull(addr, "wire: NewPeerAddressIPPort address")
	return &PeerAddress{
		Addr:            addr,
		Port:            port,
		ProtocolVersion: protocolVersion,
		Services:        SFNodeNetwork,
		Length:          PeerAddressSize,
		clock:           clock.NewDefaultClock(),
	}
}

// NewPeerAddress constructs a PeerAddress from an IP address and port using
// the current protocol version.
func NewPeerAddress(params NetworkParams, addr net.IP, port uint16) *PeerAddress {
	pa := NewPeerAddressIPPort(addr, port, params.ProtocolVersion(ProtocolCurrent))
	pa.Params = params
	return pa
}

// NewPeerAddressFromIP constructs a PeerAddress from an IP address alone,
// using params' default port.
func NewPeerAddressFromIP(params NetworkParams, addr net.IP) *PeerAddress {
	return NewPeerAddress(params, addr, params.DefaultPort())
}

// NewPeerAddressFromTCPAddr constructs a PeerAddress from a resolved
// *net.TCPAddr.  An unresolved socket address (one without a concrete IP)
// must go through NewPeerAddressFromHost instead: this rejects at
// construction rather than deferring the failure to serialization time.
func NewPeerAddressFromTCPAddr(params NetworkParams, addr *net.TCPAddr) (*PeerAddress, error) {
	if addr == nil || addr.IP == nil {
		return nil, messageError("NewPeerAddressFromTCPAddr", ErrNoAddress,
			"tcp address has no resolved IP; use NewPeerAddressFromHost for onion peers")
	}
	return NewPeerAddress(params, addr.IP, uint16(addr.Port)), nil
}

// NewPeerAddressFromHost constructs a PeerAddress from a hostname and port,
// for Tor .onion peers that have no resolvable IP.  Services defaults to 0,
// since an onion peer's capabilities cannot be inferred from its address.
func NewPeerAddressFromHost(params NetworkParams, hostname string, port uint16) *PeerAddress {
	return &PeerAddress{
		Params:          params,
		Hostname:        hostname,
		Port:            port,
		ProtocolVersion: params.ProtocolVersion(ProtocolCurrent),
		Services:        0,
		clock:           clock.NewDefaultClock(),
	}
}

// Localhost returns a PeerAddress for 127.0.0.1 on params' default port.
func Localhost(params NetworkParams) *PeerAddress {
	return NewPeerAddressFromIP(params, net.IPv4(127, 0, 0, 1))
}

// SetClock overrides the clock consulted by SerializeToStream when
// refreshing Time.  Production code never needs to call this; tests use it
// to freeze the clock to a known value.
func (pa *PeerAddress) SetClock(c clock.Clock) {
	pa.clock = c
}

// parse consumes bytes from ctx starting at its current cursor, filling in
// Time, Services, Addr, and Port.  It implements the 30-byte layout:
//
//	 0..4   uint32 LE  time
//	 4..12  uint64 LE  services
//	12..28  16 bytes   address (IPv4-mapped IPv6 form)
//	28..30  uint16 BE  port
func (pa *PeerAddress) parse(ctx *ParseContext) error {
	const op = "PeerAddress.parse"

	t, err := ctx.ReadUint32LE()
	if err != nil {
		return err
	}
	pa.Time = t

	services, err := ctx.ReadUint64LE()
	if err != nil {
		return err
	}
	pa.Services = ServiceFlag(services)

	addrBytes, err := ctx.ReadBytes(16)
	if err != nil {
		return err
	}
	ip := net.IP(addrBytes)
	if ip == nil {
		// Cannot happen: ReadBytes(16) either returns a 16-byte slice
		// or an error. A host platform that rejects 16 raw bytes as
		// an address would indicate a fatal internal invariant
		// violation, not a malformed peer message.
		return messageError(op, ErrBadAddress, "platform rejected 16-byte address")
	}
	pa.Addr = ip

	port, err := ctx.ReadUint16BE()
	if err != nil {
		return err
	}
	pa.Port = port

	return nil
}

// SerializeToStream writes this PeerAddress's 30-byte body to w.  It does
// not write any envelope framing.
//
// Time is NOT written from the pa.Time field: it is refreshed from the
// clock at send time, truncated to 32 bits. This is a deliberate,
// wire-visible deviation from round-trip symmetry; callers relying on
// Parse(Serialize(x)) == x must exclude Time.
//
// Serializing a PeerAddress that carries a Hostname but no resolved Addr
// fails with ErrNoAddress rather than guessing at a synthetic encoding.
// TODO: revisit once a Tor v3 onion-service client is available to derive
// a real 16-byte OnionCat representation instead of refusing outright.
func (pa *PeerAddress) SerializeToStream(w io.Writer) error {
	const op = "PeerAddress.SerializeToStream"

	if pa.Addr == nil {
		return messageError(op, ErrNoAddress,
			fmt.Sprintf("cannot serialize peer address with hostname %q: no resolved IP", pa.Hostname))
	}

	var buf [PeerAddressSize]byte

	now := uint32(pa.clockNow())
	WriteUint32LE(buf[0:4], now)
	WriteUint64LE(buf[4:12], uint64(pa.Services))

	ip16 := toV6(pa.Addr)
	copy(buf[12:28], ip16)

	WriteUint16BE(buf[28:30], pa.Port)

	_, err := w.Write(buf[:])
	return err
}

func (pa *PeerAddress) clockNow() int64 {
	if pa.clock == nil {
		pa.clock = clock.NewDefaultClock()
	}
	return pa.clock.Now().Unix()
}

// toV6 returns the 16-byte IPv4-mapped-IPv6 (or native IPv6) form of addr.
func toV6(addr net.IP) []byte {
	if v4 := addr.To4(); v4 != nil {
		var out [16]byte
		copy(out[0:12], v4InV6Prefix[:])
		copy(out[12:16], v4)
		return out[:]
	}
	v6 := addr.To16()
	if v6 == nil {
		// Malformed net.IP (neither 4 nor 16 bytes); treat as all-zero
		// rather than panic, since this can only happen if a caller
		// hand-built an invalid net.IP outside of this package's
		// constructors.
		return make([]byte, 16)
	}
	return v6
}

// BitcoinSerialize is a convenience wrapper returning the serialized bytes
// of this PeerAddress rather than writing to a caller-supplied stream.
func (pa *PeerAddress) BitcoinSerialize() ([]byte, error) {
	var buf writeBuffer
	if err := pa.SerializeToStream(&buf); err != nil {
		return nil, err
	}
	return buf.b, nil
}

// writeBuffer is a minimal io.Writer that appends to an internal slice,
// used so BitcoinSerialize does not need to import bytes.Buffer for a
// single-purpose accumulator.
type writeBuffer struct {
	b []byte
}

func (w *writeBuffer) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

// HasService returns whether the specified service is supported by the
// address.
func (pa *PeerAddress) HasService(service ServiceFlag) bool {
	return pa.Services&service == service
}

// AddService adds service as a supported service.
func (pa *PeerAddress) AddService(service ServiceFlag) {
	pa.Services |= service
}

// SocketAddress reconstructs a *net.TCPAddr for this peer.  It panics if
// Addr is nil; callers working with onion peers should use Hostname
// directly instead.
func (pa *PeerAddress) SocketAddress() *net.TCPAddr {
	if pa.Addr == nil {
		panic("wire: PeerAddress.SocketAddress called on a hostname-only address")
	}
	return &net.TCPAddr{IP: pa.Addr, Port: int(pa.Port)}
}

// String renders the peer as "[host]:port", using Hostname when set and
// falling back to the dotted/colon form of Addr otherwise.
func (pa *PeerAddress) String() string {
	if pa.Hostname != "" {
		return fmt.Sprintf("[%s]:%d", pa.Hostname, pa.Port)
	}
	return fmt.Sprintf("[%s]:%d", pa.Addr.String(), pa.Port)
}

// Equal reports whether pa and other carry the same (Addr, Port, Time,
// Services) tuple.  Including Time and Services means the same peer can
// compare unequal across successive advertisements as those fields
// refresh; this is accepted, intended behavior.
func (pa *PeerAddress) Equal(other *PeerAddress) bool {
	if other == nil {
		return false
	}
	if pa.Port != other.Port || pa.Time != other.Time || pa.Services != other.Services {
		return false
	}
	if pa.Addr == nil || other.Addr == nil {
		return pa.Addr == nil && other.Addr == nil
	}
	return pa.Addr.Equal(other.Addr)
}

// HashKey returns a value suitable for use as a map key that reflects the
// same four fields Equal compares, standing in for Java's Objects.hash.
func (pa *PeerAddress) HashKey() string {
	addr := "<nil>"
	if pa.Addr != nil {
		addr = pa.Addr.String()
	}
	return fmt.Sprintf("%s|%d|%d|%d", addr, pa.Port, pa.Time, pa.Services)
}
