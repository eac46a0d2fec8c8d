package sctp

// SCTPDatagram is an unconnected one-to-many SCTP socket for pure
// datagram-style use. Unlike SCTPEndpoint it does not listen, so remote
// peers cannot initiate associations to it; it only talks to peers it
// first sends to.
type SCTPDatagram struct {
	SCTPEndpoint
}

// BindDatagram creates a datagram-style socket bound to the given
// host:port address. A nil opts keeps the kernel defaults.
func BindDatagram(address string, opts *Options) (*SCTPDatagram, error) {
	addrs, err := resolveAddrList("bind", []string{address})
	if err != nil {
		return nil, err
	}
	return bindDatagram(addrs, opts)
}

// BindXDatagram creates a datagram-style socket bound to all the given
// local addresses in one sctp_bindx call.
func BindXDatagram(addresses []string, opts *Options) (*SCTPDatagram, error) {
	addrs, err := resolveAddrList("bindx", addresses)
	if err != nil {
		return nil, err
	}
	return bindDatagram(addrs, opts)
}

func bindDatagram(addrs []SCTPAddr, opts *Options) (*SCTPDatagram, error) {
	ep, err := bindEndpoint(addrs, opts, false)
	if err != nil {
		return nil, err
	}
	return &SCTPDatagram{SCTPEndpoint: *ep}, nil
}

// DatagramFromRawFD wraps an existing one-to-many SCTP socket
// descriptor. Ownership of the descriptor transfers.
func DatagramFromRawFD(fd int) *SCTPDatagram {
	return &SCTPDatagram{SCTPEndpoint: *EndpointFromRawFD(fd)}
}

// TryClone returns a new independently owned socket over the same
// kernel socket.
func (c *SCTPDatagram) TryClone() (*SCTPDatagram, error) {
	ep, err := c.SCTPEndpoint.TryClone()
	if err != nil {
		return nil, err
	}
	return &SCTPDatagram{SCTPEndpoint: *ep}, nil
}
