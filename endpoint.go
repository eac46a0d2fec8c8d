package sctp

import (
	"time"
)

// SCTPEndpoint is a one-to-many SCTP socket. A single descriptor
// multiplexes any number of peer associations: SendTo picks (or
// implicitly sets up) the peer per call, RecvFrom reports the sender of
// each message. The endpoint is listening, so remote peers can also
// initiate associations to it.
type SCTPEndpoint struct {
	sock *rawSock
}

// BindEndpoint creates a one-to-many endpoint bound to the given
// host:port address, ready to exchange messages with any peer. A nil
// opts keeps the kernel defaults.
func BindEndpoint(address string, opts *Options) (*SCTPEndpoint, error) {
	addrs, err := resolveAddrList("bind", []string{address})
	if err != nil {
		return nil, err
	}
	return bindEndpoint(addrs, opts, true)
}

// BindXEndpoint creates a one-to-many endpoint bound to all the given
// local addresses in one sctp_bindx call.
func BindXEndpoint(addresses []string, opts *Options) (*SCTPEndpoint, error) {
	addrs, err := resolveAddrList("bindx", addresses)
	if err != nil {
		return nil, err
	}
	return bindEndpoint(addrs, opts, true)
}

func bindEndpoint(addrs []SCTPAddr, opts *Options, listen bool) (*SCTPEndpoint, error) {
	sock, err := bindSock(addrs, oneToMany, opts)
	if err != nil {
		return nil, err
	}
	if listen {
		if err := sock.listen(-1); err != nil {
			sock.close()
			return nil, err
		}
	}
	return &SCTPEndpoint{sock: sock}, nil
}

// bindSock opens a socket of the list's family and binds every address
// in it, releasing the socket on any failure.
func bindSock(addrs []SCTPAddr, kind socketKind, opts *Options) (*rawSock, error) {
	sock, err := newRawSock(familyOf(addrs), kind)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.apply(sock); err != nil {
		sock.close()
		return nil, err
	}
	if len(addrs) == 1 {
		err = sock.bind(&addrs[0])
	} else {
		err = sock.bindx(addrs, bindAddAddr)
	}
	if err != nil {
		sock.close()
		return nil, err
	}
	return sock, nil
}

// EndpointFromRawFD wraps an existing one-to-many SCTP socket
// descriptor. Ownership of the descriptor transfers to the returned
// endpoint.
func EndpointFromRawFD(fd int) *SCTPEndpoint {
	return &SCTPEndpoint{sock: rawSockFromFD(fd, oneToMany)}
}

// SendTo sends b as one message on the given SCTP stream to the peer
// at the given host:port address, setting up the association first if
// none exists yet.
func (c *SCTPEndpoint) SendTo(b []byte, address string, stream uint16) (int, error) {
	to, err := ResolveSCTPAddr("sctp", address)
	if err != nil {
		return 0, err
	}
	return c.sock.sendmsg(b, to, stream, 0, 0)
}

// SendToAddr is SendTo with a pre-resolved address.
func (c *SCTPEndpoint) SendToAddr(b []byte, to *SCTPAddr, stream uint16) (int, error) {
	return c.sock.sendmsg(b, to, stream, 0, 0)
}

// SendToAddrExt is SendToAddr with a payload protocol id and a bound on
// the message's lifetime in the transmit queue. A zero ttl means no
// bound.
func (c *SCTPEndpoint) SendToAddrExt(b []byte, to *SCTPAddr, stream uint16, ppid uint32, ttl time.Duration) (int, error) {
	return c.sock.sendmsg(b, to, stream, ppid, ttl)
}

// RecvFrom receives one message into b, returning its size, the SCTP
// stream it arrived on and the sender's address. A message larger than
// b is silently truncated.
func (c *SCTPEndpoint) RecvFrom(b []byte) (int, uint16, *SCTPAddr, error) {
	return c.sock.recvmsg(b)
}

// BindAdd binds one more local address to the endpoint.
func (c *SCTPEndpoint) BindAdd(address string) error {
	addrs, err := resolveAddrList("bindx", []string{address})
	if err != nil {
		return err
	}
	return c.sock.bindx(addrs, bindAddAddr)
}

// BindRemove removes a bound local address from the endpoint.
func (c *SCTPEndpoint) BindRemove(address string) error {
	addrs, err := resolveAddrList("bindx", []string{address})
	if err != nil {
		return err
	}
	return c.sock.bindx(addrs, bindRemAddr)
}

// LocalAddrs returns all local addresses the endpoint is bound to.
func (c *SCTPEndpoint) LocalAddrs() ([]SCTPAddr, error) {
	return c.sock.localAddrs(0)
}

// SetBufferSize sets the kernel receive or send buffer size.
func (c *SCTPEndpoint) SetBufferSize(dir SoDirection, size int) error {
	return c.sock.setBufferSize(dir, size)
}

// BufferSize returns the kernel receive or send buffer size.
func (c *SCTPEndpoint) BufferSize(dir SoDirection) (int, error) {
	return c.sock.bufferSize(dir)
}

// SetTimeout bounds how long receive or send operations may block. A
// zero duration restores indefinite blocking.
func (c *SCTPEndpoint) SetTimeout(dir SoDirection, d time.Duration) error {
	return c.sock.setTimeout(dir, d)
}

// TryClone returns a new independently owned endpoint over the same
// kernel socket.
func (c *SCTPEndpoint) TryClone() (*SCTPEndpoint, error) {
	sock, err := c.sock.dup()
	if err != nil {
		return nil, err
	}
	return &SCTPEndpoint{sock: sock}, nil
}

// RawFD returns the underlying socket descriptor. The endpoint keeps
// ownership.
func (c *SCTPEndpoint) RawFD() int { return c.sock.fd }

// Close releases the socket. It never fails; closing an already closed
// endpoint is a no-op.
func (c *SCTPEndpoint) Close() error {
	c.sock.close()
	return nil
}
