package sctp

import (
	"io"
	"time"
)

// SCTPStream is a one-to-one SCTP connection. It behaves like a TCP
// stream through Read and Write, and additionally sends and receives
// whole messages on numbered SCTP streams through SendMsg and RecvMsg.
type SCTPStream struct {
	sock *rawSock
}

// Connect establishes an association with the peer at the given
// host:port address. A nil opts keeps the kernel defaults.
func Connect(address string, opts *Options) (*SCTPStream, error) {
	addrs, err := resolveAddrList("connect", []string{address})
	if err != nil {
		return nil, err
	}
	return connectStream(addrs, opts)
}

// ConnectX establishes an association with a multi-homed peer,
// offering all the given addresses to the kernel in one sctp_connectx
// call. The socket family is inferred from the list: IPv6 as soon as
// any address requires it.
func ConnectX(addresses []string, opts *Options) (*SCTPStream, error) {
	addrs, err := resolveAddrList("connectx", addresses)
	if err != nil {
		return nil, err
	}
	return connectStream(addrs, opts)
}

func connectStream(addrs []SCTPAddr, opts *Options) (*SCTPStream, error) {
	sock, err := newRawSock(familyOf(addrs), oneToOne)
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
		err = sock.connect(&addrs[0])
	} else {
		_, err = sock.connectx(addrs)
	}
	if err != nil {
		sock.close()
		return nil, err
	}
	return &SCTPStream{sock: sock}, nil
}

// StreamFromRawFD wraps an existing one-to-one SCTP socket descriptor.
// Ownership of the descriptor transfers to the returned stream.
func StreamFromRawFD(fd int) *SCTPStream {
	return &SCTPStream{sock: rawSockFromFD(fd, oneToOne)}
}

// Read reads from the association as a byte stream, ignoring message
// boundaries. It returns io.EOF once the peer has shut down its write
// side.
func (c *SCTPStream) Read(b []byte) (int, error) {
	n, err := c.sock.recv(b)
	if err != nil {
		return 0, err
	}
	if n == 0 && len(b) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write writes to stream 0 of the association, retrying until all of b
// is accepted by the kernel.
func (c *SCTPStream) Write(b []byte) (int, error) {
	var nn int
	for nn < len(b) {
		n, err := c.sock.send(b[nn:])
		nn += n
		if err != nil {
			return nn, err
		}
	}
	return nn, nil
}

// SendMsg sends b as one message on the given SCTP stream.
func (c *SCTPStream) SendMsg(b []byte, stream uint16) (int, error) {
	return c.sock.sendmsg(b, nil, stream, 0, 0)
}

// SendMsgExt sends b as one message on the given SCTP stream, tagging
// it with a payload protocol id and bounding its lifetime in the
// transmit queue. A zero ttl means no bound.
func (c *SCTPStream) SendMsgExt(b []byte, stream uint16, ppid uint32, ttl time.Duration) (int, error) {
	return c.sock.sendmsg(b, nil, stream, ppid, ttl)
}

// RecvMsg receives one message into b, returning its size and the SCTP
// stream it arrived on. A message larger than b is silently truncated.
func (c *SCTPStream) RecvMsg(b []byte) (int, uint16, error) {
	n, stream, _, err := c.sock.recvmsg(b)
	return n, stream, err
}

// LocalAddrs returns all local addresses the association is bound to.
func (c *SCTPStream) LocalAddrs() ([]SCTPAddr, error) {
	return c.sock.localAddrs(0)
}

// PeerAddrs returns all addresses of the association's peer.
func (c *SCTPStream) PeerAddrs() ([]SCTPAddr, error) {
	return c.sock.peerAddrs(0)
}

// Shutdown gracefully closes the read side, the write side or both.
// Shutting down the write side sends the SCTP SHUTDOWN sequence; the
// peer observes io.EOF.
func (c *SCTPStream) Shutdown(how ShutdownHow) error {
	return c.sock.shutdown(how)
}

// SetNoDelay disables (true) or restores (false) the Nagle-like
// bundling delay of outgoing messages.
func (c *SCTPStream) SetNoDelay(b bool) error { return c.sock.setNoDelay(b) }

// NoDelay reports whether the bundling delay is disabled.
func (c *SCTPStream) NoDelay() (bool, error) { return c.sock.noDelay() }

// SetDisableFragments forbids (true) splitting messages over multiple
// SCTP DATA chunks; oversized sends then fail instead of fragmenting.
func (c *SCTPStream) SetDisableFragments(b bool) error { return c.sock.setDisableFragments(b) }

// DisableFragments reports whether message fragmentation is forbidden.
func (c *SCTPStream) DisableFragments() (bool, error) { return c.sock.disableFragments() }

// SetBufferSize sets the kernel receive or send buffer size.
func (c *SCTPStream) SetBufferSize(dir SoDirection, size int) error {
	return c.sock.setBufferSize(dir, size)
}

// BufferSize returns the kernel receive or send buffer size.
func (c *SCTPStream) BufferSize(dir SoDirection) (int, error) {
	return c.sock.bufferSize(dir)
}

// SetTimeout bounds how long receive or send operations may block. A
// zero duration restores indefinite blocking. Expired timeouts surface
// as ErrTimedOut.
func (c *SCTPStream) SetTimeout(dir SoDirection, d time.Duration) error {
	return c.sock.setTimeout(dir, d)
}

// TryClone returns a new independently owned stream over the same
// kernel socket. Closing one does not affect the other.
func (c *SCTPStream) TryClone() (*SCTPStream, error) {
	sock, err := c.sock.dup()
	if err != nil {
		return nil, err
	}
	return &SCTPStream{sock: sock}, nil
}

// RawFD returns the underlying socket descriptor. The stream keeps
// ownership.
func (c *SCTPStream) RawFD() int { return c.sock.fd }

// Close releases the socket. It never fails; closing an already closed
// stream is a no-op.
func (c *SCTPStream) Close() error {
	c.sock.close()
	return nil
}
