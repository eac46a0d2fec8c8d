package sctp

import (
	"time"
)

// SCTPListener is a passive one-to-one SCTP socket accepting incoming
// associations as SCTPStream values.
type SCTPListener struct {
	sock *rawSock
}

// Listen creates a listener bound to the given host:port address. The
// listen backlog is the kernel default. A nil opts keeps the kernel
// defaults.
func Listen(address string, opts *Options) (*SCTPListener, error) {
	addrs, err := resolveAddrList("listen", []string{address})
	if err != nil {
		return nil, err
	}
	return listenSCTP(addrs, opts)
}

// ListenX creates a listener bound to all the given local addresses in
// one sctp_bindx call.
func ListenX(addresses []string, opts *Options) (*SCTPListener, error) {
	addrs, err := resolveAddrList("listen", addresses)
	if err != nil {
		return nil, err
	}
	return listenSCTP(addrs, opts)
}

func listenSCTP(addrs []SCTPAddr, opts *Options) (*SCTPListener, error) {
	sock, err := newRawSock(familyOf(addrs), oneToOne)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	// Allow reuse of recently-used addresses.
	if err := sock.setReuseAddr(); err != nil {
		sock.close()
		return nil, err
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
	if err := sock.listen(-1); err != nil {
		sock.close()
		return nil, err
	}
	return &SCTPListener{sock: sock}, nil
}

// ListenerFromRawFD wraps an existing listening one-to-one SCTP socket
// descriptor. Ownership of the descriptor transfers.
func ListenerFromRawFD(fd int) *SCTPListener {
	return &SCTPListener{sock: rawSockFromFD(fd, oneToOne)}
}

// Accept waits for the next incoming association and returns it along
// with the peer's primary address. With a timeout armed through
// SetTimeout, an idle wait fails with ErrTimedOut.
func (ln *SCTPListener) Accept() (*SCTPStream, *SCTPAddr, error) {
	sock, peer, err := ln.sock.accept()
	if err != nil {
		return nil, nil, err
	}
	// Arm the ancillary-data subscription on the accepted socket so
	// RecvMsg on the new stream reports arrival streams.
	if err := sock.enableRecvInfo(); err != nil {
		sock.close()
		return nil, nil, err
	}
	return &SCTPStream{sock: sock}, peer, nil
}

// Incoming returns an iterator over incoming associations. The
// iterator never terminates: failed accepts (including timeouts) are
// yielded as errors and the next call waits again.
func (ln *SCTPListener) Incoming() *Incoming {
	return &Incoming{ln: ln}
}

// Incoming iterates over the associations arriving at a listener.
type Incoming struct {
	ln *SCTPListener
}

// Next blocks for one more incoming association. Errors are returned
// in-band; the iterator stays usable after any error.
func (it *Incoming) Next() (*SCTPStream, *SCTPAddr, error) {
	return it.ln.Accept()
}

// BindAdd binds one more local address to the listener.
func (ln *SCTPListener) BindAdd(address string) error {
	addrs, err := resolveAddrList("bindx", []string{address})
	if err != nil {
		return err
	}
	return ln.sock.bindx(addrs, bindAddAddr)
}

// BindRemove removes a bound local address from the listener.
func (ln *SCTPListener) BindRemove(address string) error {
	addrs, err := resolveAddrList("bindx", []string{address})
	if err != nil {
		return err
	}
	return ln.sock.bindx(addrs, bindRemAddr)
}

// LocalAddrs returns all local addresses the listener is bound to.
func (ln *SCTPListener) LocalAddrs() ([]SCTPAddr, error) {
	return ln.sock.localAddrs(0)
}

// SetTimeout bounds how long Accept may block. A zero duration
// restores indefinite blocking.
func (ln *SCTPListener) SetTimeout(d time.Duration) error {
	return ln.sock.setTimeout(Receive, d)
}

// TryClone returns a new independently owned listener over the same
// kernel socket.
func (ln *SCTPListener) TryClone() (*SCTPListener, error) {
	sock, err := ln.sock.dup()
	if err != nil {
		return nil, err
	}
	return &SCTPListener{sock: sock}, nil
}

// RawFD returns the underlying socket descriptor. The listener keeps
// ownership.
func (ln *SCTPListener) RawFD() int { return ln.sock.fd }

// Close releases the socket. It never fails; closing an already closed
// listener is a no-op.
func (ln *SCTPListener) Close() error {
	ln.sock.close()
	return nil
}
