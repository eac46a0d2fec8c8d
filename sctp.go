// Package sctp provides SCTP (RFC 4960) networking on top of the kernel
// SCTP implementation.
//
// The package exposes four socket flavors:
//
//   - [SCTPStream]: a one-to-one connection obtained with [Connect] or
//     [ConnectX], behaving like a TCP stream with additional
//     message-oriented send and receive preserving the SCTP stream id.
//   - [SCTPListener]: a passive one-to-one socket obtained with [Listen]
//     or [ListenX], accepting new connections as SCTPStream values.
//   - [SCTPEndpoint]: a one-to-many socket obtained with [BindEndpoint]
//     or [BindXEndpoint], multiplexing several associations over a single
//     descriptor with per-call destination addresses.
//   - [SCTPDatagram]: an unconnected one-to-many socket obtained with
//     [BindDatagram] or [BindXDatagram], for pure datagram-style use.
//
// Multi-homing is supported through the X constructor variants which bind
// or connect a list of addresses in a single bindx/connectx call.
//
// All operations are direct, potentially blocking system calls; timeouts
// are configured per socket with SetTimeout and surface as [ErrTimedOut].
// The package adds no locking above the kernel's own guarantees for a
// shared socket descriptor.
package sctp

// socketKind selects between the two SCTP socket styles of RFC 6458:
// one-to-one (SOCK_STREAM) and one-to-many (SOCK_SEQPACKET).
type socketKind int

const (
	oneToOne socketKind = iota
	oneToMany
)

// bindOp selects the sctp_bindx operation.
type bindOp int

const (
	bindAddAddr bindOp = iota
	bindRemAddr
)

// ShutdownHow selects which half of a connection Shutdown closes.
type ShutdownHow int

const (
	ShutRead ShutdownHow = iota
	ShutWrite
	ShutReadWrite
)

// SoDirection designates the receive or send side of a socket for
// buffer size and timeout options.
type SoDirection int

const (
	Receive SoDirection = iota
	Send
)

// AssocID identifies one association on a one-to-many socket. The zero
// value addresses the whole socket (or the single association of a
// one-to-one socket).
type AssocID int32

// InitOptions provides information for initializing new SCTP
// associations (SCTP_INITMSG). Zero fields keep the kernel defaults.
type InitOptions struct {
	// NumOstreams is the number of outbound streams the application
	// wishes to be able to send to.
	NumOstreams uint16

	// MaxInstreams is the maximum number of inbound streams the
	// application is prepared to support.
	MaxInstreams uint16

	// MaxAttempts is how many times the endpoint should resend the INIT.
	MaxAttempts uint16

	// MaxInitTimeout is the largest retransmission timeout (in
	// milliseconds) to use while attempting an INIT.
	MaxInitTimeout uint16
}

// Options configures socket creation for the constructor functions.
// The zero value is ready to use.
type Options struct {
	// Init provides parameters for new association setup.
	Init InitOptions
}

func (o *Options) apply(s *rawSock) error {
	s.setDefaultSockopts()
	if o.Init != (InitOptions{}) {
		if err := s.setInitOptions(o.Init); err != nil {
			return err
		}
	}
	return s.enableRecvInfo()
}
