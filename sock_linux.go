//go:build linux

package sctp

import (
	"io"
	"net"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sndRcvInfo is the wire layout of struct sctp_sndrcvinfo, the
// SCTP_SNDRCV ancillary data carried alongside sendmsg.
type sndRcvInfo struct {
	Stream     uint16
	SSN        uint16
	Flags      uint16
	_          uint16 // alignment before the 32-bit fields
	PPID       uint32
	Context    uint32
	TimeToLive uint32
	TSN        uint32
	CumTSN     uint32
	AssocID    int32
}

// rcvInfo is the wire layout of struct sctp_rcvinfo, delivered as
// SCTP_RCVINFO ancillary data once SCTP_RECVRCVINFO is enabled.
type rcvInfo struct {
	SID     uint16
	SSN     uint16
	Flags   uint16
	_       uint16
	PPID    uint32
	TSN     uint32
	CumTSN  uint32
	Context uint32
	AssocID int32
}

// newRawSock opens a blocking, close-on-exec SCTP socket of the given
// kind: SOCK_STREAM for one-to-one, SOCK_SEQPACKET for one-to-many.
func newRawSock(family int, kind socketKind) (*rawSock, error) {
	sotype := sockStream
	if kind == oneToMany {
		sotype = sockSeqpacket
	}
	fd, err := unix.Socket(family, sotype|unix.SOCK_CLOEXEC, protoSCTP)
	if err != nil {
		return nil, sysError("socket", nil, err)
	}
	return &rawSock{fd: fd, family: family, kind: kind}, nil
}

// setDefaultSockopts keeps a v6 socket open to v4-mapped peers, the
// dual-stack default of the net package.
func (s *rawSock) setDefaultSockopts() {
	if s.family == afInet6 {
		// Some kernels never admit this option; best effort.
		_ = unix.SetsockoptInt(s.fd, unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, 0)
	}
}

func (s *rawSock) bind(addr *SCTPAddr) error {
	sa, err := addr.unixSockaddr(s.family)
	if err != nil {
		return argError("bind", addr.opAddr(), ErrInvalidInput, err.Error())
	}
	return sysError("bind", addr.opAddr(), unix.Bind(s.fd, sa))
}

// bindx adds or removes a list of local addresses in one sctp_bindx
// call, carried to the kernel as a setsockopt with the packed sockaddr
// buffer as its value.
func (s *rawSock) bindx(addrs []SCTPAddr, op bindOp) error {
	buf, err := sockaddrsBuf(addrs, s.family)
	if err != nil {
		return err
	}
	opt := sctpSockoptBindxAdd
	if op == bindRemAddr {
		opt = sctpSockoptBindxRem
	}
	return sysError("bindx", nil, unix.SetsockoptString(s.fd, solSCTP, opt, string(buf)))
}

func (s *rawSock) connect(addr *SCTPAddr) error {
	sa, err := addr.unixSockaddr(s.family)
	if err != nil {
		return argError("connect", addr.opAddr(), ErrInvalidInput, err.Error())
	}
	for {
		err = unix.Connect(s.fd, sa)
		switch err {
		case unix.EINTR:
			continue
		case unix.EINPROGRESS, unix.EALREADY, unix.EISCONN:
			// Association setup continues in the kernel; not an error.
			return nil
		}
		return sysError("connect", addr.opAddr(), err)
	}
}

// connectx initiates an association with a multi-homed peer in one
// sctp_connectx call. The kernel reports the new association id as the
// return value of the setsockopt carrying the packed address buffer.
func (s *rawSock) connectx(addrs []SCTPAddr) (AssocID, error) {
	buf, err := sockaddrsBuf(addrs, s.family)
	if err != nil {
		return 0, err
	}
	var raddr net.Addr
	if len(addrs) > 0 {
		raddr = addrs[0].opAddr()
	}
	r0, _, errno := unix.Syscall6(unix.SYS_SETSOCKOPT,
		uintptr(s.fd), uintptr(solSCTP), uintptr(sctpSockoptConnectx),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), 0)
	switch errno {
	case 0:
		return AssocID(r0), nil
	case unix.EINPROGRESS, unix.EALREADY:
		// Setup continues in the kernel; the association id is not
		// known yet.
		return 0, nil
	}
	return 0, sysError("connectx", raddr, errno)
}

func (s *rawSock) listen(backlog int) error {
	if backlog < 0 {
		backlog = listenerBacklog()
	}
	return sysError("listen", nil, unix.Listen(s.fd, backlog))
}

// accept waits for one incoming association and returns a new owned
// socket for it. An accept timeout configured with SO_RCVTIMEO
// surfaces as ErrTimedOut.
func (s *rawSock) accept() (*rawSock, *SCTPAddr, error) {
	for {
		nfd, sa, err := unix.Accept4(s.fd, unix.SOCK_CLOEXEC)
		switch err {
		case nil:
			ns := &rawSock{fd: nfd, family: s.family, kind: s.kind}
			return ns, fromUnixSockaddr(sa), nil
		case unix.EINTR:
			continue
		case unix.ECONNABORTED:
			// A connection on the listen queue was closed before we
			// got to it; try again.
			continue
		}
		return nil, nil, sysError("accept", nil, err)
	}
}

func (s *rawSock) recv(b []byte) (int, error) {
	for {
		n, err := unix.Read(s.fd, b)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, sysError("recv", nil, err)
		}
		return n, nil
	}
}

func (s *rawSock) send(b []byte) (int, error) {
	for {
		n, err := unix.Write(s.fd, b)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, sysError("send", nil, err)
		}
		return n, nil
	}
}

// sendmsg sends one message on one SCTP stream, with the stream id,
// payload protocol id and time-to-live carried as SCTP_SNDRCV ancillary
// data. A nil to sends on the socket's established association; on
// one-to-many sockets to selects (or implicitly sets up) the peer
// association.
func (s *rawSock) sendmsg(b []byte, to *SCTPAddr, stream uint16, ppid uint32, ttl time.Duration) (int, error) {
	var sa unix.Sockaddr
	if to != nil {
		var err error
		sa, err = to.unixSockaddr(s.family)
		if err != nil {
			return 0, argError("sendmsg", to.opAddr(), ErrInvalidInput, err.Error())
		}
	}
	info := sndRcvInfo{
		Stream: stream,
		// The protocol id travels as-is in the protocol, so the kernel
		// expects it already in network byte order.
		PPID:       htonui32(ppid),
		TimeToLive: uint32(ttl / time.Millisecond),
	}
	oob := marshalSndRcvInfo(&info)
	for {
		n, err := unix.SendmsgN(s.fd, b, oob, sa, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, sysError("sendmsg", to.opAddr(), err)
		}
		return n, nil
	}
}

// recvmsg receives one message, returning its size, the SCTP stream it
// arrived on and the sender's address. Messages larger than b are
// silently truncated to len(b), matching the kernel's own semantics. A
// clean association shutdown on a one-to-one socket surfaces as io.EOF.
func (s *rawSock) recvmsg(b []byte) (int, uint16, *SCTPAddr, error) {
	oob := make([]byte, unix.CmsgSpace(int(unsafe.Sizeof(rcvInfo{}))))
	for {
		n, oobn, _, sa, err := unix.Recvmsg(s.fd, b, oob, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, 0, nil, sysError("recvmsg", nil, err)
		}
		if n == 0 && oobn == 0 {
			return 0, 0, nil, io.EOF
		}
		stream := parseRcvStream(oob[:oobn])
		return n, stream, fromUnixSockaddr(sa), nil
	}
}

func marshalSndRcvInfo(info *sndRcvInfo) []byte {
	oob := make([]byte, unix.CmsgSpace(int(unsafe.Sizeof(*info))))
	h := (*unix.Cmsghdr)(unsafe.Pointer(&oob[0]))
	h.Level = solSCTP
	h.Type = sctpCmsgSndRcv
	h.SetLen(unix.CmsgLen(int(unsafe.Sizeof(*info))))
	copy(oob[unix.CmsgLen(0):], unsafe.Slice((*byte)(unsafe.Pointer(info)), unsafe.Sizeof(*info)))
	return oob
}

// parseRcvStream extracts the stream id from SCTP receive ancillary
// data, accepting both the SCTP_RCVINFO and the older SCTP_SNDRCV
// forms. The stream id leads both layouts.
func parseRcvStream(oob []byte) uint16 {
	if len(oob) == 0 {
		return 0
	}
	msgs, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return 0
	}
	for _, m := range msgs {
		if m.Header.Level != solSCTP {
			continue
		}
		switch m.Header.Type {
		case sctpCmsgRcvInfo, sctpCmsgSndRcv:
			if len(m.Data) >= 2 {
				return *(*uint16)(unsafe.Pointer(&m.Data[0]))
			}
		}
	}
	return 0
}

// enableRecvInfo subscribes the socket to SCTP_RCVINFO ancillary data
// so recvmsg can report the arrival stream.
func (s *rawSock) enableRecvInfo() error {
	return sysError("setsockopt", nil, unix.SetsockoptInt(s.fd, solSCTP, sctpRecvRcvInfo, 1))
}

func (s *rawSock) localAddrs(id AssocID) ([]SCTPAddr, error) {
	return s.getAddrs("getladdrs", sctpGetLocalAddrs, id)
}

func (s *rawSock) peerAddrs(id AssocID) ([]SCTPAddr, error) {
	return s.getAddrs("getpaddrs", sctpGetPeerAddrs, id)
}

// getAddrs queries the packed local or peer address list of an
// association. The kernel fills a struct sctp_getaddrs: the assoc id,
// the number of records and the packed records themselves.
func (s *rawSock) getAddrs(op string, optName int, id AssocID) ([]SCTPAddr, error) {
	// Enough for most cases.
	const addrsBufSize = 4096

	type rawSctpAddrs struct {
		assocID int32
		addrNum uint32
		addrs   [addrsBufSize]byte
	}
	rawParam := rawSctpAddrs{assocID: int32(id)}

	rawParamBuf := unsafe.Slice((*byte)(unsafe.Pointer(&rawParam)), unsafe.Sizeof(rawParam))
	if err := getsockoptBytes(s.fd, solSCTP, optName, rawParamBuf); err != nil {
		return nil, sysError(op, nil, err)
	}
	if rawParam.addrNum == 0 {
		return nil, argError(op, nil, ErrAddrNotAvailable, "socket is not bound")
	}
	return fromSockaddrList(rawParam.addrs[:], int(rawParam.addrNum))
}

func (s *rawSock) shutdown(how ShutdownHow) error {
	var sysHow int
	switch how {
	case ShutRead:
		sysHow = unix.SHUT_RD
	case ShutWrite:
		sysHow = unix.SHUT_WR
	case ShutReadWrite:
		sysHow = unix.SHUT_RDWR
	default:
		return argError("shutdown", nil, ErrInvalidInput, "invalid shutdown direction")
	}
	return sysError("shutdown", nil, unix.Shutdown(s.fd, sysHow))
}

// dup returns a second, independently owned handle over the same
// kernel socket. Closing one handle does not affect the other.
func (s *rawSock) dup() (*rawSock, error) {
	nfd, err := unix.FcntlInt(uintptr(s.fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return nil, sysError("dup", nil, err)
	}
	return &rawSock{fd: nfd, family: s.family, kind: s.kind}, nil
}

// rawSockFromFD adopts an existing descriptor, inferring the address
// family from the socket's own name.
func rawSockFromFD(fd int, kind socketKind) *rawSock {
	family := afInet
	if sa, err := unix.Getsockname(fd); err == nil {
		if _, ok := sa.(*unix.SockaddrInet6); ok {
			family = afInet6
		}
	}
	return &rawSock{fd: fd, family: family, kind: kind}
}

// close releases the descriptor exactly once. Close errors on an
// already-doomed socket carry no usable information, so they are
// dropped.
func (s *rawSock) close() {
	if s.fd >= 0 {
		_ = closeFD(s.fd)
		s.fd = -1
	}
}

// unixSockaddr converts the address for syscalls taking unix.Sockaddr.
func (a *SCTPAddr) unixSockaddr(family int) (unix.Sockaddr, error) {
	switch family {
	case afInet:
		var ip net.IP
		port := 0
		if a != nil {
			ip, port = a.IP, a.Port
		}
		sa, err := ipToSockaddrInet4(ip, port)
		if err != nil {
			return nil, err
		}
		return &unix.SockaddrInet4{Port: sa.Port, Addr: sa.Addr}, nil
	case afInet6:
		var ip net.IP
		port := 0
		zone := ""
		if a != nil {
			ip, port, zone = a.IP, a.Port, a.Zone
		}
		sa, err := ipToSockaddrInet6(ip, port, zone)
		if err != nil {
			return nil, err
		}
		return &unix.SockaddrInet6{Port: sa.Port, ZoneId: sa.ZoneId, Addr: sa.Addr}, nil
	}
	return nil, &net.AddrError{Err: "invalid address family", Addr: a.String()}
}
