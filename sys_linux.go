//go:build linux

package sctp

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Platform shim. Everything the rest of the package needs to know about
// the OS socket layer is named here and resolved at build time; the
// !linux counterpart in unsupported.go stubs the same names.
const (
	afInet  = unix.AF_INET
	afInet6 = unix.AF_INET6

	sockStream    = unix.SOCK_STREAM
	sockSeqpacket = unix.SOCK_SEQPACKET

	solSocket = unix.SOL_SOCKET
	// SOL_SCTP and IPPROTO_SCTP share the value 0x84; the kernel takes
	// the protocol number as the option level for SCTP options.
	solSCTP   = unix.IPPROTO_SCTP
	protoSCTP = unix.IPPROTO_SCTP
)

// SCTP socket options and ancillary data types, from linux/sctp.h.
// x/sys/unix carries only a subset of these, so they are spelled out.
const (
	sctpInitMsg          = 2   // SCTP_INITMSG
	sctpNoDelay          = 3   // SCTP_NODELAY
	sctpDisableFragments = 8   // SCTP_DISABLE_FRAGMENTS
	sctpRecvRcvInfo      = 32  // SCTP_RECVRCVINFO
	sctpSockoptBindxAdd  = 100 // SCTP_SOCKOPT_BINDX_ADD
	sctpSockoptBindxRem  = 101 // SCTP_SOCKOPT_BINDX_REM
	sctpSockoptConnectx  = 110 // SCTP_SOCKOPT_CONNECTX
	sctpGetPeerAddrs     = 108 // SCTP_GET_PEER_ADDRS
	sctpGetLocalAddrs    = 109 // SCTP_GET_LOCAL_ADDRS

	sctpCmsgSndRcv  = 1 // SCTP_SNDRCV
	sctpCmsgRcvInfo = 3 // SCTP_RCVINFO
)

func closeFD(fd int) error { return unix.Close(fd) }

// htonui16 converts a port number to network byte order regardless of
// the host system's endianness.
func htonui16(v uint16) uint16 {
	p := (*[2]byte)(unsafe.Pointer(&v))
	return uint16(p[0])<<8 | uint16(p[1])
}

// ntohui16 is its own inverse; the name states the direction at the
// call site.
func ntohui16(v uint16) uint16 { return htonui16(v) }

func htonui32(v uint32) uint32 {
	p := (*[4]byte)(unsafe.Pointer(&v))
	return uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3])
}
