//go:build linux

package sctp

import (
	"net"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sockaddrBuf packs the address into the raw sockaddr layout the kernel
// expects in the packed buffers of sctp_bindx/sctp_connectx. The family
// argument is the socket's family: a v4 address on a v6 socket is
// packed in its v4-mapped form.
func (a *SCTPAddr) sockaddrBuf(family int) ([]byte, error) {
	port := 0
	ip := net.IP(nil)
	zone := ""
	if a != nil {
		port, ip, zone = a.Port, a.IP, a.Zone
	}
	switch family {
	case afInet:
		sa, err := ipToSockaddrInet4(ip, port)
		if err != nil {
			return nil, err
		}
		raw := syscall.RawSockaddrInet4{
			Family: afInet,
			Port:   htonui16(uint16(sa.Port)),
			Addr:   sa.Addr,
		}
		return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unix.SizeofSockaddrInet4)...), nil

	case afInet6:
		sa, err := ipToSockaddrInet6(ip, port, zone)
		if err != nil {
			return nil, err
		}
		raw := syscall.RawSockaddrInet6{
			Family:   afInet6,
			Port:     htonui16(uint16(sa.Port)),
			Scope_id: sa.ZoneId,
			Addr:     sa.Addr,
		}
		return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unix.SizeofSockaddrInet6)...), nil
	}
	return nil, &net.AddrError{Err: "invalid address family", Addr: a.String()}
}

// sockaddrsBuf concatenates the raw sockaddr slots of a multi-homed
// address list into one buffer, the form sctp_bindx and sctp_connectx
// take. An empty list has no wire form.
func sockaddrsBuf(addrs []SCTPAddr, family int) ([]byte, error) {
	if len(addrs) == 0 {
		return nil, argError("sockaddr", nil, ErrInvalidInput, "empty address list")
	}
	var buf []byte
	for i := range addrs {
		b, err := addrs[i].sockaddrBuf(family)
		if err != nil {
			return nil, argError("sockaddr", addrs[i].opAddr(), ErrInvalidInput, err.Error())
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// fromSockaddrBuf decodes a single raw sockaddr record, returning the
// address and the record's size so packed lists can be walked.
func fromSockaddrBuf(buf []byte) (*SCTPAddr, int, error) {
	if len(buf) < unix.SizeofSockaddrInet4 {
		return nil, 0, argError("sockaddr", nil, ErrInvalidInput, "short sockaddr buffer")
	}
	switch family := (*syscall.RawSockaddrAny)(unsafe.Pointer(&buf[0])).Addr.Family; family {
	case afInet:
		raw := (*syscall.RawSockaddrInet4)(unsafe.Pointer(&buf[0]))
		a := &SCTPAddr{
			IP:   append(net.IP(nil), raw.Addr[:]...),
			Port: int(ntohui16(raw.Port)),
		}
		return a, unix.SizeofSockaddrInet4, nil

	case afInet6:
		if len(buf) < unix.SizeofSockaddrInet6 {
			return nil, 0, argError("sockaddr", nil, ErrInvalidInput, "short sockaddr buffer")
		}
		raw := (*syscall.RawSockaddrInet6)(unsafe.Pointer(&buf[0]))
		a := &SCTPAddr{
			IP:   append(net.IP(nil), raw.Addr[:]...),
			Port: int(ntohui16(raw.Port)),
			Zone: zoneCache.name(int(raw.Scope_id)),
		}
		return a, unix.SizeofSockaddrInet6, nil

	default:
		return nil, 0, argError("sockaddr", nil, ErrInvalidInput, "invalid address family "+uitoa(uint(family)))
	}
}

// fromSockaddrList walks a packed buffer of numAddrs raw sockaddr
// records, as returned by the kernel's local and peer address queries.
// Records are sized per their own family, so mixed-family lists decode.
func fromSockaddrList(buf []byte, numAddrs int) ([]SCTPAddr, error) {
	addrs := make([]SCTPAddr, 0, numAddrs)
	for i := 0; i < numAddrs; i++ {
		a, size, err := fromSockaddrBuf(buf)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, *a)
		buf = buf[size:]
	}
	return addrs, nil
}

// fromUnixSockaddr converts an accept(2) peer address.
func fromUnixSockaddr(sa unix.Sockaddr) *SCTPAddr {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return &SCTPAddr{IP: append(net.IP(nil), sa.Addr[:]...), Port: sa.Port}
	case *unix.SockaddrInet6:
		return &SCTPAddr{
			IP:   append(net.IP(nil), sa.Addr[:]...),
			Port: sa.Port,
			Zone: zoneCache.name(int(sa.ZoneId)),
		}
	}
	return nil
}
