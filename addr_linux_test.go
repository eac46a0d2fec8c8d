//go:build linux

package sctp

import (
	"errors"
	"net"
	"testing"

	"golang.org/x/sys/unix"
)

func TestSockaddrBufRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		addr   SCTPAddr
		family int
		size   int
	}{
		{"v4", SCTPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 5678}, afInet, unix.SizeofSockaddrInet4},
		{"v6", SCTPAddr{IP: net.ParseIP("::1"), Port: 9}, afInet6, unix.SizeofSockaddrInet6},
		{"v4-on-v6-socket", SCTPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 80}, afInet6, unix.SizeofSockaddrInet6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.addr.sockaddrBuf(tt.family)
			if err != nil {
				t.Fatal(err)
			}
			if len(buf) != tt.size {
				t.Fatalf("slot size = %d, want %d", len(buf), tt.size)
			}
			got, size, err := fromSockaddrBuf(buf)
			if err != nil {
				t.Fatal(err)
			}
			if size != tt.size {
				t.Errorf("decoded size = %d, want %d", size, tt.size)
			}
			if !got.IP.Equal(tt.addr.IP) {
				t.Errorf("decoded IP = %v, want %v", got.IP, tt.addr.IP)
			}
			if got.Port != tt.addr.Port {
				t.Errorf("decoded port = %d, want %d", got.Port, tt.addr.Port)
			}
		})
	}
}

func TestSockaddrBufPortByteOrder(t *testing.T) {
	a := SCTPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0x1234}
	buf, err := a.sockaddrBuf(afInet)
	if err != nil {
		t.Fatal(err)
	}
	// sin_port sits after the 2-byte family field, in network byte order.
	if buf[2] != 0x12 || buf[3] != 0x34 {
		t.Errorf("port bytes = %#x %#x, want 0x12 0x34", buf[2], buf[3])
	}
}

func TestSockaddrsBuf(t *testing.T) {
	addrs := []SCTPAddr{
		{IP: net.IPv4(127, 0, 0, 1), Port: 7},
		{IP: net.IPv4(127, 0, 0, 2), Port: 7},
	}
	buf, err := sockaddrsBuf(addrs, afInet)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 2*unix.SizeofSockaddrInet4 {
		t.Fatalf("packed size = %d, want %d", len(buf), 2*unix.SizeofSockaddrInet4)
	}
	got, err := fromSockaddrList(buf, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d addrs, want 2", len(got))
	}
	for i := range got {
		if !got[i].IP.Equal(addrs[i].IP) || got[i].Port != addrs[i].Port {
			t.Errorf("addr %d = %v, want %v", i, got[i], addrs[i])
		}
	}
}

func TestSockaddrsBufMixedFamily(t *testing.T) {
	addrs := []SCTPAddr{
		{IP: net.IPv4(127, 0, 0, 1), Port: 7},
		{IP: net.ParseIP("::1"), Port: 7},
	}
	// The v6 socket family forces v4 members into v4-mapped slots.
	buf, err := sockaddrsBuf(addrs, afInet6)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 2*unix.SizeofSockaddrInet6 {
		t.Fatalf("packed size = %d, want %d", len(buf), 2*unix.SizeofSockaddrInet6)
	}
	got, err := fromSockaddrList(buf, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !got[0].IP.Equal(addrs[0].IP) {
		t.Errorf("v4-mapped member decoded as %v, want %v", got[0].IP, addrs[0].IP)
	}
}

func TestSockaddrsBufEmpty(t *testing.T) {
	if _, err := sockaddrsBuf(nil, afInet); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty list error = %v, want ErrInvalidInput", err)
	}
}

func TestFromSockaddrBufInvalid(t *testing.T) {
	if _, _, err := fromSockaddrBuf(make([]byte, 4)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short buffer error = %v, want ErrInvalidInput", err)
	}
	bad := make([]byte, unix.SizeofSockaddrInet6)
	bad[0] = 0x7f // no such address family
	if _, _, err := fromSockaddrBuf(bad); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad family error = %v, want ErrInvalidInput", err)
	}
}

func TestByteOrderHelpers(t *testing.T) {
	if got := ntohui16(htonui16(0x1234)); got != 0x1234 {
		t.Errorf("ntohui16(htonui16(0x1234)) = %#x", got)
	}
	if got := htonui32(htonui32(0xdeadbeef)); got != 0xdeadbeef {
		t.Errorf("htonui32 twice = %#x, want identity", got)
	}
}
