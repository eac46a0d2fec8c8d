package sctp

import (
	"errors"
	"net"
	"testing"
)

func mustIP(t *testing.T, s string) net.IP {
	t.Helper()
	ip := net.ParseIP(s)
	if ip == nil {
		t.Fatalf("bad test IP %q", s)
	}
	return ip
}

func TestResolveSCTPAddr(t *testing.T) {
	tests := []struct {
		network string
		address string
		want    string
	}{
		{"sctp", "127.0.0.1:5566", "127.0.0.1:5566"},
		{"sctp4", "127.0.0.1:5566", "127.0.0.1:5566"},
		{"sctp", "[::1]:5566", "[::1]:5566"},
		{"sctp6", "[::1]:5566", "[::1]:5566"},
		{"sctp", ":5566", ":5566"},
		{"sctp", "[fe80::1%lo]:80", "[fe80::1%lo]:80"},
		{"", "127.0.0.1:0", "127.0.0.1:0"},
	}
	for _, tt := range tests {
		a, err := ResolveSCTPAddr(tt.network, tt.address)
		if err != nil {
			t.Errorf("ResolveSCTPAddr(%q, %q): %v", tt.network, tt.address, err)
			continue
		}
		if a.String() != tt.want {
			t.Errorf("ResolveSCTPAddr(%q, %q) = %q, want %q", tt.network, tt.address, a.String(), tt.want)
		}
	}
}

func TestResolveSCTPAddrError(t *testing.T) {
	if _, err := ResolveSCTPAddr("tcp", "127.0.0.1:80"); err == nil {
		t.Error("unknown network accepted")
	}
	if _, err := ResolveSCTPAddr("sctp", "127.0.0.1"); err == nil {
		t.Error("missing port accepted")
	}
}

func TestResolveAddrListEmpty(t *testing.T) {
	_, err := resolveAddrList("bindx", nil)
	if err == nil {
		t.Fatal("empty address list accepted")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty address list error = %v, want ErrInvalidInput", err)
	}
}

func TestAddrFamily(t *testing.T) {
	v4 := SCTPAddr{IP: mustIP(t, "127.0.0.1")}
	v6 := SCTPAddr{IP: mustIP(t, "::1")}
	mapped := SCTPAddr{IP: mustIP(t, "::ffff:10.0.0.1")}

	if got := v4.family(); got != afInet {
		t.Errorf("v4 family = %d, want %d", got, afInet)
	}
	if got := v6.family(); got != afInet6 {
		t.Errorf("v6 family = %d, want %d", got, afInet6)
	}
	if got := mapped.family(); got != afInet {
		t.Errorf("v4-mapped family = %d, want %d", got, afInet)
	}
	if got := (&SCTPAddr{}).family(); got != afInet {
		t.Errorf("empty addr family = %d, want %d", got, afInet)
	}

	if got := familyOf([]SCTPAddr{v4, v4}); got != afInet {
		t.Errorf("familyOf([v4 v4]) = %d, want %d", got, afInet)
	}
	if got := familyOf([]SCTPAddr{v4, v6}); got != afInet6 {
		t.Errorf("familyOf([v4 v6]) = %d, want %d", got, afInet6)
	}
	if got := familyOf(nil); got != afInet {
		t.Errorf("familyOf(nil) = %d, want %d", got, afInet)
	}
}

func TestAddrString(t *testing.T) {
	if got := (*SCTPAddr)(nil).String(); got != "<nil>" {
		t.Errorf("nil addr String = %q", got)
	}
	a := &SCTPAddr{IP: mustIP(t, "fe80::1"), Port: 80, Zone: "eth0"}
	if got := a.String(); got != "[fe80::1%eth0]:80" {
		t.Errorf("zoned addr String = %q", got)
	}
	wild := &SCTPAddr{Port: 7}
	if got := wild.String(); got != ":7" {
		t.Errorf("wildcard addr String = %q", got)
	}
}
