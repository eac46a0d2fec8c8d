//go:build linux

package sctp

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestSCTPOptionLevel(t *testing.T) {
	// The kernel takes the protocol number as the option level for all
	// SCTP socket options; both cmsg paths and every SCTP-level
	// setsockopt route through this constant.
	if solSCTP != unix.IPPROTO_SCTP {
		t.Errorf("solSCTP = %#x, want unix.IPPROTO_SCTP (%#x)", solSCTP, unix.IPPROTO_SCTP)
	}
	if solSCTP != 0x84 {
		t.Errorf("solSCTP = %#x, want 0x84", solSCTP)
	}
}
