package sctp

import (
	"errors"
	"net"
	"os"
	"syscall"
	"testing"
)

func TestErrnoKind(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  error
	}{
		{syscall.EINVAL, ErrInvalidInput},
		{syscall.EDESTADDRREQ, ErrInvalidInput},
		{syscall.EACCES, ErrPermissionDenied},
		{syscall.EPERM, ErrPermissionDenied},
		{syscall.EMFILE, ErrResourceExhausted},
		{syscall.ENOBUFS, ErrResourceExhausted},
		{syscall.EAGAIN, ErrTimedOut},
		{syscall.ETIMEDOUT, ErrTimedOut},
		{syscall.EPROTONOSUPPORT, ErrUnsupported},
		{syscall.ENOPROTOOPT, ErrUnsupported},
		{syscall.EADDRNOTAVAIL, ErrAddrNotAvailable},
		{syscall.ENOTCONN, ErrAddrNotAvailable},
		{syscall.EIO, nil},
	}
	for _, tt := range tests {
		if got := errnoKind(tt.errno); got != tt.want {
			t.Errorf("errnoKind(%v) = %v, want %v", tt.errno, got, tt.want)
		}
	}
}

func TestSysError(t *testing.T) {
	err := sysError("connect", &SCTPAddr{Port: 80}, syscall.ETIMEDOUT)
	if !errors.Is(err, ErrTimedOut) {
		t.Errorf("errors.Is(err, ErrTimedOut) = false for %v", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(err, ErrInvalidInput) = true for %v", err)
	}

	var nerr net.Error
	if !errors.As(err, &nerr) {
		t.Fatalf("%v does not implement net.Error", err)
	}
	if !nerr.Timeout() {
		t.Error("timeout error does not report Timeout()")
	}

	var sysErr *os.SyscallError
	if !errors.As(err, &sysErr) {
		t.Errorf("%v does not wrap *os.SyscallError", err)
	}
	if !errors.Is(err, syscall.ETIMEDOUT) {
		t.Errorf("%v does not wrap the raw errno", err)
	}

	if sysError("any", nil, nil) != nil {
		t.Error("sysError(nil) != nil")
	}
}

func TestOpErrorString(t *testing.T) {
	err := &OpError{Op: "bindx", Addr: &SCTPAddr{Port: 7}, Err: errors.New("boom")}
	want := "sctp bindx :7: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestArgError(t *testing.T) {
	err := argError("bindx", nil, ErrInvalidInput, "empty address list")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("argError kind not matched by errors.Is: %v", err)
	}
}
