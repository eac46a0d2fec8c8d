package sctp

import (
	"errors"
	"net"
	"os"
	"syscall"
)

// Error kinds. Every error returned by this package matches exactly one
// of these sentinels through errors.Is, in addition to carrying the raw
// OS error where one exists. Errors with no matching sentinel are OS
// failures with no closer classification.
var (
	// ErrInvalidInput reports a structurally invalid argument: an empty
	// address list, a malformed address, or an undecodable address family.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAddrNotAvailable reports an address query on an unbound or
	// unconnected socket.
	ErrAddrNotAvailable = errors.New("address not available")

	// ErrTimedOut reports that a receive or accept timeout configured
	// with SetTimeout elapsed before the operation completed.
	ErrTimedOut = errors.New("i/o timeout")

	// ErrPermissionDenied reports an OS permission failure.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrResourceExhausted reports an OS allocation failure such as
	// descriptor or buffer exhaustion.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrUnsupported reports that the OS lacks the requested capability,
	// typically an SCTP-less kernel.
	ErrUnsupported = errors.New("operation not supported")
)

// OpError is the error type returned by operations in this package. It
// records the operation, the address involved if any, the error kind
// sentinel the failure maps to, and the underlying cause.
type OpError struct {
	// Op is the failing operation, e.g. "bindx" or "recvmsg".
	Op string

	// Addr is the address involved in the operation, if known.
	Addr net.Addr

	// Kind is one of the package's error kind sentinels, or nil when
	// the failure has no closer classification.
	Kind error

	// Err is the underlying cause, usually an *os.SyscallError.
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := "sctp " + e.Op
	if e.Addr != nil {
		s += " " + e.Addr.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *OpError) Unwrap() error { return e.Err }

// Is reports whether target is the error kind sentinel this error maps
// to, making errors.Is(err, ErrTimedOut) and friends work through the
// wrapper.
func (e *OpError) Is(target error) bool { return e.Kind != nil && target == e.Kind }

// Timeout implements the net.Error interface.
func (e *OpError) Timeout() bool { return e.Kind == ErrTimedOut }

// Temporary implements the net.Error interface.
func (e *OpError) Temporary() bool {
	return e.Kind == ErrTimedOut || e.Kind == ErrResourceExhausted
}

// errnoKind maps an OS error number to the package's error kind
// sentinels. A nil result means the errno has no closer classification
// and is passed through as-is.
func errnoKind(e syscall.Errno) error {
	switch e {
	case syscall.EINVAL, syscall.EDESTADDRREQ, syscall.EAFNOSUPPORT, syscall.EFAULT:
		return ErrInvalidInput
	case syscall.EACCES, syscall.EPERM:
		return ErrPermissionDenied
	case syscall.EMFILE, syscall.ENFILE, syscall.ENOMEM, syscall.ENOBUFS:
		return ErrResourceExhausted
	case syscall.EAGAIN, syscall.ETIMEDOUT:
		return ErrTimedOut
	case syscall.EPROTONOSUPPORT, syscall.ESOCKTNOSUPPORT, syscall.ENOPROTOOPT:
		return ErrUnsupported
	case syscall.EADDRNOTAVAIL, syscall.ENOTCONN:
		return ErrAddrNotAvailable
	}
	return nil
}

// sysError wraps a failed system call into an *OpError, classifying the
// errno into an error kind when one applies.
func sysError(op string, addr net.Addr, err error) error {
	if err == nil {
		return nil
	}
	var kind error
	var errno syscall.Errno
	if errors.As(err, &errno) {
		kind = errnoKind(errno)
		err = os.NewSyscallError(op, errno)
	}
	return &OpError{Op: op, Addr: addr, Kind: kind, Err: err}
}

// argError reports a structurally invalid argument without involving a
// system call.
func argError(op string, addr net.Addr, kind error, detail string) error {
	return &OpError{Op: op, Addr: addr, Kind: kind, Err: errors.New(detail)}
}
