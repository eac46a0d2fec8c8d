//go:build linux

package sctp

import (
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

func (s *rawSock) setNoDelay(b bool) error {
	return sysError("setsockopt", nil, unix.SetsockoptInt(s.fd, solSCTP, sctpNoDelay, boolint(b)))
}

func (s *rawSock) noDelay() (bool, error) {
	v, err := unix.GetsockoptInt(s.fd, solSCTP, sctpNoDelay)
	if err != nil {
		return false, sysError("getsockopt", nil, err)
	}
	return intbool(v), nil
}

func (s *rawSock) setDisableFragments(b bool) error {
	return sysError("setsockopt", nil, unix.SetsockoptInt(s.fd, solSCTP, sctpDisableFragments, boolint(b)))
}

func (s *rawSock) disableFragments() (bool, error) {
	v, err := unix.GetsockoptInt(s.fd, solSCTP, sctpDisableFragments)
	if err != nil {
		return false, sysError("getsockopt", nil, err)
	}
	return intbool(v), nil
}

func sobuf(dir SoDirection) int {
	if dir == Send {
		return unix.SO_SNDBUF
	}
	return unix.SO_RCVBUF
}

func (s *rawSock) setBufferSize(dir SoDirection, size int) error {
	return sysError("setsockopt", nil, unix.SetsockoptInt(s.fd, solSocket, sobuf(dir), size))
}

func (s *rawSock) bufferSize(dir SoDirection) (int, error) {
	v, err := unix.GetsockoptInt(s.fd, solSocket, sobuf(dir))
	if err != nil {
		return 0, sysError("getsockopt", nil, err)
	}
	return v, nil
}

// setTimeout arms SO_RCVTIMEO or SO_SNDTIMEO. A zero duration clears
// the timeout, restoring indefinite blocking.
func (s *rawSock) setTimeout(dir SoDirection, d time.Duration) error {
	opt := unix.SO_RCVTIMEO
	if dir == Send {
		opt = unix.SO_SNDTIMEO
	}
	tv := unix.NsecToTimeval(d.Nanoseconds())
	return sysError("setsockopt", nil, unix.SetsockoptTimeval(s.fd, solSocket, opt, &tv))
}

// setReuseAddr allows reuse of recently-used addresses.
func (s *rawSock) setReuseAddr() error {
	return sysError("setsockopt", nil, unix.SetsockoptInt(s.fd, solSocket, unix.SO_REUSEADDR, 1))
}

// setInitOptions passes association setup parameters as a struct
// sctp_initmsg, laid out exactly as InitOptions.
func (s *rawSock) setInitOptions(init InitOptions) error {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&init)), unsafe.Sizeof(init))
	return sysError("setsockopt", nil, unix.SetsockoptString(s.fd, solSCTP, sctpInitMsg, string(buf)))
}

func getsockoptBytes(fd, level, opt int, b []byte) error {
	p := unsafe.Pointer(&b[0])
	vallen := uint32(len(b))

	if runtime.GOARCH == "s390x" || runtime.GOARCH == "386" {
		const (
			SYS_SOCKETCALL = 102
			_GETSOCKOPT    = 15
		)
		args := [5]uintptr{uintptr(fd), uintptr(level), uintptr(opt), uintptr(p), uintptr(unsafe.Pointer(&vallen))}
		_, _, err := unix.Syscall(SYS_SOCKETCALL, _GETSOCKOPT, uintptr(unsafe.Pointer(&args)), 0)
		if err != 0 {
			return err
		}
		return nil
	}

	_, _, e1 := unix.Syscall6(unix.SYS_GETSOCKOPT, uintptr(fd), uintptr(level), uintptr(opt), uintptr(p), uintptr(unsafe.Pointer(&vallen)), 0)
	if e1 != 0 {
		return e1
	}
	return nil
}

func intbool(i int) bool { return i != 0 }
