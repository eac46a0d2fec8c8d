//go:build !linux

package sctp

import (
	"errors"
	"runtime"
	"time"
)

// ErrNotSupported is returned by every operation on platforms without a
// kernel SCTP implementation this package can drive.
var ErrNotSupported = errors.New("go-sctp is not supported on " + runtime.GOOS)

const (
	afInet  = 0x2
	afInet6 = 0xa
)

func closeFD(fd int) error { return ErrNotSupported }

func newRawSock(family int, kind socketKind) (*rawSock, error) {
	return nil, ErrNotSupported
}

func rawSockFromFD(fd int, kind socketKind) *rawSock {
	return &rawSock{fd: fd, family: afInet, kind: kind}
}

func (s *rawSock) setDefaultSockopts() {}

func (s *rawSock) bind(addr *SCTPAddr) error { return ErrNotSupported }

func (s *rawSock) bindx(addrs []SCTPAddr, op bindOp) error { return ErrNotSupported }

func (s *rawSock) connect(addr *SCTPAddr) error { return ErrNotSupported }

func (s *rawSock) connectx(addrs []SCTPAddr) (AssocID, error) { return 0, ErrNotSupported }

func (s *rawSock) listen(backlog int) error { return ErrNotSupported }

func (s *rawSock) accept() (*rawSock, *SCTPAddr, error) { return nil, nil, ErrNotSupported }

func (s *rawSock) recv(b []byte) (int, error) { return 0, ErrNotSupported }

func (s *rawSock) send(b []byte) (int, error) { return 0, ErrNotSupported }

func (s *rawSock) sendmsg(b []byte, to *SCTPAddr, stream uint16, ppid uint32, ttl time.Duration) (int, error) {
	return 0, ErrNotSupported
}

func (s *rawSock) recvmsg(b []byte) (int, uint16, *SCTPAddr, error) {
	return 0, 0, nil, ErrNotSupported
}

func (s *rawSock) enableRecvInfo() error { return ErrNotSupported }

func (s *rawSock) localAddrs(id AssocID) ([]SCTPAddr, error) { return nil, ErrNotSupported }

func (s *rawSock) peerAddrs(id AssocID) ([]SCTPAddr, error) { return nil, ErrNotSupported }

func (s *rawSock) shutdown(how ShutdownHow) error { return ErrNotSupported }

func (s *rawSock) dup() (*rawSock, error) { return nil, ErrNotSupported }

func (s *rawSock) close() {}

func (s *rawSock) setNoDelay(b bool) error { return ErrNotSupported }

func (s *rawSock) noDelay() (bool, error) { return false, ErrNotSupported }

func (s *rawSock) setDisableFragments(b bool) error { return ErrNotSupported }

func (s *rawSock) disableFragments() (bool, error) { return false, ErrNotSupported }

func (s *rawSock) setBufferSize(dir SoDirection, size int) error { return ErrNotSupported }

func (s *rawSock) bufferSize(dir SoDirection) (int, error) { return 0, ErrNotSupported }

func (s *rawSock) setTimeout(dir SoDirection, d time.Duration) error { return ErrNotSupported }

func (s *rawSock) setReuseAddr() error { return ErrNotSupported }

func (s *rawSock) setInitOptions(init InitOptions) error { return ErrNotSupported }

func sockaddrsBuf(addrs []SCTPAddr, family int) ([]byte, error) { return nil, ErrNotSupported }

func fromSockaddrBuf(buf []byte) (*SCTPAddr, int, error) { return nil, 0, ErrNotSupported }

func fromSockaddrList(buf []byte, numAddrs int) ([]SCTPAddr, error) { return nil, ErrNotSupported }
