//go:build linux

package sctp

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func bindLoopbackEndpoint(t *testing.T) (*SCTPEndpoint, *SCTPAddr) {
	t.Helper()
	ep, err := BindEndpoint("127.0.0.1:0", nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ep.Close() })
	addrs, err := ep.LocalAddrs()
	if err != nil {
		t.Fatal(err)
	}
	return ep, &addrs[0]
}

func TestEndpointSendRecv(t *testing.T) {
	skipIfNoSCTP(t)
	srv, srvAddr := bindLoopbackEndpoint(t)
	cli, cliAddr := bindLoopbackEndpoint(t)

	const wantStream = 3
	msg := []byte("one-to-many message")

	if _, err := cli.SendToAddr(msg, srvAddr, wantStream); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 64)
	n, stream, from, err := srv.RecvFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:n], msg) {
		t.Errorf("received %q, want %q", buf[:n], msg)
	}
	if stream != wantStream {
		t.Errorf("received on stream %d, want %d", stream, wantStream)
	}
	if from == nil || from.Port != cliAddr.Port {
		t.Errorf("sender = %v, want port %d", from, cliAddr.Port)
	}

	// And back, over the association the first message set up.
	if _, err := srv.SendToAddr([]byte("reply"), from, 0); err != nil {
		t.Fatal(err)
	}
	n, _, _, err = cli.RecvFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "reply" {
		t.Errorf("reply = %q", buf[:n])
	}
}

func TestEndpointSendToString(t *testing.T) {
	skipIfNoSCTP(t)
	srv, srvAddr := bindLoopbackEndpoint(t)
	cli, _ := bindLoopbackEndpoint(t)

	if _, err := cli.SendTo([]byte("by name"), srvAddr.String(), 0); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 16)
	n, _, _, err := srv.RecvFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "by name" {
		t.Errorf("received %q", buf[:n])
	}
}

func TestEndpointRecvTruncates(t *testing.T) {
	skipIfNoSCTP(t)
	srv, srvAddr := bindLoopbackEndpoint(t)
	cli, _ := bindLoopbackEndpoint(t)

	if _, err := cli.SendToAddr([]byte("0123456789"), srvAddr, 0); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 4)
	n, _, _, err := srv.RecvFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || string(buf[:n]) != "0123" {
		t.Errorf("short read = %q (n=%d), want %q", buf[:n], n, "0123")
	}
}

func TestEndpointRecvTimeout(t *testing.T) {
	skipIfNoSCTP(t)
	ep, _ := bindLoopbackEndpoint(t)

	if err := ep.SetTimeout(Receive, 50*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	_, _, _, err := ep.RecvFrom(make([]byte, 8))
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("RecvFrom on idle endpoint = %v, want ErrTimedOut", err)
	}
}

func TestEndpointBindAdd(t *testing.T) {
	skipIfNoSCTP(t)
	ep, _ := bindLoopbackEndpoint(t)

	if err := ep.BindAdd("127.0.0.2:0"); err != nil {
		t.Fatal(err)
	}
	addrs, err := ep.LocalAddrs()
	if err != nil {
		t.Fatal(err)
	}
	if len(addrs) != 2 {
		t.Fatalf("LocalAddrs after BindAdd = %v, want 2 addresses", addrs)
	}
}

func TestDatagramExchange(t *testing.T) {
	skipIfNoSCTP(t)
	// The listening endpoint is the passive side; the datagram socket
	// can only talk to peers it sends to first.
	srv, srvAddr := bindLoopbackEndpoint(t)

	dg, err := BindDatagram("127.0.0.1:0", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer dg.Close()

	if _, err := dg.SendToAddr([]byte("hello"), srvAddr, 0); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 16)
	n, _, from, err := srv.RecvFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "hello" {
		t.Errorf("received %q", buf[:n])
	}

	if _, err := srv.SendToAddr([]byte("hi back"), from, 0); err != nil {
		t.Fatal(err)
	}
	n, _, _, err = dg.RecvFrom(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "hi back" {
		t.Errorf("received %q", buf[:n])
	}
}

func TestDatagramTryClone(t *testing.T) {
	skipIfNoSCTP(t)
	dg, err := BindDatagram("127.0.0.1:0", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer dg.Close()

	clone, err := dg.TryClone()
	if err != nil {
		t.Fatal(err)
	}
	defer clone.Close()
	if clone.RawFD() == dg.RawFD() {
		t.Error("clone shares the descriptor with the original")
	}
	if _, err := clone.LocalAddrs(); err != nil {
		t.Fatal(err)
	}
}

func TestEndpointInitOptions(t *testing.T) {
	skipIfNoSCTP(t)
	ep, err := BindEndpoint("127.0.0.1:0", &Options{
		Init: InitOptions{NumOstreams: 5, MaxInstreams: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer ep.Close()
	if _, err := ep.LocalAddrs(); err != nil {
		t.Fatal(err)
	}
}
