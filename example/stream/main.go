// Command stream echoes one message over a one-to-one SCTP connection.
package main

import (
	"fmt"
	"log"

	"github.com/phsym/go-sctp"
)

func main() {
	ln, err := sctp.Listen("127.0.0.1:0", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer ln.Close()
	addrs, err := ln.LocalAddrs()
	if err != nil {
		log.Fatal(err)
	}
	addr := addrs[0].String()
	fmt.Println("listening on", addr)

	go func() {
		c, peer, err := ln.Accept()
		if err != nil {
			log.Fatal(err)
		}
		defer c.Close()
		fmt.Println("accepted association from", peer)
		buf := make([]byte, 1024)
		n, stream, err := c.RecvMsg(buf)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := c.SendMsg(buf[:n], stream); err != nil {
			log.Fatal(err)
		}
	}()

	c, err := sctp.Connect(addr, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	if _, err := c.SendMsg([]byte("hello over sctp"), 6); err != nil {
		log.Fatal(err)
	}
	buf := make([]byte, 1024)
	n, stream, err := c.RecvMsg(buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("echo on stream %d: %s\n", stream, buf[:n])
}
