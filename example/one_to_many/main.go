// Command one_to_many exchanges messages between two one-to-many SCTP
// endpoints over a single descriptor each.
package main

import (
	"fmt"
	"log"

	"github.com/phsym/go-sctp"
)

func main() {
	srv, err := sctp.BindEndpoint("127.0.0.1:0", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer srv.Close()
	srvAddrs, err := srv.LocalAddrs()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("server endpoint on", srvAddrs[0].String())

	go func() {
		buf := make([]byte, 1024)
		n, stream, from, err := srv.RecvFrom(buf)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("server: %q on stream %d from %s\n", buf[:n], stream, from)
		if _, err := srv.SendToAddr(buf[:n], from, stream); err != nil {
			log.Fatal(err)
		}
	}()

	cli, err := sctp.BindDatagram("127.0.0.1:0", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer cli.Close()

	if _, err := cli.SendToAddr([]byte("ping"), &srvAddrs[0], 3); err != nil {
		log.Fatal(err)
	}
	buf := make([]byte, 1024)
	n, stream, from, err := cli.RecvFrom(buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("client: %q on stream %d from %s\n", buf[:n], stream, from)
}
