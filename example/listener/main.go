// Command listener serves incoming SCTP associations with the
// non-terminating Incoming iterator, logging accept errors in-band.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/phsym/go-sctp"
)

func main() {
	ln, err := sctp.ListenX([]string{"127.0.0.1:5566", "127.0.0.2:5566"}, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer ln.Close()
	if err := ln.SetTimeout(30 * time.Second); err != nil {
		log.Fatal(err)
	}

	addrs, err := ln.LocalAddrs()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("listening on", addrs)

	it := ln.Incoming()
	for {
		c, peer, err := it.Next()
		if err != nil {
			log.Println("accept:", err)
			continue
		}
		go func() {
			defer c.Close()
			fmt.Println("association from", peer)
			if _, err := c.Write([]byte("welcome\n")); err != nil {
				log.Println("write:", err)
			}
		}()
	}
}
