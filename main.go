package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"formwarp/internal/server"
)

func main() {
	addr := flag.String("addr", ":2222", "SSH server address")
	hostKeyPath := flag.String("hostkey", ".ssh/id_ed25519", "Path to SSH host key")
	tick := flag.Duration("tick", 50*time.Millisecond, "World tick interval")
	flag.Parse()

	fmt.Println("Formwarp - server menus over SSH")
	fmt.Printf("Starting server on %s\n", *addr)

	srv := server.New(*addr, *hostKeyPath, *tick)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
