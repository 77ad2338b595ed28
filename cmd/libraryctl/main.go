// Command libraryctl manages the catalog of a remote library server from the shell.
//
//	libraryctl list [text]
//	libraryctl add <title>...
//	libraryctl set-title <id> <title>
//	libraryctl del <id>...
//
// The server and credentials come from --server, --user and --password or from
// LIBRARY_SERVER, LIBRARY_USER and LIBRARY_PASSWORD.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
