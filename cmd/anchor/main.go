// Package main provides the anchor CLI.
//
// Usage:
//
//	anchor simulate SCENE --resize WxH...   Resize a widget and print each step
//	anchor inspect SCENE NAME [edits]       Show one widget's box model
//	anchor watch SCENE                      Resize the root interactively
//
// Examples:
//
//	anchor simulate dialog.toml --resize 600x400 --resize 300x200
//	anchor inspect dialog.toml ok --anchor left=on
//	ANCHOR_DEBUG=/tmp/anchor.log anchor watch dialog.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-anchor/internal/cli"
	"github.com/grindlemire/go-anchor/internal/debug"
)

var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	defer debug.Close()

	cli.SetVersion(version, commit, date)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
