// Command linsolve solves dense linear systems A·x = b from files, from an
// interactive console session, or in bulk from a directory, and carries a
// two-point linear interpolation helper.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cxt := &Context{In: os.Stdin, Out: os.Stdout}
	err := NewRootCmd(cxt).ExecuteContext(ctx)
	stop()
	if err != nil {
		if cxt.Log != nil {
			cxt.Log.Error("command failed", "error", err)
			cxt.Log.Sync()
		}
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}
