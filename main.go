package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-forms/framework/app"
	"github.com/km-arc/go-forms/framework/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New() // loads .env automatically
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = console.Run(ctx, application, os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, console.ErrInvalid):
		os.Exit(1)
	case errors.Is(err, console.ErrAborted):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
