// Package console implements the command line entry points: serve, prompt
// and check.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/km-arc/go-forms/framework/app"
)

var (
	// ErrUsage is returned for an unknown command or missing arguments.
	ErrUsage = errors.New("usage: go-forms [serve | prompt <form> | check <form> <file>]")
	// ErrInvalid is returned by check when the values do not validate.
	ErrInvalid = errors.New("validation failed")
)

// Run dispatches args[0]; no arguments means serve.
func Run(ctx context.Context, a *app.Application, args []string, out io.Writer) error {
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return a.Run(ctx)

	case "prompt":
		if len(args) != 1 {
			return ErrUsage
		}
		s, err := a.Forms.Open(args[0])
		if err != nil {
			return err
		}
		p := &Prompter{Driver: NewSurveyDriver(out)}
		res, err := p.Run(ctx, s)
		if err != nil {
			return err
		}
		if !res.Accepted() {
			return ErrInvalid
		}
		return nil

	case "check":
		if len(args) != 2 {
			return ErrUsage
		}
		ok, err := Check(a.Forms, args[0], args[1], out)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalid
		}
		return nil

	case "help", "-h", "--help":
		_, err := fmt.Fprintln(out, ErrUsage.Error())
		return err
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}
