package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// InputConfig configures a free text prompt. Validator runs on every answer;
// a non-nil error is shown and the question is asked again.
type InputConfig struct {
	Message   string
	Default   string
	Validator func(string) error
}

// SelectConfig configures a single choice prompt. Labels are shown, the
// matching entry of Values is returned.
type SelectConfig struct {
	Message   string
	Labels    []string
	Values    []string
	Default   string // a value, not a label
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
}

// PromptDriver abstracts the terminal so the prompt flow can be tested
// without one.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns a PromptDriver backed by survey on the process
// terminal. Info lines go to out.
func NewSurveyDriver(out io.Writer) PromptDriver {
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Input{Message: cfg.Message, Default: cfg.Default}
	return d.askString(ctx, prompt, cfg.Validator)
}

func (d *surveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Password{Message: cfg.Message}
	return d.askString(ctx, prompt, cfg.Validator)
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Multiline{Message: cfg.Message, Default: cfg.Default}
	return d.askString(ctx, prompt, cfg.Validator)
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := &survey.Select{Message: cfg.Message, Options: cfg.Labels}
	if i := indexOf(cfg.Values, cfg.Default); i >= 0 {
		prompt.Default = cfg.Labels[i]
	}

	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			oa, ok := ans.(core.OptionAnswer)
			if !ok || oa.Index < 0 || oa.Index >= len(cfg.Values) {
				return fmt.Errorf("unexpected answer %v", ans)
			}
			return cfg.Validator(cfg.Values[oa.Index])
		}))
	}

	var out core.OptionAnswer
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	if out.Index < 0 || out.Index >= len(cfg.Values) {
		return "", fmt.Errorf("unexpected selection %q", out.Value)
	}
	return cfg.Values[out.Index], nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{Message: cfg.Message, Default: cfg.Default}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func (d *surveyDriver) askString(ctx context.Context, prompt survey.Prompt, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(values []string, v string) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
