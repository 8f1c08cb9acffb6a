package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/km-arc/go-forms/framework/forms"
	"github.com/km-arc/go-forms/framework/http/validation"
)

// Prompter fills a form session from the terminal. Each answer is stored with
// Session.Change and Session.Blur, so fields that validate live reject a bad
// answer on the spot; the rest are reported when the form is submitted.
type Prompter struct {
	Driver PromptDriver
}

// Run asks every field, submits, and on rejection offers to re-ask just the
// invalid fields. It returns the last outcome.
func (p *Prompter) Run(ctx context.Context, s *forms.Session) (validation.Outcome, error) {
	def := s.Definition()
	if err := p.Driver.Info(ctx, def.Title); err != nil {
		return validation.Outcome{}, err
	}

	fields := def.FieldNames()
	for {
		for _, name := range fields {
			in, _ := def.Input(name)
			if err := p.ask(ctx, s, in); err != nil {
				return validation.Outcome{}, err
			}
		}

		out := s.Submit()
		if out.Accepted() {
			return out, p.Driver.Info(ctx, s.Notice())
		}

		var list validation.ErrorList
		errors.As(out.Err(), &list)
		fields = fields[:0:0]
		for _, e := range list {
			if err := p.Driver.Info(ctx, fmt.Sprintf("  %s: %s", e.Field, e.Message)); err != nil {
				return out, err
			}
			fields = append(fields, e.Field)
		}

		again, err := p.Driver.Confirm(ctx, ConfirmConfig{
			Message: "Correct the errors and submit again?",
			Default: true,
		})
		if err != nil || !again {
			return out, err
		}
	}
}

func (p *Prompter) ask(ctx context.Context, s *forms.Session, in forms.Input) error {
	name, def := in.Name, s.Definition()
	validate := func(v string) error {
		s.Change(name, v)
		s.Blur(name)
		// Only a firing trigger may reject; a stale message from an earlier
		// submit must not block a corrected answer.
		for _, ev := range []forms.Trigger{forms.OnChange, forms.OnBlur} {
			if msg, ok := def.Live(name, ev, v, s.Policy()); ok && msg != "" {
				return errors.New(msg)
			}
		}
		return nil
	}
	cfg := InputConfig{
		Message:   in.Label + ":",
		Default:   s.Value(name),
		Validator: validate,
	}

	var (
		value string
		err   error
	)
	switch in.Kind {
	case forms.Password:
		value, err = p.Driver.Password(ctx, cfg)
	case forms.TextArea:
		value, err = p.Driver.TextArea(ctx, cfg)
	case forms.Select:
		sel := SelectConfig{
			Message:   cfg.Message,
			Default:   cfg.Default,
			Validator: validate,
		}
		for _, o := range in.Options {
			sel.Labels = append(sel.Labels, o.Label)
			sel.Values = append(sel.Values, o.Value)
		}
		value, err = p.Driver.Select(ctx, sel)
	case forms.Checkbox:
		var yes bool
		yes, err = p.Driver.Confirm(ctx, ConfirmConfig{Message: in.Label, Default: cfg.Default != ""})
		if yes {
			value = forms.CheckboxOn
		}
	default:
		value, err = p.Driver.Input(ctx, cfg)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.Change(name, value)
	return nil
}
