package console_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/go-forms/framework/console"
	"github.com/km-arc/go-forms/framework/forms"
	"github.com/km-arc/go-forms/framework/http/validation"
)

// fakeDriver replays scripted answers. Like survey, a question whose
// validator rejects an answer is asked again with the next scripted answer.
type fakeDriver struct {
	answers  map[string][]string // message → answers in order
	confirms []bool
	rejected []string // validator messages, in order
	info     []string
}

func (d *fakeDriver) next(msg string) (string, error) {
	q := d.answers[msg]
	if len(q) == 0 {
		return "", errors.New("no scripted answer for " + msg)
	}
	d.answers[msg] = q[1:]
	return q[0], nil
}

func (d *fakeDriver) ask(cfg console.InputConfig) (string, error) {
	for {
		v, err := d.next(cfg.Message)
		if err != nil {
			return "", err
		}
		if cfg.Validator == nil {
			return v, nil
		}
		if err := cfg.Validator(v); err != nil {
			d.rejected = append(d.rejected, err.Error())
			continue
		}
		return v, nil
	}
}

func (d *fakeDriver) Input(_ context.Context, cfg console.InputConfig) (string, error) {
	return d.ask(cfg)
}
func (d *fakeDriver) Password(_ context.Context, cfg console.InputConfig) (string, error) {
	return d.ask(cfg)
}
func (d *fakeDriver) TextArea(_ context.Context, cfg console.InputConfig) (string, error) {
	return d.ask(cfg)
}
func (d *fakeDriver) Select(_ context.Context, cfg console.SelectConfig) (string, error) {
	return d.ask(console.InputConfig{Message: cfg.Message, Validator: cfg.Validator})
}
func (d *fakeDriver) Confirm(_ context.Context, cfg console.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}
func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.info = append(d.info, msg)
	return nil
}

func openSession(t *testing.T, form string) *forms.Session {
	t.Helper()
	s, err := forms.NewRegistry(forms.PolicyChange, nil, forms.Builtin()...).Open(form)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPrompter_FeedbackRejectsBadAnswersLive(t *testing.T) {
	d := &fakeDriver{answers: map[string][]string{
		"Name:":             {"R2D2", "Jane Doe"},
		"Email:":            {"jane@", "jane@example.com"},
		"Phone Number:":     {"12345", "5551234567"},
		"Feedback Message:": {"too short", strings.Repeat("x", 25)},
		"Rating:":           {"", "5"},
	}}
	s := openSession(t, forms.FeedbackForm)

	out, err := (&console.Prompter{Driver: d}).Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Accepted() {
		t.Fatalf("expected accepted, got %v", out.Errors)
	}

	wantRejected := []string{
		"Name should only contain alphabets and spaces.",
		"Please enter a valid email address (e.g., name@example.com).",
		"Phone number must be a 10-digit number.",
		"Feedback must be between 20 and 250 characters.",
		"Rating is required.",
	}
	if diff := cmp.Diff(wantRejected, d.rejected); diff != "" {
		t.Errorf("rejections mismatch (-want +got):\n%s", diff)
	}
	if got := d.info[len(d.info)-1]; got != "Thank you for your feedback!" {
		t.Errorf("last info: got %q", got)
	}
	if out.Data["rating"] != "5" {
		t.Errorf("rating: got %q", out.Data["rating"])
	}
}

func TestPrompter_RegistrationReportsOnSubmitAndReasks(t *testing.T) {
	d := &fakeDriver{
		answers: map[string][]string{
			"Name:":     {"Jane"},
			"Email:":    {"bad", "jane@example.com"},
			"Password:": {"abc", "abcdef"},
			"Phone:":    {"5551234567"},
		},
		confirms: []bool{true},
	}
	s := openSession(t, forms.RegistrationForm)

	out, err := (&console.Prompter{Driver: d}).Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Accepted() {
		t.Fatalf("expected accepted on second pass, got %v", out.Errors)
	}
	if len(d.rejected) != 0 {
		t.Errorf("batch form must not reject answers live: %v", d.rejected)
	}
	wantInfo := []string{
		"Registration Form",
		"  email: Invalid Email format",
		"  password: Password must be 6-12 characters long.",
		"Form submitted successfully!",
	}
	if diff := cmp.Diff(wantInfo, d.info); diff != "" {
		t.Errorf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestPrompter_GiveUpReturnsRejected(t *testing.T) {
	d := &fakeDriver{answers: map[string][]string{
		"Name:":     {""},
		"Email:":    {"jane@example.com"},
		"Password:": {"abcdef"},
		"Phone:":    {"5551234567"},
	}}
	s := openSession(t, forms.RegistrationForm)

	out, err := (&console.Prompter{Driver: d}).Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := validation.Errors{"name": "Name is required"}
	if diff := cmp.Diff(want, out.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if s.Value("email") != "jane@example.com" {
		t.Error("values must survive a rejected submit")
	}
}

func TestPrompter_UncontrolledCheckbox(t *testing.T) {
	d := &fakeDriver{
		answers: map[string][]string{
			"Name:":           {"Sam"},
			"Favorite color:": {"blue"},
		},
		confirms: []bool{true},
	}
	out, err := (&console.Prompter{Driver: d}).Run(context.Background(), openSession(t, forms.UncontrolledForm))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := validation.State{"name": "Sam", "color": "blue", "likes_react": "on"}
	if diff := cmp.Diff(want, out.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestPrompter_DriverErrorStops(t *testing.T) {
	d := &fakeDriver{answers: map[string][]string{}}
	_, err := (&console.Prompter{Driver: d}).Run(context.Background(), openSession(t, forms.FeedbackForm))
	if err == nil || !strings.HasPrefix(err.Error(), "name: ") {
		t.Errorf("expected wrapped driver error, got %v", err)
	}
}
