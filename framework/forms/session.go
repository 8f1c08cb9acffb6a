package forms

import (
	"log/slog"

	"github.com/km-arc/go-forms/framework/http/validation"
)

// Session is one user's pass through a form. It owns the FormState and the
// displayed ErrorMap; all rule evaluation is delegated to the definition's
// RuleSet. A Session is not safe for concurrent use.
type Session struct {
	def    *Definition
	policy Policy
	log    *slog.Logger

	state  validation.State
	errors validation.Errors
	notice string
}

// NewSession starts a session at the definition's defaults.
// A nil logger discards output.
func NewSession(def *Definition, policy Policy, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		def:    def,
		policy: policy,
		log:    log.With("form", def.Name),
		state:  def.InitialState(),
		errors: make(validation.Errors),
	}
}

// Definition returns the form being filled in.
func (s *Session) Definition() *Definition { return s.def }

// Policy returns the trigger policy the session was opened with.
func (s *Session) Policy() Policy { return s.policy }

// State returns a copy of the current values.
func (s *Session) State() validation.State { return s.state.Clone() }

// Errors returns a copy of the displayed messages.
func (s *Session) Errors() validation.Errors { return s.errors.Clone() }

// Notice is the success message from the last accepted submit, if any.
func (s *Session) Notice() string { return s.notice }

// Value returns the current value of one field.
func (s *Session) Value(name string) string { return s.state.Get(name) }

// Error returns the displayed message for one field.
func (s *Session) Error(name string) string { return s.errors.First(name) }

// Change stores value for name and, when the field's trigger asks for it,
// re-validates that field alone. It returns the field's displayed message.
func (s *Session) Change(name, value string) string {
	s.state.Set(name, value)
	s.notice = ""
	return s.react(name, OnChange)
}

// Blur re-validates name if its trigger includes OnBlur.
func (s *Session) Blur(name string) string {
	return s.react(name, OnBlur)
}

// Load replaces every value at once, as when a whole form is posted.
// Displayed errors are left untouched.
func (s *Session) Load(state validation.State) {
	s.state = s.def.InitialState()
	for k, v := range state {
		s.state.Set(k, v)
	}
}

// Submit validates every field. On acceptance the values reset to defaults,
// the errors clear and Notice is set; on rejection the values stay and the
// displayed errors become exactly the outcome's errors.
func (s *Session) Submit() validation.Outcome {
	out := s.def.Rules.Submit(s.state)
	if !out.Accepted() {
		s.errors = out.Errors.Clone()
		s.notice = ""
		s.log.Info("form has errors, please correct them", "errors", len(out.Errors))
		return out
	}

	s.log.Info("form is valid, submitting data", "data", s.def.Redacted(out.Data))
	s.Reset()
	s.notice = s.def.Notice
	return out
}

// Reset restores defaults and clears all messages.
func (s *Session) Reset() {
	s.state = s.def.InitialState()
	s.errors = make(validation.Errors)
	s.notice = ""
}

func (s *Session) react(name string, event Trigger) string {
	msg, ok := s.def.Live(name, event, s.state.Get(name), s.policy)
	if ok {
		s.errors.Set(name, msg)
	}
	return s.errors.First(name)
}
