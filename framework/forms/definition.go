package forms

import "github.com/km-arc/go-forms/framework/http/validation"

// InputKind is the presentation hint for a field.
type InputKind string

const (
	Text     InputKind = "text"
	Email    InputKind = "email"
	Tel      InputKind = "tel"
	Number   InputKind = "number"
	Password InputKind = "password"
	TextArea InputKind = "textarea"
	Select   InputKind = "select"
	Checkbox InputKind = "checkbox"
)

// CheckboxOn is the value a checked checkbox submits.
const CheckboxOn = "on"

// Option is one choice of a select input.
type Option struct {
	Value string
	Label string
}

// Input describes how a field is collected and shown.
type Input struct {
	Name    string
	Label   string
	Kind    InputKind
	Options []Option
}

// Definition is a static description of one form. Definitions are shared by
// every session and must not be modified after registration.
type Definition struct {
	Name   string
	Title  string
	Button string
	// Notice is shown to the user after an accepted submission.
	Notice string

	Inputs   []Input
	Rules    *validation.RuleSet
	Defaults validation.State

	// Reactive forms re-validate fields while they are edited. Other forms
	// validate on submit only.
	Reactive bool
	// Parity holds per-field triggers used under PolicyParity.
	Parity map[string]Trigger
}

// Trigger returns the events that re-validate field under policy p.
func (d *Definition) Trigger(field string, p Policy) Trigger {
	if !d.Reactive {
		return OnSubmit
	}
	if p == PolicyParity {
		return d.Parity[field]
	}
	return OnChange | OnBlur
}

// Live decides whether event re-validates field holding value under policy p.
// When it does, msg is the field's current message; otherwise ok is false and
// the caller keeps whatever message it already shows.
func (d *Definition) Live(field string, event Trigger, value string, p Policy) (msg string, ok bool) {
	t := d.Trigger(field, p)
	if !t.Has(event) {
		return "", false
	}
	if event == OnChange && t.Has(SkipEmpty) && value == "" {
		return "", false
	}
	return d.Rules.ValidateField(field, value), true
}

// Input looks up an input by field name.
func (d *Definition) Input(name string) (Input, bool) {
	for _, in := range d.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}

// FieldNames returns input names in display order.
func (d *Definition) FieldNames() []string {
	out := make([]string, len(d.Inputs))
	for i, in := range d.Inputs {
		out[i] = in.Name
	}
	return out
}

// InitialState returns a fresh copy of the defaults, with every input present.
func (d *Definition) InitialState() validation.State {
	st := make(validation.State, len(d.Inputs))
	for _, in := range d.Inputs {
		st[in.Name] = d.Defaults.Get(in.Name)
	}
	return st
}

// Redacted returns a copy of state with password inputs masked, for logging.
func (d *Definition) Redacted(state validation.State) validation.State {
	out := state.Clone()
	for _, in := range d.Inputs {
		if in.Kind == Password && out[in.Name] != "" {
			out[in.Name] = "********"
		}
	}
	return out
}
