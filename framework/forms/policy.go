package forms

import (
	"fmt"
	"strings"
)

// Policy selects when reactive forms re-validate a field.
type Policy int

const (
	// PolicyChange re-validates every field of a reactive form on each change
	// and on blur.
	PolicyChange Policy = iota
	// PolicyParity keeps each definition's per-field triggers as declared in
	// Definition.Parity.
	PolicyParity
)

func (p Policy) String() string {
	if p == PolicyParity {
		return "parity"
	}
	return "change"
}

// ParsePolicy maps a config value to a Policy. The empty string is PolicyChange.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "change":
		return PolicyChange, nil
	case "parity":
		return PolicyParity, nil
	}
	return PolicyChange, fmt.Errorf("forms: unknown validation policy %q", s)
}

// Trigger is a set of events that re-validate a single field.
type Trigger uint8

const (
	// OnSubmit is the zero Trigger: the field is only checked in batch.
	OnSubmit Trigger = 0
	OnChange Trigger = 1 << iota
	OnBlur
	// SkipEmpty suppresses change-triggered validation while the value is "".
	// The field's previous message, if any, is left in place.
	SkipEmpty
)

// Has reports whether t includes every bit of other.
func (t Trigger) Has(other Trigger) bool { return t&other == other }
