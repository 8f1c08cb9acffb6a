package validation

import (
	"slices"
	"strings"
	"unicode"
)

// ── Types ────────────────────────────────────────────────────────────────────

// State holds the current value of every field in a form session.
// A missing key reads as the empty string.
type State map[string]string

// Get returns the value for a field.
func (s State) Get(field string) string { return s[field] }

// Set stores a value for a field.
func (s State) Set(field, value string) { s[field] = value }

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Errors maps a field name to its current message.
// An absent key or an empty message means the field is valid.
type Errors map[string]string

// Has returns true if any field carries a message.
func (e Errors) Has() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// First returns the message for a field, or "" when it is valid.
// Named after Laravel's MessageBag::first.
func (e Errors) First(field string) string { return e[field] }

// Set records msg for field; an empty msg clears the slot.
func (e Errors) Set(field, msg string) {
	if msg == "" {
		delete(e, field)
		return
	}
	e[field] = msg
}

// Clone returns an independent copy of the error map.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// List flattens the map into an ErrorList. Fields named in order come first,
// in that order; any others follow sorted by name.
func (e Errors) List(order []string) ErrorList {
	var list ErrorList
	seen := make(map[string]bool, len(order))
	for _, field := range order {
		seen[field] = true
		if msg := e[field]; msg != "" {
			list = append(list, &ValidationError{Field: field, Message: msg})
		}
	}
	var rest []string
	for field, msg := range e {
		if !seen[field] && msg != "" {
			rest = append(rest, field)
		}
	}
	slices.Sort(rest)
	for _, field := range rest {
		list = append(list, &ValidationError{Field: field, Message: e[field]})
	}
	return list
}

// ── RuleSet ──────────────────────────────────────────────────────────────────

// Field binds a field name to its ordered rule chain.
type Field struct {
	Name  string
	Rules []Rule
}

// For is shorthand for Field{Name: name, Rules: rules}.
func For(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// RuleSet is an ordered, immutable table of field rules.
// It holds no per-session state; every method is safe for concurrent use.
type RuleSet struct {
	fields []Field
	index  map[string]int
}

// NewRuleSet builds a RuleSet. A later Field with the same name replaces
// the earlier one in place.
func NewRuleSet(fields ...Field) *RuleSet {
	rs := &RuleSet{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if i, ok := rs.index[f.Name]; ok {
			rs.fields[i] = f
			continue
		}
		rs.index[f.Name] = len(rs.fields)
		rs.fields = append(rs.fields, f)
	}
	return rs
}

// Names returns the field names in declaration order.
func (rs *RuleSet) Names() []string {
	out := make([]string, len(rs.fields))
	for i, f := range rs.fields {
		out[i] = f.Name
	}
	return out
}

// Has reports whether the set declares rules for field.
func (rs *RuleSet) Has(field string) bool {
	_, ok := rs.index[field]
	return ok
}

// Without returns a copy of the set with the named fields removed.
func (rs *RuleSet) Without(names ...string) *RuleSet {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	var kept []Field
	for _, f := range rs.fields {
		if !drop[f.Name] {
			kept = append(kept, f)
		}
	}
	return NewRuleSet(kept...)
}

// ValidateField runs the rule chain for field against value and returns the
// first failing message, or "" when the value is valid. Fields without rules
// are always valid.
func (rs *RuleSet) ValidateField(field, value string) string {
	i, ok := rs.index[field]
	if !ok {
		return ""
	}
	for _, rule := range rs.fields[i].Rules {
		if msg := rule(value); msg != "" {
			return msg // bail: later rules assume earlier ones passed
		}
	}
	return ""
}

// ValidateAll evaluates every declared field against state, never stopping
// early, and returns whether all passed along with the non-empty messages.
func (rs *RuleSet) ValidateAll(state State) (bool, Errors) {
	errs := make(Errors)
	for _, f := range rs.fields {
		errs.Set(f.Name, rs.ValidateField(f.Name, state.Get(f.Name)))
	}
	return len(errs) == 0, errs
}

// Submit validates state in batch and reports the outcome. The outcome's Data
// is a snapshot of state, so later edits by the caller do not leak into it.
func (rs *RuleSet) Submit(state State) Outcome {
	ok, errs := rs.ValidateAll(state)
	out := Outcome{
		Data:   state.Clone(),
		Errors: errs,
		order:  rs.Names(),
	}
	if ok {
		out.Status = Accepted
	}
	return out
}

// ── Outcome ──────────────────────────────────────────────────────────────────

// Status is the result of a submission.
type Status int

const (
	Rejected Status = iota
	Accepted
)

func (s Status) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "rejected"
}

// Outcome is what Submit returns: either Accepted, or Rejected with Errors.
type Outcome struct {
	Status Status
	Data   State
	Errors Errors

	order []string
}

// Accepted reports whether every field passed.
func (o Outcome) Accepted() bool { return o.Status == Accepted }

// Err returns nil for an accepted outcome, or an ErrorList in field order.
func (o Outcome) Err() error {
	if o.Accepted() {
		return nil
	}
	return o.Errors.List(o.order)
}

// ── helpers ──────────────────────────────────────────────────────────────────

// isBlank trims like the browser's String.prototype.trim, which also drops
// the byte order mark.
func isBlank(value string) bool {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) == ""
}
