// Package forms declares the built-in forms and the Session type that
// reconciles user input with the validation engine.
//
// A Definition is static: inputs, rules, defaults and trigger hints. A
// Session owns one user's values and displayed errors and reacts to the
// three presentation events:
//
//	s, _ := registry.Open(forms.FeedbackForm)
//	s.Change("email", "jane@")   // live message under PolicyChange
//	s.Blur("name")
//	out := s.Submit()            // resets to defaults when accepted
//
// Under PolicyParity the feedback form keeps its historical mix: name and
// rating validate on blur, while email, phone and feedback validate on change
// only while non-empty.
package forms
