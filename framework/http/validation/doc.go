// Package validation is the form validation engine.
//
// # Overview
//
// A RuleSet is a static, ordered table that maps each field name to a chain of
// Rules. A Rule is a pure func(value string) string that returns "" when the
// value passes. The chain stops at the first failure, so a blank value always
// reports its "required" message and never a format message.
//
// # Basic Usage
//
//	rules := validation.NewRuleSet(
//	    validation.For("name",
//	        validation.Required("Name is required."),
//	        validation.Matches(validation.NamePattern, "Letters and spaces only."),
//	    ),
//	    validation.For("email", validation.Required("Email is required.")),
//	)
//
//	// Reactive: one field, typically from a change handler.
//	msg := rules.ValidateField("email", "jane@")
//
//	// Batch: every field, no short-circuit across fields.
//	ok, errs := rules.ValidateAll(validation.State{"name": "Jane"})
//
//	// Submit wraps ValidateAll with an Accepted/Rejected outcome.
//	out := rules.Submit(state)
//	if err := out.Err(); err != nil {
//	    var list validation.ErrorList
//	    errors.As(err, &list)
//	}
//
// # Available Rules
//
//   - Required(msg)          : non-blank after trimming whitespace
//   - Present(msg)           : not the empty string
//   - Matches(pattern, msg)  : raw value matches the regexp
//   - Between(min, max, msg) : raw length in characters within [min, max]
//
// Required trims; the format and length rules always see the raw value.
//
// # Error Map
//
// Errors is a map[string]string holding only failing fields. It serialises
// to the error bag shape used by the HTTP layer:
//
//	{
//	  "errors": {
//	    "email": "Email is required.",
//	    "phone": "Phone number must be a 10-digit number."
//	  }
//	}
package validation
