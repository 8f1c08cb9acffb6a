package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/go-forms/framework/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// pass asserts the field validates cleanly against the default rules.
func pass(t *testing.T, label, field, value string) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		if msg := validation.DefaultRules.ValidateField(field, value); msg != "" {
			t.Errorf("expected PASS for %s=%q, got %q", field, value, msg)
		}
	})
}

// fail asserts the field fails with exactly want.
func fail(t *testing.T, label, field, value, want string) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		got := validation.DefaultRules.ValidateField(field, value)
		if got != want {
			t.Errorf("%s=%q: got %q want %q", field, value, got, want)
		}
	})
}

func validState() validation.State {
	return validation.State{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "5551234567",
		"password": "abcdef",
		"feedback": strings.Repeat("x", 30),
		"rating":   "4",
	}
}

// ── name ─────────────────────────────────────────────────────────────────────

func TestValidation_Name(t *testing.T) {
	pass(t, "letters and spaces", "name", "Jane Doe")
	pass(t, "single word", "name", "Alice")
	fail(t, "empty", "name", "", "Name is required.")
	fail(t, "whitespace only", "name", "   ", "Name is required.")
	fail(t, "byte order mark", "name", "\uFEFF", "Name is required.")
	fail(t, "no-break space", "name", "\u00a0\t", "Name is required.")
	fail(t, "digits", "name", "R2D2", "Name should only contain alphabets and spaces.")
	fail(t, "punctuation", "name", "O'Brien", "Name should only contain alphabets and spaces.")
}

// ── email ─────────────────────────────────────────────────────────────────────

func TestValidation_Email(t *testing.T) {
	const bad = "Please enter a valid email address (e.g., name@example.com)."

	pass(t, "simple", "email", "a@b.com")
	pass(t, "subdomain", "email", "user@mail.example.co.uk")
	fail(t, "empty", "email", "", "Email is required.")
	fail(t, "blank", "email", " \t ", "Email is required.")
	fail(t, "no @", "email", "notanemail", bad)
	fail(t, "no tld", "email", "user@example", bad)
	fail(t, "no domain", "email", "user@", bad)
	fail(t, "inner space", "email", "us er@example.com", bad)
	fail(t, "leading space", "email", " a@b.com", bad)
	fail(t, "double @", "email", "a@@b.com", bad)
}

// ── phone ─────────────────────────────────────────────────────────────────────

func TestValidation_Phone(t *testing.T) {
	const bad = "Phone number must be a 10-digit number."

	pass(t, "ten digits", "phone", "1234567890")
	fail(t, "empty", "phone", "", "Phone number is required.")
	fail(t, "five digits", "phone", "12345", bad)
	fail(t, "eleven digits", "phone", "12345678901", bad)
	fail(t, "dashes", "phone", "555-123-45", bad)
	fail(t, "padded", "phone", " 1234567890", bad)
}

// ── password ──────────────────────────────────────────────────────────────────

func TestValidation_PasswordBounds(t *testing.T) {
	const bad = "Password must be between 6 and 12 characters."

	fail(t, "empty", "password", "", "Password is required.")
	fail(t, "5 chars", "password", "abcde", bad)
	pass(t, "6 chars", "password", "abcdef")
	pass(t, "12 chars", "password", "abcdefghijkl")
	fail(t, "13 chars", "password", "abcdefghijklm", bad)
}

// ── feedback ──────────────────────────────────────────────────────────────────

func TestValidation_FeedbackBounds(t *testing.T) {
	const bad = "Feedback must be between 20 and 250 characters."

	fail(t, "empty", "feedback", "", "Feedback message is required.")
	fail(t, "19 chars", "feedback", strings.Repeat("a", 19), bad)
	pass(t, "20 chars", "feedback", strings.Repeat("a", 20))
	pass(t, "250 chars", "feedback", strings.Repeat("a", 250))
	fail(t, "251 chars", "feedback", strings.Repeat("a", 251), bad)
}

func TestValidation_FeedbackLengthUsesRawValue(t *testing.T) {
	// 18 letters padded to 20 with spaces passes; trimming would reject it.
	pass(t, "padded to 20", "feedback", " "+strings.Repeat("a", 18)+" ")
}

func TestValidation_FeedbackCountsCharacters(t *testing.T) {
	pass(t, "20 runes", "feedback", strings.Repeat("é", 20))
	fail(t, "19 runes", "feedback", strings.Repeat("日", 19), "Feedback must be between 20 and 250 characters.")
}

// ── rating ────────────────────────────────────────────────────────────────────

func TestValidation_Rating(t *testing.T) {
	pass(t, "selected", "rating", "3")
	fail(t, "unselected", "rating", "", "Rating is required.")
}

// ── unknown fields ────────────────────────────────────────────────────────────

func TestValidation_UnknownFieldNeverInvalid(t *testing.T) {
	pass(t, "unknown empty", "nickname", "")
	pass(t, "unknown junk", "nickname", "!!!")

	state := validState()
	state["nickname"] = ""
	ok, errs := validation.DefaultRules.ValidateAll(state)
	if !ok || errs.Has() {
		t.Errorf("expected valid, got %v", errs)
	}
}

// ── ValidateAll ───────────────────────────────────────────────────────────────

func TestValidateAll_ScenarioA_OnlyNameFails(t *testing.T) {
	state := validState()
	state["name"] = ""
	state["email"] = "a@b.com"
	state["phone"] = "1234567890"
	state["password"] = "secret"
	state["feedback"] = strings.Repeat("x", 20)
	state["rating"] = "3"

	ok, errs := validation.DefaultRules.ValidateAll(state)
	if ok {
		t.Fatal("expected isValid=false")
	}
	want := validation.Errors{"name": "Name is required."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAll_ScenarioB_AllValid(t *testing.T) {
	ok, errs := validation.DefaultRules.ValidateAll(validState())
	if !ok {
		t.Fatalf("expected isValid=true, errors: %v", errs)
	}
	if len(errs) != 0 {
		t.Errorf("expected empty error map, got %v", errs)
	}
}

func TestValidateAll_ReportsEveryField(t *testing.T) {
	ok, errs := validation.DefaultRules.ValidateAll(validation.State{})
	if ok {
		t.Fatal("expected invalid")
	}
	want := validation.Errors{
		"name":     "Name is required.",
		"email":    "Email is required.",
		"phone":    "Phone number is required.",
		"password": "Password is required.",
		"feedback": "Feedback message is required.",
		"rating":   "Rating is required.",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAll_Idempotent(t *testing.T) {
	state := validation.State{"name": "J4ne", "email": "x", "phone": "12345"}

	_, first := validation.DefaultRules.ValidateAll(state)
	_, second := validation.DefaultRules.ValidateAll(state)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestValidateAll_DoesNotMutateState(t *testing.T) {
	state := validState()
	before := state.Clone()
	validation.DefaultRules.ValidateAll(state)
	if diff := cmp.Diff(before, state); diff != "" {
		t.Errorf("state mutated (-before +after):\n%s", diff)
	}
}

// ── Submit ────────────────────────────────────────────────────────────────────

func TestSubmit_Accepted(t *testing.T) {
	state := validState()
	out := validation.DefaultRules.Submit(state)

	if !out.Accepted() || out.Status != validation.Accepted {
		t.Fatalf("expected accepted, got %s: %v", out.Status, out.Errors)
	}
	if err := out.Err(); err != nil {
		t.Errorf("Err: got %v want nil", err)
	}

	state["name"] = "changed"
	if out.Data["name"] != "Jane Doe" {
		t.Errorf("Data should be a snapshot, got name=%q", out.Data["name"])
	}
}

func TestSubmit_RejectedErrorList(t *testing.T) {
	state := validState()
	state["phone"] = "12345"
	state["email"] = ""

	out := validation.DefaultRules.Submit(state)
	if out.Accepted() {
		t.Fatal("expected rejected")
	}

	var list validation.ErrorList
	if !errors.As(out.Err(), &list) {
		t.Fatalf("expected ErrorList, got %T", out.Err())
	}
	// Declaration order: email before phone.
	want := validation.ErrorList{
		{Field: "email", Message: "Email is required."},
		{Field: "phone", Message: "Phone number must be a 10-digit number."},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}

	var ve *validation.ValidationError
	if !errors.As(out.Err(), &ve) || ve.Field != "email" {
		t.Errorf("errors.As *ValidationError: got %+v", ve)
	}
	if diff := cmp.Diff(out.Errors, list.Errors()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorList_Message(t *testing.T) {
	list := validation.ErrorList{
		{Field: "name", Message: "Name is required."},
		{Field: "phone", Message: "bad"},
	}
	want := "name: Name is required.; phone: bad"
	if got := list.Error(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

// ── RuleSet construction ──────────────────────────────────────────────────────

func TestRuleSet_WithoutAndNames(t *testing.T) {
	rs := validation.DefaultRules.Without("password")

	want := []string{"name", "email", "phone", "feedback", "rating"}
	if diff := cmp.Diff(want, rs.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if rs.Has("password") {
		t.Error("password should be dropped")
	}
	if !validation.DefaultRules.Has("password") {
		t.Error("Without must not modify the receiver")
	}
}

func TestRuleSet_LaterFieldReplaces(t *testing.T) {
	rs := validation.NewRuleSet(
		validation.For("code", validation.Required("first")),
		validation.For("code", validation.Required("second")),
	)
	if got := rs.ValidateField("code", ""); got != "second" {
		t.Errorf("got %q want %q", got, "second")
	}
	if n := len(rs.Names()); n != 1 {
		t.Errorf("names: got %d want 1", n)
	}
}

func TestErrors_SetEmptyClears(t *testing.T) {
	errs := validation.Errors{"name": "Name is required."}
	errs.Set("name", "")
	if errs.Has() {
		t.Errorf("expected cleared, got %v", errs)
	}
}
