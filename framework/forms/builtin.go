package forms

import "github.com/km-arc/go-forms/framework/http/validation"

// Names of the built-in forms.
const (
	FeedbackForm     = "feedback"
	RegistrationForm = "registration"
	UncontrolledForm = "uncontrolled"
)

// Builtin returns fresh copies of the three built-in definitions.
func Builtin() []*Definition {
	return []*Definition{Feedback(), Registration(), Uncontrolled()}
}

// Feedback is the LMS feedback form. Its fields validate while being edited.
func Feedback() *Definition {
	return &Definition{
		Name:   FeedbackForm,
		Title:  "LMS Feedback Form",
		Button: "Submit Feedback",
		Notice: "Thank you for your feedback!",
		Inputs: []Input{
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "email", Label: "Email", Kind: Email},
			{Name: "phone", Label: "Phone Number", Kind: Tel},
			{Name: "feedback", Label: "Feedback Message", Kind: TextArea},
			{Name: "rating", Label: "Rating", Kind: Select, Options: []Option{
				{Value: "", Label: "Select a rating"},
				{Value: "1", Label: "1 (Poor)"},
				{Value: "2", Label: "2 (Fair)"},
				{Value: "3", Label: "3 (Good)"},
				{Value: "4", Label: "4 (Very Good)"},
				{Value: "5", Label: "5 (Excellent)"},
			}},
		},
		Rules:    validation.DefaultRules.Without("password"),
		Defaults: validation.State{},
		Reactive: true,
		Parity: map[string]Trigger{
			"name":     OnBlur,
			"email":    OnChange | SkipEmpty,
			"phone":    OnChange | SkipEmpty,
			"feedback": OnChange | SkipEmpty,
			"rating":   OnBlur,
		},
	}
}

// Registration is the sign-up form. It validates only on submit.
func Registration() *Definition {
	return &Definition{
		Name:   RegistrationForm,
		Title:  "Registration Form",
		Button: "Submit",
		Notice: "Form submitted successfully!",
		Inputs: []Input{
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "email", Label: "Email", Kind: Email},
			{Name: "password", Label: "Password", Kind: Password},
			{Name: "phone", Label: "Phone", Kind: Number},
		},
		Rules: validation.NewRuleSet(
			validation.For("name",
				validation.Required("Name is required"),
			),
			validation.For("email",
				validation.Required("Email is required"),
				validation.Matches(validation.EmailPattern, "Invalid Email format"),
			),
			validation.For("password",
				validation.Required("Password is required"),
				validation.Between(validation.PasswordMin, validation.PasswordMax, "Password must be 6-12 characters long."),
			),
			validation.For("phone",
				validation.Required("Phone number is required"),
				validation.Matches(validation.PhonePattern, "Phone number must be exactly 10 digits"),
			),
		),
		Defaults: validation.State{},
	}
}

// Uncontrolled collects a name, a color and a checkbox with no rules at all.
func Uncontrolled() *Definition {
	return &Definition{
		Name:   UncontrolledForm,
		Title:  "UnControlled Form Components",
		Button: "Submit",
		Notice: "Form submitted.",
		Inputs: []Input{
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "color", Label: "Favorite color", Kind: Select, Options: []Option{
				{Value: "red", Label: "Red"},
				{Value: "green", Label: "Green"},
				{Value: "blue", Label: "Blue"},
			}},
			{Name: "likes_react", Label: "Do you like React?", Kind: Checkbox},
		},
		Rules:    validation.NewRuleSet(),
		Defaults: validation.State{"color": "red"},
	}
}
