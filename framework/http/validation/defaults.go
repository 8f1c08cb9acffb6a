package validation

// Patterns shared by the built-in forms.
const (
	NamePattern  = `^[a-zA-Z\s]+$`
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	PhonePattern = `^\d{10}$`
)

// Bounds for the length-checked fields.
const (
	PasswordMin = 6
	PasswordMax = 12
	FeedbackMin = 20
	FeedbackMax = 250
)

// DefaultRules is the canonical rule table: one entry per known field name.
var DefaultRules = NewRuleSet(
	For("name",
		Required("Name is required."),
		Matches(NamePattern, "Name should only contain alphabets and spaces."),
	),
	For("email",
		Required("Email is required."),
		Matches(EmailPattern, "Please enter a valid email address (e.g., name@example.com)."),
	),
	For("phone",
		Required("Phone number is required."),
		Matches(PhonePattern, "Phone number must be a 10-digit number."),
	),
	For("password",
		Required("Password is required."),
		Between(PasswordMin, PasswordMax, "Password must be between 6 and 12 characters."),
	),
	For("feedback",
		Required("Feedback message is required."),
		Between(FeedbackMin, FeedbackMax, "Feedback must be between 20 and 250 characters."),
	),
	For("rating",
		Present("Rating is required."),
	),
)
