package reservation

import "regexp"

// Input is the reservation form triple before validation.
type Input struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	PartySize int    `json:"people"`
}

// Result reports per-field violations together; validation never
// short-circuits on the first failing field.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Local part, @, domain with a dot. Intentionally far short of RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the reservation form against static rules. It is
// pure: identical input yields identical output, no side effects.
func Validate(in Input) Result {
	errs := make(map[string]string)

	switch {
	case in.Name == "":
		errs["name"] = "Name is required"
	case len([]rune(in.Name)) < 2:
		errs["name"] = "Name must be at least 2 characters long"
	}

	switch {
	case in.Email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(in.Email):
		errs["email"] = "Please enter a valid email address"
	}

	switch {
	case in.PartySize == 0:
		errs["people"] = "Number of people is required"
	case in.PartySize < 1:
		errs["people"] = "Number of people must be at least 1"
	case in.PartySize > 20:
		errs["people"] = "Maximum 20 people allowed per reservation"
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
