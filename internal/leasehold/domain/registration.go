package domain

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

const (
	msgRequired     = "required"
	msgUsernameChar = "may only contain letters, digits and @ . + - _"
)

var reUsername = regexp.MustCompile(`^[A-Za-z0-9@.+_-]+$`)

// Registration is the account form shared by landlord sign-up, tenant
// redemption and admin bootstrap.
type Registration struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	Phone           string
	Gender          Gender
	MoveInDate      time.Time // tenants only, UTC midnight

	// MoveInDateText is the move-in date as submitted. Normalize parses it
	// into MoveInDate; a value that does not parse is reported by
	// ValidateTenant with the other field errors.
	MoveInDateText string
}

// Normalize trims whitespace from every field except the passwords.
func (r Registration) Normalize() Registration {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Gender = Gender(strings.ToLower(strings.TrimSpace(string(r.Gender))))
	r.MoveInDateText = strings.TrimSpace(r.MoveInDateText)
	if r.MoveInDateText != "" {
		d, err := ParseDate(r.MoveInDateText)
		if err != nil {
			d = time.Time{}
		}
		r.MoveInDate = d
	}
	return r
}

// ValidateLandlord checks a landlord sign-up form.
func (r Registration) ValidateLandlord() error {
	errs := fieldErrors{}
	r.validateAccount(errs)
	r.validateGender(errs)
	return errs.err()
}

// ValidateTenant checks a tenant form; the move-in date must not be before
// today (UTC).
func (r Registration) ValidateTenant(today time.Time) error {
	errs := fieldErrors{}
	r.validateAccount(errs)
	r.validateGender(errs)

	switch {
	case r.MoveInDate.IsZero() && r.MoveInDateText != "":
		errs.add("move_in_date", "must be a date in YYYY-MM-DD form")
	case r.MoveInDate.IsZero():
		errs.add("move_in_date", msgRequired)
	case r.MoveInDate.Before(Today(today)):
		errs.add("move_in_date", "must not be in the past")
	}
	return errs.err()
}

// ValidateAdmin checks the bootstrap form, which carries no gender or phone.
func (r Registration) ValidateAdmin() error {
	errs := fieldErrors{}
	r.validateAccount(errs)
	return errs.err()
}

func (r Registration) validateAccount(errs fieldErrors) {
	switch {
	case r.Username == "":
		errs.add("username", msgRequired)
	case len(r.Username) > 150:
		errs.add("username", "too long (max 150)")
	case !reUsername.MatchString(r.Username):
		errs.add("username", msgUsernameChar)
	}

	switch {
	case r.Email == "":
		errs.add("email", msgRequired)
	case len(r.Email) > 254 || !validEmail(r.Email):
		errs.add("email", "must be a valid email address")
	}

	switch {
	case r.Password == "":
		errs.add("password", msgRequired)
	case len(r.Password) < 8:
		errs.add("password", "too short (min 8)")
	case len(r.Password) > 128:
		errs.add("password", "too long (max 128)")
	case r.Password != r.PasswordConfirm:
		errs.add("password_confirm", "passwords do not match")
	}

	for field, v := range map[string]string{"first_name": r.FirstName, "last_name": r.LastName} {
		switch {
		case v == "":
			errs.add(field, msgRequired)
		case len(v) > 30:
			errs.add(field, "too long (max 30)")
		}
	}

	if len(r.Phone) > 20 {
		errs.add("phone", "too long (max 20)")
	}
}

func (r Registration) validateGender(errs fieldErrors) {
	switch {
	case r.Gender == "":
		errs.add("gender", msgRequired)
	case !r.Gender.Valid():
		errs.add("gender", "must be male or female")
	}
}

// validEmail accepts a bare addr-spec, no display name or angle brackets.
func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s && a.Name == ""
}
