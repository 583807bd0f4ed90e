package forms

import "unicode/utf8"

// MinPasswordLength is only enforced by CheckManual.
const MinPasswordLength = 6

// ManualForm is the hand-validated form of the "valid" page.
type ManualForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// CheckManual applies the page's own rules without the validator.
func CheckManual(f ManualForm) FieldErrors {
	errs := FieldErrors{}
	if f.Name == "" {
		errs["name"] = "Name is mandatory"
	}
	if f.Email == "" {
		errs["email"] = "Email is mandatory"
	}
	if utf8.RuneCountInString(f.Password) < MinPasswordLength {
		errs["password"] = "Password should be greater than 6 digits"
	}
	if !errs.Any() {
		return nil
	}
	return errs
}
