package doorsdk

import (
	"strings"
)

const (
	requiredReason = "required"

	// MaxPasswordLen and MinPasswordLen mirror the server side limits.
	MinPasswordLen = 3
	MaxPasswordLen = 128
)

// Validate checks the fields of a registration request. It only enforces what
// can be decided without the server's share length; names that do not fit
// in a share are rejected by the server.
// Returns a map of field names to error messages, or nil if all fields are valid.
func (r RegisterRequest) Validate() map[string]string {
	errs := make(map[string]string)
	validateName(errs, "user_name", r.UserName)
	validateEmail(errs, "email", r.Email)
	validatePassword(errs, "password", r.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the fields of a bootstrap request.
func (b BootstrapRequest) Validate() map[string]string {
	errs := make(map[string]string)
	validateName(errs, "admin_user_name", b.AdminUserName)
	validateEmail(errs, "admin_email", b.AdminEmail)
	validatePassword(errs, "admin_password", b.AdminPassword)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateName(errs map[string]string, field, name string) {
	switch {
	case name == "":
		errs[field] = requiredReason
	case strings.TrimSpace(name) != name:
		errs[field] = "must not start or end with whitespace"
	}
}

func validateEmail(errs map[string]string, field, email string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs[field] = requiredReason
	case !strings.Contains(email, "@"):
		errs[field] = "must be an email address"
	}
}

func validatePassword(errs map[string]string, field, pw string) {
	switch {
	case pw == "":
		errs[field] = requiredReason
	case len(pw) < MinPasswordLen:
		errs[field] = "too short (min 3)"
	case len(pw) > MaxPasswordLen:
		errs[field] = "too long (max 128)"
	}
}
