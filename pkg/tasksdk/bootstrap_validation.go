package tasksdk

import (
	"net/mail"
	"strings"
)

const bootstrapRequiredReason = "required"

// Validate checks if the bootstrap request fields are valid.
// Returns a map of field names to error messages, or nil if all fields are valid.
func (b BootstrapRequest) Validate() map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(b.AdminName)
	switch {
	case name == "":
		errs["admin_name"] = bootstrapRequiredReason
	case len(name) > 64:
		errs["admin_name"] = "too long (max 64)"
	}

	email := strings.TrimSpace(b.AdminEmail)
	if email == "" {
		errs["admin_email"] = bootstrapRequiredReason
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["admin_email"] = "not a valid email address"
	}

	pw := b.AdminPassword
	switch {
	case pw == "":
		errs["admin_password"] = bootstrapRequiredReason
	case len(pw) < 8:
		errs["admin_password"] = "too short (min 8)"
	case len(pw) > 128:
		errs["admin_password"] = "too long (max 128)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
