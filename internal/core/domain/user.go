package domain

import (
	"time"

	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
)

// User is the simpler record shape used by the cards screen variant. It is
// the same workflow as UserInformation with fewer business fields.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserParams holds the business fields for creating or updating a User.
type UserParams struct {
	Name  string
	Email string
}

// Validate checks every field rule and collects all violations.
func (p UserParams) Validate() *apperrors.ValidationErrors {
	errs := apperrors.NewValidationErrors()

	if p.Name == "" {
		errs.Add("name", "The name field is required.")
	} else if len(p.Name) > MaxNameLength {
		errs.Add("name", "The name may not be greater than 255 characters.")
	}

	if p.Email == "" {
		errs.Add("email", "The email field is required.")
	} else {
		if len(p.Email) > MaxEmailLength {
			errs.Add("email", "The email may not be greater than 255 characters.")
		}
		if !isValidEmail(p.Email) {
			errs.Add("email", "The email must be a valid email address.")
		}
	}

	return errs
}

// Values returns the submitted payload as a field map for redisplay.
func (p UserParams) Values() map[string]string {
	return map[string]string{
		"name":  p.Name,
		"email": p.Email,
	}
}
