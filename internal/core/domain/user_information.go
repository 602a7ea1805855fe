package domain

import (
	"net/mail"
	"time"

	apperrors "github.com/lorrc/backoffice-backend/internal/core/errors"
)

// Field length constants shared by both record shapes
const (
	MaxNameLength    = 255
	MaxEmailLength   = 255
	MaxPhoneLength   = 20
	MaxAddressLength = 255
)

// UserInformation is a persisted back-office record. The store assigns the
// ID and timestamps; the four business fields are mandatory.
type UserInformation struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserInformationParams holds the business fields for a create or a
// whole-record update. It is an immutable input value; repositories return a
// fresh record snapshot rather than mutating anything in place.
type UserInformationParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Validate checks every field rule and collects all violations. Uniqueness
// against the store is appended by the service layer on top of this set.
func (p UserInformationParams) Validate() *apperrors.ValidationErrors {
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

	if p.Phone == "" {
		errs.Add("phone", "The phone field is required.")
	} else if len(p.Phone) > MaxPhoneLength {
		errs.Add("phone", "The phone may not be greater than 20 characters.")
	}

	if p.Address == "" {
		errs.Add("address", "The address field is required.")
	} else if len(p.Address) > MaxAddressLength {
		errs.Add("address", "The address may not be greater than 255 characters.")
	}

	return errs
}

// Values returns the submitted payload as a field map, echoed back to the
// caller when validation rejects the request.
func (p UserInformationParams) Values() map[string]string {
	return map[string]string{
		"name":    p.Name,
		"email":   p.Email,
		"phone":   p.Phone,
		"address": p.Address,
	}
}

// isValidEmail validates email format
func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
