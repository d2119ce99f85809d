package models

import (
	"strings"

	dErrors "ainadeul/pkg/domain-errors"
	platformstrings "ainadeul/pkg/platform/strings"
	"ainadeul/pkg/platform/validation"
)

// CredentialsRequest is the body of both sign-up and sign-in.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CredentialsRequest) Sanitize() {
	platformstrings.TrimSpace(&r.Email)
}

func (r *CredentialsRequest) Normalize() {
	r.Email = strings.ToLower(r.Email)
}

func (r *CredentialsRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if err := validation.CheckStringLength("email", r.Email, validation.MaxEmailLength); err != nil {
		return err
	}
	// bcrypt rejects inputs longer than 72 bytes
	if len(r.Password) > validation.MaxPasswordLength {
		return dErrors.Newf(dErrors.CodeValidation, "password exceeds max length of %d bytes", validation.MaxPasswordLength)
	}
	return nil
}
