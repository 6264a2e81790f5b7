package account

import (
	"strings"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// CredentialsInput holds an email and password pair.
type CredentialsInput struct {
	Email    string
	Password string
}

// Validate requires both credentials to be present.
func (i CredentialsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	AccountID int
	Email     string
	FullName  string
	Password  string
	Role      domain.Role
}

// Validate checks the input against minPasswordLength and the role range.
func (i RegisterInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	if i.AccountID <= 0 {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "must be positive"})
	}

	email := domain.NormalizeEmail(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	}

	switch {
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be between 1 and 4"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
