// Package validation checks user-entered forms before they reach the backend,
// so obviously bad input fails fast with a readable message instead of a
// round trip.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginForm is the login prompt input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// RegisterForm is the account registration input.
type RegisterForm struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	CompanyName string `validate:"required"`
	CompanyRUC  string `validate:"required,len=11,numeric"`
}

// CompanyForm is the create/update company input.
type CompanyForm struct {
	Name  string `validate:"required"`
	RUC   string `validate:"required,len=11,numeric"`
	Email string `validate:"omitempty,email"`
	Phone string `validate:"omitempty,min=7"`
}

// Check validates a form struct and returns nil, or an error whose message
// lists every failed field in human-readable form.
func Check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain only digits"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
