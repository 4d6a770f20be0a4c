package services

import (
	"errors"
	"fmt"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requireAdmin gates protected operations on an explicit caller identity.
func requireAdmin(id auth.Identity) error {
	if !id.Valid() {
		return fmt.Errorf("%w: admin operation requires an authenticated caller", apperr.ErrUnauthorized)
	}
	return nil
}

// validateInput runs struct tag validation and folds the field errors into
// a single validation error.
func validateInput(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %v", apperr.ErrValidation, msgs)
	}
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}
