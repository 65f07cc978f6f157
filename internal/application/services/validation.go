package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/taskify/core/internal/domain/entities"
)

// One validator serves both transports so REST and GraphQL reject the same input.
var validate = validator.New()

// Validator returns the validator the services check requests with
func Validator() *validator.Validate {
	return validate
}

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", entities.ErrInvalidInput, err.Error())
	}
	return nil
}
