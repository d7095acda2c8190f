package db

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPersonNotFound           = errors.New("person not found")
	ErrDuplicatePerson          = errors.New("a person with this name already exists")
	ErrDuplicateFixedAssignment = errors.New("a fixed assignment already exists for this date and shift")
	ErrFixedAssignmentNotFound  = errors.New("fixed assignment not found")
	ErrScheduleRunNotFound      = errors.New("no schedule has been generated yet")
)

var validate = validator.New()

// ValidatePerson checks a person record before it is written
func ValidatePerson(p *Person) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid person %q: %w", p.Name, err)
	}
	return nil
}
