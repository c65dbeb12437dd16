package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("category", validateCategory)

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validation{validator: v}
}

func validateCategory(fl validator.FieldLevel) bool {
	return IsKnownCategory(Category(fl.Field().String()))
}

// ValidationError describes a single rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

// Error implements the error interface so a failed validation can travel as
// a regular error return
func (ve ValidationErrors) Error() string {
	return strings.Join(ve.Errors(), "; ")
}

// Errors converts the collection to a slice of strings
func (ve ValidationErrors) Errors() []string {
	errs := make([]string, 0, len(ve))
	for _, v := range ve {
		errs = append(errs, v.Error())
	}
	return errs
}

// Validate checks i against its struct tags. It returns nil when i is valid.
func (v *Validation) Validate(i interface{}) ValidationErrors {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	var errs ValidationErrors
	for _, fe := range fieldErrors {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' tag", fe.Tag()),
		})
	}
	return errs
}

// AsValidationErrors reports whether err carries validation failures
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}
