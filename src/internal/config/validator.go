package config

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "server.listen_addr")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("listen_addr", validateListenAddr); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("single_line", validateSingleLine); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value interface{}
	}{
		{"general", c.General},
		{"backup", c.Backup},
		{"editor", c.Editor},
		{"server", c.Server},
	}

	for _, section := range sections {
		if reflect.ValueOf(section.value).IsNil() {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: section.name,
				Message:   fmt.Sprintf("configuration must contain '%s' section", section.name),
			})
			continue
		}
		if err := validate.Struct(section.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, section.name)...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "listen_addr":
		return "must be in format 'host:port'"
	case "single_line":
		return "must not contain line breaks"
	case "url":
		return "must be a URL such as http://localhost:5173"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func validateListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	return err == nil && port != ""
}

func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}
