// Package validation checks parsed unRAID templates before mapping.
//
// It combines struct-level validation (go-playground/validator tags on the
// template model) with template-specific checks that tags cannot express,
// such as port ranges and per-config completeness.
//
// # Usage Example
//
//	validator := validation.New()
//	result := validator.ValidateTemplate(tpl)
//	if !result.Valid {
//	    for _, err := range result.Errors {
//	        fmt.Printf("%s: %s\n", err.Field, err.Message)
//	    }
//	}
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/arifer/undock-compose/models"
)

// Validator validates container templates.
type Validator struct {
	// structValidator validates Go struct constraints and tags
	structValidator *validator.Validate
}

// ValidationError represents a single validation error with field-level details.
type ValidationError struct {
	// Field is the name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult represents the complete result of a validation operation.
type ValidationResult struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid is true)
	Errors []ValidationError `json:"errors,omitempty"`
}

// New creates a Validator ready to validate container templates.
func New() *Validator {
	return &Validator{
		structValidator: validator.New(),
	}
}

// ValidateTemplate validates a parsed container template. It never returns
// an error for invalid documents; inspect the result instead.
func (v *Validator) ValidateTemplate(tpl *models.ContainerTemplate) *ValidationResult {
	structErrors := v.validateStruct(tpl)
	configErrors := v.validateConfigs(tpl)

	allErrors := append(structErrors, configErrors...)

	return &ValidationResult{
		Valid:  len(allErrors) == 0,
		Errors: allErrors,
	}
}

// validateStruct runs the tag-based struct validation.
func (v *Validator) validateStruct(tpl *models.ContainerTemplate) []ValidationError {
	var errors []ValidationError

	err := v.structValidator.Struct(tpl)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors = append(errors, ValidationError{
			Field:   "template",
			Message: err.Error(),
		})
		return errors
	}

	for _, fe := range validationErrors {
		errors = append(errors, ValidationError{
			Field:   fieldName(fe),
			Message: message(fe),
			Value:   emptyToNil(fe.Value()),
		})
	}

	return errors
}

// validateConfigs validates the repeated <Config> elements.
func (v *Validator) validateConfigs(tpl *models.ContainerTemplate) []ValidationError {
	var errors []ValidationError

	for i, cfg := range tpl.Configs {
		switch cfg.Type {
		case models.ConfigTypePort:
			if cfg.Target == "" {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("configs[%d].target", i),
					Message: "Port config requires a Target (container port)",
				})
				continue
			}
			errors = append(errors, validatePort(i, "target", cfg.Target)...)
			if value := cfg.ResolvedValue(); value != "" {
				errors = append(errors, validatePort(i, "value", value)...)
			}
			if cfg.Mode != "" {
				proto := strings.ToLower(cfg.Mode)
				if proto != "tcp" && proto != "udp" && proto != "sctp" {
					errors = append(errors, ValidationError{
						Field:   fmt.Sprintf("configs[%d].mode", i),
						Message: "Protocol must be 'tcp', 'udp', or 'sctp'",
						Value:   cfg.Mode,
					})
				}
			}

		case models.ConfigTypePath, models.ConfigTypeDevice, models.ConfigTypeDevices:
			if cfg.Target == "" {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("configs[%d].target", i),
					Message: fmt.Sprintf("%s config requires a Target (container path)", cfg.Type),
				})
			}

		case models.ConfigTypeVariable, models.ConfigTypeLabel:
			if cfg.Target == "" {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("configs[%d].target", i),
					Message: fmt.Sprintf("%s config requires a Target (name)", cfg.Type),
				})
			}
		}
	}

	return errors
}

func validatePort(index int, attr, raw string) []ValidationError {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 65535 {
		return []ValidationError{{
			Field:   fmt.Sprintf("configs[%d].%s", index, attr),
			Message: "Port must be a number between 0 and 65535",
			Value:   raw,
		}}
	}
	return nil
}

// fieldName maps a struct validation error to the template's XML element name.
func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name"
	case "Repository":
		return "Repository"
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	}
	return fmt.Sprintf("%s is invalid (%s)", fieldName(fe), fe.Tag())
}

func emptyToNil(v interface{}) interface{} {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}
