package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("command", validateCommand)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCommand accepts only known command names.
func validateCommand(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case domain.CommandStatus, domain.CommandHunt, domain.CommandBoss,
		domain.CommandEquip, domain.CommandMeditate, domain.CommandOpen,
		domain.CommandLeaderboard, domain.CommandHelp:
		return true
	}
	return false
}

// FormatValidationError formats validation errors into a field -> message
// map without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = "Value is too long"
		case "command":
			errs[field] = "Unknown command"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}
