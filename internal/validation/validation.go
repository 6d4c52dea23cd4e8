package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	if err := validate.RegisterValidation("difficulty", validateDifficulty); err != nil {
		panic(fmt.Sprintf("failed to register difficulty validation: %v", err))
	}
	if err := validate.RegisterValidation("reviewstatus", validateReviewStatus); err != nil {
		panic(fmt.Sprintf("failed to register reviewstatus validation: %v", err))
	}
	if err := validate.RegisterValidation("password", validatePassword); err != nil {
		panic(fmt.Sprintf("failed to register password validation: %v", err))
	}
	if err := validate.RegisterValidation("slug", validateSlug); err != nil {
		panic(fmt.Sprintf("failed to register slug validation: %v", err))
	}
}

// Validate validates a struct using tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidatePassword validates a password separately
func ValidatePassword(password string) error {
	return validate.Var(password, "required,password")
}

// Custom validation functions

func validateDifficulty(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "easy", "medium", "hard":
		return true
	}
	return false
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	// Only the two reviewer-reachable states; pending is set on creation
	// by the submitting side and is not a valid review target.
	switch fl.Field().String() {
	case "approved", "rejected":
		return true
	}
	return false
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	// Password requirements:
	// - Minimum 8 characters
	// - At least one letter and one number
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	return hasLetter && hasNumber
}

func validateSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	if slug == "" {
		return false
	}

	for _, char := range slug {
		if !unicode.IsLower(char) && !unicode.IsNumber(char) && char != '-' {
			return false
		}
	}

	return true
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string
	Error string
}

// FormatError formats a validation error into human-readable messages
func FormatError(err error) []ValidationError {
	var validationErrors []ValidationError

	if err == nil {
		return validationErrors
	}

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			var message string

			switch e.Tag() {
			case "required":
				message = fmt.Sprintf("%s is required", e.Field())
			case "email":
				message = "Invalid email format"
			case "difficulty":
				message = "Difficulty must be one of: easy, medium, hard"
			case "reviewstatus":
				message = "Status must be either approved or rejected"
			case "password":
				message = "Password must be at least 8 characters long and contain at least one letter and one number"
			case "slug":
				message = "Slug may contain only lowercase letters, numbers and hyphens"
			default:
				message = fmt.Sprintf("Invalid value for %s", e.Field())
			}

			validationErrors = append(validationErrors, ValidationError{
				Field: strings.ToLower(e.Field()),
				Error: message,
			})
		}
	}

	return validationErrors
}
