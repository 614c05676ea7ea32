package validation

import (
	"tasklists/internal/config"
)

// ListValidator validates task list names
type ListValidator struct {
	validator *Validator
}

// NewListValidator creates a list validator using default limits
func NewListValidator() *ListValidator {
	return &ListValidator{validator: NewValidator()}
}

// NewListValidatorWithConfig creates a list validator honouring configured limits
func NewListValidatorWithConfig(cfg *config.Config) *ListValidator {
	return &ListValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateListName validates a list name for creation or rename
func (lv *ListValidator) ValidateListName(name string) error {
	validationError := NewValidationError()

	trimmed := lv.validator.TrimAndValidateString(name)
	if !lv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("list_name")
		return validationError
	}

	maxLen := lv.validator.getListNameMaxLength()
	if !lv.validator.IsValidStringLength(trimmed, 1, maxLen) {
		validationError.AddInvalidLengthError("list_name", trimmed, 1, maxLen)
	}
	if lv.validator.HasControlCharacters(trimmed, false) {
		validationError.AddInvalidCharacterError("list_name", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidListName returns the trimmed name if valid
func (lv *ListValidator) GetValidListName(name string) (string, error) {
	if err := lv.ValidateListName(name); err != nil {
		return "", err
	}
	return lv.validator.TrimAndValidateString(name), nil
}
