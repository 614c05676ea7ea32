package validation

import (
	"tasklists/internal/config"
	"tasklists/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	minLen, maxLen := tv.validator.getTaskNameMinLength(), tv.validator.getTaskNameMaxLength()
	if !tv.validator.IsValidStringLength(trimmedName, minLen, maxLen) {
		validationError.AddInvalidLengthError("task_name", trimmedName, minLen, maxLen)
	}

	if tv.validator.HasControlCharacters(trimmedName, false) {
		validationError.AddInvalidCharacterError("task_name", trimmedName)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateNote validates a task note. Notes are optional and may span lines.
func (tv *TaskValidator) ValidateNote(note string) error {
	validationError := NewValidationError()

	maxLen := tv.validator.getNoteMaxLength()
	if !tv.validator.IsValidStringLength(note, 0, maxLen) {
		validationError.AddInvalidLengthError("note", note, 0, maxLen)
	}
	if tv.validator.HasControlCharacters(note, true) {
		validationError.AddInvalidCharacterError("note", note)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates the input of a new task
func (tv *TaskValidator) ValidateTaskForCreation(listID int64, name, note string) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidID(listID) {
		validationError.AddInvalidValueError("list_id", listID, "must be a positive integer")
	}
	validationError.Merge(tv.ValidateTaskName(name))
	validationError.Merge(tv.ValidateNote(note))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForUpdate validates an edit of an existing task
func (tv *TaskValidator) ValidateTaskForUpdate(id int64, name, note string) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidID(id) {
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
	}
	validationError.Merge(tv.ValidateTaskName(name))
	validationError.Merge(tv.ValidateNote(note))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTaskName(task.Name))
	validationError.Merge(tv.ValidateNote(task.Note))

	if task.ID != 0 && !tv.validator.IsValidID(task.ID) {
		validationError.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}
	if !tv.validator.IsValidID(task.ListID) {
		validationError.AddInvalidValueError("list_id", task.ListID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
