package model

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSprintNotFound  = errors.New("sprint not found")
	ErrTicketNotFound  = errors.New("ticket not found")

	ErrInvalidProjectID   = errors.New("invalid project ID")
	ErrInvalidSprintID    = errors.New("invalid sprint ID")
	ErrInvalidTicketID    = errors.New("invalid ticket ID")
	ErrInvalidWorkspaceID = errors.New("invalid workspace ID")

	ErrInvalidProjectStatus  = errors.New("invalid project status")
	ErrInvalidSprintStatus   = errors.New("invalid sprint status")
	ErrInvalidTicketStatus   = errors.New("invalid ticket status")
	ErrInvalidTicketPriority = errors.New("invalid ticket priority")

	ErrProjectArchived         = errors.New("project is archived")
	ErrSprintCompleted         = errors.New("sprint is completed")
	ErrInvalidSprintTransition = errors.New("invalid sprint transition")
	ErrInvalidTicketTransition = errors.New("invalid ticket status transition")
	ErrSprintNotInProject      = errors.New("sprint does not belong to project")

	ErrDuplicateSlug = errors.New("project slug already exists")
	ErrAccessDenied  = errors.New("access denied")
	ErrAccessCheck   = errors.New("access check failed")
	ErrDatabaseQuery = errors.New("database query error")

	ErrUnknownFilterOperator = errors.New("unknown filter operator")
	ErrInvalidFilterValue    = errors.New("invalid filter value")
	ErrInvalidSortDirection  = errors.New("invalid sort direction")
	ErrPageSizeTooLarge      = errors.New("page size exceeds maximum")
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors struct {
	Errors []ValidationError
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	return v.Errors[0].Message
}

func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}
