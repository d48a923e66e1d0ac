package rpc

import (
	"errors"
	"strings"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toRPCError translates domain errors into the gRPC status taxonomy.
// Anything unrecognized maps to Internal without leaking its message.
func toRPCError(err error) error {
	var validationErrors *model.ValidationErrors
	if errors.As(err, &validationErrors) {
		return status.Error(codes.InvalidArgument, formatValidationErrors(validationErrors))
	}

	switch {
	case errors.Is(err, model.ErrProjectNotFound),
		errors.Is(err, model.ErrSprintNotFound),
		errors.Is(err, model.ErrTicketNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, model.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, "access denied")

	case errors.Is(err, model.ErrDuplicateSlug):
		return status.Error(codes.AlreadyExists, "project slug already exists")

	case errors.Is(err, model.ErrProjectArchived),
		errors.Is(err, model.ErrSprintCompleted),
		errors.Is(err, model.ErrInvalidSprintTransition),
		errors.Is(err, model.ErrInvalidTicketTransition),
		errors.Is(err, model.ErrSprintNotInProject):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, model.ErrInvalidProjectID),
		errors.Is(err, model.ErrInvalidSprintID),
		errors.Is(err, model.ErrInvalidTicketID),
		errors.Is(err, model.ErrInvalidWorkspaceID),
		errors.Is(err, model.ErrInvalidProjectStatus),
		errors.Is(err, model.ErrInvalidSprintStatus),
		errors.Is(err, model.ErrInvalidTicketStatus),
		errors.Is(err, model.ErrInvalidTicketPriority),
		errors.Is(err, model.ErrUnknownFilterOperator),
		errors.Is(err, model.ErrInvalidFilterValue),
		errors.Is(err, model.ErrInvalidSortDirection),
		errors.Is(err, model.ErrPageSizeTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, model.ErrAccessCheck):
		return status.Error(codes.Unavailable, "permission backend unavailable")

	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func formatValidationErrors(validationErrors *model.ValidationErrors) string {
	if !validationErrors.HasErrors() {
		return "validation failed"
	}

	messages := make([]string, 0, len(validationErrors.Errors))
	for _, fieldError := range validationErrors.Errors {
		messages = append(messages, fieldError.Field+": "+fieldError.Message)
	}

	return strings.Join(messages, "; ")
}
