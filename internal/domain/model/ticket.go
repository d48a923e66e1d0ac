package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	TicketStatus   string
	TicketPriority string
)

const (
	TicketStatusTodo       TicketStatus = "todo"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusInReview   TicketStatus = "in_review"
	TicketStatusDone       TicketStatus = "done"
	TicketStatusCancelled  TicketStatus = "cancelled"

	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"

	// DefaultTicketPageSize is the take window applied to ticket
	// searches when the caller supplies none.
	DefaultTicketPageSize uint = 25
)

// TicketSearchableFields are the columns scanned by free-text search,
// in OR-branch order.
func TicketSearchableFields() []string {
	return []string{"title", "description"}
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusTodo, TicketStatusInProgress, TicketStatusInReview,
		TicketStatusDone, TicketStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status workflow allows moving
// from s to target.
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	if s == target {
		return true
	}

	allowed := map[TicketStatus][]TicketStatus{
		TicketStatusTodo:       {TicketStatusInProgress, TicketStatusCancelled},
		TicketStatusInProgress: {TicketStatusInReview, TicketStatusTodo, TicketStatusCancelled},
		TicketStatusInReview:   {TicketStatusDone, TicketStatusInProgress},
		TicketStatusDone:       {},
		TicketStatusCancelled:  {TicketStatusTodo},
	}

	for _, next := range allowed[s] {
		if next == target {
			return true
		}
	}

	return false
}

func ParseTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidTicketStatus, s)
	}

	return status, nil
}

func (p TicketPriority) String() string {
	return string(p)
}

func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	default:
		return false
	}
}

func ParseTicketPriority(s string) (TicketPriority, error) {
	priority := TicketPriority(strings.ToLower(strings.TrimSpace(s)))
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidTicketPriority, s)
	}

	return priority, nil
}

type (
	TicketID struct {
		uuid.UUID
	}

	Ticket struct {
		ID          TicketID
		ProjectID   ProjectID
		SprintID    *SprintID
		Title       string
		Description string
		Status      TicketStatus
		Priority    TicketPriority
		Estimate    float64
		AssigneeID  *string
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
)

func NewTicketID() TicketID {
	return TicketID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseTicketID(s string) (TicketID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TicketID{}, fmt.Errorf("%w: %v", ErrInvalidTicketID, err)
	}

	return TicketID{UUID: id}, nil
}

func (t TicketID) String() string { return t.UUID.String() }
func (t TicketID) IsZero() bool   { return t.UUID == uuid.Nil }

func NewTicket(projectID ProjectID, title, description string, priority TicketPriority) *Ticket {
	now := time.Now().UTC()

	return &Ticket{
		ID:          NewTicketID(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      TicketStatusTodo,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t *Ticket) Update(title, description string, priority TicketPriority, estimate float64) {
	t.Title = title
	t.Description = description
	t.Priority = priority
	t.Estimate = estimate
	t.UpdatedAt = time.Now().UTC()
}

// Transition moves the ticket through its status workflow.
func (t *Ticket) Transition(target TicketStatus) error {
	if !t.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTicketTransition, t.Status, target)
	}

	t.Status = target
	t.UpdatedAt = time.Now().UTC()

	return nil
}

// MoveToSprint assigns the ticket to a sprint; a nil id removes it
// from its current sprint.
func (t *Ticket) MoveToSprint(sprintID *SprintID) {
	t.SprintID = sprintID
	t.UpdatedAt = time.Now().UTC()
}

func (t *Ticket) Assign(assigneeID *string) {
	t.AssigneeID = assigneeID
	t.UpdatedAt = time.Now().UTC()
}
