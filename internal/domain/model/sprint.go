package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SprintStatus string

const (
	SprintStatusPlanned   SprintStatus = "planned"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"

	// DefaultSprintPageSize is the take window applied to sprint
	// searches when the caller supplies none.
	DefaultSprintPageSize uint = 20
)

// SprintSearchableFields are the columns scanned by free-text search,
// in OR-branch order.
func SprintSearchableFields() []string {
	return []string{"name", "goal"}
}

func (s SprintStatus) String() string {
	return string(s)
}

func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintStatusPlanned, SprintStatusActive, SprintStatusCompleted:
		return true
	default:
		return false
	}
}

func ParseSprintStatus(s string) (SprintStatus, error) {
	status := SprintStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSprintStatus, s)
	}

	return status, nil
}

type (
	SprintID struct {
		uuid.UUID
	}

	Sprint struct {
		ID        SprintID
		ProjectID ProjectID
		Name      string
		Goal      string
		Status    SprintStatus
		StartsAt  time.Time
		EndsAt    time.Time
		CreatedAt time.Time
		UpdatedAt time.Time
	}
)

func NewSprintID() SprintID {
	return SprintID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseSprintID(s string) (SprintID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SprintID{}, fmt.Errorf("%w: %v", ErrInvalidSprintID, err)
	}

	return SprintID{UUID: id}, nil
}

func (s SprintID) String() string { return s.UUID.String() }
func (s SprintID) IsZero() bool   { return s.UUID == uuid.Nil }

func NewSprint(projectID ProjectID, name, goal string, startsAt, endsAt time.Time) *Sprint {
	now := time.Now().UTC()

	return &Sprint{
		ID:        NewSprintID(),
		ProjectID: projectID,
		Name:      name,
		Goal:      goal,
		Status:    SprintStatusPlanned,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Sprint) IsCompleted() bool {
	return s.Status == SprintStatusCompleted
}

func (s *Sprint) Update(name, goal string, startsAt, endsAt time.Time) error {
	if s.IsCompleted() {
		return ErrSprintCompleted
	}

	s.Name = name
	s.Goal = goal
	s.StartsAt = startsAt
	s.EndsAt = endsAt
	s.UpdatedAt = time.Now().UTC()

	return nil
}

func (s *Sprint) Start() error {
	if s.Status != SprintStatusPlanned {
		return fmt.Errorf("%w: cannot start a %s sprint", ErrInvalidSprintTransition, s.Status)
	}

	s.Status = SprintStatusActive
	s.UpdatedAt = time.Now().UTC()

	return nil
}

func (s *Sprint) Complete() error {
	if s.Status != SprintStatusActive {
		return fmt.Errorf("%w: cannot complete a %s sprint", ErrInvalidSprintTransition, s.Status)
	}

	s.Status = SprintStatusCompleted
	s.UpdatedAt = time.Now().UTC()

	return nil
}
