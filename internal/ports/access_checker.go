package ports

import "context"

// ResourceType identifies the kind of resource an access check applies to.
type ResourceType string

const (
	ResourceProject   ResourceType = "project"
	ResourceSprint    ResourceType = "sprint"
	ResourceTicket    ResourceType = "ticket"
	ResourceWorkspace ResourceType = "workspace"
)

// Action is the operation the actor wants to perform on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// AccessChecker answers whether an actor may perform an action on a
// resource. Implementations talk to the authorization service.
type AccessChecker interface {
	HasRight(ctx context.Context, resourceID, actorID string, action Action, resourceType ResourceType) (bool, error)
}
