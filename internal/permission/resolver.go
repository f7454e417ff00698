package permission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"room-service/internal/repository/model"
)

// ErrNoApplicableRoles is returned when a room yields an empty role chain.
// A well-formed room always carries its Everyone fallback, so this signals a
// malformed room, not a denied check; callers must map it to an internal
// error, never to a 403.
var ErrNoApplicableRoles = errors.New("no applicable roles in room")

// RoleStore is the ordered role query the resolver walks.
//
// The contract: for an identified user (non-nil userId), roles explicitly
// assigned to the user come first, then the room's generic roles; each
// segment is sorted ascending by position. For an anonymous principal only
// the anonymous-eligible generic roles are returned. For a well-formed room
// the Everyone role is always the final element.
type RoleStore interface {
	ListApplicableRoles(ctx context.Context, userId *uuid.UUID, roomId uuid.UUID) ([]*model.Role, error)
}

// Resolver decides a single allowed/forbidden verdict for a
// (principal, room, action) triple. It holds no state beyond the store and
// is safe for concurrent use.
type Resolver struct {
	store RoleStore
}

func NewResolver(store RoleStore) *Resolver {
	return &Resolver{store: store}
}

// IsAllowed walks the principal's role chain in priority order and returns
// the first non-unset verdict. A nil userId is an anonymous principal.
// Storage errors propagate untransformed; a denied verdict is (false, nil).
func (r *Resolver) IsAllowed(ctx context.Context, userId *uuid.UUID, room *model.Room, action Action) (bool, error) {
	roles, err := r.store.ListApplicableRoles(ctx, userId, room.Id)
	if err != nil {
		return false, err
	}
	if len(roles) == 0 {
		return false, fmt.Errorf("%w: room %s", ErrNoApplicableRoles, room.Id)
	}

	field := fieldFor(action.Kind)

	// The target's best position does not change while walking the chain,
	// so it is resolved at most once.
	var targetPosition *int32
	if action.Relational() {
		pos, err := r.targetPosition(ctx, room.Id, action)
		if err != nil {
			return false, err
		}
		targetPosition = &pos
	}

	for _, role := range roles {
		state := field(&role.Permissions)

		// Escalation guard: a role may never act on a target whose best
		// role outranks or ties it, whatever its own field says.
		if targetPosition != nil && *targetPosition <= role.Position {
			state = model.PermissionForbidden
		}

		switch state {
		case model.PermissionAllowed:
			return true, nil
		case model.PermissionForbidden:
			return false, nil
		case model.PermissionUnset:
			continue
		}
	}

	// Every role deferred. A room seeded with its Everyone fallback never
	// gets here; deny by default.
	return false, nil
}

// HighestRole returns the principal's best role in the room: the first
// element of the applicable chain, which is already precedence ordered.
func (r *Resolver) HighestRole(ctx context.Context, userId *uuid.UUID, roomId uuid.UUID) (*model.Role, error) {
	roles, err := r.store.ListApplicableRoles(ctx, userId, roomId)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: room %s", ErrNoApplicableRoles, roomId)
	}
	return roles[0], nil
}

func (r *Resolver) targetPosition(ctx context.Context, roomId uuid.UUID, action Action) (int32, error) {
	if action.TargetRole != nil {
		return action.TargetRole.Position, nil
	}

	// User-targeted kinds: the guard compares against the target's highest
	// role. A nil target user resolves through the anonymous chain.
	highest, err := r.HighestRole(ctx, action.TargetUser, roomId)
	if err != nil {
		return 0, err
	}
	return highest.Position, nil
}
