package notifier

import (
	"context"

	"github.com/google/uuid"

	"room-service/internal/repository/model"
)

type ChangeType string

const (
	ChangeTypeCreate ChangeType = "create"
	ChangeTypeModify ChangeType = "modify"
	ChangeTypeDelete ChangeType = "delete"
)

// Notifier fans room and role changes out to the rest of the platform, e.g.
// so connected clients can re-evaluate what they are allowed to do. Delivery
// is best effort; callers log failures and carry on.
type Notifier interface {
	RoomUpdate(ctx context.Context, room *model.Room, changeType ChangeType) error
	RoleUpdate(ctx context.Context, role *model.Role, changeType ChangeType) error
	UserRolesUpdate(ctx context.Context, roomId uuid.UUID, userId uuid.UUID, roleId uuid.UUID, changeType ChangeType) error
}
