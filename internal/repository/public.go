package repository

import (
	"context"

	"github.com/google/uuid"

	"room-service/internal/repository/model"
)

type Repository interface {
	// CreateRoom inserts the room, its seed roles and the owner's role
	// assignment in one transaction. Partial failure leaves nothing behind:
	// a room must never exist without its Everyone fallback role.
	CreateRoom(ctx context.Context, room *model.Room, roles []*model.Role, owner *model.UserRole) error
	GetRoom(ctx context.Context, roomId uuid.UUID) (*model.Room, error)
	GetRoomByPath(ctx context.Context, path string) (*model.Room, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
	// DeleteRoom removes the room with its roles and assignments in one
	// transaction.
	DeleteRoom(ctx context.Context, roomId uuid.UUID) error

	GetRole(ctx context.Context, roleId uuid.UUID) (*model.Role, error)
	CreateRole(ctx context.Context, role *model.Role) error
	UpdateRole(ctx context.Context, newRole *model.Role) error
	// DeleteRole removes the role and cascades its assignment rows in one
	// transaction.
	DeleteRole(ctx context.Context, roleId uuid.UUID) error

	// ListRoomRoles returns every role owned by the room, sorted ascending
	// by position.
	ListRoomRoles(ctx context.Context, roomId uuid.UUID) ([]*model.Role, error)
	// ListGenericRoomRoles returns the room's generic roles sorted ascending
	// by position. With anonymous set, only anonymous-eligible roles are
	// returned.
	ListGenericRoomRoles(ctx context.Context, roomId uuid.UUID, anonymous bool) ([]*model.Role, error)
	// ListUserRolesByRoom returns the roles explicitly assigned to the user
	// in the room, sorted ascending by position.
	ListUserRolesByRoom(ctx context.Context, userId uuid.UUID, roomId uuid.UUID) ([]*model.Role, error)
	// ListApplicableRoles is the combined precedence chain: assigned roles
	// before generic roles, each segment position ascending. A nil userId is
	// an anonymous principal and yields only anonymous-eligible generic
	// roles.
	ListApplicableRoles(ctx context.Context, userId *uuid.UUID, roomId uuid.UUID) ([]*model.Role, error)

	AddRoleToUser(ctx context.Context, roomId uuid.UUID, userId uuid.UUID, roleId uuid.UUID) error
	RemoveRoleFromUser(ctx context.Context, roomId uuid.UUID, userId uuid.UUID, roleId uuid.UUID) error
}
