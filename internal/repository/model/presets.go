package model

import (
	"time"

	"github.com/google/uuid"
)

// Positions of the roles seeded at room creation. Lower value = higher rank.
// Custom roles are expected to slot in between Administrator and Stranger.
const (
	PositionOwner         int32 = 0
	PositionAdministrator int32 = 1
	PositionStranger      int32 = 1001
	PositionAnonymous     int32 = 1002
	PositionEveryone      int32 = 1003
)

// OwnerRole grants everything, including room deletion.
func OwnerRole(roomId uuid.UUID, now time.Time) *Role {
	return &Role{
		Id:             uuid.New(),
		RoomId:         roomId,
		Name:           "Owner",
		IsDefault:      true,
		Position:       PositionOwner,
		Permissions:    UniformPermissions(PermissionAllowed),
		MessageTimeout: 0,
		CreatedAt:      now,
	}
}

// AdministratorRole is Owner with room deletion left unset, so it falls
// through to Everyone's verdict.
func AdministratorRole(roomId uuid.UUID, now time.Time) *Role {
	perms := UniformPermissions(PermissionAllowed)
	perms.RoomDelete = PermissionUnset

	return &Role{
		Id:             uuid.New(),
		RoomId:         roomId,
		Name:           "Administrator",
		IsDefault:      true,
		Position:       PositionAdministrator,
		Permissions:    perms,
		MessageTimeout: 0,
		CreatedAt:      now,
	}
}

// StrangerRole applies to every identified member of the room. It inherits
// almost everything and only opens up the couple of things a fresh member
// may do beyond the Everyone baseline.
func StrangerRole(roomId uuid.UUID, now time.Time) *Role {
	perms := UniformPermissions(PermissionUnset)
	perms.PingEveryone = PermissionAllowed
	perms.VideoCreate = PermissionAllowed

	return &Role{
		Id:             uuid.New(),
		RoomId:         roomId,
		Name:           "Stranger",
		IsDefault:      true,
		Generic:        true,
		Position:       PositionStranger,
		Permissions:    perms,
		MessageTimeout: 0,
		CreatedAt:      now,
	}
}

// AnonymousRole is a pure inheritance placeholder for principals with no
// identity. Everything defers downward.
func AnonymousRole(roomId uuid.UUID, now time.Time) *Role {
	return &Role{
		Id:             uuid.New(),
		RoomId:         roomId,
		Name:           "Anonymous",
		IsDefault:      true,
		Generic:        true,
		Anonymous:      true,
		Position:       PositionAnonymous,
		Permissions:    UniformPermissions(PermissionUnset),
		MessageTimeout: MessageTimeoutInherit,
		CreatedAt:      now,
	}
}

// EveryoneRole is the total fallback: no field is left unset, so resolution
// always terminates here. Read/view actions and plain messaging are allowed,
// every mutation and moderation action is forbidden.
func EveryoneRole(roomId uuid.UUID, now time.Time) *Role {
	perms := UniformPermissions(PermissionForbidden)
	perms.EmbedLinks = PermissionAllowed
	perms.EmoteView = PermissionAllowed
	perms.RoleView = PermissionAllowed
	perms.VideoWatch = PermissionAllowed
	perms.MessageCreate = PermissionAllowed
	perms.MessageRead = PermissionAllowed
	perms.MessageHistoryRead = PermissionAllowed

	return &Role{
		Id:             uuid.New(),
		RoomId:         roomId,
		Name:           "Everyone",
		IsDefault:      true,
		Generic:        true,
		Anonymous:      true,
		Position:       PositionEveryone,
		Permissions:    perms,
		MessageTimeout: 0,
		CreatedAt:      now,
	}
}

// DefaultRoomRoles returns the five roles seeded transactionally alongside a
// new room. The last element is always the Everyone fallback.
func DefaultRoomRoles(roomId uuid.UUID, now time.Time) []*Role {
	return []*Role{
		OwnerRole(roomId, now),
		AdministratorRole(roomId, now),
		StrangerRole(roomId, now),
		AnonymousRole(roomId, now),
		EveryoneRole(roomId, now),
	}
}
