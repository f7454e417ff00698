package model

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Id       uuid.UUID `bson:"_id" json:"id"`
	Title    string    `bson:"title" json:"title"`
	Path     string    `bson:"path" json:"path"`
	IsPublic bool      `bson:"isPublic" json:"isPublic"`

	// Password is the room password hash. Hashing itself is handled by the
	// auth layer, the repository only stores the result.
	Password *string `bson:"password,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Role struct {
	Id     uuid.UUID `bson:"_id" json:"id"`
	RoomId uuid.UUID `bson:"roomId" json:"roomId"`

	Name  string  `bson:"name" json:"name"`
	Color *string `bson:"color,omitempty" json:"color,omitempty"`

	// IsDefault marks the roles seeded at room creation. Informational only,
	// the resolver never consults it.
	IsDefault bool `bson:"isDefault" json:"isDefault"`

	// Generic roles apply to every member of the room without an explicit
	// assignment. Anonymous marks the generic roles that also apply to
	// principals with no identity.
	Generic   bool `bson:"generic" json:"generic"`
	Anonymous bool `bson:"anonymous" json:"anonymous"`

	// Position is the role priority. Lower value = higher rank.
	Position int32 `bson:"position" json:"position"`

	Permissions Permissions `bson:"permissions" json:"permissions"`

	// MessageTimeout is the cooldown in seconds between messages for holders
	// of this role. MessageTimeoutInherit (-1) defers to the next role.
	MessageTimeout int32 `bson:"messageTimeout" json:"messageTimeout"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// UserRole assigns a role to a user. RoomId is denormalised from the role so
// per-room assignment lookups need no join.
type UserRole struct {
	Id        uuid.UUID `bson:"_id" json:"id"`
	RoomId    uuid.UUID `bson:"roomId" json:"roomId"`
	UserId    uuid.UUID `bson:"userId" json:"userId"`
	RoleId    uuid.UUID `bson:"roleId" json:"roleId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
