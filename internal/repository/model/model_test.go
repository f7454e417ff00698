package model

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permissionFields(t *testing.T, perms Permissions) map[string]PermissionState {
	t.Helper()

	fields := make(map[string]PermissionState)
	v := reflect.ValueOf(perms)
	for i := 0; i < v.NumField(); i++ {
		state, ok := v.Field(i).Interface().(PermissionState)
		require.True(t, ok, "non PermissionState field %s", v.Type().Field(i).Name)
		fields[v.Type().Field(i).Name] = state
	}
	return fields
}

func TestPermissionStateEncoding(t *testing.T) {
	// -1/0/1 is the persisted encoding; these values are load-bearing.
	assert.Equal(t, int8(-1), int8(PermissionUnset))
	assert.Equal(t, int8(0), int8(PermissionForbidden))
	assert.Equal(t, int8(1), int8(PermissionAllowed))

	bytes, err := json.Marshal(Permissions{RoomDelete: PermissionAllowed, TitleUpdate: PermissionUnset})
	assert.NoError(t, err)
	assert.Contains(t, string(bytes), `"roomDelete":1`)
	assert.Contains(t, string(bytes), `"titleUpdate":-1`)
}

func TestPermissionStateString(t *testing.T) {
	assert.Equal(t, "unset", PermissionUnset.String())
	assert.Equal(t, "forbidden", PermissionForbidden.String())
	assert.Equal(t, "allowed", PermissionAllowed.String())
}

func TestUniformPermissions(t *testing.T) {
	for name, state := range permissionFields(t, UniformPermissions(PermissionForbidden)) {
		assert.Equal(t, PermissionForbidden, state, "field %s", name)
	}
	for name, state := range permissionFields(t, UniformPermissions(PermissionUnset)) {
		assert.Equal(t, PermissionUnset, state, "field %s", name)
	}
}

func TestDefaultRoomRoles(t *testing.T) {
	roomId := uuid.New()
	now := time.Now().UTC()
	roles := DefaultRoomRoles(roomId, now)
	require.Len(t, roles, 5)

	byName := make(map[string]*Role)
	for _, role := range roles {
		assert.Equal(t, roomId, role.RoomId)
		assert.True(t, role.IsDefault)
		assert.Equal(t, now, role.CreatedAt)
		byName[role.Name] = role
	}

	assert.Equal(t, PositionOwner, byName["Owner"].Position)
	assert.Equal(t, PositionAdministrator, byName["Administrator"].Position)
	assert.Equal(t, PositionStranger, byName["Stranger"].Position)
	assert.Equal(t, PositionAnonymous, byName["Anonymous"].Position)
	assert.Equal(t, PositionEveryone, byName["Everyone"].Position)

	// The Everyone fallback is always the final element.
	assert.Equal(t, "Everyone", roles[len(roles)-1].Name)
}

func TestOwnerRole(t *testing.T) {
	owner := OwnerRole(uuid.New(), time.Now())
	for name, state := range permissionFields(t, owner.Permissions) {
		assert.Equal(t, PermissionAllowed, state, "field %s", name)
	}
	assert.False(t, owner.Generic)
	assert.False(t, owner.Anonymous)
}

func TestAdministratorRole(t *testing.T) {
	admin := AdministratorRole(uuid.New(), time.Now())
	for name, state := range permissionFields(t, admin.Permissions) {
		if name == "RoomDelete" {
			// Administrators inherit the room deletion verdict, which the
			// Everyone fallback forbids.
			assert.Equal(t, PermissionUnset, state)
			continue
		}
		assert.Equal(t, PermissionAllowed, state, "field %s", name)
	}
}

func TestStrangerRole(t *testing.T) {
	stranger := StrangerRole(uuid.New(), time.Now())
	for name, state := range permissionFields(t, stranger.Permissions) {
		if name == "PingEveryone" || name == "VideoCreate" {
			assert.Equal(t, PermissionAllowed, state, "field %s", name)
			continue
		}
		assert.Equal(t, PermissionUnset, state, "field %s", name)
	}
	assert.True(t, stranger.Generic)
	// Strangers are identified members; the anonymous chain skips them.
	assert.False(t, stranger.Anonymous)
	assert.Equal(t, int32(0), stranger.MessageTimeout)
}

func TestAnonymousRole(t *testing.T) {
	anonymous := AnonymousRole(uuid.New(), time.Now())
	for name, state := range permissionFields(t, anonymous.Permissions) {
		assert.Equal(t, PermissionUnset, state, "field %s", name)
	}
	assert.True(t, anonymous.Generic)
	assert.True(t, anonymous.Anonymous)
	assert.Equal(t, MessageTimeoutInherit, anonymous.MessageTimeout)
}

func TestEveryoneRole(t *testing.T) {
	everyone := EveryoneRole(uuid.New(), time.Now())

	allowed := map[string]bool{
		"EmbedLinks":         true,
		"EmoteView":          true,
		"RoleView":           true,
		"VideoWatch":         true,
		"MessageCreate":      true,
		"MessageRead":        true,
		"MessageHistoryRead": true,
	}

	for name, state := range permissionFields(t, everyone.Permissions) {
		// The total fallback never defers: resolution must terminate here.
		assert.NotEqual(t, PermissionUnset, state, "field %s", name)

		if allowed[name] {
			assert.Equal(t, PermissionAllowed, state, "field %s", name)
		} else {
			assert.Equal(t, PermissionForbidden, state, "field %s", name)
		}
	}

	assert.True(t, everyone.Generic)
	assert.True(t, everyone.Anonymous)
}
