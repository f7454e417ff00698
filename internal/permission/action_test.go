package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"room-service/internal/repository/model"
)

// Every kind must have exactly one field mapping, a name and a parseable
// round trip. A new action that is not wired in everywhere fails here.
func TestActionFieldTableComplete(t *testing.T) {
	kinds := ActionKinds()
	assert.Len(t, kinds, 37)
	assert.Len(t, actionFields, len(kinds))

	for _, kind := range kinds {
		assert.NotPanics(t, func() { fieldFor(kind) }, "kind %s has no field mapping", kind)

		name := kind.String()
		assert.NotContains(t, name, "ActionKind(", "kind %d has no name", kind)

		parsed, err := ParseActionKind(name)
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}

// The discriminants are persisted and transmitted; renumbering them changes
// the wire meaning of existing records.
func TestActionKindDiscriminantsStable(t *testing.T) {
	expected := map[ActionKind]int32{
		ActionChangeTitle:    0,
		ActionChangePath:     1,
		ActionChangePublic:   2,
		ActionDeleteRoom:     3,
		ActionAuditLogRead:   4,
		ActionEmbedLinks:     5,
		ActionPingEveryone:   6,
		ActionPasswordCreate: 7,
		ActionPasswordUpdate: 8,
		ActionPasswordDelete: 9,
		ActionEmoteCreate:    10,
		ActionEmoteUpdate:    11,
		ActionEmoteDelete:    12,
		ActionEmoteView:      13,
		ActionRoleCreate:     14,
		ActionRoleUpdate:     15,
		ActionRoleDelete:     16,
		ActionRoleView:       17,
		ActionVideoAdd:       18,
		ActionVideoDelete:    19,
		ActionVideoWatch:     20,
		ActionVideoMove:      21,
		ActionVideoIframe:    22,
		ActionVideoRaw:       23,
		ActionPlayerPause:    24,
		ActionPlayerResume:   25,
		ActionPlayerRewind:   26,
		ActionSubtitlesFile:  27,
		ActionSubtitlesEmbed: 28,
		ActionMessageCreate:  29,
		ActionMessageRead:    30,
		ActionMessageDelete:  31,
		ActionMessageHistory: 32,
		ActionUserKick:       33,
		ActionUserBan:        34,
		ActionUserUnban:      35,
		ActionUserTimeout:    36,
	}

	assert.Len(t, expected, len(ActionKinds()))
	for kind, discriminant := range expected {
		assert.Equal(t, discriminant, int32(kind), "discriminant drifted for %s", kind)
	}
}

func TestActionFieldMapping(t *testing.T) {
	tests := []struct {
		kind     ActionKind
		override func(*model.Permissions)
	}{
		{kind: ActionDeleteRoom, override: func(p *model.Permissions) { p.RoomDelete = model.PermissionAllowed }},
		{kind: ActionVideoAdd, override: func(p *model.Permissions) { p.VideoCreate = model.PermissionAllowed }},
		{kind: ActionMessageHistory, override: func(p *model.Permissions) { p.MessageHistoryRead = model.PermissionAllowed }},
		{kind: ActionUserBan, override: func(p *model.Permissions) { p.UserBan = model.PermissionAllowed }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			perms := model.UniformPermissions(model.PermissionUnset)
			tt.override(&perms)
			assert.Equal(t, model.PermissionAllowed, fieldFor(tt.kind)(&perms))

			// No other field may have been mapped to this kind.
			unset := model.UniformPermissions(model.PermissionUnset)
			assert.Equal(t, model.PermissionUnset, fieldFor(tt.kind)(&unset))
		})
	}
}

func TestParseActionKind_Unknown(t *testing.T) {
	_, err := ParseActionKind("fly_to_the_moon")
	assert.Error(t, err)
}

func TestRelational(t *testing.T) {
	assert.True(t, RoleUpdate(nil).Relational())
	assert.True(t, RoleDelete(nil).Relational())
	assert.True(t, UserKick(nil).Relational())
	assert.True(t, UserBan(nil).Relational())
	assert.True(t, UserTimeout(nil).Relational())

	assert.False(t, NewAction(ActionDeleteRoom).Relational())
	assert.False(t, NewAction(ActionUserUnban).Relational())
}
