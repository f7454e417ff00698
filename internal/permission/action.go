package permission

import (
	"fmt"

	"github.com/google/uuid"

	"room-service/internal/repository/model"
)

// ActionKind identifies one governable action. The integer discriminants are
// persisted in audit records and sent over the wire, so existing values must
// never be renumbered; new kinds are appended.
type ActionKind int32

const (
	ActionChangeTitle  ActionKind = 0
	ActionChangePath   ActionKind = 1
	ActionChangePublic ActionKind = 2
	ActionDeleteRoom   ActionKind = 3
	ActionAuditLogRead ActionKind = 4
	ActionEmbedLinks   ActionKind = 5
	ActionPingEveryone ActionKind = 6

	ActionPasswordCreate ActionKind = 7
	ActionPasswordUpdate ActionKind = 8
	ActionPasswordDelete ActionKind = 9

	ActionEmoteCreate ActionKind = 10
	ActionEmoteUpdate ActionKind = 11
	ActionEmoteDelete ActionKind = 12
	ActionEmoteView   ActionKind = 13

	ActionRoleCreate ActionKind = 14
	ActionRoleUpdate ActionKind = 15
	ActionRoleDelete ActionKind = 16
	ActionRoleView   ActionKind = 17

	ActionVideoAdd    ActionKind = 18
	ActionVideoDelete ActionKind = 19
	ActionVideoWatch  ActionKind = 20
	ActionVideoMove   ActionKind = 21
	ActionVideoIframe ActionKind = 22
	ActionVideoRaw    ActionKind = 23

	ActionPlayerPause  ActionKind = 24
	ActionPlayerResume ActionKind = 25
	ActionPlayerRewind ActionKind = 26

	ActionSubtitlesFile  ActionKind = 27
	ActionSubtitlesEmbed ActionKind = 28

	ActionMessageCreate  ActionKind = 29
	ActionMessageRead    ActionKind = 30
	ActionMessageDelete  ActionKind = 31
	ActionMessageHistory ActionKind = 32

	ActionUserKick    ActionKind = 33
	ActionUserBan     ActionKind = 34
	ActionUserUnban   ActionKind = 35
	ActionUserTimeout ActionKind = 36
)

var actionKindNames = map[ActionKind]string{
	ActionChangeTitle:    "change_title",
	ActionChangePath:     "change_path",
	ActionChangePublic:   "change_public",
	ActionDeleteRoom:     "delete_room",
	ActionAuditLogRead:   "audit_log_read",
	ActionEmbedLinks:     "embed_links",
	ActionPingEveryone:   "ping_everyone",
	ActionPasswordCreate: "password_create",
	ActionPasswordUpdate: "password_update",
	ActionPasswordDelete: "password_delete",
	ActionEmoteCreate:    "emote_create",
	ActionEmoteUpdate:    "emote_update",
	ActionEmoteDelete:    "emote_delete",
	ActionEmoteView:      "emote_view",
	ActionRoleCreate:     "role_create",
	ActionRoleUpdate:     "role_update",
	ActionRoleDelete:     "role_delete",
	ActionRoleView:       "role_view",
	ActionVideoAdd:       "video_add",
	ActionVideoDelete:    "video_delete",
	ActionVideoWatch:     "video_watch",
	ActionVideoMove:      "video_move",
	ActionVideoIframe:    "video_iframe",
	ActionVideoRaw:       "video_raw",
	ActionPlayerPause:    "player_pause",
	ActionPlayerResume:   "player_resume",
	ActionPlayerRewind:   "player_rewind",
	ActionSubtitlesFile:  "subtitles_file",
	ActionSubtitlesEmbed: "subtitles_embed",
	ActionMessageCreate:  "message_create",
	ActionMessageRead:    "message_read",
	ActionMessageDelete:  "message_delete",
	ActionMessageHistory: "message_history",
	ActionUserKick:       "user_kick",
	ActionUserBan:        "user_ban",
	ActionUserUnban:      "user_unban",
	ActionUserTimeout:    "user_timeout",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int32(k))
}

// ParseActionKind resolves the snake_case name used by the HTTP check
// endpoint back to a kind.
func ParseActionKind(name string) (ActionKind, error) {
	for kind, n := range actionKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// ActionKinds returns every declared kind. Used by the completeness tests
// and by the check endpoint's introspection.
func ActionKinds() []ActionKind {
	kinds := make([]ActionKind, 0, len(actionKindNames))
	for kind := range actionKindNames {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Action is an ActionKind plus, for the five relational kinds, the target
// the escalation guard compares positions against.
type Action struct {
	Kind ActionKind

	// TargetRole is set for ActionRoleUpdate and ActionRoleDelete.
	TargetRole *model.Role

	// TargetUser is set for ActionUserKick, ActionUserBan and
	// ActionUserTimeout. A nil target is an anonymous user.
	TargetUser *uuid.UUID
}

// NewAction builds an action for the non-relational kinds. Relational kinds
// have their own constructors carrying the target.
func NewAction(kind ActionKind) Action {
	return Action{Kind: kind}
}

// RoleUpdate targets an existing role for modification.
func RoleUpdate(target *model.Role) Action {
	return Action{Kind: ActionRoleUpdate, TargetRole: target}
}

// RoleDelete targets an existing role for deletion.
func RoleDelete(target *model.Role) Action {
	return Action{Kind: ActionRoleDelete, TargetRole: target}
}

// UserKick targets a user for removal from the room. A nil user id targets
// an anonymous connection.
func UserKick(target *uuid.UUID) Action {
	return Action{Kind: ActionUserKick, TargetUser: target}
}

// UserBan targets a user for a ban. A nil user id targets an anonymous
// connection.
func UserBan(target *uuid.UUID) Action {
	return Action{Kind: ActionUserBan, TargetUser: target}
}

// UserTimeout targets a user for a message timeout. A nil user id targets an
// anonymous connection.
func UserTimeout(target *uuid.UUID) Action {
	return Action{Kind: ActionUserTimeout, TargetUser: target}
}

// Relational reports whether the kind carries a target whose best role
// position gates the verdict.
func (a Action) Relational() bool {
	switch a.Kind {
	case ActionRoleUpdate, ActionRoleDelete, ActionUserKick, ActionUserBan, ActionUserTimeout:
		return true
	}
	return false
}

// actionFields maps every kind to its PermissionState field. The table is
// built once and pinned by TestActionFieldTableComplete, so a new kind that
// is not wired in here fails the build's test run rather than silently
// denying at runtime.
var actionFields = map[ActionKind]func(*model.Permissions) model.PermissionState{
	ActionChangeTitle:    func(p *model.Permissions) model.PermissionState { return p.TitleUpdate },
	ActionChangePath:     func(p *model.Permissions) model.PermissionState { return p.PathUpdate },
	ActionChangePublic:   func(p *model.Permissions) model.PermissionState { return p.PublicUpdate },
	ActionDeleteRoom:     func(p *model.Permissions) model.PermissionState { return p.RoomDelete },
	ActionAuditLogRead:   func(p *model.Permissions) model.PermissionState { return p.AuditLogRead },
	ActionEmbedLinks:     func(p *model.Permissions) model.PermissionState { return p.EmbedLinks },
	ActionPingEveryone:   func(p *model.Permissions) model.PermissionState { return p.PingEveryone },
	ActionPasswordCreate: func(p *model.Permissions) model.PermissionState { return p.PasswordCreate },
	ActionPasswordUpdate: func(p *model.Permissions) model.PermissionState { return p.PasswordUpdate },
	ActionPasswordDelete: func(p *model.Permissions) model.PermissionState { return p.PasswordDelete },
	ActionEmoteCreate:    func(p *model.Permissions) model.PermissionState { return p.EmoteCreate },
	ActionEmoteUpdate:    func(p *model.Permissions) model.PermissionState { return p.EmoteUpdate },
	ActionEmoteDelete:    func(p *model.Permissions) model.PermissionState { return p.EmoteDelete },
	ActionEmoteView:      func(p *model.Permissions) model.PermissionState { return p.EmoteView },
	ActionRoleCreate:     func(p *model.Permissions) model.PermissionState { return p.RoleCreate },
	ActionRoleUpdate:     func(p *model.Permissions) model.PermissionState { return p.RoleUpdate },
	ActionRoleDelete:     func(p *model.Permissions) model.PermissionState { return p.RoleDelete },
	ActionRoleView:       func(p *model.Permissions) model.PermissionState { return p.RoleView },
	ActionVideoAdd:       func(p *model.Permissions) model.PermissionState { return p.VideoCreate },
	ActionVideoDelete:    func(p *model.Permissions) model.PermissionState { return p.VideoDelete },
	ActionVideoWatch:     func(p *model.Permissions) model.PermissionState { return p.VideoWatch },
	ActionVideoMove:      func(p *model.Permissions) model.PermissionState { return p.VideoMove },
	ActionVideoIframe:    func(p *model.Permissions) model.PermissionState { return p.VideoIframe },
	ActionVideoRaw:       func(p *model.Permissions) model.PermissionState { return p.VideoRaw },
	ActionPlayerPause:    func(p *model.Permissions) model.PermissionState { return p.PlayerPause },
	ActionPlayerResume:   func(p *model.Permissions) model.PermissionState { return p.PlayerResume },
	ActionPlayerRewind:   func(p *model.Permissions) model.PermissionState { return p.PlayerRewind },
	ActionSubtitlesFile:  func(p *model.Permissions) model.PermissionState { return p.SubtitlesFile },
	ActionSubtitlesEmbed: func(p *model.Permissions) model.PermissionState { return p.SubtitlesEmbed },
	ActionMessageCreate:  func(p *model.Permissions) model.PermissionState { return p.MessageCreate },
	ActionMessageRead:    func(p *model.Permissions) model.PermissionState { return p.MessageRead },
	ActionMessageDelete:  func(p *model.Permissions) model.PermissionState { return p.MessageDelete },
	ActionMessageHistory: func(p *model.Permissions) model.PermissionState { return p.MessageHistoryRead },
	ActionUserKick:       func(p *model.Permissions) model.PermissionState { return p.UserKick },
	ActionUserBan:        func(p *model.Permissions) model.PermissionState { return p.UserBan },
	ActionUserUnban:      func(p *model.Permissions) model.PermissionState { return p.UserUnban },
	ActionUserTimeout:    func(p *model.Permissions) model.PermissionState { return p.UserTimeout },
}

// fieldFor panics on an unmapped kind: that is a programming error caught by
// the completeness test, never a runtime condition.
func fieldFor(kind ActionKind) func(*model.Permissions) model.PermissionState {
	field, ok := actionFields[kind]
	if !ok {
		panic(fmt.Sprintf("no permission field mapped for action kind %d", kind))
	}
	return field
}
