package model

import "fmt"

// PermissionState is the tri-state verdict a role carries for a single
// action. The zero value is NOT Unset; roles must be built from
// UniformPermissions (or a preset) so that unfilled fields default to
// PermissionUnset rather than PermissionForbidden.
type PermissionState int8

const (
	// PermissionUnset defers the decision to the next lower-priority role.
	PermissionUnset PermissionState = -1
	// PermissionForbidden terminates resolution with a deny.
	PermissionForbidden PermissionState = 0
	// PermissionAllowed terminates resolution with a grant.
	PermissionAllowed PermissionState = 1
)

func (s PermissionState) String() string {
	switch s {
	case PermissionUnset:
		return "unset"
	case PermissionForbidden:
		return "forbidden"
	case PermissionAllowed:
		return "allowed"
	}
	return fmt.Sprintf("PermissionState(%d)", int8(s))
}

// MessageTimeoutInherit is the sentinel for Role.MessageTimeout meaning the
// cooldown is inherited from the next role in the chain. The timeout is a
// duration in seconds, not a PermissionState.
const MessageTimeoutInherit int32 = -1

// Permissions is the fixed bundle of tri-state fields a role carries, one
// per governable action. The bson/json keys are the wire encoding of the
// role record; states serialize as -1/0/1.
type Permissions struct {
	TitleUpdate  PermissionState `bson:"titleUpdate" json:"titleUpdate"`
	PathUpdate   PermissionState `bson:"pathUpdate" json:"pathUpdate"`
	PublicUpdate PermissionState `bson:"publicUpdate" json:"publicUpdate"`
	RoomDelete   PermissionState `bson:"roomDelete" json:"roomDelete"`
	AuditLogRead PermissionState `bson:"auditLogRead" json:"auditLogRead"`
	EmbedLinks   PermissionState `bson:"embedLinks" json:"embedLinks"`
	PingEveryone PermissionState `bson:"pingEveryone" json:"pingEveryone"`

	PasswordCreate PermissionState `bson:"passwordCreate" json:"passwordCreate"`
	PasswordUpdate PermissionState `bson:"passwordUpdate" json:"passwordUpdate"`
	PasswordDelete PermissionState `bson:"passwordDelete" json:"passwordDelete"`

	EmoteCreate PermissionState `bson:"emoteCreate" json:"emoteCreate"`
	EmoteUpdate PermissionState `bson:"emoteUpdate" json:"emoteUpdate"`
	EmoteDelete PermissionState `bson:"emoteDelete" json:"emoteDelete"`
	EmoteView   PermissionState `bson:"emoteView" json:"emoteView"`

	RoleCreate PermissionState `bson:"roleCreate" json:"roleCreate"`
	RoleUpdate PermissionState `bson:"roleUpdate" json:"roleUpdate"`
	RoleDelete PermissionState `bson:"roleDelete" json:"roleDelete"`
	RoleView   PermissionState `bson:"roleView" json:"roleView"`

	VideoCreate PermissionState `bson:"videoCreate" json:"videoCreate"`
	VideoDelete PermissionState `bson:"videoDelete" json:"videoDelete"`
	VideoWatch  PermissionState `bson:"videoWatch" json:"videoWatch"`
	VideoMove   PermissionState `bson:"videoMove" json:"videoMove"`
	VideoIframe PermissionState `bson:"videoIframe" json:"videoIframe"`
	VideoRaw    PermissionState `bson:"videoRaw" json:"videoRaw"`

	PlayerPause  PermissionState `bson:"playerPause" json:"playerPause"`
	PlayerResume PermissionState `bson:"playerResume" json:"playerResume"`
	PlayerRewind PermissionState `bson:"playerRewind" json:"playerRewind"`

	SubtitlesFile  PermissionState `bson:"subtitlesFile" json:"subtitlesFile"`
	SubtitlesEmbed PermissionState `bson:"subtitlesEmbed" json:"subtitlesEmbed"`

	MessageCreate      PermissionState `bson:"messageCreate" json:"messageCreate"`
	MessageRead        PermissionState `bson:"messageRead" json:"messageRead"`
	MessageDelete      PermissionState `bson:"messageDelete" json:"messageDelete"`
	MessageHistoryRead PermissionState `bson:"messageHistoryRead" json:"messageHistoryRead"`

	UserKick    PermissionState `bson:"userKick" json:"userKick"`
	UserBan     PermissionState `bson:"userBan" json:"userBan"`
	UserUnban   PermissionState `bson:"userUnban" json:"userUnban"`
	UserTimeout PermissionState `bson:"userTimeout" json:"userTimeout"`
}

// UniformPermissions returns a bundle with every field set to state.
func UniformPermissions(state PermissionState) Permissions {
	return Permissions{
		TitleUpdate:  state,
		PathUpdate:   state,
		PublicUpdate: state,
		RoomDelete:   state,
		AuditLogRead: state,
		EmbedLinks:   state,
		PingEveryone: state,

		PasswordCreate: state,
		PasswordUpdate: state,
		PasswordDelete: state,

		EmoteCreate: state,
		EmoteUpdate: state,
		EmoteDelete: state,
		EmoteView:   state,

		RoleCreate: state,
		RoleUpdate: state,
		RoleDelete: state,
		RoleView:   state,

		VideoCreate: state,
		VideoDelete: state,
		VideoWatch:  state,
		VideoMove:   state,
		VideoIframe: state,
		VideoRaw:    state,

		PlayerPause:  state,
		PlayerResume: state,
		PlayerRewind: state,

		SubtitlesFile:  state,
		SubtitlesEmbed: state,

		MessageCreate:      state,
		MessageRead:        state,
		MessageDelete:      state,
		MessageHistoryRead: state,

		UserKick:    state,
		UserBan:     state,
		UserUnban:   state,
		UserTimeout: state,
	}
}
