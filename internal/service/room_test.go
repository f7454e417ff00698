package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"room-service/internal/messaging/notifier"
	"room-service/internal/repository"
	"room-service/internal/repository/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*gin.Engine, *repository.MockRepository, *notifier.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repoMock := repository.NewMockRepository(ctrl)
	notifMock := notifier.NewMockNotifier(ctrl)

	router := gin.New()
	newRoomService(zap.NewNop().Sugar(), repoMock, notifMock).registerRoutes(router)

	return router, repoMock, notifMock
}

func doRequest(t *testing.T, router *gin.Engine, method, target string, body any, principal *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if principal != nil {
		req.Header.Set(principalHeader, principal.String())
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testRoom(path string) *model.Room {
	return &model.Room{
		Id:        uuid.New(),
		Title:     "test room",
		Path:      path,
		IsPublic:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func testRole(roomId uuid.UUID, name string, position int32, override func(*model.Permissions)) *model.Role {
	perms := model.UniformPermissions(model.PermissionUnset)
	if override != nil {
		override(&perms)
	}
	return &model.Role{
		Id:          uuid.New(),
		RoomId:      roomId,
		Name:        name,
		Position:    position,
		Permissions: perms,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateRoom(t *testing.T) {
	router, repoMock, notifMock := setup(t)
	ownerId := uuid.New()

	repoMock.EXPECT().
		CreateRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, room *model.Room, roles []*model.Role, owner *model.UserRole) error {
			assert.Equal(t, "movie-night", room.Path)
			assert.Len(t, roles, 5)
			assert.Equal(t, "Everyone", roles[len(roles)-1].Name)
			assert.Equal(t, ownerId, owner.UserId)
			assert.Equal(t, roles[0].Id, owner.RoleId)
			return nil
		})
	notifMock.EXPECT().RoomUpdate(gomock.Any(), gomock.Any(), notifier.ChangeTypeCreate).Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/rooms", gin.H{
		"title":    "Movie Night",
		"path":     "movie-night",
		"isPublic": true,
	}, &ownerId)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"movie-night"`)
}

func TestCreateRoom_Anonymous(t *testing.T) {
	router, _, _ := setup(t)

	rec := doRequest(t, router, http.MethodPost, "/rooms", gin.H{
		"title": "Movie Night",
		"path":  "movie-night",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRoom_InvalidPath(t *testing.T) {
	router, _, _ := setup(t)
	ownerId := uuid.New()

	for _, path := range []string{"Bad_Path", "-leading", "trailing-", "a"} {
		rec := doRequest(t, router, http.MethodPost, "/rooms", gin.H{
			"title": "Movie Night",
			"path":  path,
		}, &ownerId)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %q", path)
	}
}

func TestDeleteRoom(t *testing.T) {
	router, repoMock, notifMock := setup(t)
	room := testRoom("movie-night")
	ownerId := uuid.New()

	chain := []*model.Role{
		testRole(room.Id, "Owner", model.PositionOwner, func(p *model.Permissions) {
			*p = model.UniformPermissions(model.PermissionAllowed)
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &ownerId, room.Id).Return(chain, nil)
	repoMock.EXPECT().DeleteRoom(gomock.Any(), room.Id).Return(nil)
	notifMock.EXPECT().RoomUpdate(gomock.Any(), room, notifier.ChangeTypeDelete).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/rooms/movie-night", nil, &ownerId)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteRoom_Forbidden(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	userId := uuid.New()

	// Stranger then Everyone: both resolve room deletion to forbidden, and
	// the repository delete must never be reached.
	chain := []*model.Role{
		model.StrangerRole(room.Id, time.Now().UTC()),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &userId, room.Id).Return(chain, nil)

	rec := doRequest(t, router, http.MethodDelete, "/rooms/movie-night", nil, &userId)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	router, repoMock, _ := setup(t)

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "missing").Return(nil, mongo.ErrNoDocuments)

	rec := doRequest(t, router, http.MethodDelete, "/rooms/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckAllowed(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")

	// Anonymous principal; the Everyone fallback allows message creation.
	chain := []*model.Role{
		model.AnonymousRole(room.Id, time.Now().UTC()),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), gomock.Nil(), room.Id).Return(chain, nil)

	rec := doRequest(t, router, http.MethodGet, "/rooms/movie-night/allowed?action=message_create", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"allowed":true}`, rec.Body.String())
}

func TestCheckAllowed_Denied(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")

	chain := []*model.Role{
		model.AnonymousRole(room.Id, time.Now().UTC()),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), gomock.Nil(), room.Id).Return(chain, nil)

	rec := doRequest(t, router, http.MethodGet, "/rooms/movie-night/allowed?action=video_add", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"allowed":false}`, rec.Body.String())
}

func TestCheckAllowed_UnknownAction(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)

	rec := doRequest(t, router, http.MethodGet, "/rooms/movie-night/allowed?action=fly_to_the_moon", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckAllowed_RelationalActionRejected(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)

	rec := doRequest(t, router, http.MethodGet, "/rooms/movie-night/allowed?action=user_kick", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckAllowed_StorageError(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	userId := uuid.New()

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &userId, room.Id).Return(nil, errors.New("connection reset"))

	rec := doRequest(t, router, http.MethodGet, "/rooms/movie-night/allowed?action=message_create", nil, &userId)

	// A storage failure is an internal error, never a denial.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateRole(t *testing.T) {
	router, repoMock, notifMock := setup(t)
	room := testRoom("movie-night")
	ownerId := uuid.New()

	target := testRole(room.Id, "moderator", 5, nil)
	chain := []*model.Role{
		testRole(room.Id, "Owner", model.PositionOwner, func(p *model.Permissions) {
			*p = model.UniformPermissions(model.PermissionAllowed)
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().GetRole(gomock.Any(), target.Id).Return(target, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &ownerId, room.Id).Return(chain, nil)
	repoMock.EXPECT().
		UpdateRole(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, role *model.Role) error {
			assert.Equal(t, "renamed", role.Name)
			assert.Equal(t, int32(30), role.MessageTimeout)
			return nil
		})
	notifMock.EXPECT().RoleUpdate(gomock.Any(), gomock.Any(), notifier.ChangeTypeModify).Return(nil)

	rec := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/rooms/movie-night/roles/%s", target.Id), gin.H{
		"name":           "renamed",
		"messageTimeout": 30,
	}, &ownerId)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRole_EscalationForbidden(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	userId := uuid.New()

	// The target outranks the actor's best role, so the update is forbidden
	// even though the actor's own role allows role updates.
	target := testRole(room.Id, "senior", 1, nil)
	chain := []*model.Role{
		testRole(room.Id, "junior", 2, func(p *model.Permissions) {
			p.RoleUpdate = model.PermissionAllowed
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().GetRole(gomock.Any(), target.Id).Return(target, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &userId, room.Id).Return(chain, nil)

	rec := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/rooms/movie-night/roles/%s", target.Id), gin.H{
		"name": "renamed",
	}, &userId)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateRole_WrongRoom(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	userId := uuid.New()

	foreign := testRole(uuid.New(), "foreign", 5, nil)

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().GetRole(gomock.Any(), foreign.Id).Return(foreign, nil)

	rec := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/rooms/movie-night/roles/%s", foreign.Id), gin.H{
		"name": "renamed",
	}, &userId)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRole_DefaultRoleRejected(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	userId := uuid.New()

	everyone := model.EveryoneRole(room.Id, time.Now().UTC())

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().GetRole(gomock.Any(), everyone.Id).Return(everyone, nil)

	rec := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/rooms/movie-night/roles/%s", everyone.Id), nil, &userId)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGrantRole(t *testing.T) {
	router, repoMock, notifMock := setup(t)
	room := testRoom("movie-night")
	ownerId := uuid.New()
	granteeId := uuid.New()

	target := testRole(room.Id, "moderator", 5, nil)
	chain := []*model.Role{
		testRole(room.Id, "Owner", model.PositionOwner, func(p *model.Permissions) {
			*p = model.UniformPermissions(model.PermissionAllowed)
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().GetRole(gomock.Any(), target.Id).Return(target, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &ownerId, room.Id).Return(chain, nil)
	repoMock.EXPECT().AddRoleToUser(gomock.Any(), room.Id, granteeId, target.Id).Return(nil)
	notifMock.EXPECT().UserRolesUpdate(gomock.Any(), room.Id, granteeId, target.Id, notifier.ChangeTypeCreate).Return(nil)

	rec := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/rooms/movie-night/users/%s/roles/%s", granteeId, target.Id), nil, &ownerId)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGrantRole_AlreadyHasRole(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	ownerId := uuid.New()
	granteeId := uuid.New()

	target := testRole(room.Id, "moderator", 5, nil)
	chain := []*model.Role{
		testRole(room.Id, "Owner", model.PositionOwner, func(p *model.Permissions) {
			*p = model.UniformPermissions(model.PermissionAllowed)
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().GetRole(gomock.Any(), target.Id).Return(target, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &ownerId, room.Id).Return(chain, nil)
	repoMock.EXPECT().AddRoleToUser(gomock.Any(), room.Id, granteeId, target.Id).Return(repository.AlreadyHasRoleError)

	rec := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/rooms/movie-night/users/%s/roles/%s", granteeId, target.Id), nil, &ownerId)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestKickUser(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	moderatorId := uuid.New()
	targetId := uuid.New()

	moderatorChain := []*model.Role{
		testRole(room.Id, "moderator", 5, func(p *model.Permissions) {
			p.UserKick = model.PermissionAllowed
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}
	targetChain := []*model.Role{
		model.StrangerRole(room.Id, time.Now().UTC()),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &moderatorId, room.Id).Return(moderatorChain, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &targetId, room.Id).Return(targetChain, nil)

	rec := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/rooms/movie-night/users/%s/kick", targetId), nil, &moderatorId)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestKickUser_PeerForbidden(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")
	moderatorId := uuid.New()
	targetId := uuid.New()

	// Equal rank: ties resolve to forbidden, kicks only go downward.
	moderatorChain := []*model.Role{
		testRole(room.Id, "moderator", 5, func(p *model.Permissions) {
			p.UserKick = model.PermissionAllowed
		}),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}
	targetChain := []*model.Role{
		testRole(room.Id, "moderator", 5, nil),
		model.EveryoneRole(room.Id, time.Now().UTC()),
	}

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &moderatorId, room.Id).Return(moderatorChain, nil)
	repoMock.EXPECT().ListApplicableRoles(gomock.Any(), &targetId, room.Id).Return(targetChain, nil)

	rec := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/rooms/movie-night/users/%s/kick", targetId), nil, &moderatorId)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestKickUser_InvalidTargetId(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)

	rec := doRequest(t, router, http.MethodPost, "/rooms/movie-night/users/not-a-uuid/kick", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidPrincipalHeader(t *testing.T) {
	router, repoMock, _ := setup(t)
	room := testRoom("movie-night")

	repoMock.EXPECT().GetRoomByPath(gomock.Any(), "movie-night").Return(room, nil)

	req := httptest.NewRequest(http.MethodGet, "/rooms/movie-night/allowed?action=message_create", nil)
	req.Header.Set(principalHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRooms(t *testing.T) {
	router, repoMock, _ := setup(t)

	repoMock.EXPECT().ListRooms(gomock.Any()).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/rooms", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
