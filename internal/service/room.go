package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"room-service/internal/messaging/notifier"
	"room-service/internal/permission"
	"room-service/internal/repository"
	"room-service/internal/repository/model"
)

// roomService is the authorization façade: it resolves the principal and the
// room from HTTP-shaped inputs and hands the decision to the resolver. It
// holds no domain logic of its own.
type roomService struct {
	logger *zap.SugaredLogger

	repo     repository.Repository
	notif    notifier.Notifier
	resolver *permission.Resolver
}

func newRoomService(logger *zap.SugaredLogger, repo repository.Repository, notif notifier.Notifier) *roomService {
	return &roomService{
		logger:   logger,
		repo:     repo,
		notif:    notif,
		resolver: permission.NewResolver(repo),
	}
}

func (s *roomService) registerRoutes(router *gin.Engine) {
	rooms := router.Group("/rooms")
	rooms.GET("", s.ListRooms)
	rooms.POST("", s.CreateRoom)
	rooms.GET("/:path", s.GetRoom)
	rooms.DELETE("/:path", s.DeleteRoom)
	rooms.GET("/:path/allowed", s.CheckAllowed)

	rooms.GET("/:path/roles", s.ListRoles)
	rooms.POST("/:path/roles", s.CreateRole)
	rooms.PATCH("/:path/roles/:roleId", s.UpdateRole)
	rooms.DELETE("/:path/roles/:roleId", s.DeleteRole)

	rooms.PUT("/:path/users/:userId/roles/:roleId", s.GrantRole)
	rooms.DELETE("/:path/users/:userId/roles/:roleId", s.RevokeRole)

	rooms.POST("/:path/users/:userId/kick", s.moderationHandler(permission.UserKick))
	rooms.POST("/:path/users/:userId/ban", s.moderationHandler(permission.UserBan))
	rooms.POST("/:path/users/:userId/timeout", s.moderationHandler(permission.UserTimeout))
}

// authorize runs the resolver for the request's principal and writes the
// response on failure. A storage failure maps to a 500 and a denied verdict
// to a 403; the two are never conflated.
func (s *roomService) authorize(c *gin.Context, room *model.Room, action permission.Action) bool {
	principal, err := principalId(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	allowed, err := s.resolver.IsAllowed(c.Request.Context(), principal, room, action)
	if err != nil {
		s.handleError(c, err)
		return false
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	return true
}

func (s *roomService) roomByPath(c *gin.Context) (*model.Room, bool) {
	room, err := s.repo.GetRoomByPath(c.Request.Context(), c.Param("path"))
	if err != nil {
		s.handleError(c, err)
		return nil, false
	}
	return room, true
}

type createRoomRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=64"`
	Path     string `json:"path" validate:"required,room_path"`
	IsPublic bool   `json:"isPublic"`
}

func (s *roomService) CreateRoom(c *gin.Context) {
	principal, err := principalId(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createRoomRequest
	if !s.bind(c, &req) {
		return
	}

	now := time.Now().UTC()
	room := &model.Room{
		Id:        uuid.New(),
		Title:     req.Title,
		Path:      req.Path,
		IsPublic:  req.IsPublic,
		CreatedAt: now,
	}

	// The five preset roles and the owner assignment are seeded in the same
	// transaction as the room itself.
	roles := model.DefaultRoomRoles(room.Id, now)
	owner := &model.UserRole{
		Id:        uuid.New(),
		RoomId:    room.Id,
		UserId:    *principal,
		RoleId:    roles[0].Id,
		CreatedAt: now,
	}

	if err := s.repo.CreateRoom(c.Request.Context(), room, roles, owner); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.RoomUpdate(c.Request.Context(), room, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending room update notification", "error", err)
	}

	c.JSON(http.StatusCreated, room)
}

func (s *roomService) ListRooms(c *gin.Context) {
	rooms, err := s.repo.ListRooms(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	if rooms == nil {
		rooms = []*model.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

func (s *roomService) GetRoom(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, room)
}

func (s *roomService) DeleteRoom(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}

	if !s.authorize(c, room, permission.NewAction(permission.ActionDeleteRoom)) {
		return
	}

	if err := s.repo.DeleteRoom(c.Request.Context(), room.Id); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.RoomUpdate(c.Request.Context(), room, notifier.ChangeTypeDelete); err != nil {
		s.logger.Errorw("error sending room update notification", "error", err)
	}

	c.Status(http.StatusNoContent)
}

// CheckAllowed is the generic permission probe: ?action=<name>. Relational
// actions need a target and are decided on their own endpoints.
func (s *roomService) CheckAllowed(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}

	kind, err := permission.ParseActionKind(c.Query("action"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action := permission.NewAction(kind)
	if action.Relational() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action requires a target"})
		return
	}

	principal, err := principalId(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed, err := s.resolver.IsAllowed(c.Request.Context(), principal, room, action)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}

func (s *roomService) ListRoles(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}

	if !s.authorize(c, room, permission.NewAction(permission.ActionRoleView)) {
		return
	}

	roles, err := s.repo.ListRoomRoles(c.Request.Context(), room.Id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

type createRoleRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=64"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
	Position int32   `json:"position" validate:"required,gt=0"`
}

func (s *roomService) CreateRole(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}

	if !s.authorize(c, room, permission.NewAction(permission.ActionRoleCreate)) {
		return
	}

	var req createRoleRequest
	if !s.bind(c, &req) {
		return
	}

	role := &model.Role{
		Id:             uuid.New(),
		RoomId:         room.Id,
		Name:           req.Name,
		Color:          req.Color,
		Position:       req.Position,
		Permissions:    model.UniformPermissions(model.PermissionUnset),
		MessageTimeout: model.MessageTimeoutInherit,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.CreateRole(c.Request.Context(), role); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.RoleUpdate(c.Request.Context(), role, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending role update notification", "error", err)
	}

	c.JSON(http.StatusCreated, role)
}

type updateRoleRequest struct {
	Name           *string            `json:"name" validate:"omitempty,min=1,max=64"`
	Color          *string            `json:"color" validate:"omitempty,hexcolor"`
	Position       *int32             `json:"position" validate:"omitempty,gt=0"`
	MessageTimeout *int32             `json:"messageTimeout" validate:"omitempty,gte=-1"`
	Permissions    *model.Permissions `json:"permissions"`
}

func (s *roomService) UpdateRole(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}

	target, ok := s.roleInRoom(c, room)
	if !ok {
		return
	}

	if !s.authorize(c, room, permission.RoleUpdate(target)) {
		return
	}

	var req updateRoleRequest
	if !s.bind(c, &req) {
		return
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Color != nil {
		target.Color = req.Color
	}
	if req.Position != nil {
		target.Position = *req.Position
	}
	if req.MessageTimeout != nil {
		target.MessageTimeout = *req.MessageTimeout
	}
	if req.Permissions != nil {
		target.Permissions = *req.Permissions
	}

	if err := s.repo.UpdateRole(c.Request.Context(), target); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.RoleUpdate(c.Request.Context(), target, notifier.ChangeTypeModify); err != nil {
		s.logger.Errorw("error sending role update notification", "error", err)
	}

	c.JSON(http.StatusOK, target)
}

func (s *roomService) DeleteRole(c *gin.Context) {
	room, ok := s.roomByPath(c)
	if !ok {
		return
	}

	target, ok := s.roleInRoom(c, room)
	if !ok {
		return
	}

	// Deleting a seeded role would break the Everyone fallback invariant.
	if target.IsDefault {
		c.JSON(http.StatusBadRequest, gin.H{"error": "default roles cannot be deleted"})
		return
	}

	if !s.authorize(c, room, permission.RoleDelete(target)) {
		return
	}

	if err := s.repo.DeleteRole(c.Request.Context(), target.Id); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.RoleUpdate(c.Request.Context(), target, notifier.ChangeTypeDelete); err != nil {
		s.logger.Errorw("error sending role update notification", "error", err)
	}

	c.Status(http.StatusNoContent)
}

func (s *roomService) GrantRole(c *gin.Context) {
	room, target, userId, ok := s.assignmentTarget(c)
	if !ok {
		return
	}

	if !s.authorize(c, room, permission.RoleUpdate(target)) {
		return
	}

	if err := s.repo.AddRoleToUser(c.Request.Context(), room.Id, userId, target.Id); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.UserRolesUpdate(c.Request.Context(), room.Id, userId, target.Id, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending user roles update notification", "error", err)
	}

	c.Status(http.StatusNoContent)
}

func (s *roomService) RevokeRole(c *gin.Context) {
	room, target, userId, ok := s.assignmentTarget(c)
	if !ok {
		return
	}

	if !s.authorize(c, room, permission.RoleUpdate(target)) {
		return
	}

	if err := s.repo.RemoveRoleFromUser(c.Request.Context(), room.Id, userId, target.Id); err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.notif.UserRolesUpdate(c.Request.Context(), room.Id, userId, target.Id, notifier.ChangeTypeDelete); err != nil {
		s.logger.Errorw("error sending user roles update notification", "error", err)
	}

	c.Status(http.StatusNoContent)
}

// moderationHandler authorizes a user-targeted action (kick, ban, timeout).
// The enforcement itself (closing connections, writing restraints) lives in
// the realtime layer; this service only owns the verdict.
func (s *roomService) moderationHandler(action func(*uuid.UUID) permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, ok := s.roomByPath(c)
		if !ok {
			return
		}

		targetId, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		if !s.authorize(c, room, action(&targetId)) {
			return
		}

		c.Status(http.StatusAccepted)
	}
}

func (s *roomService) roleInRoom(c *gin.Context, room *model.Room) (*model.Role, bool) {
	roleId, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return nil, false
	}

	role, err := s.repo.GetRole(c.Request.Context(), roleId)
	if err != nil {
		s.handleError(c, err)
		return nil, false
	}
	if role.RoomId != room.Id {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, false
	}
	return role, true
}

func (s *roomService) assignmentTarget(c *gin.Context) (*model.Room, *model.Role, uuid.UUID, bool) {
	room, ok := s.roomByPath(c)
	if !ok {
		return nil, nil, uuid.Nil, false
	}

	userId, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return nil, nil, uuid.Nil, false
	}

	target, ok := s.roleInRoom(c, room)
	if !ok {
		return nil, nil, uuid.Nil, false
	}

	return room, target, userId, true
}
