package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"room-service/internal/permission"
	"room-service/internal/repository"
)

// handleError maps repository and resolver failures to HTTP responses. A
// malformed room (no applicable roles) is an internal error, never a 403.
func (s *roomService) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.AlreadyHasRoleError):
		c.JSON(http.StatusConflict, gin.H{"error": "user already has role"})
	case errors.Is(err, repository.DoesNotHaveRoleError):
		c.JSON(http.StatusNotFound, gin.H{"error": "user does not have role"})
	case errors.Is(err, permission.ErrNoApplicableRoles):
		s.logger.Errorw("room has no applicable roles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	case mongo.IsDuplicateKeyError(err):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		s.logger.Errorw("internal error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
