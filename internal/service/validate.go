package service

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"room-service/internal/utils/runtime"
)

// Room paths appear in URLs: lowercase alphanumerics and dashes, no leading
// or trailing dash, 3-32 characters.
var roomPathPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{1,30}[a-z0-9])?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	runtime.Must(v.RegisterValidation("room_path", func(fl validator.FieldLevel) bool {
		path := fl.Field().String()
		return len(path) >= 3 && roomPathPattern.MatchString(path)
	}))
	return v
}

// bind decodes the JSON body into req and validates it, writing a 400 on
// either failure.
func (s *roomService) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
