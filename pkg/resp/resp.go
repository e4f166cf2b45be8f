package resp

import (
	"log"
	"net/http"

	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	log.Println("server error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "something went wrong on the server"})
}

// Error maps a classified error onto the matching status. Storage
// errors are logged and masked.
func Error(c *gin.Context, err error) {
	msg := apperr.Message(err)
	switch apperr.KindOf(err) {
	case apperr.Validation:
		BadRequest(c, msg)
	case apperr.Authentication:
		Unauthorized(c, msg)
	case apperr.Authorization:
		Forbidden(c, msg)
	case apperr.NotFound:
		NotFound(c, msg)
	case apperr.Conflict:
		Conflict(c, msg)
	default:
		ServerError(c, err)
	}
}
