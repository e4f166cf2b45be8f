package middlewares

import (
	"errors"
	"strings"

	"github.com/SARVESHYOGI/store-rating-system/configs"
	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/pkg/resp"
	"github.com/SARVESHYOGI/store-rating-system/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and resolves the identity.
// The bound user must still exist; a stale subject is a 401, not a
// server error. Resolution is read-only.
func AuthMiddleware(db *gorm.DB, cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		var user entity.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resp.Unauthorized(c, "invalid user")
			} else {
				resp.ServerError(c, err)
			}
			c.Abort()
			return
		}

		utils.SetIdentity(c, authz.Identity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		c.Next()
	}
}

// Authorize gates a route on a role-only guard action. Resource-scoped
// rules run in the controllers after the record is loaded.
func Authorize(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := utils.CurrentIdentity(c)
		if !ok {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		if d := authz.Authorize(ident, action, nil); !d.Allowed {
			resp.Forbidden(c, d.Reason)
			c.Abort()
			return
		}
		c.Next()
	}
}
