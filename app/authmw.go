package app

import (
	"net/http"

	"bonrecords/models"
	"bonrecords/session"

	"github.com/gin-gonic/gin"
)

// CtxUserKey holds the authenticated models.User in the gin context.
const CtxUserKey = "user"

// AuthRequired rejects requests while no one is logged in.
func AuthRequired(sess *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := sess.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// AdminOnly must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
