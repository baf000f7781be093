package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
)

// AdminRequired gates the dashboard routes. A request is let through
// when its session carries the admin flag from a successful login, or
// when it presents a valid Bearer token (API clients without cookies).
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := session.FromContext(c); sess != nil && sess.Get().IsAdmin {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("admin login required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseAdminToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
