package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"roamio/pkg/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "roamio_session"

// SessionAuthMiddleware resolves the session cookie into a user identity.
// Handlers behind it can read "user_id" and "is_admin" from the gin context.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AdminOnlyMiddleware must run after SessionAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie establishes the session on the response. The cookie is
// HttpOnly and SameSite=Lax; Secure only outside development.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, utils.SessionLifetimeSeconds(), "/", "", secureCookies(), true)
}

// ClearSessionCookie invalidates the session on the response.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}
