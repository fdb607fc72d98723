package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "naebu_session"

// Authorizer decides whether a session token grants admin access.
type Authorizer interface {
	Authorize(ctx context.Context, token string) bool
}

// Session resolves the session cookie once per request and stores the result
// on the context for RequireAdmin and the auth endpoints.
func Session(gate Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := false
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			admin = gate.Authorize(c.Request.Context(), token)
		}
		c.Set("admin", admin)
		c.Next()
	}
}

// RequireAdmin aborts with 401 unless the request carries a valid admin
// session, regardless of payload content.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("admin") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "unauthorized"})
			return
		}
		c.Next()
	}
}
