package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/naebu/naebu_backend/internal/auth"
	"github.com/naebu/naebu_backend/internal/middleware"
)

// Gate is the credential gate surface the auth endpoints need.
type Gate interface {
	Authenticate(ctx context.Context, password string) (string, error)
	Authorize(ctx context.Context, token string) bool
	Revoke(ctx context.Context, token string) error
}

type AuthController struct {
	Gate         Gate
	CookieDomain string
	CookieSecure bool
	TTL          time.Duration
	Logger       *zap.Logger
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared admin password for a session cookie. The cookie
// is SameSite=None because the admin panel lives on a different origin.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "password is required"})
		return
	}

	token, err := a.Gate.Authenticate(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "비밀번호가 올바르지 않습니다"})
			return
		}
		a.Logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "internal error"})
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, token, int(a.TTL.Seconds()), "/", a.CookieDomain, a.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Check probes whether the current cookie still maps to an admin session.
func (a *AuthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": c.GetBool("admin")})
}

// Logout destroys the session behind the cookie and clears it. Always
// succeeds; logging out twice is fine.
func (a *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := a.Gate.Revoke(c.Request.Context(), token); err != nil {
			a.Logger.Warn("session revoke failed", zap.Error(err))
		}
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", a.CookieDomain, a.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
