package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/naebu/naebu_backend/internal/assets"
	"github.com/naebu/naebu_backend/internal/auth"
	"github.com/naebu/naebu_backend/internal/config"
	"github.com/naebu/naebu_backend/internal/controllers"
	"github.com/naebu/naebu_backend/internal/middleware"
	"github.com/naebu/naebu_backend/internal/notify"
	"github.com/naebu/naebu_backend/internal/store"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	ttlHours, err := strconv.Atoi(cfg.SessionTTLHours)
	if err != nil || ttlHours <= 0 {
		ttlHours = 12
	}
	ttl := time.Duration(ttlHours) * time.Hour

	sessions := &store.SessionStore{DB: db}
	gate := &auth.Gate{
		Sessions:     sessions,
		Secret:       []byte(cfg.SessionSecret),
		PasswordHash: cfg.AdminPasswordHash,
		Password:     cfg.AdminPassword,
		TTL:          ttl,
	}

	estCtrl := &controllers.EstimateController{
		Store:    &store.EstimateStore{DB: db},
		Notifier: notify.NewWebhook(cfg.WebhookURL, log),
		Logger:   log,
	}
	authCtrl := &controllers.AuthController{
		Gate:         gate,
		CookieDomain: cfg.CookieDomain,
		CookieSecure: true,
		TTL:          ttl,
		Logger:       log,
	}
	contentCtrl := &controllers.ContentController{
		Store:  &store.ContentStore{DB: db},
		Logger: log,
	}
	uploadCtrl := &controllers.UploadController{
		Assets: assets.New(cfg.ImageHostURL, cfg.ImageHostKey),
		Logger: log,
	}

	// Frontend and backend live on different origins, so the session cookie
	// only works with credentialed CORS.
	if cfg.FrontendOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendOrigin},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.Session(gate))

	// Public
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "NAEBU BACKEND OK")
	})
	r.POST("/estimate", estCtrl.Create)
	r.GET("/content", contentCtrl.Get)
	r.POST("/admin/login", authCtrl.Login)
	r.GET("/admin/check", authCtrl.Check)
	r.POST("/admin/logout", authCtrl.Logout)

	// Admin-only
	admin := r.Group("/", middleware.RequireAdmin())
	{
		admin.GET("/estimates", estCtrl.List)
		admin.POST("/estimate/status", estCtrl.UpdateStatus)
		admin.POST("/estimate/memo", estCtrl.UpdateMemo)
		admin.POST("/estimate/read", estCtrl.MarkRead)
		admin.DELETE("/estimate/:id", estCtrl.Delete)
		admin.GET("/estimates/export", estCtrl.Export)
		admin.GET("/estimates/stats", estCtrl.Stats)

		admin.POST("/content", contentCtrl.Update)
		admin.POST("/upload", uploadCtrl.Upload)
	}
}
