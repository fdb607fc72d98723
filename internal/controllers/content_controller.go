package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/naebu/naebu_backend/internal/models"
)

// ContentStore is the repository surface the content endpoints need.
type ContentStore interface {
	Get(ctx context.Context) (models.SiteContent, error)
	Replace(ctx context.Context, intro string, slides, portfolio []byte) error
}

type ContentController struct {
	Store  ContentStore
	Logger *zap.Logger
}

type updateContentRequest struct {
	Intro     string              `json:"intro"`
	Slides    []models.SlideEntry `json:"slides"`
	Portfolio []string            `json:"portfolio"`
}

// Get returns the singleton content record. Public, no auth.
func (cc *ContentController) Get(c *gin.Context) {
	rec, err := cc.Store.Get(c.Request.Context())
	if err != nil {
		cc.fail(c, "read", err)
		return
	}

	slides := []models.SlideEntry{}
	if len(rec.Slides) > 0 {
		if err := json.Unmarshal(rec.Slides, &slides); err != nil {
			cc.fail(c, "decode slides", err)
			return
		}
	}
	portfolio := []string{}
	if len(rec.Portfolio) > 0 {
		if err := json.Unmarshal(rec.Portfolio, &portfolio); err != nil {
			cc.fail(c, "decode portfolio", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"intro":      rec.Intro,
		"slides":     slides,
		"portfolio":  portfolio,
		"updated_at": rec.UpdatedAt,
	})
}

// Update replaces intro, slides and portfolio as one unit. Admin only.
func (cc *ContentController) Update(c *gin.Context) {
	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "invalid request body"})
		return
	}

	if req.Slides == nil {
		req.Slides = []models.SlideEntry{}
	}
	if req.Portfolio == nil {
		req.Portfolio = []string{}
	}
	slides, err := json.Marshal(req.Slides)
	if err != nil {
		cc.fail(c, "encode slides", err)
		return
	}
	portfolio, err := json.Marshal(req.Portfolio)
	if err != nil {
		cc.fail(c, "encode portfolio", err)
		return
	}

	// The row is seeded at boot; a missing row here is an internal
	// inconsistency, not a caller mistake.
	if err := cc.Store.Replace(c.Request.Context(), req.Intro, slides, portfolio); err != nil {
		cc.fail(c, "replace", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (cc *ContentController) fail(c *gin.Context, op string, err error) {
	cc.Logger.Error("content "+op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "internal error"})
}
