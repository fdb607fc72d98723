package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/naebu/naebu_backend/internal/export"
	"github.com/naebu/naebu_backend/internal/models"
	"github.com/naebu/naebu_backend/internal/notify"
	"github.com/naebu/naebu_backend/internal/store"
)

// EstimateStore is the repository surface the estimate endpoints need.
type EstimateStore interface {
	Insert(ctx context.Context, in store.NewEstimate) (models.Estimate, error)
	ListAll(ctx context.Context) ([]models.Estimate, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateMemo(ctx context.Context, id, memo string) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (store.Stats, error)
}

type EstimateController struct {
	Store    EstimateStore
	Notifier notify.Notifier
	Logger   *zap.Logger
}

type createEstimateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Budget  string `json:"budget"`
	Space   string `json:"space"`
	Message string `json:"message"`
}

type updateStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type updateMemoRequest struct {
	ID   string `json:"id" binding:"required"`
	Memo string `json:"memo"`
}

type markReadRequest struct {
	ID string `json:"id" binding:"required"`
}

// Create handles the public submission form. Name and phone are required;
// the notification webhook fires after the insert and never blocks it.
func (ec *EstimateController) Create(c *gin.Context) {
	var req createEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "invalid request body"})
		return
	}

	e, err := ec.Store.Insert(c.Request.Context(), store.NewEstimate{
		Name:    req.Name,
		Phone:   req.Phone,
		Budget:  req.Budget,
		Space:   req.Space,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyValue) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "필수값 누락"})
			return
		}
		ec.fail(c, "insert", err)
		return
	}

	if ec.Notifier != nil {
		go ec.Notifier.EstimateReceived(e)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": e.ID})
}

func (ec *EstimateController) List(c *gin.Context) {
	list, err := ec.Store.ListAll(c.Request.Context())
	if err != nil {
		ec.fail(c, "list", err)
		return
	}
	if list == nil {
		list = []models.Estimate{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": list})
}

func (ec *EstimateController) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "id and status are required"})
		return
	}
	if err := ec.Store.UpdateStatus(c.Request.Context(), req.ID, req.Status); err != nil {
		ec.mutationError(c, "update status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ec *EstimateController) UpdateMemo(c *gin.Context) {
	var req updateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "id is required"})
		return
	}
	if err := ec.Store.UpdateMemo(c.Request.Context(), req.ID, req.Memo); err != nil {
		ec.mutationError(c, "update memo", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ec *EstimateController) MarkRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "id is required"})
		return
	}
	if err := ec.Store.MarkRead(c.Request.Context(), req.ID); err != nil {
		ec.mutationError(c, "mark read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ec *EstimateController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ec.Store.Delete(c.Request.Context(), id); err != nil {
		ec.mutationError(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ec *EstimateController) Export(c *gin.Context) {
	list, err := ec.Store.ListAll(c.Request.Context())
	if err != nil {
		ec.fail(c, "export list", err)
		return
	}
	payload, err := export.CSV(list)
	if err != nil {
		ec.fail(c, "export render", err)
		return
	}
	filename := "estimates_" + time.Now().UTC().Format("20060102") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

func (ec *EstimateController) Stats(c *gin.Context) {
	stats, err := ec.Store.Stats(c.Request.Context())
	if err != nil {
		ec.fail(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"total":     stats.Total,
		"today":     stats.Today,
		"month":     stats.Month,
		"by_status": stats.ByStatus,
	})
}

func (ec *EstimateController) mutationError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "estimate not found"})
	case errors.Is(err, store.ErrEmptyValue):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "value must not be empty"})
	default:
		ec.fail(c, op, err)
	}
}

func (ec *EstimateController) fail(c *gin.Context, op string, err error) {
	ec.Logger.Error("estimate "+op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "internal error"})
}
