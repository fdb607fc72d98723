package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssetStore relays an image payload to the external image host.
type AssetStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type UploadController struct {
	Assets AssetStore
	Logger *zap.Logger
}

// Upload relays every file in the "images" field (falling back to a single
// "image") to the asset store and returns the public URLs in order.
func (uc *UploadController) Upload(c *gin.Context) {
	// Cap the in-memory form parse; images beyond this spill to disk.
	if err := c.Request.ParseMultipartForm(20 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "failed to parse form"})
		return
	}

	form := c.Request.MultipartForm
	files := form.File["images"]
	if len(files) == 0 {
		files = form.File["image"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "file is required"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			uc.fail(c, "open file", err)
			return
		}
		url, err := uc.Assets.Upload(c.Request.Context(), fh.Filename, f)
		f.Close()
		if err != nil {
			uc.fail(c, "relay", err)
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "urls": urls})
}

func (uc *UploadController) fail(c *gin.Context, op string, err error) {
	uc.Logger.Error("upload "+op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "internal error"})
}
