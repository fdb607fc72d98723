// Package notify announces new inquiries to an external chat channel.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/naebu/naebu_backend/internal/models"
)

// Notifier is a best-effort outbound channel for new inquiries.
type Notifier interface {
	EstimateReceived(e models.Estimate)
}

// Webhook posts a short text message to a chat-bot webhook. Strictly
// at-most-once: one POST, no retry, failures logged and dropped.
type Webhook struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func NewWebhook(url string, logger *zap.Logger) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
		Logger: logger,
	}
}

func (w *Webhook) EstimateReceived(e models.Estimate) {
	if w.URL == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"text": fmt.Sprintf("새 견적 문의: %s (%s) / 공간: %s / 예산: %s", e.Name, e.Phone, e.Space, e.Budget),
	})
	if err != nil {
		w.Logger.Warn("estimate notification payload failed", zap.Error(err))
		return
	}

	resp, err := w.Client.Post(w.URL, "application/json", bytes.NewReader(payload))
	if err != nil {
		w.Logger.Warn("estimate notification failed", zap.String("id", e.ID), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		w.Logger.Warn("estimate notification rejected",
			zap.String("id", e.ID), zap.Int("status", resp.StatusCode))
	}
}
