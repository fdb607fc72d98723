package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/naebu/naebu_backend/internal/models"
)

func TestWebhookPostsMessage(t *testing.T) {
	got := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("invalid payload: %v", err)
		}
		got <- body
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, zap.NewNop())
	hook.EstimateReceived(models.Estimate{
		ID:     "est-1",
		Name:   "김민수",
		Phone:  "010-1234-5678",
		Space:  "아파트 32평",
		Budget: "5000만원",
	})

	select {
	case body := <-got:
		text := body["text"]
		if !strings.Contains(text, "김민수") || !strings.Contains(text, "010-1234-5678") {
			t.Fatalf("message missing inquiry details: %q", text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestWebhookEmptyURLIsNoop(t *testing.T) {
	hook := NewWebhook("", zap.NewNop())
	// Must not panic or dial anything.
	hook.EstimateReceived(models.Estimate{ID: "est-1", Name: "x", Phone: "y"})
}

func TestWebhookSwallowsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, zap.NewNop())
	// Delivery failure stays internal.
	hook.EstimateReceived(models.Estimate{ID: "est-1", Name: "x", Phone: "y"})
}

func TestWebhookSwallowsDialErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	hook := NewWebhook(srv.URL, zap.NewNop())
	hook.EstimateReceived(models.Estimate{ID: "est-1", Name: "x", Phone: "y"})
}
