// Package assets relays uploaded images to the external image host.
package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client talks to an imgbb-style upload API: multipart POST in, JSON with a
// public URL out.
type Client struct {
	Endpoint string
	Key      string
	HTTP     *http.Client
}

func New(endpoint, key string) *Client {
	return &Client{
		Endpoint: endpoint,
		Key:      key,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload relays one image and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if c.Endpoint == "" {
		return "", errors.New("image host is not configured")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", err
	}
	if c.Key != "" {
		if err := mw.WriteField("key", c.Key); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode image host response: %w", err)
	}
	if out.Data.URL == "" {
		return "", errors.New("image host response missing url")
	}
	return out.Data.URL, nil
}
