// Package client is the admin-side counterpart of the media and review
// endpoints: it drives them over HTTP and keeps a reconciled local view of a
// bucket's display order.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs a bearer token obtained out of band.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", nil,
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

type Listing struct {
	Items   []models.MediaObject `json:"items"`
	Order   []string             `json:"order"`
	Version int64                `json:"version"`
}

func (c *Client) ListMedia(ctx context.Context, bucket string) (Listing, error) {
	var listing Listing
	query := url.Values{"bucket": {bucket}}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/media", query, nil, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

func (c *Client) SaveOrder(ctx context.Context, bucket string, order []string) error {
	body := map[string]any{"action": "saveOrder", "bucket": bucket, "order": order}
	return c.doJSON(ctx, http.MethodPost, "/api/v1/media", nil, body, nil)
}

type UploadResult struct {
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
}

func (c *Client) Upload(ctx context.Context, bucket, fileName string, data []byte, contentType string) (UploadResult, error) {
	body := map[string]any{
		"bucket":      bucket,
		"fileName":    fileName,
		"fileData":    base64.StdEncoding.EncodeToString(data),
		"contentType": contentType,
	}
	var result UploadResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/media", nil, body, &result); err != nil {
		return UploadResult{}, err
	}
	return result, nil
}

func (c *Client) Delete(ctx context.Context, bucket, path string) error {
	body := map[string]string{"bucket": bucket, "path": path}
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/media", nil, body, nil)
}

func (c *Client) PendingReviews(ctx context.Context) ([]models.Review, error) {
	var resp struct {
		Items []models.Review `json:"items"`
	}
	query := url.Values{"status": {"pending"}}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/reviews", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ApproveReview(ctx context.Context, id int64) error {
	return c.moderate(ctx, "approve", id)
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.moderate(ctx, "delete", id)
}

func (c *Client) moderate(ctx context.Context, action string, id int64) error {
	body := map[string]any{"action": action, "reviewId": id}
	return c.doJSON(ctx, http.MethodPost, "/api/v1/reviews", nil, body, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
