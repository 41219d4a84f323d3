// Package syncer mirrors the health profile and plan into the hosted
// table when a session exists. The mirror is best effort: local
// storage stays the source of truth and a failed remote write is
// logged and dropped. The next save ships the latest full snapshot,
// which is the retry.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned by Fetch when the user has no remote record
// yet.
var ErrNotFound = errors.New("remote record not found")

// Payload is the single logical record kept per user: the serialized
// HealthProfile and HealthPlan blobs.
type Payload struct {
	HealthProfile json.RawMessage `json:"healthProfile,omitempty"`
	HealthPlan    json.RawMessage `json:"healthPlan,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Remote is the capability the tracker needs: read one record, upsert
// one record. Tests substitute a deterministic fake.
type Remote interface {
	Fetch(ctx context.Context, userID string) (*Payload, error)
	Upsert(ctx context.Context, userID string, payload Payload) error
}

type Client struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
}

var _ Remote = (*Client)(nil)

func (c *Client) Fetch(ctx context.Context, userID string) (*Payload, error) {
	req, err := c.newRequest(ctx, http.MethodGet, userID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute fetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read fetch response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch failed with status %d", resp.StatusCode)
	}
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode remote record: %w", err)
	}
	return &payload, nil
}

// Upsert writes the whole record, creating it when absent.
func (c *Client) Upsert(ctx context.Context, userID string, payload Payload) error {
	if payload.UpdatedAt.IsZero() {
		payload.UpdatedAt = time.Now()
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal remote record: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, userID, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("execute upsert request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upsert failed with status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, userID string, body io.Reader) (*http.Request, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("sync base url is not configured")
	}
	req, err := http.NewRequestWithContext(ctx, method, baseURL+"/v1/wellness/"+userID, body)
	if err != nil {
		return nil, fmt.Errorf("create sync request: %w", err)
	}
	if strings.TrimSpace(c.Token) != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return req, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
