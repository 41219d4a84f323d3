// Package vision calls the food-image analysis endpoint. The caller
// sends a base64 photo and gets back detected foods with estimated
// nutrition; errors are classified by status so the UI can show a
// distinct message per failure mode.
package vision

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

const defaultBaseURL = "https://vision.vitality.app"

var (
	// ErrRateLimited marks a 429: too many analyses in a row.
	ErrRateLimited = errors.New("image analysis rate limited")
	// ErrQuotaExceeded marks a 402: the analysis quota is used up.
	ErrQuotaExceeded = errors.New("image analysis quota exceeded")
	// ErrBadImage marks a 400: the payload was not a usable photo.
	ErrBadImage = errors.New("image could not be analyzed")
)

type DetectedFood struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
}

type Analysis struct {
	Foods         []DetectedFood `json:"foods"`
	TotalCalories int            `json:"totalCalories"`
	TotalProteinG float64        `json:"totalProtein"`
	TotalCarbsG   float64        `json:"totalCarbs"`
	TotalFatG     float64        `json:"totalFat"`
	Confidence    float64        `json:"confidence"`
	Notes         string         `json:"notes,omitempty"`
	AIInsights    string         `json:"aiInsights,omitempty"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) AnalyzeImage(ctx context.Context, imageBase64 string) (*Analysis, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return nil, fmt.Errorf("image payload is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 45 * time.Second}
	}

	payload, err := json.Marshal(map[string]string{"image": imageBase64})
	if err != nil {
		return nil, fmt.Errorf("marshal image payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(c.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute analysis request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrQuotaExceeded
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrBadImage
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("analysis request failed with status %d", resp.StatusCode)
	}

	var analysis Analysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if len(analysis.Foods) == 0 {
		return nil, fmt.Errorf("no foods detected in image")
	}
	return &analysis, nil
}
