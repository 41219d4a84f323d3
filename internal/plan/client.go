package plan

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

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

const defaultBaseURL = "https://coach.vitality.app"

// ErrRateLimited marks a 429 from the coach endpoint so callers can
// show a distinct message.
var ErrRateLimited = errors.New("plan endpoint rate limited")

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// GeneratePlan posts the health profile to the coach endpoint and
// returns the validated plan. Non-2xx responses and malformed bodies
// are recoverable errors; no state is written here.
func (c *Client) GeneratePlan(ctx context.Context, profile model.HealthProfile) (*model.HealthPlan, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal health profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/plan", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create plan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(c.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute plan request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read plan response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("plan request failed with status %d", resp.StatusCode)
	}

	var plan model.HealthPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("decode plan response: %w", err)
	}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func validatePlan(p model.HealthPlan) error {
	if p.DailyCalories <= 0 {
		return fmt.Errorf("plan response missing daily calories")
	}
	if len(p.WeeklyPlan) != 7 {
		return fmt.Errorf("plan response has %d days, expected 7", len(p.WeeklyPlan))
	}
	for i, d := range p.WeeklyPlan {
		if strings.TrimSpace(d.Day) == "" {
			return fmt.Errorf("plan day %d has no name", i+1)
		}
	}
	return nil
}
