package pillars

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

// Client asks the external Four-Pillars relation engine for the
// interactions between a day's Ganzhi and the natal pillars. The core
// never computes pillar-vs-pillar relations itself.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a relation engine client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type relationRequest struct {
	DayStem         saju.Stem   `json:"dayStem"`
	DayBranch       saju.Branch `json:"dayBranch"`
	NatalDayStem    saju.Stem   `json:"natalDayStem"`
	NatalDayBranch  saju.Branch `json:"natalDayBranch"`
	NatalYearBranch saju.Branch `json:"natalYearBranch,omitempty"`
}

type relationResponse struct {
	Interactions []saju.BranchInteraction `json:"interactions"`
	Error        string                   `json:"error,omitempty"`
}

// Interactions posts the day and natal pillars to the relation engine.
func (c *Client) Interactions(ctx context.Context, day saju.Ganzhi, profile calendar.NatalProfile) ([]saju.BranchInteraction, error) {
	payload, err := json.Marshal(relationRequest{
		DayStem:         day.Stem,
		DayBranch:       day.Branch,
		NatalDayStem:    profile.DayMasterStem,
		NatalDayBranch:  profile.DayBranch,
		NatalYearBranch: profile.YearBranch,
	})
	if err != nil {
		return nil, fmt.Errorf("encode relation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/relations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build relation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("relation request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read relation response: %w", err)
	}
	var parsed relationResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode relation response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("relation engine error: %s", parsed.Error)
	}
	return parsed.Interactions, nil
}

var _ calendar.PillarSource = (*Client)(nil)
