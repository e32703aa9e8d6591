// Package api is the HTTP data-fetch port. Every call is single-shot: no
// retry, no backoff, no caching. Callers absorb failures at their own
// boundary (the preloader leaves entries absent, the chat session appends a
// fallback message), so nothing here ever escalates.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jask/paintflow/internal/chat"
	"github.com/jask/paintflow/internal/scenario"
)

// Client talks to the PaintFlow backend.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// Scenarios lists the simulatable scenarios for display.
func (c *Client) Scenarios(ctx context.Context) ([]scenario.Scenario, error) {
	var out []scenario.Scenario
	if err := c.getJSON(ctx, "/api/simulate/scenarios", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScenarioDataset fetches the precomputed dataset for one scenario id.
func (c *Client) ScenarioDataset(ctx context.Context, id string) (scenario.Dataset, error) {
	var out scenario.Dataset
	if err := c.getJSON(ctx, "/api/simulate/scenario/"+url.PathEscape(id)+"/data", &out); err != nil {
		return nil, err
	}
	// The backend reports an unknown scenario as 200 with an error body.
	if msg, ok := out["error"].(string); ok {
		return nil, fmt.Errorf("scenario %s: %s", id, msg)
	}
	return out, nil
}

type chatRequest struct {
	Message string      `json:"message"`
	Context chatContext `json:"context"`
}

type chatContext struct {
	ScenarioID string `json:"scenario_id"`
}

// Chat sends one copilot exchange with the active scenario id as context.
func (c *Client) Chat(ctx context.Context, message, scenarioID string) (chat.Reply, error) {
	req := chatRequest{Message: message, Context: chatContext{ScenarioID: scenarioID}}
	var out chat.Reply
	if err := c.postJSON(ctx, "/api/copilot/chat", req, &out); err != nil {
		return chat.Reply{}, err
	}
	return out, nil
}

// DashboardSummary fetches the admin KPI block.
func (c *Client) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	var out DashboardSummary
	if err := c.getJSON(ctx, "/api/admin/dashboard/summary", &out); err != nil {
		return DashboardSummary{}, err
	}
	return out, nil
}

// InventoryMap fetches the warehouse network status rows.
func (c *Client) InventoryMap(ctx context.Context) ([]WarehouseStatus, error) {
	var out []WarehouseStatus
	if err := c.getJSON(ctx, "/api/admin/inventory/map", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendedTransfers fetches pending and in-flight transfers.
func (c *Client) RecommendedTransfers(ctx context.Context) ([]TransferRecommendation, error) {
	var out []TransferRecommendation
	if err := c.getJSON(ctx, "/api/admin/transfers/recommended", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopSKUs fetches the top sellers by revenue.
func (c *Client) TopSKUs(ctx context.Context, limit int) ([]TopSKU, error) {
	var out []TopSKU
	if err := c.getJSON(ctx, "/api/admin/top-skus?limit="+strconv.Itoa(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveTransfer approves one recommended transfer.
func (c *Client) ApproveTransfer(ctx context.Context, id int) error {
	path := "/api/admin/transfers/" + strconv.Itoa(id) + "/approve"
	return c.postJSON(ctx, path, struct{}{}, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}
