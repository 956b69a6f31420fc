package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// promptTemplate is the instruction sent to the remote text-generation
// service. The response only has to contain a JSON object somewhere in it;
// the level parser tolerates surrounding prose and code fences.
const promptTemplate = `Design a 2D platformer level as JSON: {"platforms": [{"x": number, "y": number, "width": number, "type": string}]}.
Allowed types: standard, horizontal, vertical, timed, breakable. Movers may carry a numeric "range".
The y axis grows downward. Platforms are crossed left to right; keep gaps under %.0f units and upward steps under %.0f units.
Produce %d platforms at difficulty %.2f (0 is gentle, 1 is brutal). The first and last platforms must be standard.`

// generateRequest is the request body for the remote service.
type generateRequest struct {
	Prompt     string  `json:"prompt"`
	Difficulty float64 `json:"difficulty"`
	Platforms  int     `json:"platforms"`
	Seed       int64   `json:"seed"`
}

// Client requests level payloads from a remote text-generation service.
// The returned payload is an opaque text blob; the simulation side never
// awaits the request itself, the host does and hands over the result.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Generate requests one level payload for the given params.
func (c *Client) Generate(ctx context.Context, p Params) (string, error) {
	reqBody := generateRequest{
		Prompt:     fmt.Sprintf(promptTemplate, p.GapMax, p.JumpHeight, p.Count, p.Difficulty),
		Difficulty: p.Difficulty,
		Platforms:  p.Count,
		Seed:       p.Seed,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gen: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gen: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gen: requesting level: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gen: service returned %s", resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gen: reading response: %w", err)
	}

	c.logger.Debug("level generated remotely",
		"difficulty", p.Difficulty,
		"platforms", p.Count,
		"bytes", len(payload),
		"elapsed", time.Since(start))

	return string(payload), nil
}
