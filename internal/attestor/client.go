package attestor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
)

// ErrTransport wraps every network- or protocol-level failure talking to the
// attestor. Application-level rejections come back inside SubmitResult.
var ErrTransport = errors.New("attestor transport error")

const (
	submitPath = "/api/device/submit"
	healthPath = "/api/health"
)

// Client talks to one attestor over HTTP.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

// New returns a client for the attestor at base. A nil httpClient falls back
// to http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

// RateLimit caps outbound submissions to at most one per interval. Callers
// blocked on the limiter still honor context cancellation.
func (c *Client) RateLimit(interval time.Duration) {
	c.limiter = rate.NewLimiter(rate.Every(interval), 1)
}

// submitResponse is the attestor's reply body.
type submitResponse struct {
	Data struct {
		TxHash      string `json:"txHash"`
		BlockNumber uint64 `json:"blockNumber"`
	} `json:"data"`
	Error string `json:"error"`
}

// Submit posts the envelope. A reachable attestor that rejects the
// submission yields a result with Success=false and no Go error; only
// transport-level failures return ErrTransport.
func (c *Client) Submit(ctx context.Context, env domain.Envelope) (domain.SubmitResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.SubmitResult{}, fmt.Errorf("%w: %v", ErrTransport, err)
		}
	}

	body, err := json.Marshal(env)
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("%w: encode envelope: %v", ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+submitPath, bytes.NewReader(body))
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	var parsed submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.SubmitResult{}, fmt.Errorf("%w: decode response (%s): %v", ErrTransport, resp.Status, err)
	}

	if resp.StatusCode != http.StatusCreated {
		errText := parsed.Error
		if errText == "" {
			errText = resp.Status
		}
		return domain.SubmitResult{Success: false, Error: errText}, nil
	}
	return domain.SubmitResult{
		Success:     true,
		TxHash:      parsed.Data.TxHash,
		BlockNumber: parsed.Data.BlockNumber,
	}, nil
}

// Health reports whether the attestor answers its health endpoint with 200.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Compile-time assertion that Client implements domain.Transport.
var _ domain.Transport = (*Client)(nil)
