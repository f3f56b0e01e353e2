package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ytget/todo/internal/model"
)

// Endpoint defaults
const (
	DefaultEndpoint = "https://gunter.free.beeceptor.com/savepwadata"
	DefaultTimeout  = 30 * time.Second
)

// HTTP constants
const (
	ContentTypeJSON  = "application/json"
	HeaderAccept     = "Accept"
	HeaderContent    = "Content-Type"
	MaxResponseBytes = 64 * 1024
)

// Receipt is the server reply to a successful send
type Receipt struct {
	StatusCode int
	Body       string
}

// StatusError reports a reply outside the 2xx range
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Client posts task lists to a fixed endpoint
type Client struct {
	mu         sync.RWMutex
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for endpoint. A non-positive timeout uses DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the target URL
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// SetEndpoint changes the target URL. Empty resets to DefaultEndpoint.
func (c *Client) SetEndpoint(endpoint string) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c.mu.Lock()
	c.endpoint = endpoint
	c.mu.Unlock()
}

// SetTimeout changes the request timeout. Non-positive resets to DefaultTimeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.mu.Lock()
	c.httpClient = &http.Client{Timeout: timeout}
	c.mu.Unlock()
}

// Send posts tasks as a JSON array in the given order
func (c *Client) Send(ctx context.Context, tasks []*model.Task) (*Receipt, error) {
	if tasks == nil {
		tasks = []*model.Task{}
	}

	body, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}

	c.mu.RLock()
	endpoint, httpClient := c.endpoint, c.httpClient
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(HeaderAccept, ContentTypeJSON)
	req.Header.Set(HeaderContent, ContentTypeJSON)

	log.Printf("Sending %d tasks to %s", len(tasks), endpoint)

	resp, err := httpClient.Do(req)
	if err != nil {
		log.Printf("Send failed: %v", err)
		return nil, fmt.Errorf("send tasks: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	log.Printf("Send status: %d", resp.StatusCode)
	log.Printf("Send response: %s", respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return &Receipt{StatusCode: resp.StatusCode, Body: string(respBody)}, nil
}
