// Package dctw talks to the DCTW listing API and maps its records into
// domain entities.
package dctw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nyankohost/dctw/internal/logger"
	"github.com/nyankohost/dctw/internal/utils"
)

const (
	// DefaultBaseURL is the public DCTW API root.
	DefaultBaseURL = "https://dctw.nyanko.host/api/v1"

	defaultUserAgent = "dctw-go/0.1.0"
	defaultTimeout   = 30 * time.Second
)

// Client fetches bot/server/template listings. Failures are wrapped and
// propagated; the client never retries and never fabricates fallback data.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	log       logger.Logger
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithAPIKey sends the key as an x-api-key header on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(log logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetBots fetches every bot listing.
func (c *Client) GetBots(ctx context.Context) ([]BotRecord, error) {
	c.log.Debug("fetching bots from dctw api")
	var out []BotRecord
	if err := c.getList(ctx, "/bots", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetServers fetches every server listing.
func (c *Client) GetServers(ctx context.Context) ([]ServerRecord, error) {
	c.log.Debug("fetching servers from dctw api")
	var out []ServerRecord
	if err := c.getList(ctx, "/servers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTemplates fetches every template listing.
func (c *Client) GetTemplates(ctx context.Context) ([]TemplateRecord, error) {
	c.log.Debug("fetching templates from dctw api")
	var out []TemplateRecord
	if err := c.getList(ctx, "/templates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getList(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}
	if err := decodeList(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// decodeList accepts either a bare JSON array or the {"data":[...], ...}
// envelope some endpoints use. An envelope without a data field decodes to
// an empty list.
func decodeList(body []byte, out any) error {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' {
		return json.Unmarshal(body, out)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
