package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Facet selects which metadata facet a lookup requests.
type Facet string

const (
	// FacetContentDetails requests the duration payload.
	FacetContentDetails Facet = "contentDetails"
	// FacetSnippet requests the descriptive payload (publish time, channel).
	FacetSnippet Facet = "snippet"
)

// ContentDetails carries the compact duration notation (e.g. "PT1H2M30S").
type ContentDetails struct {
	Duration string `json:"duration"`
}

// Snippet carries the descriptive metadata of a video.
type Snippet struct {
	PublishedAt  string `json:"publishedAt"`
	ChannelTitle string `json:"channelTitle"`
	Title        string `json:"title"`
}

// Item is a single video entry in a list response.
type Item struct {
	ID             string          `json:"id"`
	ContentDetails *ContentDetails `json:"contentDetails,omitempty"`
	Snippet        *Snippet        `json:"snippet,omitempty"`
}

// ListResponse models the catalog's videos.list payload. An empty Items slice
// is the valid "not found" outcome, not an error.
type ListResponse struct {
	Items []Item `json:"items"`
}

// Lookup defines the catalog operations the enrichment engine uses.
type Lookup interface {
	VideoDetails(ctx context.Context, videoID string, facet Facet) (*ListResponse, error)
}

// Client provides access to the video catalog API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lookup = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a catalog client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("catalog api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("catalog base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// VideoDetails fetches one metadata facet for the given video ID.
func (c *Client) VideoDetails(ctx context.Context, videoID string, facet Facet) (*ListResponse, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, errors.New("video id must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/videos")
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	params := url.Values{}
	params.Set("part", string(facet))
	params.Set("id", videoID)
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &payload, nil
}
