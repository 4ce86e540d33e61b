// Package algolia implements the hosted-search provider on top of the
// Algolia search REST API used by DocSearch-powered documentation sites.
package algolia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/docsearch"
)

// DefaultSearchTimeout is the default timeout for a search request.
const DefaultSearchTimeout = 5 * time.Second

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4096

// Query identifies an index and the term to search for.
type Query struct {
	ApplicationID string
	APIKey        string
	IndexName     string
	Term          string
	Options       RequestOptions
}

// RequestOptions holds optional search parameters.
type RequestOptions struct {
	// FacetFilters narrows results, e.g. ["version:v3", ["lang:en", "lang:fr"]].
	FacetFilters []any
}

// Response is the subset of a search response docsearch consumes.
type Response struct {
	Hits   []docsearch.Hit `json:"hits"`
	NbHits int             `json:"nbHits"`
}

// Client queries Algolia indexes over HTTP.
type Client struct {
	client  *http.Client
	timeout time.Duration
	hostFn  func(applicationID string) string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultSearchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the HTTP client used for requests.
// Its Timeout is overridden by WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithHostFunc overrides how the API base URL is derived from an
// application ID.
func WithHostFunc(fn func(applicationID string) string) Option {
	return func(c *Client) {
		c.hostFn = fn
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout: DefaultSearchTimeout,
		hostFn:  DefaultHost,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{}
	}
	client := *c.client
	client.Timeout = c.timeout
	c.client = &client

	return c
}

// DefaultHost returns the read-optimized API host of an application.
func DefaultHost(applicationID string) string {
	return fmt.Sprintf("https://%s-dsn.algolia.net", applicationID)
}

// Search runs a single query. Transport failures, non-2xx responses, and
// undecodable bodies return ESEARCH.
func (c *Client) Search(ctx context.Context, q Query) (*Response, error) {
	params, err := encodeParams(q)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(map[string]string{"params": params})
	if err != nil {
		return nil, docsearch.Errorf(docsearch.ESEARCH, "failed to encode search request: %v", err)
	}

	endpoint := c.hostFn(q.ApplicationID) + "/1/indexes/" + url.PathEscape(q.IndexName) + "/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.ESEARCH, "invalid search request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-Application-Id", q.ApplicationID)
	req.Header.Set("X-Algolia-API-Key", q.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.ESEARCH, "search request to index %q failed: %v", q.IndexName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docsearch.Errorf(docsearch.ESEARCH, "index %q returned HTTP %d: %s",
			q.IndexName, resp.StatusCode, errorMessage(resp.Body))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, docsearch.Errorf(docsearch.ESEARCH, "invalid response from index %q: %v", q.IndexName, err)
	}
	return &out, nil
}

// encodeParams builds the URL-encoded params string of a query.
func encodeParams(q Query) (string, error) {
	v := url.Values{}
	v.Set("query", q.Term)
	if len(q.Options.FacetFilters) > 0 {
		filters, err := json.Marshal(q.Options.FacetFilters)
		if err != nil {
			return "", docsearch.Errorf(docsearch.ECONFIG, "invalid facet filters: %v", err)
		}
		v.Set("facetFilters", string(filters))
	}
	return v.Encode(), nil
}

// errorMessage extracts the message of an API error body, falling back to
// the raw body.
func errorMessage(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return string(bytes.TrimSpace(data))
}
