// Package store talks to the hosted Supabase project over its PostgREST
// API. Three card tables (cards, category_rewards, signup_bonuses) are
// written with key-based upserts; the auxiliary scraped_articles table is
// kept for the separate article-scraping concern.
package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonesrussell/cardcrawl/internal/logger"
)

// restPath is the PostgREST mount point on every Supabase project.
const restPath = "/rest/v1"

// DefaultRequestTimeout bounds each store call.
const DefaultRequestTimeout = 15 * time.Second

// Config holds the connection settings for the remote store.
type Config struct {
	// URL is the project URL, e.g. https://xyz.supabase.co
	URL string
	// Key is the service role key, sent as both apikey and bearer token.
	Key string
	// RequestTimeout bounds each request.
	RequestTimeout time.Duration
}

// APIError is a non-2xx response from the store.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store responded %d: %s", e.StatusCode, e.Body)
}

// Client is a thin PostgREST client.
type Client struct {
	http *resty.Client
	log  logger.Interface
}

// NewClient creates a store client for the given project.
func NewClient(cfg Config, log logger.Interface) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/") + restPath).
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.RequestTimeout)

	return &Client{http: httpClient, log: log}
}

// Select performs a filtered read on a table, decoding rows into dest.
func (c *Client) Select(ctx context.Context, table string, query url.Values, dest any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(dest).
		Get("/" + table)
	return c.check(resp, err, "select "+table)
}

// Insert posts one or more rows to a table. When dest is non-nil the
// created rows are returned into it.
func (c *Client) Insert(ctx context.Context, table string, payload, dest any) error {
	req := c.http.R().
		SetContext(ctx).
		SetBody(payload)
	if dest != nil {
		req.SetHeader("Prefer", "return=representation").SetResult(dest)
	}
	resp, err := req.Post("/" + table)
	return c.check(resp, err, "insert "+table)
}

// Update patches rows matching the query filters.
func (c *Client) Update(ctx context.Context, table string, query url.Values, payload any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetBody(payload).
		Patch("/" + table)
	return c.check(resp, err, "update "+table)
}

// Delete removes rows matching the query filters.
func (c *Client) Delete(ctx context.Context, table string, query url.Values) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Delete("/" + table)
	return c.check(resp, err, "delete "+table)
}

// check folds transport and HTTP-level failures into a single error.
func (c *Client) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: %w", op, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
		})
	}
	return nil
}

// eq formats a PostgREST equality filter value.
func eq(v string) string {
	return "eq." + v
}
