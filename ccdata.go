// Package ccdata is a typed client for the CCData market-data REST API.
//
// A Client holds the API key and sends each call as a single GET. Responses
// are returned in their full vendor envelope (schemas.DataResponse or
// schemas.MinResponse) so that vendor errors and rate-limit counters stay
// visible. The vendor writes absent objects as {}; those slots decode to an
// absent schemas.Optional.
package ccdata

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"resty.dev/v3"

	"ccdata/internal/config"
	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
)

// Unit is the interval between successive data points of a time-bucketed
// endpoint. Other endpoints ignore it.
type Unit = endpoint.Unit

const (
	Day    = endpoint.Day
	Hour   = endpoint.Hour
	Minute = endpoint.Minute
	NA     = endpoint.NA
)

// Client calls the CCData API. It is safe for concurrent use.
type Client struct {
	mu     sync.RWMutex
	apiKey string

	exec *fetcher.Executor
}

type options struct {
	httpClient *resty.Client
	bases      endpoint.BaseURLs
	timeout    time.Duration
	log        *logrus.Entry
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sends requests through c instead of a client built by New.
// WithTimeout has no effect on a supplied client.
func WithHTTPClient(c *resty.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithBaseURLs points the Min-API and Data-API families at other hosts.
// An empty string keeps the vendor default for that family.
func WithBaseURLs(minAPI, dataAPI string) Option {
	return func(o *options) {
		o.bases = endpoint.BaseURLs{MinAPI: minAPI, DataAPI: dataAPI}
	}
}

// WithTimeout bounds each request. The default is 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the entry request logs are written to. Requests log at
// debug level and never include the API key.
func WithLogger(log *logrus.Entry) Option {
	return func(o *options) {
		o.log = log
	}
}

// New creates a Client without an API key. Every call fails with a
// configuration error until UpdateAPIKey is called.
func New(opts ...Option) *Client {
	o := options{
		bases:   endpoint.DefaultBaseURLs(),
		timeout: fetcher.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient == nil {
		o.httpClient = fetcher.NewHTTPClient(o.timeout)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger().WithField("component", "ccdata")
	}

	return &Client{
		exec: fetcher.NewExecutor(o.httpClient, o.bases, o.log),
	}
}

// NewWithAPIKey creates a Client that authenticates with key.
func NewWithAPIKey(key string, opts ...Option) *Client {
	c := New(opts...)
	c.UpdateAPIKey(key)
	return c
}

// NewFromEnv creates a Client from CCDATA_API_KEY and the other CCDATA_*
// settings, read from the environment, a .env file in the working directory
// or a config.yaml. opts are applied after the loaded settings.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "ccdata: load configuration")
	}

	bases := cfg.BaseURLs()
	base := []Option{
		WithBaseURLs(bases.MinAPI, bases.DataAPI),
		WithTimeout(cfg.Timeout),
	}
	return NewWithAPIKey(cfg.APIKey, append(base, opts...)...), nil
}

// APIKey returns the current key, or ErrNoAPIKey if none is set.
func (c *Client) APIKey() (string, error) {
	key := c.key()
	if key == "" {
		return "", ErrNoAPIKey
	}
	return key, nil
}

// UpdateAPIKey replaces the key. Calls already in flight keep the key they
// started with.
func (c *Client) UpdateAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

func (c *Client) key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// call captures the key once and hands the request to the executor.
func call[T any](ctx context.Context, c *Client, req fetcher.Request) (*T, error) {
	return fetcher.Execute[T](ctx, c.exec, c.key(), req)
}

// Int returns a pointer to v, for optional limit arguments.
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer to v, for optional timestamp arguments.
func Int64(v int64) *int64 {
	return &v
}
