// Package opendata talks to a CKAN catalog: package descriptions, datastore
// records, and assembling both into typed datasets.
package opendata

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelmetric "go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-study-spaces/app/observability/metrics"
)

const defaultUserAgent = "go-study-spaces/1.0"

type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger

	timeout    time.Duration
	hasTimeout bool
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request. Zero means no timeout. The timeout is set
// on a copy, so a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.hasTimeout = true
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		userAgent: defaultUserAgent,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hasTimeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// FetchJSON GETs url and decodes the body into dst. Non-2xx responses and
// network failures return *FetchError, undecodable bodies *ParseError. There
// is no retry.
func (c *Client) FetchJSON(ctx context.Context, url string, dst any) error {
	ctx, span := otel.Tracer("OpenDataClient").Start(ctx, "FetchJSON", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(http.MethodGet),
		attribute.String("url.full", url),
	))
	defer span.End()

	start := time.Now()
	status := 0
	defer func() {
		m := metrics.Get()
		attrs := otelmetric.WithAttributes(attribute.Int("status", status))
		m.OpenDataRequestsTotal.Add(ctx, 1, attrs)
		m.OpenDataRequestDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		return &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode
	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		fe := &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "),
		}
		if fe.Status == "" {
			fe.Status = http.StatusText(resp.StatusCode)
		}
		c.logger.WarnContext(ctx, "Open data request failed",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, fe.Error())
		return fe
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid JSON")
		return &ParseError{URL: url, Err: err}
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
