package reputation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultHTTPAttempts = 3
	defaultHTTPBackoff  = 200 * time.Millisecond
	defaultHTTPTimeout  = 5 * time.Second
	maxHTTPBackoff      = 2 * time.Second
)

// HTTPConfig configures an HTTPOracle.
type HTTPConfig struct {
	// BaseURL is the service root; the address is appended as the last path segment.
	BaseURL string
	// RPS caps outgoing requests per second. Zero disables limiting.
	RPS      int
	Attempts int
	Backoff  time.Duration
	Timeout  time.Duration
}

type verdictResponse struct {
	Address    string `json:"address"`
	Reputation string `json:"reputation"`
}

// HTTPOracle asks a remote reputation service about each address with GET {base}/{address}.
// The service answers {"reputation": "WHITE" | "BLACK" | "NEUTRAL"}; unknown addresses may yield 404.
type HTTPOracle struct {
	client  *resty.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewHTTPOracle constructs an HTTPOracle.
func NewHTTPOracle(cfg HTTPConfig, metrics Metrics, logger *zap.Logger) (*HTTPOracle, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("reputation url is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse reputation url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported reputation url scheme %q", base.Scheme)
	}
	if metrics == nil {
		return nil, errors.New("http oracle metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = defaultHTTPAttempts
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultHTTPBackoff
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(base.String(), "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar()).
		SetRetryCount(attempts - 1).
		SetRetryWaitTime(backoff).
		SetRetryMaxWaitTime(max(backoff, maxHTTPBackoff)).
		AddRetryCondition(retryable)

	return &HTTPOracle{
		client:  client,
		limiter: limiter,
		metrics: metrics,
	}, nil
}

// retryable retries transport failures, 429 and 5xx answers.
func retryable(resp *resty.Response, err error) bool {
	if resp != nil && resp.IsSuccess() {
		return false
	}
	if err != nil {
		return true
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Reputation queries the service. Transport failures, 429 and 5xx answers are retried with backoff.
func (o *HTTPOracle) Reputation(ctx context.Context, address string) (verdict model.Reputation, err error) {
	defer func() {
		o.metrics.ObserveVerdict(verdict, err)
	}()

	o.limiter.Take()
	if err = ctx.Err(); err != nil {
		return model.Neutral, err
	}

	body := &verdictResponse{}
	resp, err := o.client.R().
		SetContext(ctx).
		SetPathParam("address", address).
		SetResult(body).
		ForceContentType("application/json").
		Get("/{address}")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Neutral, ctxErr
		}
		return model.Neutral, fmt.Errorf("request reputation: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return model.Neutral, nil
	case !resp.IsSuccess():
		return model.Neutral, fmt.Errorf("reputation service returned %s", resp.Status())
	}
	if body.Address != "" && !strings.EqualFold(body.Address, address) {
		return model.Neutral, fmt.Errorf("reputation response for %q, want %q", body.Address, address)
	}
	return model.ParseReputation(body.Reputation)
}
