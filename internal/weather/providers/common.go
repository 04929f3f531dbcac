package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// MaxRetries is the number of extra attempts after a transport error,
	// 429 or 5xx. Zero means exactly one request per lookup.
	MaxRetries int
	RetryWait  time.Duration

	// BreakerThreshold opens the circuit after that many consecutive
	// failures. Zero disables tripping.
	BreakerThreshold uint32
}

var (
	errCircuitOpen  = errors.New("circuit breaker open")
	errMalformed    = errors.New("malformed provider response")
	errProviderDown = errors.New("provider unavailable")
)

func newRestyClient(cfg HTTPClientConfig) *resty.Client {
	wait := cfg.RetryWait
	if wait <= 0 {
		wait = 500 * time.Millisecond
	}

	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || unhealthyStatus(r.StatusCode())
		})
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return c
}

func newCircuitBreaker(name string, threshold uint32) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return threshold > 0 && counts.ConsecutiveFailures >= threshold
		},
		// An unknown city says nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || (errors.Is(err, weather.ErrCityNotFound) && !errors.Is(err, errProviderDown))
		},
	})
}

// doRequest issues the request through the circuit breaker and returns the
// body of a 2xx response. Any other status maps to weather.ErrCityNotFound.
func doRequest(
	ctx context.Context,
	cb *gobreaker.CircuitBreaker,
	buildRequest func(ctx context.Context) *resty.Request,
	path string,
) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, err := buildRequest(ctx).Get(path)
		if err != nil {
			return nil, transportError(err)
		}
		if !resp.IsSuccess() {
			if unhealthyStatus(resp.StatusCode()) {
				return nil, fmt.Errorf("%w: %w: status %d", weather.ErrCityNotFound, errProviderDown, resp.StatusCode())
			}
			return nil, fmt.Errorf("%w: status %d", weather.ErrCityNotFound, resp.StatusCode())
		}
		return resp.Body(), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}

// unhealthyStatus reports statuses that reflect on the provider rather than
// the query. They are still shown to the user as city not found.
func unhealthyStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// transportError strips the request URL from err; it carries the API key.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
