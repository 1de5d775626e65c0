package predict

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is used when no endpoint is configured.
	DefaultBaseURL = "http://localhost:7860"
	// EnvBaseURL names the environment variable selecting the endpoint.
	EnvBaseURL = "CHURN_API_URL"

	genericFailure = "Prediction failed"
)

// BaseURLFromEnv resolves the prediction endpoint from the environment,
// falling back to the documented localhost default.
func BaseURLFromEnv() string {
	if url := strings.TrimSpace(os.Getenv(EnvBaseURL)); url != "" {
		return url
	}
	return DefaultBaseURL
}

// Option customises the client configuration.
type Option func(*Client)

// WithBaseURL overrides the endpoint resolved from the environment.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			c.rest.SetBaseURL(trimmed)
		}
	}
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.rest = resty.NewWithClient(client).SetBaseURL(c.rest.BaseURL)
		}
	}
}

// Client performs the single request/response exchange with the prediction
// service. It configures no retries and no client-side timeout; one submission
// maps to exactly one outbound call that runs to completion.
type Client struct {
	rest *resty.Client
}

// New constructs a client against the environment-configured endpoint.
func New(options ...Option) *Client {
	c := &Client{rest: resty.New().SetBaseURL(BaseURLFromEnv())}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// BaseURL reports the resolved endpoint, mainly for startup logging.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

// Predict posts the payload to /predict and maps the exchange into a Result.
// Transport failures, non-2xx statuses, and malformed success bodies all
// collapse into StatusError with confidence forced to "0%"; a server-provided
// detail string wins over the generic message when present.
func (c *Client) Predict(ctx context.Context, payload Payload) Result {
	var (
		success predictionResponse
		failure errorResponse
	)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&success).
		SetError(&failure).
		Post("/predict")
	if err != nil {
		return errorResult("")
	}
	if !resp.IsSuccess() {
		return errorResult(failure.Detail)
	}
	if success.Prediction == "" || success.Confidence == "" {
		return errorResult("")
	}

	return Result{
		Status:     StatusSuccess,
		Message:    success.Prediction,
		Confidence: success.Confidence,
		Threshold:  success.Threshold,
	}
}

// Health probes the service's GET /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.rest.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("predict: health probe: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("predict: health probe returned %s", resp.Status())
	}
	return nil
}

func errorResult(detail string) Result {
	message := strings.TrimSpace(detail)
	if message == "" {
		message = genericFailure
	}
	return Result{Status: StatusError, Message: message, Confidence: "0%"}
}
