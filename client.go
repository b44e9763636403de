package jejak

import (
	"context"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the fixed endpoint of the Customer.io Behavioral
// Tracking API.
const DefaultBaseURL = "https://track.customer.io/api/v1/"

// Client talks to the Customer.io Behavioral Tracking API. It holds the
// immutable site ID / API key pair and is safe for concurrent use; all
// connection management belongs to the underlying *http.Client.
type Client struct {
	siteID     string
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	provider   CustomerProvider
	logger     Logger
	metrics    *MetricsCollector
	debug      *DebugConfig

	validationError error
}

// New constructs a Client for the given site ID and API key using the
// provided functional options. A best effort validation is performed; call
// IsValid / ValidationError for errors.
func New(siteID, apiKey string, options ...Option) *Client {
	client := &Client{
		siteID:  siteID,
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "jejak/" + Version,
		provider:  nil,
		logger:    nil,
		metrics:   nil,
		debug:     DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// Identify creates or updates the customer record with the given
// identifier. The attribute map is passed through opaquely as the JSON
// body. An empty customerID is a silent no-op.
func (c *Client) Identify(ctx context.Context, customerID string, attributes map[string]interface{}) error {
	return c.send(ctx, http.MethodPut, customerPath, customerID, attributes)
}

// IdentifyCurrent identifies the customer resolved by the configured
// CustomerProvider. Returns ErrNoCustomerProvider when none is configured.
func (c *Client) IdentifyCurrent(ctx context.Context) error {
	if c.provider == nil {
		return ErrNoCustomerProvider
	}
	return c.Identify(ctx, c.provider.CustomerID(), c.provider.CustomerDetails())
}

// Delete removes the customer record with the given identifier. An empty
// customerID is a silent no-op, same as the other operations.
func (c *Client) Delete(ctx context.Context, customerID string) error {
	return c.send(ctx, http.MethodDelete, customerPath, customerID, nil)
}

// DeleteCurrent deletes the customer resolved by the configured
// CustomerProvider. Returns ErrNoCustomerProvider when none is configured.
func (c *Client) DeleteCurrent(ctx context.Context) error {
	if c.provider == nil {
		return ErrNoCustomerProvider
	}
	return c.Delete(ctx, c.provider.CustomerID())
}

// Track records a named behavioral event for the given customer. Optional
// data and timestamp travel in opts; see TrackOptions. An empty customerID
// is a silent no-op; an empty event name returns ErrEventNameEmpty.
func (c *Client) Track(ctx context.Context, customerID, eventName string, opts TrackOptions) error {
	if customerID == "" {
		c.recordSkip(http.MethodPost, eventsPath)
		return nil
	}
	if eventName == "" {
		return ErrEventNameEmpty
	}
	return c.send(ctx, http.MethodPost, eventsPath, customerID, newEvent(eventName, opts))
}

// TrackCurrent tracks an event for the customer resolved by the configured
// CustomerProvider. Returns ErrNoCustomerProvider when none is configured.
func (c *Client) TrackCurrent(ctx context.Context, eventName string, opts TrackOptions) error {
	if c.provider == nil {
		return ErrNoCustomerProvider
	}
	return c.Track(ctx, c.provider.CustomerID(), eventName, opts)
}

// send is the shared dispatch path: no-op on empty customer ID, build the
// request, execute it, inspect the status. Transport faults are returned
// unmodified; a non-200 status becomes *APIError. No retries.
func (c *Client) send(ctx context.Context, method, pathTemplate, customerID string, body interface{}) error {
	if customerID == "" {
		c.recordSkip(method, pathTemplate)
		return nil
	}

	var requestID string
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	req, err := c.newRequest(ctx, method, resolvePath(pathTemplate, customerID), body)
	if err != nil {
		return err
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Sending request", "requestID", requestID, "method", method, "url", req.URL.String())
	}

	if c.metrics != nil {
		c.metrics.RecordRequestStart(method, pathTemplate)
	}
	start := time.Now()

	resp, err := c.httpClient.Do(req)

	duration := time.Since(start)
	if c.metrics != nil {
		c.metrics.RecordRequestEnd(method, pathTemplate)
	}

	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordRequest(method, pathTemplate, 0, duration)
			c.metrics.RecordError("Transport", method, pathTemplate)
		}
		if c.debug != nil && c.debug.Enabled && c.logger != nil {
			c.logger.Warn("Transport fault", "requestID", requestID, "method", method, "error", err.Error())
		}
		return err
	}

	// Drain so the transport can reuse the connection; the body itself is
	// never interpreted.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordRequest(method, pathTemplate, resp.StatusCode, duration)
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debug("Received response", "requestID", requestID, "method", method, "status", resp.StatusCode, "duration", duration)
	}

	if resp.StatusCode != http.StatusOK {
		if c.metrics != nil {
			c.metrics.RecordError("API", method, pathTemplate)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Endpoint:   pathTemplate,
		}
	}

	return nil
}

func (c *Client) recordSkip(method, pathTemplate string) {
	if c.metrics != nil {
		c.metrics.RecordAnonymousSkip(method, pathTemplate)
	}
	if c.debug != nil && c.debug.Enabled && c.logger != nil {
		c.logger.Debug("Skipping request for empty customer ID", "method", method, "endpoint", pathTemplate)
	}
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}
