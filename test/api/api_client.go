/*
Copyright 2026 the Energy Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"
)

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// ClientInterface is the set of raw operations the scenarios need. Each call
// fails with a StatusError when expectedStatus is non-zero and differs from
// the status received.
type ClientInterface interface {
	Reset(ctx context.Context, expectedStatus int, opts ...RequestOption) (*Response, error)
	Login(ctx context.Context, credentials Credentials, expectedStatus int) (*Response, error)
	EnergyIDs(ctx context.Context, expectedStatus int) (*Response, error)
	Buy(ctx context.Context, energyID EnergyID, quantity int, expectedStatus int) (*Response, error)
	Orders(ctx context.Context, expectedStatus int) (*Response, error)
	Order(ctx context.Context, orderID OrderID, expectedStatus int) (*Response, error)
}

// Response is a fully read HTTP response.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return &FieldError{
			Field:    "body",
			Expected: "a JSON document",
			Actual:   "an empty body",
		}
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling %s %s response: %w", r.Method, r.Path, err)
	}

	return nil
}

// RequestOption modifies a single outgoing request.
type RequestOption func(*http.Request)

// WithoutAuth strips any Authorization header the client would send.
func WithoutAuth() RequestOption {
	return func(r *http.Request) {
		r.Header.Del("Authorization")
	}
}

// WithBearerToken authenticates a single request.
func WithBearerToken(token string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// WithHeader sets an arbitrary header, including malformed credentials.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient)

// WithLogger replaces the default ginkgo logger.
func WithLogger(logger logr.Logger) ClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *APIClient) {
		c.client = client
	}
}

// WithRunID tags every request so a whole run can be found in server logs.
func WithRunID(runID string) ClientOption {
	return func(c *APIClient) {
		c.runID = runID
	}
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	runID     string
	config    *TestConfig
	endpoints *Endpoints
	validator *SchemaValidator
	logger    logr.Logger
}

var _ ClientInterface = &APIClient{}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return NewAPIClientWithConfig(config)
}

func NewAPIClientWithConfig(config *TestConfig, opts ...ClientOption) (*APIClient, error) {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
		logger:    ginkgo.GinkgoLogr,
	}

	for _, opt := range opts {
		opt(c)
	}

	if config.ValidateSchema {
		validator, err := NewSchemaValidator()
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	return c, nil
}

func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Error(err, "request failed", "method", method, "path", path, "context", context, "duration", duration, "traceID", extractTraceID(traceParent))
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	c.logger.Info("UNEXPECTED STATUS", "method", method, "path", path, "expected", expectedStatus, "got", actualStatus, "body", body, "traceID", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace ID per request lets a failure be found in the server logs.
func generateTraceID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int, opts ...RequestOption) (*Response, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=energy-conformance")
	req.Header.Set("Accept", "application/json")

	if c.runID != "" {
		req.Header.Set("X-Request-Id", c.runID)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		c.logger.Info("request", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceparent", traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	response := &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		return response, &StatusError{
			Method:   method,
			Path:     path,
			Expected: expectedStatus,
			Actual:   resp.StatusCode,
			Body:     string(respBody),
			TraceID:  response.TraceID,
		}
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, method, path, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logError(method, path, duration, traceParent, err, "contract validation")
			return response, err
		}
	}

	return response, nil
}

// Reset issues the administrative data reset.
func (c *APIClient) Reset(ctx context.Context, expectedStatus int, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, c.endpoints.Reset(), nil, expectedStatus, opts...)
}

// Login submits credentials as a JSON body.
func (c *APIClient) Login(ctx context.Context, credentials Credentials, expectedStatus int) (*Response, error) {
	body, err := json.Marshal(credentials)
	if err != nil {
		return nil, fmt.Errorf("marshaling credentials: %w", err)
	}

	return c.doRequest(ctx, http.MethodPost, c.endpoints.Login(), bytes.NewReader(body), expectedStatus)
}

// EnergyIDs lists the purchasable energy ids.
func (c *APIClient) EnergyIDs(ctx context.Context, expectedStatus int) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, c.endpoints.ListEnergyIDs(), nil, expectedStatus)
}

// Buy purchases quantity units of an energy type.
func (c *APIClient) Buy(ctx context.Context, energyID EnergyID, quantity int, expectedStatus int) (*Response, error) {
	path, err := c.endpoints.Buy(energyID, quantity)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodPut, path, nil, expectedStatus)
}

// Orders lists every order.
func (c *APIClient) Orders(ctx context.Context, expectedStatus int) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, c.endpoints.ListOrders(), nil, expectedStatus)
}

// Order fetches a single order.
func (c *APIClient) Order(ctx context.Context, orderID OrderID, expectedStatus int) (*Response, error) {
	path, err := c.endpoints.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodGet, path, nil, expectedStatus)
}
