package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/playgrounds/pkg/greeting"
	"github.com/diwise/playgrounds/pkg/optional"
	"github.com/diwise/playgrounds/pkg/problems"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("playgrounds/client")

type Client interface {
	Greet(ctx context.Context, name optional.Option[string], variant greeting.Variant) (string, error)
	DivisibleByThree(ctx context.Context, a, b int) (bool, error)
	Concatenate(ctx context.Context, a, b string) (optional.Option[string], error)
	Flatten(ctx context.Context, grid [][]int) ([]int, error)
}

type cbClient struct {
	baseURL    string
	token      string
	httpClient http.Client
}

type ClientOption func(*cbClient)

// WithToken adds a bearer token to every request
func WithToken(token string) ClientOption {
	return func(c *cbClient) {
		c.token = token
	}
}

func NewClient(baseURL string, options ...ClientOption) Client {
	c := &cbClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// Greet asks the server to introduce name using the given variant. An empty
// variant leaves the choice to the server.
func (c *cbClient) Greet(ctx context.Context, name optional.Option[string], variant greeting.Variant) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "greet")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	if n, ok := name.Get(); ok {
		params.Set("name", n)
	}
	if variant != "" {
		params.Set("variant", string(variant))
	}

	result := struct {
		Greeting string `json:"greeting"`
	}{}

	_, err = c.get(ctx, "/api/v0/greetings", params, &result)
	return result.Greeting, err
}

func (c *cbClient) DivisibleByThree(ctx context.Context, a, b int) (bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, "divisible-by-three")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	params.Set("a", strconv.Itoa(a))
	params.Set("b", strconv.Itoa(b))

	result := struct {
		Applies bool `json:"applies"`
	}{}

	_, err = c.get(ctx, "/api/v0/predicates/divisible-by-three", params, &result)
	return result.Applies, err
}

// Concatenate returns None when the strings are too long to be joined
func (c *cbClient) Concatenate(ctx context.Context, a, b string) (optional.Option[string], error) {
	var err error
	ctx, span := tracer.Start(ctx, "concatenate")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	params.Set("a", a)
	params.Set("b", b)

	result := struct {
		Value string `json:"value"`
	}{}

	found, err := c.get(ctx, "/api/v0/strings/concatenation", params, &result)
	if err != nil || !found {
		return optional.None[string](), err
	}

	return optional.Some(result.Value), nil
}

func (c *cbClient) Flatten(ctx context.Context, grid [][]int) ([]int, error) {
	var err error
	ctx, span := tracer.Start(ctx, "flatten")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(grid)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v0/grids/flattened", nil, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	flat := []int{}
	_, err = c.do(ctx, req, &flat)

	return flat, err
}

// get returns false without an error when the API responds with no content
func (c *cbClient) get(ctx context.Context, path string, params url.Values, result any) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return false, err
	}

	return c.do(ctx, req, result)
}

func (c *cbClient) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u = u + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

func (c *cbClient) do(ctx context.Context, req *http.Request, result any) (bool, error) {
	log := logging.GetFromContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}

	if resp.StatusCode >= http.StatusBadRequest {
		log.Debug("request failed", "url", req.URL.String(), "status", resp.StatusCode)
		return false, problems.NewErrorFromProblemReport(resp.StatusCode, respBody)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return false, fmt.Errorf("%w: %s", problems.ErrBadResponse, err.Error())
	}

	return true, nil
}
