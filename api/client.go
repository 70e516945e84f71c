package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"

	"github.com/spellforge/client-go/errors"
	"github.com/spellforge/client-go/logger"
	"github.com/spellforge/client-go/resilience"
	"github.com/spellforge/client-go/version"
)

const instrumentationName = "github.com/spellforge/client-go/api"

// Client talks to the backend's REST endpoints.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
	tracer     trace.Tracer
}

// New creates a REST client. A nil log discards output.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, errors.Internal(err)
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport},
		log:        log.WithComponent("api"),
		tracer:     otel.Tracer(instrumentationName),
	}, nil
}

// ListCards fetches one page of the card collection. Zero page or
// pageSize lets the backend pick its defaults.
func (c *Client) ListCards(ctx context.Context, page, pageSize int) (*CardList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	var out CardList
	if err := c.call(ctx, http.MethodGet, "/api/cards", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCard fetches a single card.
func (c *Client) GetCard(ctx context.Context, id string) (*Card, error) {
	if id == "" {
		return nil, errors.InvalidInput("card id is required")
	}
	var out Card
	if err := c.call(ctx, http.MethodGet, "/api/cards/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestGeneration queues a generation. Progress arrives over the
// event stream, keyed by the returned ID.
func (c *Client) RequestGeneration(ctx context.Context, req GenerationRequest) (*GenerationAccepted, error) {
	if req.Kind != "llm" && req.Kind != "image" {
		return nil, errors.InvalidInput("generation kind must be llm or image")
	}
	if req.Prompt == "" {
		return nil, errors.InvalidInput("generation prompt is required")
	}
	var out GenerationAccepted
	if err := c.call(ctx, http.MethodPost, "/api/generations", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Queue fetches the current queue. The stream's queue.update events
// supersede this between calls.
func (c *Client) Queue(ctx context.Context) (*QueueItems, error) {
	var out QueueItems
	if err := c.call(ctx, http.MethodGet, "/api/queue", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// call runs one logical request with tracing and retry.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
	defer span.End()

	start := time.Now()
	err := resilience.RetryFunc(ctx, *c.cfg.Retry, func() error {
		return c.doOnce(ctx, method, path, query, body, out)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		c.log.WithError(err).Warn("request failed", logger.Fields(
			logger.FieldOperation, method+" "+path,
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
		return err
	}
	c.log.Debug("request completed", logger.Fields(
		logger.FieldOperation, method+" "+path,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return nil
}

// doOnce executes a single attempt.
func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.InvalidInput(fmt.Sprintf("encode request body: %v", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return errors.InvalidInput(fmt.Sprintf("create request: %v", err))
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Timeout(method+" "+path, err)
		}
		return errors.ConnectionFailed(c.cfg.BaseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.ConnectionFailed(c.cfg.BaseURL, fmt.Errorf("read response body: %w", err))
	}

	if classErr := classifyStatus(resp.StatusCode, respBody); classErr != nil {
		return classErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.New(errors.ErrCodeInternal, "malformed response body").WithCause(err)
		}
	}
	return nil
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classifyStatus maps a non-2xx response into the error taxonomy.
func classifyStatus(status int, body []byte) *errors.AppError {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := fmt.Sprintf("backend returned status %d", status)
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}

	var appErr *errors.AppError
	switch {
	case status == http.StatusNotFound:
		appErr = errors.New(errors.ErrCodeNotFound, msg)
	case status == http.StatusRequestTimeout:
		appErr = errors.New(errors.ErrCodeTimeout, msg)
	case status == http.StatusTooManyRequests:
		appErr = errors.New(errors.ErrCodeRateLimited, msg)
	case status >= 500:
		appErr = errors.New(errors.ErrCodeServiceUnavailable, msg)
	default:
		appErr = errors.New(errors.ErrCodeInvalidInput, msg)
	}
	appErr.Status = status
	return appErr
}
