package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/reflecta/internal/common"
	"github.com/dmitrijs2005/reflecta/internal/logging"
)

// HTTPClient talks to the journaling backend over HTTP/JSON. No
// authentication header is attached: the backend identifies the user by
// the user_id carried in the request.
type HTTPClient struct {
	rc  *resty.Client
	log logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader(common.RequestIDHeader, uuid.NewString())
		return nil
	})

	return &HTTPClient{rc: rc, log: log.With("backend", baseURL)}
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, c.rc.R().SetBody(credentialsRequest{Email: email, Password: password}), http.MethodPost, "/signup", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, c.rc.R().SetBody(credentialsRequest{Email: email, Password: password}), http.MethodPost, "/login", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SaveJournal(ctx context.Context, userID int64, message string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, c.rc.R().SetBody(messageRequest{UserID: userID, Message: message}), http.MethodPost, "/journal", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FetchJournals(ctx context.Context, userID int64) (*JournalsResponse, error) {
	var out JournalsResponse
	req := c.rc.R().SetPathParam("userId", strconv.FormatInt(userID, 10))
	if err := c.do(ctx, req, http.MethodGet, "/journal/{userId}", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Chat(ctx context.Context, userID int64, message string) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.do(ctx, c.rc.R().SetBody(messageRequest{UserID: userID, Message: message}), http.MethodPost, "/chat", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping calls the backend health endpoint. Any non-2xx answer counts as
// unavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.rc.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: health check status %d", ErrUnavailable, resp.StatusCode())
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.rc.GetClient().CloseIdleConnections()
	return nil
}

// do executes req and decodes the body into out regardless of the HTTP
// status, mirroring how the backend reports failures in the payload.
func (c *HTTPClient) do(ctx context.Context, req *resty.Request, method, path string, out any) error {
	req.SetContext(ctx)
	if req.Body != nil {
		req.SetHeader("Content-Type", "application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Warn(ctx, "backend call failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}

	c.log.Debug(ctx, "backend call",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
		"request_id", resp.Request.Header.Get(common.RequestIDHeader),
		"duration", resp.Time(),
	)

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s (status %d): %w: %w", method, path, resp.StatusCode(), ErrMalformedResponse, err)
	}
	return nil
}
