package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"meta-ads/internal/config/configs"
	"meta-ads/internal/core/domain"
	"meta-ads/internal/core/port"
)

// maxTries bounds the retry loop around each Graph request. Only
// transient failures are retried; auth and validation failures are
// permanent.
const maxTries = 4

// Client is the live implementation of the CampaignClient port. It
// talks to the Meta Marketing Graph API over HTTPS. Campaign objects
// are created under the act_-scoped account endpoints and always with
// status PAUSED.
type Client struct {
	creds   configs.Meta
	httpc   *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a live client bound to the given credential
// context. Credentials are validated lazily on first use, not here, so
// a process configured only for dry runs can still start.
func NewClient(creds configs.Meta, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		creds:   creds,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(creds.BaseURL, "/") + "/" + creds.APIVersion,
		logger:  logger,
	}
}

// graphError is the error payload the Graph API wraps failures in.
type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
	Subcode int    `json:"error_subcode"`
}

// idResponse is the minimal creation response carrying the new object id.
type idResponse struct {
	ID string `json:"id"`
}

// checkCredentials fails fast, before any I/O, when the credential
// context is incomplete.
func (c *Client) checkCredentials() error {
	if !c.creds.Complete() {
		return &port.AuthError{
			Message: "META_ACCESS_TOKEN, META_AD_ACCOUNT_ID and META_PAGE_ID must all be set for live calls",
		}
	}
	return nil
}

// postForm sends a form-encoded POST to the endpoint and decodes the
// JSON response into out. The access token is attached here so callers
// never handle it.
func (c *Client) postForm(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}
	params.Set("access_token", c.creds.AccessToken)
	return c.withRetry(ctx, endpoint, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint,
			strings.NewReader(params.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return c.send(req, endpoint)
	}, out)
}

// get sends a GET to the endpoint with the given query parameters and
// decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}
	params.Set("access_token", c.creds.AccessToken)
	return c.withRetry(ctx, endpoint, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		return c.send(req, endpoint)
	}, out)
}

// withRetry runs the request with bounded exponential backoff. Only
// RemoteUnavailableError is retried; everything else aborts the loop.
func (c *Client) withRetry(ctx context.Context, endpoint string, call func() ([]byte, error), out any) error {
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		b, err := call()
		if err != nil {
			var unavailable *port.RemoteUnavailableError
			if errors.As(err, &unavailable) {
				c.logger.Warn("graph request failed, retrying",
					slog.String("endpoint", endpoint), slog.Any("error", err))
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return b, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxTries))
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode graph response from %s: %w", endpoint, err)
	}
	return nil
}

// send executes the request and returns the response body, mapping
// failures onto the port error taxonomy.
func (c *Client) send(req *http.Request, endpoint string) ([]byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &port.RemoteUnavailableError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &port.RemoteUnavailableError{Cause: err}
	}
	if resp.StatusCode == http.StatusOK {
		return body, nil
	}
	return nil, c.mapError(resp.StatusCode, body, endpoint)
}

// mapError converts a non-200 Graph response into the port taxonomy:
// auth failures (HTTP 401/403 or OAuth code 190) are never retried,
// unknown objects become NotFoundError, remaining 4xx are treated as
// request validation failures and 5xx as transient.
func (c *Client) mapError(status int, body []byte, endpoint string) error {
	var wrapper struct {
		Error graphError `json:"error"`
	}
	_ = json.Unmarshal(body, &wrapper)
	ge := wrapper.Error
	msg := ge.Message
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden || ge.Code == 190:
		return &port.AuthError{Message: msg, Code: ge.Code}
	case status == http.StatusNotFound || (ge.Code == 100 && ge.Subcode == 33):
		return &port.NotFoundError{ObjectID: strings.SplitN(endpoint, "/", 2)[0]}
	case status >= 500:
		return &port.RemoteUnavailableError{Cause: fmt.Errorf("graph api %d from %s: %s", status, endpoint, msg)}
	default:
		return &domain.ValidationError{Field: endpoint, Reason: msg}
	}
}
