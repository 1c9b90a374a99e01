// Package api implements the HTTP client wrapper for the shelter platform
// backends. It binds a base origin, carries the session cookie jar, injects
// the bearer token through a request transport, and decodes the backend's
// response envelope into typed values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shelterdesk/portal/internal/common"
	"github.com/shelterdesk/portal/internal/logging"
	"github.com/shelterdesk/portal/internal/models"
	"github.com/shelterdesk/portal/internal/session"
)

// Client is a request client bound to one backend origin. The cookie jar
// holds the HTTP-only refresh credential set by the auth endpoints; the
// transport injects the bearer token into every outgoing request.
type Client struct {
	baseURL   string
	http      *http.Client
	transport *tokenTransport
	log       logging.Logger
}

func NewClient(baseURL string, sess session.Reader, log logging.Logger, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	t := newTokenTransport(http.DefaultTransport, sess, log)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:       jar,
			Transport: t,
			Timeout:   timeout,
		},
		transport: t,
		log:       log,
	}, nil
}

// SetRefresher wires the auth service into the transport so expired tokens
// can be silently refreshed. Without one the transport passes 401 responses
// through untouched.
func (c *Client) SetRefresher(r Refresher) {
	c.transport.setRefresher(r)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Get issues a GET and unwraps the envelope into a T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, query, nil)
}

// Post issues a POST with a JSON body (nil for empty) and unwraps the
// envelope into a T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, nil, body)
}

// Delete issues a DELETE and unwraps the envelope into a T.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, nil)
}

func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env models.Envelope[T]
	if derr := json.NewDecoder(resp.Body).Decode(&env); derr != nil {
		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return zero, common.ErrUnauthorized
		case resp.StatusCode >= http.StatusInternalServerError:
			return zero, fmt.Errorf("%w: status %s", common.ErrUnavailable, resp.Status)
		default:
			return zero, fmt.Errorf("decoding response: %w", derr)
		}
	}

	value, err := env.Unwrap()
	if err != nil {
		var apiErr *models.APIError
		if errors.As(err, &apiErr) {
			apiErr.Status = resp.StatusCode
			if resp.StatusCode == http.StatusUnauthorized {
				return zero, fmt.Errorf("%w: %w", common.ErrUnauthorized, apiErr)
			}
		}
		return zero, err
	}
	return value, nil
}

// PageQuery builds the standard pagination query parameters.
func PageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	return q
}
