// Package httpclient provides the minimal HTTP transport shared by the
// SCM drivers: a GET executor bound to a base endpoint that injects the
// configured authorization header and hands back the raw response.
// Status-code interpretation belongs to the caller; this package only
// distinguishes transport failures from delivered responses.
package httpclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds each request when no custom http.Client is
	// supplied.
	DefaultTimeout = 30 * time.Second

	// DefaultAuthScheme is the Authorization scheme used when none is
	// configured.
	DefaultAuthScheme = "Bearer"

	defaultUserAgent = "proscenium"
)

// Client executes GET requests against a single base endpoint. It is
// immutable after construction and safe for concurrent use; the
// connection pool of the underlying http.Client is the only shared
// mutable state.
type Client struct {
	base      *url.URL
	token     string
	scheme    string
	userAgent string
	httpc     *http.Client
}

// Response is a delivered HTTP response: status, headers and the fully
// read body. Non-2xx statuses are still delivered as a Response, not an
// error.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// New creates a Client bound to the given base URL. The URL must be
// absolute (scheme and host). Options configure authentication and
// transport behavior.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:      base,
		scheme:    DefaultAuthScheme,
		userAgent: defaultUserAgent,
		httpc:     &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get performs a GET request for the given path (relative to the base
// URL, query string included) and returns the delivered response.
// Cancelling ctx aborts the in-flight request. The returned error
// covers request construction and transport failures only.
func (c *Client) Get(ctx context.Context, reqPath string) (*Response, error) {
	u, err := c.resolve(reqPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", reqPath, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", c.authorization())
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		Status: res.StatusCode,
		Header: res.Header,
		Body:   body,
	}, nil
}

// resolve joins the request path onto the base URL, preserving any base
// path prefix (e.g. a Gitea server mounted under /gitea).
func (c *Client) resolve(reqPath string) (*url.URL, error) {
	rel, err := url.Parse(reqPath)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", reqPath, err)
	}

	u := *c.base
	u.Path = path.Join(c.base.Path, rel.Path)
	u.RawQuery = rel.RawQuery
	return &u, nil
}

// authorization renders the Authorization header value. Basic tokens
// are supplied as "user:password" and encoded here; every other scheme
// passes the token through verbatim.
func (c *Client) authorization() string {
	if strings.EqualFold(c.scheme, "Basic") {
		encoded := base64.StdEncoding.EncodeToString([]byte(c.token))
		return "Basic " + encoded
	}
	return c.scheme + " " + c.token
}

// RetryAfter reports the provider's Retry-After hint, either as a
// delay in seconds or as an HTTP date. The second return value is
// false when the header is absent or unparseable.
func (r *Response) RetryAfter() (time.Duration, bool) {
	value := r.Header.Get("Retry-After")
	if value == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}

	if at, err := http.ParseTime(value); err == nil {
		d := time.Until(at)
		if d < 0 {
			d = 0
		}
		return d, true
	}

	return 0, false
}
