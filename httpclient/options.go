package httpclient

import "net/http"

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithToken configures the credential injected into the Authorization
// header. An empty token leaves requests anonymous.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithAuthScheme sets the Authorization scheme, e.g. "Bearer" for
// GitHub or "token" for Gitea and Gogs. For "Basic" the token is
// expected as "user:password" and is base64-encoded on the wire.
func WithAuthScheme(scheme string) Option {
	return func(c *Client) {
		if scheme != "" {
			c.scheme = scheme
		}
	}
}

// WithHTTPClient replaces the underlying http.Client, taking ownership
// of timeout and proxy policy.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}
