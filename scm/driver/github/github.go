// Package github implements the hosting contract for GitHub and GitHub
// Enterprise over the GitHub REST API v3.
package github

import (
	"github.com/proscenium-app/proscenium/httpclient"
	"github.com/proscenium-app/proscenium/scm"
)

// Endpoint is the hosted GitHub API address, used when no explicit
// server URL is configured. Enterprise installs pass their own API
// base, e.g. "https://github.example.com/api/v3".
const Endpoint = "https://api.github.com"

type driver struct {
	client *httpclient.Client
}

// New returns a GitService for the GitHub API at uri. The token is
// optional; when set it is sent as "Authorization: Bearer <token>".
func New(uri, token string) (scm.GitService, error) {
	client, err := httpclient.New(uri,
		httpclient.WithToken(token),
		httpclient.WithAuthScheme("Bearer"),
	)
	if err != nil {
		return nil, err
	}
	return From(client), nil
}

// NewDefault returns an unauthenticated GitService for github.com.
func NewDefault() (scm.GitService, error) {
	return New(Endpoint, "")
}

// From returns a GitService using a preconfigured client.
func From(client *httpclient.Client) scm.GitService {
	return &driver{client: client}
}
