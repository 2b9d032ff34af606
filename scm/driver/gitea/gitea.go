// Package gitea implements the hosting contract for Gitea servers,
// self-hosted or gitea.com, over the Gitea REST API v1.
package gitea

import (
	"github.com/proscenium-app/proscenium/httpclient"
	"github.com/proscenium-app/proscenium/scm"
)

// Endpoint is the well-known hosted Gitea address, used when no
// explicit server URL is configured.
const Endpoint = "https://gitea.com"

type driver struct {
	client *httpclient.Client
}

// New returns a GitService for the Gitea server at uri. The token is
// optional; when set it is sent as "Authorization: token <token>", the
// scheme Gitea expects.
func New(uri, token string) (scm.GitService, error) {
	client, err := httpclient.New(uri,
		httpclient.WithToken(token),
		httpclient.WithAuthScheme("token"),
	)
	if err != nil {
		return nil, err
	}
	return From(client), nil
}

// NewDefault returns an unauthenticated GitService for gitea.com.
func NewDefault() (scm.GitService, error) {
	return New(Endpoint, "")
}

// From returns a GitService using a preconfigured client.
func From(client *httpclient.Client) scm.GitService {
	return &driver{client: client}
}
