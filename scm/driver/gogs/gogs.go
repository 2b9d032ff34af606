// Package gogs implements the hosting contract for Gogs servers over
// the Gogs REST API v1.
//
// The Gogs API is a subset of its descendants': it has no tag listing
// and no git tree endpoint. Those operations return ErrUnsupported so
// the capability gap is explicit at call time instead of being guessed
// around.
package gogs

import (
	"github.com/proscenium-app/proscenium/httpclient"
	"github.com/proscenium-app/proscenium/scm"
)

// Endpoint is the public Gogs demo address, used when no explicit
// server URL is configured.
const Endpoint = "https://try.gogs.io"

type driver struct {
	client *httpclient.Client
}

// New returns a GitService for the Gogs server at uri. The token is
// optional; when set it is sent as "Authorization: token <token>".
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

// NewDefault returns an unauthenticated GitService for try.gogs.io.
func NewDefault() (scm.GitService, error) {
	return New(Endpoint, "")
}

// From returns a GitService using a preconfigured client.
func From(client *httpclient.Client) scm.GitService {
	return &driver{client: client}
}
