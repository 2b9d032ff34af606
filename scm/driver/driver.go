// Package driver selects a concrete hosting driver at construction
// time. Callers receive an scm.GitService and never see the concrete
// type behind it; adding a provider means adding one driver package
// and one branch here.
package driver

import (
	"github.com/proscenium-app/proscenium/scm"
	"github.com/proscenium-app/proscenium/scm/driver/gitea"
	"github.com/proscenium-app/proscenium/scm/driver/github"
	"github.com/proscenium-app/proscenium/scm/driver/gogs"
)

// Kind identifies a hosting provider.
type Kind string

const (
	// KindGitea selects the Gitea driver.
	KindGitea Kind = "gitea"

	// KindGitHub selects the GitHub driver.
	KindGitHub Kind = "github"

	// KindGogs selects the Gogs driver.
	KindGogs Kind = "gogs"
)

// New constructs a GitService for the given provider kind. When uri is
// empty the provider's well-known hosted endpoint is used. The token
// is optional; each driver injects it with the scheme its provider
// expects. An unrecognized kind fails here, at configuration time,
// with scm.ErrUnknownKind.
func New(kind Kind, uri, token string) (scm.GitService, error) {
	switch kind {
	case KindGitea:
		if uri == "" {
			uri = gitea.Endpoint
		}
		return gitea.New(uri, token)
	case KindGitHub:
		if uri == "" {
			uri = github.Endpoint
		}
		return github.New(uri, token)
	case KindGogs:
		if uri == "" {
			uri = gogs.Endpoint
		}
		return gogs.New(uri, token)
	default:
		return nil, scm.WrapErrorf(scm.ErrUnknownKind, "%q", string(kind))
	}
}
