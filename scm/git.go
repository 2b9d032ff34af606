// Package scm defines the normalized domain model and the read-only
// hosting contract for source control providers. Concrete drivers live
// under scm/driver and translate these operations into provider REST
// calls; callers depend only on the types in this package.
package scm

import "context"

// Reference is a named pointer (branch or tag) to a commit.
// References are immutable snapshots constructed by a driver from a
// provider response and are never mutated afterwards.
type Reference struct {
	// Name is the short ref name, e.g. "main" or "v1.2.0".
	Name string

	// Path is the fully qualified ref path, e.g. "refs/heads/main".
	Path string

	// Sha is the hex commit id the ref points at. Never empty.
	Sha string
}

// Signature identifies the author or committer of a commit.
type Signature struct {
	Name  string
	Email string

	// Date is the commit timestamp normalized to RFC3339 regardless of
	// the provider's native format.
	Date string

	// Login and Avatar are set only when the provider can resolve the
	// identity to a registered account. They are nil, not empty
	// strings, when absent.
	Login  *string
	Avatar *string
}

// Commit is a repository commit.
type Commit struct {
	Sha       string
	Message   string
	Author    Signature
	Committer Signature

	// Link is the provider's web URL for the commit, intended for
	// humans rather than API consumption.
	Link string
}

// TreeEntry is a single file or directory entry in a Tree.
type TreeEntry struct {
	Path string
	Mode string
	Type string

	// Size is set for blob entries only; directories carry no size.
	Size *uint64

	Sha string
	URL string
}

// Tree is the listing of entries at a given revision.
type Tree struct {
	Sha     string
	URL     string
	Entries []TreeEntry

	// Truncated reports that the provider capped the listing. The
	// caller must re-request (without recursion, or page by page) to
	// obtain the full result. Drivers preserve the provider's own
	// truncation signal and never default it away.
	Truncated bool
}

// GitService is the read-only hosting contract every driver implements.
//
// The repo argument is an "owner/name" identifier. Lookups for a single
// entity (FindCommit, GetTree) return a nil value without an error when
// the provider reports the entity as missing; listing calls return an
// empty slice for a repository with zero matching refs. All other
// failures are reported through the error taxonomy in this package.
//
// Implementations are stateless beyond their configured HTTP client and
// are safe for concurrent use. No call performs caching or retries.
type GitService interface {
	// ListBranches returns the branch references of the repository.
	ListBranches(ctx context.Context, repo string, opts ListOptions) ([]*Reference, error)

	// ListTags returns the tag references of the repository.
	ListTags(ctx context.Context, repo string, opts ListOptions) ([]*Reference, error)

	// FindCommit looks up a commit by ref name or sha. It returns nil
	// without an error when the commit does not exist.
	FindCommit(ctx context.Context, repo, ref string) (*Commit, error)

	// GetTree returns the tree identified by sha or ref name,
	// optionally recursing into subdirectories. It returns nil without
	// an error when the tree does not exist.
	GetTree(ctx context.Context, repo, treeSha string, recursive bool) (*Tree, error)
}
