package schema

// DefaultRevision marks the head of the repository's default branch
// when no branch, tag or explicit revision is pinned.
const DefaultRevision = "HEAD"

// Source locates the code an actor is built from: a hosted repository
// plus an optional pinned revision. At most one of Branch, Tag or Rev
// is expected; Revision resolves the precedence.
type Source struct {
	// Repo is the repository URL or "owner/name" identifier.
	Repo string `json:"repo"`

	// Branch pins the head of a branch.
	Branch string `json:"branch,omitempty"`

	// Tag pins a tag.
	Tag string `json:"tag,omitempty"`

	// Rev pins an exact commit sha. Takes precedence over Branch and
	// Tag: a sha is the only pin that yields a consistent view across
	// multiple metadata reads.
	Rev string `json:"rev,omitempty"`
}

// NewSource returns a Source for the given repository with no pinned
// revision.
func NewSource(repo string) Source {
	return Source{Repo: repo}
}

// Revision returns the revision to build: the exact sha when pinned,
// otherwise the tag, otherwise the branch, otherwise DefaultRevision.
func (s *Source) Revision() string {
	switch {
	case s.Rev != "":
		return s.Rev
	case s.Tag != "":
		return s.Tag
	case s.Branch != "":
		return s.Branch
	default:
		return DefaultRevision
	}
}
