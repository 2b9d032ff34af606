package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/proscenium-app/proscenium/scm"
	"github.com/proscenium-app/proscenium/scm/driver/internal/normalize"
)

func (d *driver) ListBranches(ctx context.Context, repo string, opts scm.ListOptions) ([]*scm.Reference, error) {
	op := "github: list branches"
	path := fmt.Sprintf("/repos/%s/branches%s", repo, encodeListOptions(opts))

	res, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, scm.TransportFailure(op, repo, err)
	}
	if res.Status == http.StatusNotFound {
		return []*scm.Reference{}, nil
	}
	if res.Status/100 != 2 {
		return nil, scm.StatusError(op, repo, res)
	}

	out := []*branch{}
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, &scm.DecodeError{Op: op, Repo: repo, Err: err}
	}
	return convertBranchList(out), nil
}

func (d *driver) ListTags(ctx context.Context, repo string, opts scm.ListOptions) ([]*scm.Reference, error) {
	op := "github: list tags"
	path := fmt.Sprintf("/repos/%s/tags%s", repo, encodeListOptions(opts))

	res, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, scm.TransportFailure(op, repo, err)
	}
	if res.Status == http.StatusNotFound {
		return []*scm.Reference{}, nil
	}
	if res.Status/100 != 2 {
		return nil, scm.StatusError(op, repo, res)
	}

	out := []*tag{}
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, &scm.DecodeError{Op: op, Repo: repo, Err: err}
	}
	return convertTagList(out), nil
}

func (d *driver) FindCommit(ctx context.Context, repo, ref string) (*scm.Commit, error) {
	op := "github: find commit"
	path := fmt.Sprintf("/repos/%s/commits/%s", repo, ref)

	res, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, scm.TransportFailure(op, repo, err)
	}
	// GitHub answers 422 for a ref that is not a valid object name,
	// which is still a "commit does not exist" case for the caller.
	if res.Status == http.StatusNotFound || res.Status == http.StatusUnprocessableEntity {
		return nil, nil
	}
	if res.Status/100 != 2 {
		return nil, scm.StatusError(op, repo, res)
	}

	out := new(commitDetail)
	if err := json.Unmarshal(res.Body, out); err != nil {
		return nil, &scm.DecodeError{Op: op, Repo: repo, Err: err}
	}
	return convertCommit(out), nil
}

func (d *driver) GetTree(ctx context.Context, repo, treeSha string, recursive bool) (*scm.Tree, error) {
	op := "github: get tree"
	path := fmt.Sprintf("/repos/%s/git/trees/%s", repo, treeSha)
	if recursive {
		path += "?recursive=1"
	}

	res, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, scm.TransportFailure(op, repo, err)
	}
	if res.Status == http.StatusNotFound || res.Status == http.StatusUnprocessableEntity {
		return nil, nil
	}
	if res.Status/100 != 2 {
		return nil, scm.StatusError(op, repo, res)
	}

	out := new(treeResponse)
	if err := json.Unmarshal(res.Body, out); err != nil {
		return nil, &scm.DecodeError{Op: op, Repo: repo, Err: err}
	}
	return convertTree(out), nil
}

// encodeListOptions renders pagination as GitHub query parameters.
// GitHub paginates by page number and "per_page"; the cursor-based
// GraphQL pagination does not apply to these REST endpoints.
func encodeListOptions(opts scm.ListOptions) string {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Size > 0 {
		params.Set("per_page", strconv.Itoa(opts.Size))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// GitHub REST v3 wire types, private to this driver.

type branch struct {
	Name   string      `json:"name"`
	Commit *commitMeta `json:"commit"`
}

type tag struct {
	Name   string      `json:"name"`
	Commit *commitMeta `json:"commit"`
}

type commitMeta struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

type commitDetail struct {
	SHA       string     `json:"sha"`
	HTMLURL   string     `json:"html_url"`
	Commit    *gitCommit `json:"commit"`
	Author    *account   `json:"author"`
	Committer *account   `json:"committer"`
}

type gitCommit struct {
	Message   string      `json:"message"`
	Author    *commitUser `json:"author"`
	Committer *commitUser `json:"committer"`
}

type commitUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

type account struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

type treeResponse struct {
	SHA       string      `json:"sha"`
	URL       string      `json:"url"`
	Tree      []treeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

type treeEntry struct {
	Path string  `json:"path"`
	Mode string  `json:"mode"`
	Type string  `json:"type"`
	Size *uint64 `json:"size"`
	SHA  string  `json:"sha"`
	URL  string  `json:"url"`
}

// Normalization. Pure mappings from the wire types above onto the
// domain model.

func convertBranchList(from []*branch) []*scm.Reference {
	to := make([]*scm.Reference, 0, len(from))
	for _, b := range from {
		ref := &scm.Reference{
			Name: b.Name,
			Path: "refs/heads/" + b.Name,
		}
		if b.Commit != nil {
			ref.Sha = b.Commit.SHA
		}
		to = append(to, ref)
	}
	return to
}

func convertTagList(from []*tag) []*scm.Reference {
	to := make([]*scm.Reference, 0, len(from))
	for _, t := range from {
		ref := &scm.Reference{
			Name: t.Name,
			Path: "refs/tags/" + t.Name,
		}
		if t.Commit != nil {
			ref.Sha = t.Commit.SHA
		}
		to = append(to, ref)
	}
	return to
}

func convertCommit(from *commitDetail) *scm.Commit {
	to := &scm.Commit{
		Sha:  from.SHA,
		Link: from.HTMLURL,
	}
	if from.Commit != nil {
		to.Message = from.Commit.Message
		to.Author = convertSignature(from.Commit.Author, from.Author)
		to.Committer = convertSignature(from.Commit.Committer, from.Committer)
	}
	return to
}

// convertSignature merges the git identity with the provider account.
// GitHub includes the account objects only when the commit email maps
// to a registered user.
func convertSignature(user *commitUser, acct *account) scm.Signature {
	sig := scm.Signature{}
	if user != nil {
		sig.Name = user.Name
		sig.Email = user.Email
		sig.Date = normalize.Date(user.Date)
	}
	if acct != nil {
		sig.Login = normalize.OptString(acct.Login)
		sig.Avatar = normalize.OptString(acct.AvatarURL)
	}
	return sig
}

func convertTree(from *treeResponse) *scm.Tree {
	to := &scm.Tree{
		Sha:       from.SHA,
		URL:       from.URL,
		Entries:   make([]scm.TreeEntry, 0, len(from.Tree)),
		Truncated: from.Truncated,
	}
	for _, e := range from.Tree {
		entry := scm.TreeEntry{
			Path: e.Path,
			Mode: e.Mode,
			Type: e.Type,
			Sha:  e.SHA,
			URL:  e.URL,
		}
		if e.Type == "blob" {
			entry.Size = e.Size
		}
		to.Entries = append(to.Entries, entry)
	}
	return to
}
