package gitea

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
	op := "gitea: list branches"
	path := fmt.Sprintf("/api/v1/repos/%s/branches%s", repo, encodeListOptions(opts))

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
	op := "gitea: list tags"
	path := fmt.Sprintf("/api/v1/repos/%s/tags%s", repo, encodeListOptions(opts))

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
	op := "gitea: find commit"
	path := fmt.Sprintf("/api/v1/repos/%s/git/commits/%s", repo, ref)

	res, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, scm.TransportFailure(op, repo, err)
	}
	if res.Status == http.StatusNotFound {
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
	op := "gitea: get tree"
	path := fmt.Sprintf("/api/v1/repos/%s/git/trees/%s", repo, treeSha)
	if recursive {
		path += "?recursive=true"
	}

	res, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, scm.TransportFailure(op, repo, err)
	}
	if res.Status == http.StatusNotFound {
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

// encodeListOptions renders pagination as Gitea query parameters.
// Gitea paginates by page number and "limit"; it has no cursor.
func encodeListOptions(opts scm.ListOptions) string {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Size > 0 {
		params.Set("limit", strconv.Itoa(opts.Size))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// Gitea API v1 wire types, private to this driver.

type branch struct {
	Name   string         `json:"name"`
	Commit *payloadCommit `json:"commit"`
}

type payloadCommit struct {
	ID        string       `json:"id"`
	Message   string       `json:"message"`
	URL       string       `json:"url"`
	Author    *payloadUser `json:"author"`
	Committer *payloadUser `json:"committer"`
	Timestamp string       `json:"timestamp"`
}

type payloadUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
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
	SHA        string      `json:"sha"`
	HTMLURL    string      `json:"html_url"`
	RepoCommit *repoCommit `json:"commit"`
	Author     *account    `json:"author"`
	Committer  *account    `json:"committer"`
}

type repoCommit struct {
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
		to = append(to, convertBranch(b))
	}
	return to
}

func convertBranch(from *branch) *scm.Reference {
	ref := &scm.Reference{
		Name: from.Name,
		Path: "refs/heads/" + from.Name,
	}
	if from.Commit != nil {
		ref.Sha = from.Commit.ID
	}
	return ref
}

func convertTagList(from []*tag) []*scm.Reference {
	to := make([]*scm.Reference, 0, len(from))
	for _, t := range from {
		to = append(to, convertTag(t))
	}
	return to
}

func convertTag(from *tag) *scm.Reference {
	ref := &scm.Reference{
		Name: from.Name,
		Path: "refs/tags/" + from.Name,
	}
	if from.Commit != nil {
		ref.Sha = from.Commit.SHA
	}
	return ref
}

func convertCommit(from *commitDetail) *scm.Commit {
	to := &scm.Commit{
		Sha:  from.SHA,
		Link: from.HTMLURL,
	}
	if from.RepoCommit != nil {
		to.Message = from.RepoCommit.Message
		to.Author = convertSignature(from.RepoCommit.Author, from.Author)
		to.Committer = convertSignature(from.RepoCommit.Committer, from.Committer)
	}
	return to
}

// convertSignature merges the git identity with the provider account.
// The account portion is optional: Gitea includes it only when the
// email resolves to a registered user.
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
		to.Entries = append(to.Entries, convertTreeEntry(e))
	}
	return to
}

func convertTreeEntry(from treeEntry) scm.TreeEntry {
	to := scm.TreeEntry{
		Path: from.Path,
		Mode: from.Mode,
		Type: from.Type,
		Sha:  from.SHA,
		URL:  from.URL,
	}
	// Gitea serializes size 0 for directories; only blobs carry a real
	// size, so the model field stays absent for everything else.
	if from.Type == "blob" {
		to.Size = from.Size
	}
	return to
}
