package gogs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/proscenium-app/proscenium/scm"
	"github.com/proscenium-app/proscenium/scm/driver/internal/normalize"
)

func (d *driver) ListBranches(ctx context.Context, repo string, opts scm.ListOptions) ([]*scm.Reference, error) {
	op := "gogs: list branches"
	// Gogs returns the full branch list in one response; the endpoint
	// takes no pagination parameters, so opts is not encoded.
	path := fmt.Sprintf("/api/v1/repos/%s/branches", repo)

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
	return nil, scm.WrapErrorf(scm.ErrUnsupported, "gogs: list tags %s", repo)
}

func (d *driver) FindCommit(ctx context.Context, repo, ref string) (*scm.Commit, error) {
	op := "gogs: find commit"
	path := fmt.Sprintf("/api/v1/repos/%s/commits/%s", repo, ref)

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
	return nil, scm.WrapErrorf(scm.ErrUnsupported, "gogs: get tree %s", repo)
}

// Gogs API v1 wire types, private to this driver. Gogs embeds the
// commit payload directly in the branch object.

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

// Normalization.

func convertBranchList(from []*branch) []*scm.Reference {
	to := make([]*scm.Reference, 0, len(from))
	for _, b := range from {
		ref := &scm.Reference{
			Name: b.Name,
			Path: "refs/heads/" + b.Name,
		}
		if b.Commit != nil {
			ref.Sha = b.Commit.ID
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
