package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proscenium-app/proscenium/scm"
)

const testRepo = "octocat/hello"

func testService(t *testing.T, handler http.HandlerFunc) scm.GitService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := New(srv.URL, "")
	require.NoError(t, err)
	return svc
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestListBranches(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello/branches", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		w.Write(fixture(t, "branches.json"))
	})

	got, err := svc.ListBranches(context.Background(), testRepo, scm.ListOptions{Page: 2, Size: 50})
	require.NoError(t, err)

	want := []*scm.Reference{
		{
			Name: "main",
			Path: "refs/heads/main",
			Sha:  "6dcb09b5b57875f334f61aebed695e2e4193db5e",
		},
		{
			Name: "feature/queue",
			Path: "refs/heads/feature/queue",
			Sha:  "7fd1a60b01f91b314f59955a4e4d4e80d8edf11d",
		},
	}
	assert.Equal(t, want, got)
}

func TestListTags(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello/tags", r.URL.Path)
		w.Write(fixture(t, "tags.json"))
	})

	got, err := svc.ListTags(context.Background(), testRepo, scm.ListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v0.1.0", got[0].Name)
	assert.Equal(t, "refs/tags/v0.1.0", got[0].Path)
	assert.Equal(t, "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc", got[0].Sha)
}

func TestListTagsRepoMissing(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	got, err := svc.ListTags(context.Background(), testRepo, scm.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListTagsMalformed(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "not an array"}`))
	})

	_, err := svc.ListTags(context.Background(), testRepo, scm.ListOptions{})
	assert.ErrorIs(t, err, scm.ErrDecode)
}

func TestFindCommit(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello/commits/main", r.URL.Path)
		w.Write(fixture(t, "commit.json"))
	})

	got, err := svc.FindCommit(context.Background(), testRepo, "main")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "6dcb09b5b57875f334f61aebed695e2e4193db5e", got.Sha)
	assert.Equal(t, "Fix all the bugs", got.Message)
	assert.Equal(t, "https://github.com/octocat/hello/commit/6dcb09b5b57875f334f61aebed695e2e4193db5e", got.Link)

	// The author resolves to an account, the committer does not.
	require.NotNil(t, got.Author.Login)
	assert.Equal(t, "octocat", *got.Author.Login)
	assert.Nil(t, got.Committer.Login)
	assert.Nil(t, got.Committer.Avatar)
	assert.Equal(t, "Casey Committer", got.Committer.Name)
	assert.Equal(t, "2024-04-14T16:00:49Z", got.Committer.Date)
}

func TestFindCommitNotFound(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusUnprocessableEntity} {
		svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		got, err := svc.FindCommit(context.Background(), testRepo, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestGetTree(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello/git/trees/b4eecafa9be2f2006ce1b709d6857b07069b4608", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("recursive"))
		w.Write(fixture(t, "tree_truncated.json"))
	})

	got, err := svc.GetTree(context.Background(), testRepo, "b4eecafa9be2f2006ce1b709d6857b07069b4608", true)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Truncated)
	require.Len(t, got.Entries, 2)
	assert.Nil(t, got.Entries[0].Size)
	require.NotNil(t, got.Entries[1].Size)
	assert.Equal(t, uint64(512), *got.Entries[1].Size)
}

func TestRateLimited(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "API rate limit exceeded"}`))
	})

	_, err := svc.FindCommit(context.Background(), testRepo, "main")
	require.ErrorIs(t, err, scm.ErrRateLimited)

	var rle *scm.RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, 30*time.Second, rle.RetryAfter)
}

func TestAuthError(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Bad credentials"}`))
	})

	_, err := svc.ListBranches(context.Background(), testRepo, scm.ListOptions{})
	assert.ErrorIs(t, err, scm.ErrAuth)
}

func TestBearerHeader(t *testing.T) {
	var authorization string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	svc, err := New(srv.URL, "ghp_testtoken")
	require.NoError(t, err)

	_, err = svc.ListBranches(context.Background(), testRepo, scm.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer ghp_testtoken", authorization)
}
