package gogs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proscenium-app/proscenium/scm"
)

const testRepo = "unknwon/demo"

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
		assert.Equal(t, "/api/v1/repos/unknwon/demo/branches", r.URL.Path)
		w.Write(fixture(t, "branches.json"))
	})

	got, err := svc.ListBranches(context.Background(), testRepo, scm.ListOptions{})
	require.NoError(t, err)

	want := []*scm.Reference{
		{
			Name: "master",
			Path: "refs/heads/master",
			Sha:  "f27a137c4b1e1f1e37c160fa87e0a2f1b3c4d5e6",
		},
	}
	assert.Equal(t, want, got)
}

func TestListBranchesRepoMissing(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	got, err := svc.ListBranches(context.Background(), testRepo, scm.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListTagsUnsupported(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unsupported operation")
	})

	_, err := svc.ListTags(context.Background(), testRepo, scm.ListOptions{})
	assert.ErrorIs(t, err, scm.ErrUnsupported)
}

func TestFindCommit(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/repos/unknwon/demo/commits/master", r.URL.Path)
		w.Write(fixture(t, "commit.json"))
	})

	got, err := svc.FindCommit(context.Background(), testRepo, "master")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "f27a137c4b1e1f1e37c160fa87e0a2f1b3c4d5e6", got.Sha)
	assert.Equal(t, "Wire up build pipeline\n", got.Message)
	require.NotNil(t, got.Author.Login)
	assert.Equal(t, "joedev", *got.Author.Login)
}

func TestFindCommitNotFound(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	got, err := svc.FindCommit(context.Background(), testRepo, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetTreeUnsupported(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unsupported operation")
	})

	_, err := svc.GetTree(context.Background(), testRepo, "f27a137c", true)
	assert.ErrorIs(t, err, scm.ErrUnsupported)
}
