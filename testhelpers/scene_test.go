package testhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitwrap.dev/gitwrap/testhelpers"
)

func TestBasicScene(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	count, err := scene.Repo.GetCommitCount("HEAD")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
}

func TestNewBareRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	bare := scene.NewBareRemote(t, "origin")

	url, err := scene.Repo.RemoteURL("origin")
	require.NoError(t, err)
	require.Equal(t, bare, url)

	require.NoError(t, scene.Repo.PushBranch("origin", "main"))
}
