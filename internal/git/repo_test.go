package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/testhelpers"
)

func TestFindRepoRoot(t *testing.T) {
	t.Run("finds root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0750))

		root, err := git.FindRepoRoot(sub)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := git.FindRepoRoot(t.TempDir())
		require.ErrorIs(t, err, git.ErrNotARepository)
	})
}

func TestHeadMatchesGoGit(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	local, err := git.OpenLocalRepository(scene.Dir, git.WithExecutor(scene.Exec))
	require.NoError(t, err)

	require.NoError(t, scene.Repo.WriteFile("next.txt", "next"))
	require.NoError(t, local.Add(ctx, "next.txt"))
	commit, err := local.Commit(ctx, "next")
	require.NoError(t, err)
	require.NotNil(t, commit)

	head, err := local.GetHead(ctx)
	require.NoError(t, err)

	repo, err := gogit.PlainOpen(scene.Dir)
	require.NoError(t, err)
	ref, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, ref.Hash().String(), head.Hash)
	require.Equal(t, "main", ref.Name().Short())

	object, err := repo.CommitObject(ref.Hash())
	require.NoError(t, err)
	require.Equal(t, "next\n", object.Message)
}
