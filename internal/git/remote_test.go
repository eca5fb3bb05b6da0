package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/testhelpers"
)

func TestRemoteRepositoryGetRefs(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	bare := scene.NewBareRemote(t, "origin")

	require.NoError(t, scene.Repo.CreateBranch("feature/one"))
	require.NoError(t, scene.Repo.CreateTag("v1"))
	require.NoError(t, scene.Repo.RunGitCommand("push", "origin", "main", "feature/one", "v1"))

	remote := git.NewRemoteRepository(bare, git.WithExecutor(scene.Exec))
	require.True(t, remote.Supports(git.CapabilityRefListing))

	refs, err := remote.GetRefs(ctx)
	require.NoError(t, err)

	sha, err := scene.Repo.GetCurrentSHA()
	require.NoError(t, err)

	byName := map[string]git.Ref{}
	for _, ref := range refs {
		byName[ref.FullName()] = ref
		require.Same(t, remote, ref.Repository())
	}
	require.Contains(t, byName, "HEAD")
	require.Equal(t, git.RefKindOther, byName["HEAD"].Kind)
	require.Equal(t, git.RefKindBranch, byName["refs/heads/main"].Kind)
	require.Equal(t, git.RefKindBranch, byName["refs/heads/feature/one"].Kind)
	require.Equal(t, git.RefKindTag, byName["refs/tags/v1"].Kind)
	require.Equal(t, sha, byName["refs/heads/main"].Hash)

	branches, err := remote.GetBranches(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"main", "feature/one"}, testhelpers.RefNames(branches))
}

func TestRemoteRepositoryUnreachable(t *testing.T) {
	remote := git.NewRemoteRepository(filepath.Join(t.TempDir(), "nowhere"), git.WithExecutor(testhelpers.NewExecutor()))
	_, err := remote.GetRefs(context.Background())
	require.ErrorIs(t, err, gitwraperrors.ErrCommandFailed)
}

func TestCloneFetchPull(t *testing.T) {
	ctx := context.Background()
	upstream := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	clonePath := filepath.Join(t.TempDir(), "clone")
	clone := git.NewLocalRepository(clonePath, git.WithExecutor(upstream.Exec))
	require.NoError(t, clone.Clone(ctx, upstream.Local))

	upstreamHead, err := upstream.Local.GetHead(ctx)
	require.NoError(t, err)
	cloneHead, err := clone.GetHead(ctx)
	require.NoError(t, err)
	require.Equal(t, upstreamHead.Hash, cloneHead.Hash)

	t.Run("pull from default remote", func(t *testing.T) {
		require.NoError(t, upstream.Repo.CreateChangeAndCommit("2", "2"))
		require.NoError(t, clone.Pull(ctx, nil))

		upstreamHead, err := upstream.Local.GetHead(ctx)
		require.NoError(t, err)
		cloneHead, err := clone.GetHead(ctx)
		require.NoError(t, err)
		require.Equal(t, upstreamHead.Hash, cloneHead.Hash)
	})

	t.Run("fetch from a named remote", func(t *testing.T) {
		other := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		remote, err := clone.AddRemote(ctx, "other", other.Dir)
		require.NoError(t, err)
		require.Equal(t, "other", remote.Name)
		require.Equal(t, other.Dir, remote.URL)
		require.Same(t, clone, remote.Repository())

		require.NoError(t, clone.Fetch(ctx, remote))

		otherHead, err := other.Local.GetHead(ctx)
		require.NoError(t, err)
		fetched, err := clone.GetCommit(ctx, git.Rev("other/main"))
		require.NoError(t, err)
		require.Equal(t, otherHead.Hash, fetched.Hash)
	})

	t.Run("fetch from a url", func(t *testing.T) {
		require.NoError(t, clone.Fetch(ctx, git.URL(upstream.Dir)))
	})

	t.Run("clone into existing non-empty directory fails", func(t *testing.T) {
		err := clone.Clone(ctx, upstream.Local)
		require.ErrorIs(t, err, gitwraperrors.ErrCommandFailed)
	})
}
