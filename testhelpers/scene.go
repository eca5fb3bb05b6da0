package testhelpers

import (
	"path/filepath"
	"testing"

	"gitwrap.dev/gitwrap/internal/git"
)

// Scene is a temporary directory holding a git repository, together with a
// LocalRepository for the same directory wired to a test executor.
type Scene struct {
	Dir   string
	Repo  *GitRepo
	Local *git.LocalRepository
	Exec  *git.Executor
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene in a fresh temporary directory. The directory is
// removed when the test finishes.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	exec := NewExecutor()
	scene := &Scene{
		Dir:   dir,
		Repo:  repo,
		Local: git.NewLocalRepository(dir, git.WithExecutor(exec)),
		Exec:  exec,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// NewBareRemote creates a bare repository next to the scene, registers it
// as remote name and returns its path.
func (s *Scene) NewBareRemote(t *testing.T, name string) string {
	t.Helper()

	bareDir := filepath.Join(filepath.Dir(s.Dir), name+".git")
	if _, err := NewBareRepo(bareDir); err != nil {
		t.Fatalf("Failed to create bare remote: %v", err)
	}
	if err := s.Repo.RunGitCommand("remote", "add", name, bareDir); err != nil {
		t.Fatalf("Failed to add remote: %v", err)
	}
	return bareDir
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
