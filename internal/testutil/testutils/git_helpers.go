package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
)

// SetupTestGitRepo initializes a non-bare repository in a temporary directory
// and returns it with its absolute worktree root.
func SetupTestGitRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repo, err := git.PlainInit(root, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	return repo, root
}

// Mkdir creates dir (and parents) below root and returns its path.
func Mkdir(t *testing.T, root string, dir ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, dir...)...)
	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	return path
}
