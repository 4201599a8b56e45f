package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/brandassets/internal/logfields"
	"github.com/go-git/go-git/v5"
)

// Default directory names relative to the project root.
const (
	ScriptDirName = "scripts"
	AssetsDirName = "brand-assets"
)

// Layout holds the directories derived from the project root.
type Layout struct {
	Root      string
	ScriptDir string
	AssetsDir string
}

// Detect resolves the layout for start (typically the working directory).
func Detect(start string) (Layout, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve %s: %w", start, err)
	}
	root, inRepo := FindRoot(abs)
	if inRepo {
		slog.Debug("Detected repository root", logfields.Path(root))
	} else {
		slog.Debug("No repository found, using working directory", logfields.Path(root))
	}
	return Layout{
		Root:      root,
		ScriptDir: filepath.Join(root, ScriptDirName),
		AssetsDir: filepath.Join(root, AssetsDirName),
	}, nil
}

// FindRoot returns the worktree root of the repository containing dir, or dir
// itself and false when there is none (or the repository is bare).
func FindRoot(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			slog.Debug("Repository detection failed", logfields.Path(dir), logfields.Error(err))
		}
		return dir, false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return dir, false
	}
	return wt.Filesystem.Root(), true
}
