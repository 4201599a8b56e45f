package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

// LogoSVG is a minimal valid logo used as every input by default.
const LogoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64" width="64" height="64">
  <circle cx="32" cy="32" r="28" fill="#336699"/>
</svg>`

// Input filenames as looked up by the generator.
const (
	ThumbnailFile = "logo_thumbnail.svg"
	LightFile     = "logo.svg"
	DarkFile      = "logo_dark.svg"
)

// BrandProject is a temporary project tree with scripts/ and brand-assets/.
type BrandProject struct {
	t         *testing.T
	Root      string
	ScriptDir string
	AssetsDir string
}

// NewBrandProject creates a project whose brand-assets/ holds all three logos.
// scripts/ is created empty.
func NewBrandProject(t *testing.T) *BrandProject {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	return newBrandProject(t, root)
}

// NewBrandRepo is NewBrandProject inside a fresh git repository.
func NewBrandRepo(t *testing.T) *BrandProject {
	t.Helper()
	_, root := SetupTestGitRepo(t)
	return newBrandProject(t, root)
}

func newBrandProject(t *testing.T, root string) *BrandProject {
	t.Helper()
	p := &BrandProject{
		t:         t,
		Root:      root,
		ScriptDir: Mkdir(t, root, "scripts"),
		AssetsDir: Mkdir(t, root, "brand-assets"),
	}
	for _, name := range []string{ThumbnailFile, LightFile, DarkFile} {
		p.WriteAsset(name, LogoSVG)
	}
	return p
}

// WriteAsset writes content to brand-assets/name.
func (p *BrandProject) WriteAsset(name, content string) string {
	p.t.Helper()
	return p.write(filepath.Join(p.AssetsDir, name), content)
}

// WriteScript writes content to scripts/name.
func (p *BrandProject) WriteScript(name, content string) string {
	p.t.Helper()
	return p.write(filepath.Join(p.ScriptDir, name), content)
}

// WriteFile writes content to a path relative to the project root.
func (p *BrandProject) WriteFile(rel, content string) string {
	p.t.Helper()
	path := filepath.Join(p.Root, rel)
	Mkdir(p.t, filepath.Dir(path))
	return p.write(path, content)
}

// RemoveAsset deletes brand-assets/name.
func (p *BrandProject) RemoveAsset(name string) {
	p.t.Helper()
	if err := os.Remove(filepath.Join(p.AssetsDir, name)); err != nil {
		p.t.Fatalf("failed to remove %s: %v", name, err)
	}
}

// Path joins rel onto the project root.
func (p *BrandProject) Path(rel ...string) string {
	return filepath.Join(append([]string{p.Root}, rel...)...)
}

// Output returns assertions rooted at the project-relative directory rel.
func (p *BrandProject) Output(rel string) *FileAssertions {
	return NewFileAssertions(p.t, p.Path(rel))
}

func (p *BrandProject) write(path, content string) string {
	p.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		p.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
