// Package inputs locates the brand SVG files a run consumes.
package inputs

import (
	"fmt"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
)

// Role identifies which logo variant a file provides.
type Role string

const (
	RoleThumbnail Role = "thumbnail"
	RoleLight     Role = "light"
	RoleDark      Role = "dark"
)

// Default filenames looked up in each search directory.
const (
	ThumbnailName = "logo_thumbnail.svg"
	LightName     = "logo.svg"
	DarkName      = "logo_dark.svg"
)

// Roles lists every role in resolution order.
var Roles = []Role{RoleThumbnail, RoleLight, RoleDark}

// Filename returns the default filename for a role.
func (r Role) Filename() string {
	switch r {
	case RoleThumbnail:
		return ThumbnailName
	case RoleLight:
		return LightName
	case RoleDark:
		return DarkName
	default:
		return ""
	}
}

// Set holds the resolved input paths.
type Set struct {
	Thumbnail string
	Light     string
	Dark      string
}

// Path returns the resolved path for a role.
func (s Set) Path(r Role) string {
	switch r {
	case RoleThumbnail:
		return s.Thumbnail
	case RoleLight:
		return s.Light
	case RoleDark:
		return s.Dark
	default:
		return ""
	}
}

// Resolver finds each input by probing SearchDirs in order, unless an
// explicit override is set for that role.
type Resolver struct {
	SearchDirs []string
	Overrides  map[Role]string
}

// NewResolver creates a resolver probing scriptDir then assetsDir.
func NewResolver(scriptDir, assetsDir string) *Resolver {
	return &Resolver{
		SearchDirs: []string{scriptDir, assetsDir},
		Overrides:  map[Role]string{},
	}
}

// WithOverride pins a role to an explicit path. Empty paths are ignored.
func (r *Resolver) WithOverride(role Role, path string) *Resolver {
	if path != "" {
		r.Overrides[role] = path
	}
	return r
}

// Resolve returns the input set or a MissingInputError naming the first
// missing file. Each role is resolved independently; the thumbnail is
// reported first since it is the rendered source.
func (r *Resolver) Resolve() (Set, error) {
	var set Set
	for _, role := range Roles {
		path, err := r.resolveRole(role)
		if err != nil {
			return Set{}, err
		}
		switch role {
		case RoleThumbnail:
			set.Thumbnail = path
		case RoleLight:
			set.Light = path
		case RoleDark:
			set.Dark = path
		}
	}
	return set, nil
}

func (r *Resolver) resolveRole(role Role) (string, error) {
	if override, ok := r.Overrides[role]; ok {
		if isFile(override) {
			return override, nil
		}
		return "", ferrors.MissingInputError(fmt.Sprintf("Missing %s SVG", role)).
			WithContext("role", string(role)).
			WithContext("path", override).
			Build()
	}

	var candidates []string
	for _, dir := range r.SearchDirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, role.Filename())
		if isFile(candidate) {
			return candidate, nil
		}
		candidates = append(candidates, dir)
	}
	return "", ferrors.MissingInputError(fmt.Sprintf("Missing %s SVG %s", role, role.Filename())).
		WithContext("role", string(role)).
		WithContext("file", role.Filename()).
		WithContext("searched", candidates).
		Build()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
