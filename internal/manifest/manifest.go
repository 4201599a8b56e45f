// Package manifest keeps a web app manifest's icon list in sync with the
// generated Android icons. Edits are applied with sjson so every other byte of
// the document is preserved.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/brandassets/internal/catalog"
	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Outcome describes what Update did with the manifest.
type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"   // update disabled by the caller
	OutcomeMissing   Outcome = "missing"   // no manifest, nothing done
	OutcomeConfirmed Outcome = "confirmed" // icons already up to date, file untouched
	OutcomeUpdated   Outcome = "updated"   // icons rewritten
)

// Icon is one entry of the manifest "icons" array.
type Icon struct {
	Src     string
	Sizes   string
	Type    string
	Density string
}

// AndroidIcons builds manifest entries for the given Android sizes. srcPrefix
// is prepended to each filename (e.g. "/" for site-root references).
func AndroidIcons(sizes []int, srcPrefix string) []Icon {
	icons := make([]Icon, 0, len(sizes))
	for _, size := range sizes {
		icons = append(icons, Icon{
			Src:     srcPrefix + catalog.Filename(catalog.FamilyAndroid, size),
			Sizes:   fmt.Sprintf("%dx%d", size, size),
			Type:    "image/png",
			Density: density(size),
		})
	}
	return icons
}

// density is the icon size relative to the 48px mdpi baseline.
func density(size int) string {
	d := float64(size) / 48
	if d == float64(int(d)) {
		return strconv.FormatFloat(d, 'f', 1, 64)
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Update rewrites the Android entries of the manifest at file. Entries whose
// src does not reference an Android icon are kept in place. A missing file is
// not an error; an unparsable one yields a ManifestError.
func Update(file string, icons []Icon) (Outcome, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return OutcomeMissing, nil
	}
	if err != nil {
		return "", ferrors.ManifestError("cannot read manifest").
			WithContext("path", file).
			WithCause(err).
			Build()
	}

	updated, changed, err := Patch(data, icons)
	if err != nil {
		return "", ferrors.ManifestError("manifest is malformed").
			WithContext("path", file).
			WithCause(err).
			Build()
	}
	if !changed {
		return OutcomeConfirmed, nil
	}

	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(file); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(file, updated, mode); err != nil {
		return "", ferrors.ManifestError("cannot write manifest").
			WithContext("path", file).
			WithCause(err).
			Build()
	}
	return OutcomeUpdated, nil
}

// Patch returns data with its icons array reconciled against icons, and
// whether anything changed.
func Patch(data []byte, icons []Icon) ([]byte, bool, error) {
	if !gjson.ValidBytes(data) {
		return nil, false, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, false, fmt.Errorf("manifest root is not an object")
	}
	existing := root.Get("icons")
	if existing.Exists() && !existing.IsArray() {
		return nil, false, fmt.Errorf("icons is %s, expected array", existing.Type)
	}

	var entries []string
	for _, entry := range existing.Array() {
		if !isAndroidEntry(entry) {
			entries = append(entries, entry.Raw)
		}
	}
	for _, icon := range icons {
		raw, err := icon.json()
		if err != nil {
			return nil, false, err
		}
		entries = append(entries, raw)
	}
	array := "[" + strings.Join(entries, ",") + "]"

	if existing.Exists() && compact(existing.Raw) == compact(array) {
		return data, false, nil
	}
	out, err := sjson.SetRawBytes(data, "icons", []byte(array))
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (i Icon) json() (string, error) {
	raw := "{}"
	var err error
	for _, kv := range [][2]string{{"src", i.Src}, {"sizes", i.Sizes}, {"type", i.Type}, {"density", i.Density}} {
		if kv[1] == "" {
			continue
		}
		if raw, err = sjson.Set(raw, kv[0], kv[1]); err != nil {
			return "", err
		}
	}
	return raw, nil
}

func isAndroidEntry(entry gjson.Result) bool {
	src := entry.Get("src").String()
	// Manifests generated by favicon tools escape slashes as "\/"; gjson unescapes them.
	return strings.HasPrefix(path.Base(src), string(catalog.FamilyAndroid)+"-")
}

func compact(raw string) string {
	return gjson.Get(raw, "@ugly").Raw
}
