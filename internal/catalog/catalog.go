// Package catalog defines the fixed set of raster outputs produced from the thumbnail SVG.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Family identifies a group of icons sharing a filename prefix.
type Family string

const (
	FamilyAndroid   Family = "android-icon"
	FamilyApple     Family = "apple-icon"
	FamilyFavicon   Family = "favicon"
	FamilyMicrosoft Family = "ms-icon"
)

// Fixed non-family outputs.
const (
	FaviconSVGName = "favicon.svg"
	FaviconICOName = "favicon.ico"
	FaviconSVGSize = 48
)

// FaviconICOSizes are the frames embedded in favicon.ico, in container order.
var FaviconICOSizes = []int{16, 32, 48}

// SizeSpec pairs a family with its ordered pixel sizes.
type SizeSpec struct {
	Family Family `yaml:"family"`
	Sizes  []int  `yaml:"sizes"`
}

// Asset is a single (family, size) output.
type Asset struct {
	Family Family
	Size   int
}

// Filename returns the output filename, e.g. android-icon-36x36.png.
func (a Asset) Filename() string {
	return Filename(a.Family, a.Size)
}

func (a Asset) String() string {
	return fmt.Sprintf("%s %dx%d", a.Family, a.Size, a.Size)
}

// Filename returns the output filename for a family and size.
func Filename(family Family, size int) string {
	return fmt.Sprintf("%s-%dx%d.png", family, size, size)
}

// Catalog is the ordered list of size specifications rendered by one run.
type Catalog []SizeSpec

// Default returns the standard brand asset catalog.
func Default() Catalog {
	return Catalog{
		{Family: FamilyAndroid, Sizes: []int{36, 48, 72, 96, 144, 192}},
		{Family: FamilyApple, Sizes: []int{57, 60, 72, 76, 114, 120, 144, 152, 180}},
		{Family: FamilyFavicon, Sizes: []int{16, 32, 96}},
		{Family: FamilyMicrosoft, Sizes: []int{70, 144, 150}},
	}
}

// Assets flattens the catalog in declaration order.
func (c Catalog) Assets() []Asset {
	var out []Asset
	for _, spec := range c {
		for _, size := range spec.Sizes {
			out = append(out, Asset{Family: spec.Family, Size: size})
		}
	}
	return out
}

// Sizes returns the sizes declared for a family, or nil.
func (c Catalog) Sizes(family Family) []int {
	for _, spec := range c {
		if spec.Family == family {
			return slices.Clone(spec.Sizes)
		}
	}
	return nil
}

// Validate checks that every family has sizes, every size is positive and no
// two assets share a filename.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]Asset)
	for _, spec := range c {
		if strings.TrimSpace(string(spec.Family)) == "" {
			return fmt.Errorf("catalog entry without family")
		}
		if strings.ContainsAny(string(spec.Family), `/\`) {
			return fmt.Errorf("family %q must not contain path separators", spec.Family)
		}
		if len(spec.Sizes) == 0 {
			return fmt.Errorf("family %s has no sizes", spec.Family)
		}
		for _, size := range spec.Sizes {
			if size <= 0 {
				return fmt.Errorf("family %s has invalid size %d", spec.Family, size)
			}
			asset := Asset{Family: spec.Family, Size: size}
			name := asset.Filename()
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("output %s produced by both %s and %s", name, prev, asset)
			}
			if name == FaviconSVGName || name == FaviconICOName {
				return fmt.Errorf("output %s collides with a favicon container", name)
			}
			seen[name] = asset
		}
	}
	return nil
}

// RequiredRenderSizes returns the distinct sizes needed for the catalog plus
// the ICO frames, ascending.
func (c Catalog) RequiredRenderSizes() []int {
	var sizes []int
	for _, a := range c.Assets() {
		sizes = append(sizes, a.Size)
	}
	sizes = append(sizes, FaviconICOSizes...)
	slices.Sort(sizes)
	return slices.Compact(sizes)
}
