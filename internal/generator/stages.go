package generator

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/brandassets/internal/catalog"
	"git.home.luguber.info/inful/brandassets/internal/favicon"
	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"git.home.luguber.info/inful/brandassets/internal/inputs"
	"git.home.luguber.info/inful/brandassets/internal/logfields"
	"git.home.luguber.info/inful/brandassets/internal/manifest"
	"git.home.luguber.info/inful/brandassets/internal/metrics"
	"git.home.luguber.info/inful/brandassets/internal/svg"
)

// ManifestName is the manifest filename looked up in the output directory.
const ManifestName = "manifest.json"

func stageResolveInputs(_ context.Context, st *runState) error {
	resolver := inputs.NewResolver(st.req.ScriptDir, st.req.AssetsDir)
	for role, path := range st.req.Overrides {
		resolver.WithOverride(role, path)
	}
	set, err := resolver.Resolve()
	if err != nil {
		return err
	}
	st.result.Inputs = set
	for _, role := range inputs.Roles {
		st.logger.Debug("Resolved input", logfields.Role(string(role)), logfields.Path(set.Path(role)))
	}
	return nil
}

// stageValidateInputs checks the extended logos parse. They are never rendered.
func stageValidateInputs(_ context.Context, st *runState) error {
	for _, role := range []inputs.Role{inputs.RoleLight, inputs.RoleDark} {
		path := st.result.Inputs.Path(role)
		if err := svg.Validate(path); err != nil {
			return invalidSVG(role, path, err)
		}
	}
	return nil
}

func stageLoadThumbnail(_ context.Context, st *runState) error {
	path := st.result.Inputs.Thumbnail
	doc, err := svg.Load(path)
	if err != nil {
		return invalidSVG(inputs.RoleThumbnail, path, err)
	}
	st.thumbnail = doc
	return nil
}

func stagePrepareOutput(_ context.Context, st *runState) error {
	if err := os.MkdirAll(st.req.OutputDir, 0o755); err != nil {
		return ferrors.FileSystemError("cannot create output directory").
			WithContext("path", st.req.OutputDir).
			WithCause(err).
			Build()
	}
	return nil
}

func stageRenderIcons(ctx context.Context, st *runState) error {
	st.logger.Debug("Rendering thumbnail",
		logfields.Count(len(st.req.Catalog.RequiredRenderSizes())),
		logfields.Path(st.thumbnail.Path))
	for _, asset := range st.req.Catalog.Assets() {
		if err := ctx.Err(); err != nil {
			return canceledError(StageRenderIcons, err)
		}
		name := asset.Filename()
		_, data, err := st.image(asset.Family, asset.Size)
		if err == nil {
			err = st.write(name, data)
		}
		if err != nil {
			st.fail(name, asset.Family, asset.Size, err)
			continue
		}
		st.recorder.IncAssetResult(string(asset.Family), metrics.ResultSuccess)
	}
	return nil
}

func stageComposeFavicon(ctx context.Context, st *runState) error {
	if st.req.SkipFaviconICO && st.req.SkipFaviconSVG {
		st.skipped = true
		return nil
	}
	if !st.req.SkipFaviconICO {
		if err := ctx.Err(); err != nil {
			return canceledError(StageComposeFavicon, err)
		}
		composeICO(st)
	}
	if !st.req.SkipFaviconSVG {
		data := favicon.SizedSVG(st.thumbnail.Raw, catalog.FaviconSVGSize)
		if err := st.write(catalog.FaviconSVGName, data); err != nil {
			st.fail(catalog.FaviconSVGName, catalog.FamilyFavicon, catalog.FaviconSVGSize, err)
		}
	}
	return nil
}

func composeICO(st *runState) {
	frames := make([]image.Image, 0, len(catalog.FaviconICOSizes))
	for _, size := range catalog.FaviconICOSizes {
		img, _, err := st.image(catalog.FamilyFavicon, size)
		if err != nil {
			st.fail(catalog.FaviconICOName, catalog.FamilyFavicon, size, err)
			return
		}
		frames = append(frames, img)
	}
	largest := catalog.FaviconICOSizes[len(catalog.FaviconICOSizes)-1]
	data, err := favicon.EncodeICO(frames)
	if err == nil {
		err = st.write(catalog.FaviconICOName, data)
	}
	if err != nil {
		st.fail(catalog.FaviconICOName, catalog.FamilyFavicon, largest, err)
		return
	}
	st.recorder.IncAssetResult(string(catalog.FamilyFavicon), metrics.ResultSuccess)
}

// stageUpdateManifest never fails the run; manifest problems become warnings.
func stageUpdateManifest(ctx context.Context, st *runState) error {
	sizes := st.req.Catalog.Sizes(catalog.FamilyAndroid)
	if st.req.SkipManifest || len(sizes) == 0 {
		st.result.Manifest = manifest.OutcomeSkipped
		st.skipped = true
		return nil
	}
	path := st.req.ManifestPath
	if path == "" {
		path = filepath.Join(st.req.OutputDir, ManifestName)
	}

	outcome, err := manifest.Update(path, manifest.AndroidIcons(sizes, st.req.ManifestSrcPrefix))
	if err != nil {
		st.warn(ctx, "Manifest not updated", err, logfields.Path(path))
		return nil
	}
	st.result.Manifest = outcome
	st.logger.Info("Manifest checked", logfields.Path(path), logfields.Outcome(string(outcome)))
	return nil
}

func invalidSVG(role inputs.Role, path string, cause error) error {
	return ferrors.InvalidSVGError(fmt.Sprintf("Invalid %s SVG %s", role, filepath.Base(path))).
		WithCause(cause).
		WithContext("role", string(role)).
		WithContext("path", path).
		Build()
}
