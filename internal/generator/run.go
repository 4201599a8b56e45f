package generator

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/brandassets/internal/catalog"
	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"git.home.luguber.info/inful/brandassets/internal/logfields"
	"git.home.luguber.info/inful/brandassets/internal/metrics"
	"git.home.luguber.info/inful/brandassets/internal/svg"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// runState carries everything stages share during one run.
type runState struct {
	req      Request
	result   *Result
	logger   *slog.Logger
	recorder metrics.Recorder
	renderer Renderer

	thumbnail *svg.Document
	rendered  map[int]renderedSize

	failures *multierror.Error
	degraded bool
	skipped  bool
}

// renderedSize memoizes one raster size; several families share sizes.
type renderedSize struct {
	img *image.RGBA
	png []byte
	err error
}

// Run implements Service.
func (s *DefaultService) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if len(req.Catalog) == 0 {
		req.Catalog = catalog.Default()
	}
	if req.OutputDir == "" {
		req.OutputDir = "."
	}

	runID := uuid.NewString()
	result := &Result{
		RunID:          runID,
		OutputDir:      req.OutputDir,
		StageDurations: make(map[StageName]time.Duration),
	}
	renderer := s.renderer
	if renderer == nil {
		renderer = svg.NewRasterizer(req.Supersample)
	}
	st := &runState{
		req:      req,
		result:   result,
		logger:   s.logger.With(logfields.RunID(runID)),
		recorder: s.recorder,
		renderer: renderer,
		rendered: make(map[int]renderedSize),
	}

	var err error
	if verr := req.Catalog.Validate(); verr != nil {
		err = ferrors.WrapError(verr, ferrors.CategoryValidation, "invalid size catalog").Fatal().Build()
	} else {
		err = runStages(ctx, st, pipeline())
	}
	if err == nil && st.failures != nil {
		err = ferrors.RenderError(fmt.Sprintf("%d output(s) failed", len(result.Failed))).
			WithContext("failed", result.Failed).
			WithCause(st.failures.ErrorOrNil()).
			Build()
	}

	result.Duration = time.Since(start)
	result.Status = statusFor(err, result)
	s.recorder.ObserveRunDuration(result.Duration)
	s.recorder.IncRunOutcome(outcomeLabel(result.Status))
	s.recorder.SetFilesWritten(len(result.Generated))

	st.logger.Info("Run finished",
		logfields.Status(string(result.Status)),
		logfields.Count(len(result.Generated)),
		logfields.OutputDir(result.OutputDir),
		logfields.DurationMS(float64(result.Duration.Microseconds())/1000))
	return result, err
}

func statusFor(err error, result *Result) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case ferrors.HasCategory(err, ferrors.CategoryCanceled):
		return StatusCanceled
	case ferrors.HasCategory(err, ferrors.CategoryRender) && len(result.Generated) > 0:
		return StatusPartial
	default:
		return StatusFailed
	}
}

func outcomeLabel(s Status) metrics.ResultLabel {
	switch s {
	case StatusSuccess:
		return metrics.ResultSuccess
	case StatusPartial:
		return metrics.ResultWarning
	case StatusCanceled:
		return metrics.ResultCanceled
	default:
		return metrics.ResultFailed
	}
}

// image returns the thumbnail rasterized at size, rendering it once per run.
func (st *runState) image(family catalog.Family, size int) (*image.RGBA, []byte, error) {
	if r, ok := st.rendered[size]; ok {
		return r.img, r.png, r.err
	}
	t0 := time.Now()
	img, err := st.renderer.Render(st.thumbnail, size)
	var data []byte
	if err == nil {
		data, err = svg.EncodePNG(img)
	}
	st.recorder.ObserveRenderDuration(string(family), size, time.Since(t0))
	st.rendered[size] = renderedSize{img: img, png: data, err: err}
	return img, data, err
}

// write stores data under name in the output directory and records it.
func (st *runState) write(name string, data []byte) error {
	path := filepath.Join(st.req.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	st.result.Generated = append(st.result.Generated, path)
	st.logger.Debug("Wrote file", logfields.Path(path))
	return nil
}

// fail records a per-output failure without aborting the run.
func (st *runState) fail(name string, family catalog.Family, size int, cause error) {
	err := ferrors.WrapError(cause, ferrors.CategoryRender,
		fmt.Sprintf("failed to render %s %dx%d (%s)", family, size, size, name)).
		WithContext("family", string(family)).
		WithContext("size", size).
		WithContext("file", name).
		Build()
	st.failures = multierror.Append(st.failures, err)
	st.result.Failed = append(st.result.Failed, name)
	st.degraded = true
	st.recorder.IncAssetResult(string(family), metrics.ResultFailed)
	st.logger.Error("Render failed",
		logfields.Family(string(family)),
		logfields.Size(size),
		logfields.File(name),
		logfields.Error(cause))
}

// warn records a non-fatal problem and logs it at the error's severity.
// Warnings are logged here only; callers must not log them again.
func (st *runState) warn(ctx context.Context, msg string, err error, attrs ...any) {
	st.result.Warnings = append(st.result.Warnings, err)
	st.degraded = true
	attrs = append(attrs, logfields.Error(err))
	st.logger.Log(ctx, ferrors.SlogLevel(ferrors.GetSeverity(err)), msg, attrs...)
}
