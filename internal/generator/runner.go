package generator

import (
	"context"
	"time"

	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"git.home.luguber.info/inful/brandassets/internal/logfields"
	"git.home.luguber.info/inful/brandassets/internal/metrics"
)

// StageName identifies a pipeline stage.
type StageName string

const (
	StageResolveInputs  StageName = "resolve_inputs"
	StageValidateInputs StageName = "validate_inputs"
	StageLoadThumbnail  StageName = "load_thumbnail"
	StagePrepareOutput  StageName = "prepare_output"
	StageRenderIcons    StageName = "render_icons"
	StageComposeFavicon StageName = "compose_favicon"
	StageUpdateManifest StageName = "update_manifest"
)

// stageDef binds a stage name to its implementation.
type stageDef struct {
	Name StageName
	Fn   func(ctx context.Context, st *runState) error
}

// pipeline returns the stages in execution order. Every stage that can fail
// on bad input runs before prepare_output, so such failures leave the output
// directory untouched.
func pipeline() []stageDef {
	return []stageDef{
		{StageResolveInputs, stageResolveInputs},
		{StageValidateInputs, stageValidateInputs},
		{StageLoadThumbnail, stageLoadThumbnail},
		{StagePrepareOutput, stagePrepareOutput},
		{StageRenderIcons, stageRenderIcons},
		{StageComposeFavicon, stageComposeFavicon},
		{StageUpdateManifest, stageUpdateManifest},
	}
}

// runStages executes stages in order, recording timing and stopping on the
// first stage error. Per-item failures do not stop the run; stages report
// them through runState and are labeled as warnings. A stage with nothing to
// do sets skipped.
func runStages(ctx context.Context, st *runState, stages []stageDef) error {
	for _, def := range stages {
		if err := ctx.Err(); err != nil {
			st.recorder.IncStageResult(string(def.Name), metrics.ResultCanceled)
			return canceledError(def.Name, err)
		}

		st.degraded = false
		st.skipped = false
		t0 := time.Now()
		err := def.Fn(ctx, st)
		dur := time.Since(t0)

		st.result.StageDurations[def.Name] = dur
		st.recorder.ObserveStageDuration(string(def.Name), dur)
		st.logger.Debug("Stage complete",
			logfields.Stage(string(def.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))

		switch {
		case err != nil && ferrors.HasCategory(err, ferrors.CategoryCanceled):
			st.recorder.IncStageResult(string(def.Name), metrics.ResultCanceled)
			return err
		case err != nil:
			st.recorder.IncStageResult(string(def.Name), metrics.ResultFatal)
			return err
		case st.degraded:
			st.recorder.IncStageResult(string(def.Name), metrics.ResultWarning)
		case st.skipped:
			st.recorder.IncStageResult(string(def.Name), metrics.ResultSkipped)
		default:
			st.recorder.IncStageResult(string(def.Name), metrics.ResultSuccess)
		}
	}
	return nil
}

func canceledError(stage StageName, cause error) error {
	return ferrors.NewError(ferrors.CategoryCanceled, "run canceled").
		Fatal().
		WithContext("stage", string(stage)).
		WithCause(cause).
		Build()
}
