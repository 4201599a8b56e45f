package metrics

import "time"

// ResultLabel enumerates stage and item result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultWarning  ResultLabel = "warning"
	ResultFailed   ResultLabel = "failed"
	ResultFatal    ResultLabel = "fatal"
	ResultSkipped  ResultLabel = "skipped"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for run, stage and per-asset metrics.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncRunOutcome(outcome ResultLabel)
	ObserveRenderDuration(family string, size int, d time.Duration)
	IncAssetResult(family string, result ResultLabel)
	SetFilesWritten(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)       {}
func (NoopRecorder) ObserveRunDuration(time.Duration)                 {}
func (NoopRecorder) IncStageResult(string, ResultLabel)               {}
func (NoopRecorder) IncRunOutcome(ResultLabel)                        {}
func (NoopRecorder) ObserveRenderDuration(string, int, time.Duration) {}
func (NoopRecorder) IncAssetResult(string, ResultLabel)               {}
func (NoopRecorder) SetFilesWritten(int)                              {}
