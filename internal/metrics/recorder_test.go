package metrics

import "time"

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	runDurations   int
	runOutcomes    map[ResultLabel]int
	assetResults   map[string]map[ResultLabel]int
	renders        int
	filesWritten   int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		runOutcomes:    map[ResultLabel]int{},
		assetResults:   map[string]map[ResultLabel]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) ObserveRunDuration(_ time.Duration) { t.runDurations++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) IncRunOutcome(outcome ResultLabel) { t.runOutcomes[outcome]++ }
func (t *testRecorder) ObserveRenderDuration(string, int, time.Duration) {
	t.renders++
}
func (t *testRecorder) IncAssetResult(family string, result ResultLabel) {
	m, ok := t.assetResults[family]
	if !ok {
		m = map[ResultLabel]int{}
		t.assetResults[family] = m
	}
	m[result]++
}
func (t *testRecorder) SetFilesWritten(n int) { t.filesWritten = n }

// Compile-time interface checks.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = newTestRecorder()
)
