package metrics

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	reg            *prom.Registry
	stageDuration  *prom.HistogramVec
	runDuration    prom.Histogram
	stageResults   *prom.CounterVec
	runOutcome     *prom.CounterVec
	renderDuration *prom.HistogramVec
	assetResults   *prom.CounterVec
	filesWritten   prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "brandassets",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "brandassets",
			Name:      "run_duration_seconds",
			Help:      "Total generator run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "brandassets",
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "brandassets",
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"})
		pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "brandassets",
			Name:      "render_duration_seconds",
			Help:      "Rasterization time per output size",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"family", "size"})
		pr.assetResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "brandassets",
			Name:      "asset_results_total",
			Help:      "Generated asset counts by family and result",
		}, []string{"family", "result"})
		pr.filesWritten = prom.NewGauge(prom.GaugeOpts{
			Namespace: "brandassets",
			Name:      "files_written",
			Help:      "Number of files written by the last run",
		})
		reg.MustRegister(pr.stageDuration, pr.runDuration, pr.stageResults, pr.runOutcome, pr.renderDuration, pr.assetResults, pr.filesWritten)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome ResultLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(family string, size int, d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.WithLabelValues(family, strconv.Itoa(size)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncAssetResult(family string, result ResultLabel) {
	if p == nil || p.assetResults == nil {
		return
	}
	p.assetResults.WithLabelValues(family, string(result)).Inc()
}

func (p *PrometheusRecorder) SetFilesWritten(n int) {
	if p == nil || p.filesWritten == nil {
		return
	}
	p.filesWritten.Set(float64(n))
}

// WriteTextfile writes the gathered registry in text exposition format.
// The parent directory is created when missing.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return prom.WriteToTextfile(path, p.reg)
}
