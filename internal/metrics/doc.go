// Package metrics provides run metrics for the asset generator.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites. When a metrics
// textfile is configured the CLI swaps in a PrometheusRecorder and writes the
// gathered registry with WriteTextfile once the run ends, for pickup by the
// node_exporter textfile collector.
package metrics
