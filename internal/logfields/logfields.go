package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyFamily     = "family"
	KeySize       = "size"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRole       = "role"
	KeyOutputDir  = "output_dir"
	KeyCount      = "count"
	KeyError      = "error"
	KeyOutcome    = "outcome"
	KeyStatus     = "status"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Family(f string) slog.Attr        { return slog.String(KeyFamily, f) }
func Size(px int) slog.Attr            { return slog.Int(KeySize, px) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Role(r string) slog.Attr          { return slog.String(KeyRole, r) }
func OutputDir(dir string) slog.Attr   { return slog.String(KeyOutputDir, dir) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Outcome(o string) slog.Attr       { return slog.String(KeyOutcome, o) }
func Status(s string) slog.Attr        { return slog.String(KeyStatus, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
