package errors

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitOK},
		{name: "missing input", err: MissingInputError("missing").Build(), expected: ExitMissingInput},
		{name: "invalid svg", err: InvalidSVGError("bad").Build(), expected: ExitInvalidSVG},
		{name: "config", err: ConfigError("bad config").Build(), expected: ExitConfig},
		{name: "render", err: RenderError("render failed").Build(), expected: ExitOutput},
		{name: "internal", err: InternalError("boom").Build(), expected: ExitInternal},
		{name: "unclassified error", err: errors.New("unknown error"), expected: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatMissingInput(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())
	err := MissingInputError("Missing avatar SVG").
		WithContext("path", "brand-assets/logo_thumbnail.svg").
		WithContext("searched", []string{"scripts", "brand-assets"}).
		Build()

	msg := adapter.FormatError(err)
	for _, want := range []string{"Missing avatar SVG", "brand-assets/logo_thumbnail.svg", "scripts", "Searched:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got:\n%s", want, msg)
		}
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := NewCLIErrorAdapter(false, logger).WithOutput(&out)

	code := adapter.Report(InvalidSVGError("logo_dark.svg is not valid SVG").Build())
	if code != ExitInvalidSVG {
		t.Errorf("expected exit code %d, got %d", ExitInvalidSVG, code)
	}
	if !strings.Contains(out.String(), "logo_dark.svg") {
		t.Errorf("expected output to name the file, got %q", out.String())
	}
	if adapter.Report(nil) != ExitOK {
		t.Error("expected nil error to report success")
	}
}
