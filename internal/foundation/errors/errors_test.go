package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "brand-assets.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "brand-assets.yaml" {
			t.Errorf("expected context file=brand-assets.yaml, got %v", file)
		}
	})

	t.Run("Taxonomy severities", func(t *testing.T) {
		if !MissingInputError("x").Build().IsFatal() {
			t.Error("expected missing input to be fatal")
		}
		if !InvalidSVGError("x").Build().IsFatal() {
			t.Error("expected invalid svg to be fatal")
		}
		if RenderError("x").Build().IsFatal() {
			t.Error("expected render error to be recoverable per item")
		}
		if got := ManifestError("x").Build().Severity(); got != SeverityWarning {
			t.Errorf("expected manifest error to be a warning, got %s", got)
		}
	})
}

func TestErrorBuilder_Wrap(t *testing.T) {
	originalErr := errors.New("unexpected EOF")
	err := WrapError(originalErr, CategoryInvalidSVG, "logo_dark.svg is not valid SVG").
		Fatal().
		WithContext("path", "brand-assets/logo_dark.svg").
		Build()

	if !errors.Is(err, originalErr) {
		t.Error("expected error to wrap original error")
	}
	if path, _ := err.Context().GetString("path"); path != "brand-assets/logo_dark.svg" {
		t.Errorf("unexpected path context %q", path)
	}
}

func TestAsClassified_WrappedChain(t *testing.T) {
	inner := RenderError("render failed").WithContext("size", 16).Build()
	wrapped := fmt.Errorf("stage render: %w", inner)

	got, ok := AsClassified(wrapped)
	if !ok {
		t.Fatal("expected classified error in chain")
	}
	if got.Category() != CategoryRender {
		t.Errorf("expected render category, got %s", got.Category())
	}
	if !HasCategory(wrapped, CategoryRender) {
		t.Error("expected HasCategory to see through wrapping")
	}
	if GetCategory(errors.New("plain")) != CategoryInternal {
		t.Error("expected plain errors to default to internal")
	}
}

func TestClassifiedError_WithContextDoesNotMutate(t *testing.T) {
	base := MissingInputError("missing").Build()
	derived := base.WithContext("file", "logo.svg")

	if _, ok := base.Context().Get("file"); ok {
		t.Error("expected base context to stay unchanged")
	}
	if file, _ := derived.Context().GetString("file"); file != "logo.svg" {
		t.Errorf("expected derived context file, got %q", file)
	}
}

func TestSeverityHelpers(t *testing.T) {
	warn := ManifestError("manifest unreadable").Build()
	if GetSeverity(warn) != SeverityWarning {
		t.Errorf("expected warning severity, got %s", GetSeverity(warn))
	}
	if SlogLevel(GetSeverity(warn)) != slog.LevelWarn {
		t.Errorf("expected warn level for warning severity")
	}
	if GetSeverity(errors.New("plain")) != SeverityError {
		t.Errorf("expected error severity for unclassified errors")
	}
	if SlogLevel(SeverityFatal) != slog.LevelError {
		t.Errorf("expected error level for fatal severity")
	}
}
