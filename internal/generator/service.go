// Package generator provides the asset generation pipeline.
// All execution paths (CLI, tests) route through Service.
package generator

import (
	"context"
	"image"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/brandassets/internal/catalog"
	"git.home.luguber.info/inful/brandassets/internal/inputs"
	"git.home.luguber.info/inful/brandassets/internal/manifest"
	"git.home.luguber.info/inful/brandassets/internal/metrics"
	"git.home.luguber.info/inful/brandassets/internal/svg"
)

// Service is the canonical interface for executing a generator run.
type Service interface {
	// Run executes the pipeline: resolve → validate → load → render → favicon → manifest.
	// It returns a Result even when it also returns an error.
	Run(ctx context.Context, req Request) (*Result, error)
}

// Renderer rasterizes a parsed SVG into a size×size image.
type Renderer interface {
	Render(doc *svg.Document, size int) (*image.RGBA, error)
}

// Request contains all inputs required to execute a run.
type Request struct {
	// ScriptDir and AssetsDir are searched in that order for each input.
	ScriptDir string
	AssetsDir string

	// Overrides pins individual inputs to explicit paths.
	Overrides map[inputs.Role]string

	// OutputDir receives every generated file. Created when missing.
	OutputDir string

	// Catalog lists the rasters to produce. Defaults to catalog.Default().
	Catalog catalog.Catalog

	// Supersample is the oversampling factor for the default renderer.
	Supersample int

	SkipFaviconSVG bool
	SkipFaviconICO bool

	// ManifestPath defaults to manifest.json in OutputDir.
	ManifestPath      string
	ManifestSrcPrefix string
	SkipManifest      bool
}

// Status represents the outcome of a run.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusPartial  Status = "partial" // some outputs failed to render
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

// Result contains the outcome of a run.
type Result struct {
	RunID     string
	Status    Status
	OutputDir string
	Inputs    inputs.Set

	// Generated lists written files in write order.
	Generated []string

	// Failed lists output filenames whose render or write failed.
	Failed []string

	Manifest       manifest.Outcome
	Warnings       []error
	StageDurations map[StageName]time.Duration
	Duration       time.Duration
}

// DefaultService is the production Service implementation.
type DefaultService struct {
	recorder metrics.Recorder
	logger   *slog.Logger
	renderer Renderer
}

// NewService creates a service with no metrics and the default logger.
func NewService() *DefaultService {
	return &DefaultService{
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithRecorder sets the metrics recorder.
func (s *DefaultService) WithRecorder(r metrics.Recorder) *DefaultService {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithLogger sets the logger.
func (s *DefaultService) WithLogger(l *slog.Logger) *DefaultService {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithRenderer replaces the oksvg rasterizer built from Request.Supersample.
func (s *DefaultService) WithRenderer(r Renderer) *DefaultService {
	s.renderer = r
	return s
}
