package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/brandassets/internal/config"
	ferrors "git.home.luguber.info/inful/brandassets/internal/foundation/errors"
	"git.home.luguber.info/inful/brandassets/internal/generator"
	"git.home.luguber.info/inful/brandassets/internal/inputs"
	"git.home.luguber.info/inful/brandassets/internal/logfields"
	"git.home.luguber.info/inful/brandassets/internal/metrics"
	"git.home.luguber.info/inful/brandassets/internal/version"
	"git.home.luguber.info/inful/brandassets/internal/workspace"
	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"
)

const appName = "generate-brand-assets"

// DefaultConfigName is looked up in the project root when --config is not given.
const DefaultConfigName = "brand-assets.yaml"

// CLI is the complete flag surface. There are no subcommands; one invocation
// performs the whole pipeline.
type CLI struct {
	OutDir         string `name:"out-dir" short:"o" help:"Output directory (default: repository root)" type:"path"`
	AvatarSVG      string `name:"avatar-svg" help:"Thumbnail SVG to render, bypassing the search order" type:"path"`
	SkipFaviconSVG bool   `name:"skip-favicon-svg" help:"Do not write favicon.svg"`

	ExtendedLight  string `name:"extended-light" help:"Light logo SVG to validate, bypassing the search order" type:"path"`
	ExtendedDark   string `name:"extended-dark" help:"Dark logo SVG to validate, bypassing the search order" type:"path"`
	ScriptDir      string `name:"script-dir" help:"First directory searched for input SVGs (default: <root>/scripts)" type:"path"`
	AssetsDir      string `name:"assets-dir" help:"Second directory searched for input SVGs (default: <root>/brand-assets)" type:"path"`
	SkipFaviconICO bool   `name:"skip-favicon-ico" help:"Do not write favicon.ico"`
	Manifest       string `name:"manifest" help:"Web manifest to update (default: <out-dir>/manifest.json)" type:"path"`
	SkipManifest   bool   `name:"skip-manifest" help:"Do not touch the web manifest"`

	Config      string           `short:"c" help:"Configuration file path (default: <root>/brand-assets.yaml if present)" type:"path" env:"BRAND_ASSETS_CONFIG"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics to this textfile after the run" type:"path" env:"BRAND_ASSETS_METRICS_FILE"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// logSink carries the writer diagnostics go to.
type logSink struct {
	w io.Writer
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(sink *logSink) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(sink.w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// execute parses args and runs the generator, returning the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exited := false
	exitCode := ferrors.ExitOK

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description("Render brand logo SVGs into Android, Apple, favicon and Microsoft icon assets."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			exited = true
			exitCode = code
		}),
		kong.Bind(&logSink{w: stderr}),
		kong.UsageOnError(),
	)
	if err != nil {
		internal := ferrors.InternalError("cannot build command-line parser").WithCause(err).Build()
		return ferrors.NewCLIErrorAdapter(false, slog.Default()).WithOutput(stderr).Report(internal)
	}
	if _, err := parser.Parse(args); err != nil {
		if exited {
			return exitCode
		}
		_, _ = fmt.Fprintf(stderr, "%s: error: %v\n", appName, err)
		return ferrors.ExitConfig
	}
	if exited {
		return exitCode
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter := ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).WithOutput(stderr)
	return adapter.Report(cli.Run(ctx, stdout))
}

// Run performs one generator run and prints the summary line on success.
func (c *CLI) Run(ctx context.Context, stdout io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return ferrors.FileSystemError("cannot determine working directory").WithCause(err).Build()
	}
	layout, err := workspace.Detect(cwd)
	if err != nil {
		return ferrors.FileSystemError("cannot resolve project root").WithCause(err).Build()
	}

	cfg, err := c.loadConfig(layout)
	if err != nil {
		return err
	}
	req := c.request(cfg, layout)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var promRecorder *metrics.PrometheusRecorder
	metricsFile := firstNonEmpty(c.MetricsFile, cfg.Metrics.Textfile)
	if metricsFile != "" {
		promRecorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		recorder = promRecorder
	}

	slog.Info("Generating brand assets",
		logfields.OutputDir(req.OutputDir),
		slog.String("version", version.Version))

	svc := generator.NewService().WithRecorder(recorder).WithLogger(slog.Default())
	result, runErr := svc.Run(ctx, req)

	if promRecorder != nil {
		if err := promRecorder.WriteTextfile(metricsFile); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	abs, err := filepath.Abs(result.OutputDir)
	if err != nil {
		abs = result.OutputDir
	}
	_, _ = fmt.Fprintf(stdout, "Generated %d files in %s\n", len(result.Generated), abs)
	return nil
}

// loadConfig reads --config when given (it must exist), otherwise the
// optional brand-assets.yaml in the project root.
func (c *CLI) loadConfig(layout workspace.Layout) (*config.Config, error) {
	if c.Config != "" {
		return config.Load(c.Config, true)
	}
	return config.Load(filepath.Join(layout.Root, DefaultConfigName), false)
}

// request merges flags over config over project-layout defaults.
func (c *CLI) request(cfg *config.Config, layout workspace.Layout) generator.Request {
	overrides := map[inputs.Role]string{}
	for role, path := range map[inputs.Role]string{
		inputs.RoleThumbnail: firstNonEmpty(c.AvatarSVG, cfg.Inputs.Thumbnail),
		inputs.RoleLight:     firstNonEmpty(c.ExtendedLight, cfg.Inputs.Light),
		inputs.RoleDark:      firstNonEmpty(c.ExtendedDark, cfg.Inputs.Dark),
	} {
		if path != "" {
			overrides[role] = path
		}
	}

	return generator.Request{
		ScriptDir:         firstNonEmpty(c.ScriptDir, cfg.Inputs.ScriptDir, layout.ScriptDir),
		AssetsDir:         firstNonEmpty(c.AssetsDir, cfg.Inputs.AssetsDir, layout.AssetsDir),
		Overrides:         overrides,
		OutputDir:         firstNonEmpty(c.OutDir, cfg.Output.Directory, layout.Root),
		Catalog:           cfg.Catalog,
		Supersample:       cfg.Render.Supersample,
		SkipFaviconSVG:    c.SkipFaviconSVG || cfg.Output.SkipFaviconSVG,
		SkipFaviconICO:    c.SkipFaviconICO || cfg.Output.SkipFaviconICO,
		ManifestPath:      firstNonEmpty(c.Manifest, cfg.Manifest.Path),
		ManifestSrcPrefix: cfg.Manifest.SrcPrefix,
		SkipManifest:      c.SkipManifest || cfg.Manifest.Skip,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
