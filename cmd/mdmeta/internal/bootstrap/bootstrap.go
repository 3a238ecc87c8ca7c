package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-mdmeta/internal/logging"
	"github.com/goliatone/go-mdmeta/internal/logging/gologger"
	"github.com/goliatone/go-mdmeta/internal/render"
	"github.com/goliatone/go-mdmeta/pkg/interfaces"
)

// Options captures configuration for the mdmeta CLI bootstrap.
type Options struct {
	LogLevel   string
	LogFormat  string
	Extensions []string
	HardWraps  bool
	SafeMode   bool
	// LoggerProvider overrides the go-logger provider, mainly for tests.
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the logger and renderer shared by the CLI subcommands.
type Module struct {
	Provider interfaces.LoggerProvider
	Logger   interfaces.Logger
	Renderer *render.Renderer
}

// BuildModule wires the go-logger provider and the goldmark renderer from the
// supplied options.
func BuildModule(opts Options) (*Module, error) {
	provider := opts.LoggerProvider
	if provider == nil {
		built, err := gologger.NewProvider(gologger.Config{
			Level:  opts.LogLevel,
			Format: opts.LogFormat,
		})
		if err != nil {
			return nil, fmt.Errorf("bootstrap logger: %w", err)
		}
		provider = built
	}

	return &Module{
		Provider: provider,
		Logger:   logging.CLILogger(provider),
		Renderer: render.NewRenderer(render.Options{
			Extensions: opts.Extensions,
			HardWraps:  opts.HardWraps,
			SafeMode:   opts.SafeMode,
		}),
	}, nil
}

// ParseLogger returns the logger namespace the metadata pipeline reports
// diagnostics through.
func (m *Module) ParseLogger() interfaces.Logger {
	if m == nil {
		return logging.NoOp()
	}
	return logging.ParseLogger(m.Provider)
}

// HeadingsLogger returns the logger namespace used by heading-ID rewrites.
func (m *Module) HeadingsLogger() interfaces.Logger {
	if m == nil {
		return logging.NoOp()
	}
	return logging.HeadingsLogger(m.Provider)
}

// SplitExtensions turns a comma separated flag value into a clean slice.
func SplitExtensions(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
