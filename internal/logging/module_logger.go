package logging

import (
	"context"

	"github.com/goliatone/go-mdmeta/pkg/interfaces"
)

const (
	rootModule     = "mdmeta"
	parseModule    = "mdmeta.parse"
	headingsModule = "mdmeta.headings"
	cliModule      = "mdmeta.cli"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ParseLogger returns the logger namespace reserved for the metadata pipeline.
func ParseLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, parseModule)
}

// HeadingsLogger returns the logger namespace reserved for heading-ID passes.
func HeadingsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, headingsModule)
}

// CLILogger returns the logger namespace reserved for command-line tooling.
func CLILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cliModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so callers can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
