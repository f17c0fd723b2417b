package annotator

import (
	"log/slog"
)

type Option func(*Annotator)

// WithConfig sets the annotator config
func WithConfig(config *Config) Option {
	return func(a *Annotator) {
		if config == nil {
			a.config = nil
			return
		}
		clone := *config
		clone.DependencyMarkers = append([]string{}, config.DependencyMarkers...)
		a.config = &clone
	}
}

// WithEnabled overrides Config.Enabled
func WithEnabled(enabled bool) Option {
	return func(a *Annotator) {
		if a.config == nil {
			a.config = DefaultConfig()
		}
		a.config.Enabled = enabled
	}
}

// WithExtendedLocators overrides Config.ExtendedLocators
func WithExtendedLocators(extended bool) Option {
	return func(a *Annotator) {
		if a.config == nil {
			a.config = DefaultConfig()
		}
		a.config.ExtendedLocators = extended
	}
}

// WithDependencyMarkers replaces the path segments marking dependency code
func WithDependencyMarkers(markers ...string) Option {
	return func(a *Annotator) {
		if a.config == nil {
			a.config = DefaultConfig()
		}
		a.config.DependencyMarkers = markers
	}
}

// WithLogger sets the logger used for skip diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		a.logger = logger
	}
}
