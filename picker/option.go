package picker

import "log/slog"

type Option func(*Runtime)

// WithStore sets the durable preference store
func WithStore(store PreferenceStore) Option {
	return func(r *Runtime) {
		r.store = store
	}
}

// WithOpener sets how editor URIs are opened
func WithOpener(opener Opener) Option {
	return func(r *Runtime) {
		r.opener = opener
	}
}

// WithLogger sets the runtime logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}
