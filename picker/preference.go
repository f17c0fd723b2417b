package picker

import "context"

// PreferenceKey is the durable storage key of the preferred editor
const PreferenceKey = "locate-source-ide"

// PreferenceStore is a durable key-value store
type PreferenceStore interface {
	// Get returns the stored value and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
