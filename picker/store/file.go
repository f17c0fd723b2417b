package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// File keeps values in a YAML document at an afs URL
type File struct {
	URL string
	fs  afs.Service
	mu  sync.Mutex
}

// NewFile creates a store backed by the YAML document at URL
func NewFile(URL string) *File {
	return &File{URL: URL, fs: afs.New()}
}

// Get returns the value stored under key
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load(ctx)
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key and rewrites the document
func (f *File) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load(ctx)
	if err != nil {
		return err
	}
	values[key] = value
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := f.fs.Upload(ctx, f.URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", f.URL, err)
	}
	return nil
}

func (f *File) load(ctx context.Context) (map[string]string, error) {
	values := make(map[string]string)
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check preferences %s: %w", f.URL, err)
	}
	if !exists {
		return values, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences %s: %w", f.URL, err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode preferences %s: %w", f.URL, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}
