// Package transform defines the boundary a build pipeline uses to run named
// source transforms over one source unit at a time.
package transform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrFrozenUnit is returned when a transform tries to modify a frozen unit
var ErrFrozenUnit = errors.New("unit is frozen")

// Counters maintained by annotating transforms
const (
	MetricAnnotated = "annotated"
	MetricSkipped   = "skipped"
)

// Unit represents one source unit flowing through a pipeline
type Unit struct {
	Path   string
	Source []byte

	frozen  bool
	metrics map[string]int
}

// NewUnit creates a unit for the source at location
func NewUnit(location string, source []byte) *Unit {
	return &Unit{Path: location, Source: source}
}

// Freeze marks the unit read-only; later updates fail with ErrFrozenUnit
func (u *Unit) Freeze() {
	u.frozen = true
}

// Frozen reports whether the unit is read-only
func (u *Unit) Frozen() bool {
	return u.frozen
}

// Update replaces the unit source
func (u *Unit) Update(source []byte) error {
	if u.frozen {
		return fmt.Errorf("%w: %s", ErrFrozenUnit, u.Path)
	}
	u.Source = source
	return nil
}

// Count adds delta to a named counter
func (u *Unit) Count(name string, delta int) {
	if u.metrics == nil {
		u.metrics = make(map[string]int)
	}
	u.metrics[name] += delta
}

// Metric returns a named counter value
func (u *Unit) Metric(name string) int {
	return u.metrics[name]
}

// Transform is a named step rewriting a unit in place
type Transform interface {
	Name() string
	Transform(ctx context.Context, unit *Unit) error
}

// Pipeline runs registered transforms in order
type Pipeline struct {
	transforms []Transform
	logger     *slog.Logger
}

// NewPipeline creates a pipeline with the given transforms
func NewPipeline(logger *slog.Logger, transforms ...Transform) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{transforms: transforms, logger: logger}
}

// Register appends a transform
func (p *Pipeline) Register(transform Transform) {
	p.transforms = append(p.transforms, transform)
}

// Names returns registered transform names in run order
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.transforms))
	for _, transform := range p.transforms {
		names = append(names, transform.Name())
	}
	return names
}

// Run applies every transform to unit, stopping at the first failure
func (p *Pipeline) Run(ctx context.Context, unit *Unit) error {
	for _, transform := range p.transforms {
		if err := ctx.Err(); err != nil {
			return err
		}
		started := time.Now()
		if err := transform.Transform(ctx, unit); err != nil {
			return fmt.Errorf("transform %s failed on %s: %w", transform.Name(), unit.Path, err)
		}
		p.logger.Debug("transform.done", "transform", transform.Name(), "unit", unit.Path, "elapsed", time.Since(started))
	}
	return nil
}
