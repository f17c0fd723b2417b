// Package annotator stamps source location attributes onto JSX markup elements.
package annotator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/viant/locator/inspector/graph"
	"github.com/viant/locator/inspector/jsx"
	"github.com/viant/locator/transform"
)

// Name identifies the annotator within a transform pipeline
const Name = "locate-source-plugin"

// Annotator injects data-* location attributes into markup elements
type Annotator struct {
	config    *Config
	logger    *slog.Logger
	inspector *jsx.Inspector
}

// Result describes one annotation pass over a source unit
type Result struct {
	Source    []byte    // Emitted source, the input itself when nothing changed
	Records   []*Record // Records of annotated elements in document order
	Annotated int       // Number of annotated elements
	Skipped   int       // Number of elements skipped by policy
	Changed   bool      // Whether Source differs from the input
}

// New creates an annotator; an invalid config is returned as an error
func New(options ...Option) (*Annotator, error) {
	ret := &Annotator{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.config.Validate(); err != nil {
		return nil, err
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	ret.inspector = jsx.NewInspector(nil)
	return ret, nil
}

// Name returns the transform name
func (a *Annotator) Name() string {
	return Name
}

// Config returns a copy of the effective config
func (a *Annotator) Config() Config {
	return *a.config
}

// Transform annotates unit in place
func (a *Annotator) Transform(ctx context.Context, unit *transform.Unit) error {
	result, err := a.Annotate(ctx, unit.Path, unit.Source)
	if err != nil {
		return err
	}
	if result.Changed {
		if err = unit.Update(result.Source); err != nil {
			return err
		}
	}
	unit.Count(transform.MetricAnnotated, result.Annotated)
	unit.Count(transform.MetricSkipped, result.Skipped)
	return nil
}

// Annotate runs one pass over src located at location.
// Skip conditions are silent; only defects are returned as errors.
func (a *Annotator) Annotate(ctx context.Context, location string, src []byte) (*Result, error) {
	result := &Result{Source: src}
	if !a.config.Enabled {
		return result, nil
	}
	if location == "" {
		a.logger.Debug("annotate.skip", "reason", "no_filename")
		return result, nil
	}
	if !utf8.ValidString(location) {
		return nil, fmt.Errorf("%w: source path %q is not valid UTF-8", ErrInvalidEdit, location)
	}
	if a.config.IsDependency(location) {
		a.logger.Debug("annotate.skip", "reason", "dependency", "unit", location)
		return result, nil
	}

	file, err := a.inspector.InspectSource(ctx, src, location)
	if err != nil {
		return nil, err
	}

	var edits []edit
	for _, element := range file.Elements {
		if reason := a.skipReason(element); reason != "" {
			result.Skipped++
			a.logger.Debug("annotate.skip", "reason", reason, "unit", location, "tag", element.Tag)
			continue
		}
		record := NewRecord(element, location, a.config.ExtendedLocators)
		edits = append(edits, edit{offset: element.InsertAt, text: render(record.Attributes())})
		result.Records = append(result.Records, record)
	}
	if len(edits) == 0 {
		return result, nil
	}

	output, err := apply(src, edits)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate %s: %w", location, err)
	}
	result.Annotated = len(edits)
	result.Source = output
	result.Changed = !bytes.Equal(src, output)
	return result, nil
}

func (a *Annotator) skipReason(element *graph.Element) string {
	switch {
	case element.Span == nil:
		return "no_location"
	case element.HasAttribute(AttrAt):
		return "already_annotated"
	}
	return ""
}
