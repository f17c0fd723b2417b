package transform

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/locator/inspector/repository"
	"golang.org/x/sync/errgroup"
)

// Options controls a project run
type Options struct {
	// Workers bounds concurrent units, defaults to the CPU count
	Workers int
	// OutputURL receives every unit under its root relative path; empty rewrites changed units in place
	OutputURL string
	// RelativePaths passes project relative unit paths to transforms instead of absolute ones
	RelativePaths bool
	DryRun        bool
}

// UnitReport summarizes one unit
type UnitReport struct {
	Path      string
	Output    string
	Annotated int
	Skipped   int
	Changed   bool
}

// Report summarizes a project run
type Report struct {
	Units     []*UnitReport
	Annotated int
	Skipped   int
	Changed   int
}

func (r *Report) add(unit *UnitReport) {
	r.Units = append(r.Units, unit)
	r.Annotated += unit.Annotated
	r.Skipped += unit.Skipped
	if unit.Changed {
		r.Changed++
	}
}

// Runner applies a pipeline to every source unit of a project
type Runner struct {
	pipeline *Pipeline
	options  Options
	fs       afs.Service
	detector *repository.Detector
	logger   *slog.Logger
}

// NewRunner creates a project runner
func NewRunner(pipeline *Pipeline, options *Options, logger *slog.Logger) *Runner {
	ret := &Runner{pipeline: pipeline, fs: afs.New(), detector: repository.New(), logger: logger}
	if options != nil {
		ret.options = *options
	}
	if ret.options.Workers <= 0 {
		ret.options.Workers = runtime.NumCPU()
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret
}

// Run discovers units under root, transforms them concurrently and writes the outputs.
// The first failing unit cancels the remaining work.
func (r *Runner) Run(ctx context.Context, root string) (*Report, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	units, err := Discover(root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover units in %s: %w", root, err)
	}
	r.logger.Info("project.discover", "root", root, "units", len(units))

	reports := make([]*UnitReport, len(units))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.options.Workers)
	for i, rel := range units {
		i, rel := i, rel
		group.Go(func() error {
			report, err := r.runUnit(ctx, root, rel)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}

	ret := &Report{}
	for _, report := range reports {
		ret.add(report)
	}
	r.logger.Info("project.done", "root", root, "units", len(ret.Units), "changed", ret.Changed, "annotated", ret.Annotated, "skipped", ret.Skipped)
	return ret, nil
}

func (r *Runner) runUnit(ctx context.Context, root, rel string) (*UnitReport, error) {
	location := filepath.Join(root, filepath.FromSlash(rel))
	source, err := r.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	unitPath := location
	if r.options.RelativePaths {
		project, err := r.detector.DetectProject(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("failed to detect project of %s: %w", location, err)
		}
		unitPath = project.RelativePath
	}

	unit := NewUnit(unitPath, source)
	if err = r.pipeline.Run(ctx, unit); err != nil {
		return nil, err
	}
	report := &UnitReport{
		Path:      rel,
		Annotated: unit.Metric(MetricAnnotated),
		Skipped:   unit.Metric(MetricSkipped),
		Changed:   !bytes.Equal(source, unit.Source),
	}
	switch {
	case r.options.OutputURL != "":
		report.Output = url.Join(r.options.OutputURL, rel)
	case report.Changed:
		report.Output = location
	default:
		return report, nil
	}
	if r.options.DryRun {
		return report, nil
	}
	if err = r.fs.Upload(ctx, report.Output, 0o644, bytes.NewReader(unit.Source)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", report.Output, err)
	}
	r.logger.Debug("project.unit.written", "unit", rel, "output", report.Output, "changed", report.Changed)
	return report, nil
}
