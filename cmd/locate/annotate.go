package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/locator/annotator"
	"github.com/viant/locator/inspector/jsx"
	"github.com/viant/locator/transform"
)

var annotateFlags struct {
	config   string
	enabled  bool
	extended bool
	out      string
	workers  int
	relative bool
	dryRun   bool
}

var annotateCmd = &cobra.Command{
	Use:   "annotate [root]",
	Short: "Add source location attributes to every JSX element under root",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		plugin, err := annotator.New(annotator.WithConfig(cfg), annotator.WithLogger(logger))
		if err != nil {
			return err
		}
		runner := transform.NewRunner(transform.NewPipeline(logger, plugin), &transform.Options{
			Workers:       annotateFlags.workers,
			OutputURL:     annotateFlags.out,
			RelativePaths: annotateFlags.relative,
			DryRun:        annotateFlags.dryRun,
		}, logger)
		report, err := runner.Run(cmd.Context(), root)
		if err != nil {
			return err
		}
		for _, unit := range report.Units {
			if unit.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d annotated, %d skipped\n", unit.Path, unit.Annotated, unit.Skipped)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d units, %d changed, %d elements annotated\n", len(report.Units), report.Changed, report.Annotated)
		return nil
	},
}

func loadConfig(cmd *cobra.Command) (*annotator.Config, error) {
	var cfg *annotator.Config
	if annotateFlags.config != "" {
		loaded, err := annotator.LoadConfig(cmd.Context(), annotateFlags.config, logger)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		if err := annotator.LoadEnv(); err != nil {
			return nil, err
		}
		cfg = annotator.DefaultConfig()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("enabled") {
		cfg.Enabled = annotateFlags.enabled
	}
	if cmd.Flags().Changed("extended") {
		cfg.ExtendedLocators = annotateFlags.extended
	}
	return cfg, nil
}

var skipTests bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir|file>",
	Short: "List JSX elements with their spans and enclosing components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inspector := jsx.NewInspector(&jsx.Config{SkipTests: skipTests})
		emitter := &jsx.Emitter{}
		if jsx.IsSource(args[0]) {
			file, err := inspector.InspectFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			listing, err := emitter.Emit(file)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(listing)
			return err
		}
		pkg, err := inspector.InspectPackage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, file := range pkg.FileSet {
			listing, err := emitter.Emit(file)
			if err != nil {
				return err
			}
			if _, err = cmd.OutOrStdout().Write(listing); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d elements in %d files\n", pkg.ElementCount(), len(pkg.FileSet))
		return nil
	},
}

func init() {
	flags := annotateCmd.Flags()
	flags.StringVarP(&annotateFlags.config, "config", "c", "", "YAML annotator config (any afs URL)")
	flags.BoolVar(&annotateFlags.enabled, "enabled", false, "Force annotation on or off (default: on only when LOCATE_SOURCE_MODE or NODE_ENV is development)")
	flags.BoolVar(&annotateFlags.extended, "extended", false, "Emit extended locator attributes")
	flags.StringVarP(&annotateFlags.out, "out", "o", "", "Output base URL; rewrites in place when empty")
	flags.IntVarP(&annotateFlags.workers, "workers", "w", 0, "Concurrent units, defaults to CPU count")
	flags.BoolVar(&annotateFlags.relative, "relative", false, "Emit project relative file paths")
	flags.BoolVar(&annotateFlags.dryRun, "dry-run", false, "Report without writing")
	inspectCmd.Flags().BoolVar(&skipTests, "skip-tests", false, "Ignore *.test.* and *.spec.* units")
}
