package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "locate",
		Short: "Annotate JSX markup with source locations and open picked elements in an editor",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}
	verbose bool
	logger  = slog.Default()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(uriCmd)
	rootCmd.AddCommand(editorCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(sessionCmd)
}
