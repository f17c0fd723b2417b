package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/locator/picker"
	"github.com/viant/locator/picker/htmldoc"
	"github.com/viant/locator/picker/store"
)

var (
	editorName string
	prefsPath  string
	pickTarget string
	pickPrint  bool
)

var uriCmd = &cobra.Command{
	Use:   "uri <path>:<line>",
	Short: "Print the editor URI opening a source location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location, line, err := splitLocation(args[0])
		if err != nil {
			return err
		}
		editor, err := picker.ParseEditor(editorName)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), editor.URI(location, line))
		return nil
	},
}

var editorCmd = &cobra.Command{
	Use:   "editor [name]",
	Short: "Show or set the preferred editor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, closer, err := openStore(prefsPath)
		if err != nil {
			return err
		}
		defer closer()
		ctx := cmd.Context()
		if len(args) == 1 {
			editor, err := picker.ParseEditor(args[0])
			if err != nil {
				return err
			}
			if err = prefs.Set(ctx, picker.PreferenceKey, string(editor)); err != nil {
				return fmt.Errorf("failed to save preference: %w", err)
			}
		}
		runtime := picker.New(nil, picker.WithStore(prefs), picker.WithLogger(logger))
		editor := runtime.PreferredEditor(ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", editor, editor.Label())
		return nil
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick <page.html>",
	Short: "Arm the picker on a rendered page, click an element and open its source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		doc, err := htmldoc.Load(ctx, args[0])
		if err != nil {
			return err
		}
		target := doc.ElementByID(pickTarget)
		if target == nil {
			return fmt.Errorf("element %q not found in %s", pickTarget, args[0])
		}
		prefs, closer, err := openStore(prefsPath)
		if err != nil {
			return err
		}
		defer closer()

		recorder := &picker.RecordingOpener{}
		var opener picker.Opener = picker.NewCommandOpener()
		if pickPrint {
			opener = recorder
		}
		runtime := picker.New(doc, picker.WithStore(prefs), picker.WithOpener(opener), picker.WithLogger(logger))
		runtime.Init(ctx)
		runtime.SetActive(true)
		event := picker.NewClick(target)
		runtime.Dispatch(ctx, event)
		if !event.DefaultPrevented() {
			return fmt.Errorf("element %q is not inside annotated markup", pickTarget)
		}
		if runtime.Active() {
			return fmt.Errorf("element %q has no resolvable source location", pickTarget)
		}
		for _, uri := range recorder.URIs() {
			fmt.Fprintln(cmd.OutOrStdout(), uri)
		}
		return nil
	},
}

// splitLocation splits path:line at the last colon
func splitLocation(value string) (string, string, error) {
	index := strings.LastIndex(value, ":")
	if index <= 0 || index == len(value)-1 {
		return "", "", fmt.Errorf("invalid location %q, expected <path>:<line>", value)
	}
	line := value[index+1:]
	if _, err := strconv.Atoi(line); err != nil {
		return "", "", fmt.Errorf("invalid line in %q: %w", value, err)
	}
	return value[:index], line, nil
}

// openStore opens a sqlite store for .db paths and a YAML file store otherwise
func openStore(location string) (picker.PreferenceStore, func(), error) {
	if location == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return store.NewMemory(), func() {}, nil
		}
		location = filepath.Join(dir, "locate", "preferences.yaml")
	}
	if strings.EqualFold(filepath.Ext(location), ".db") {
		if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
			return nil, nil, err
		}
		db, err := store.NewSQLite(location)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}
	return store.NewFile(location), func() {}, nil
}

func init() {
	uriCmd.Flags().StringVarP(&editorName, "editor", "e", string(picker.DefaultEditor), "Editor scheme: vscode, intellij, atom, sublime, cursor")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "Preference store, .db for sqlite, YAML otherwise")
	pickCmd.Flags().StringVarP(&pickTarget, "target", "t", "", "ID of the element to click")
	pickCmd.Flags().BoolVar(&pickPrint, "print", false, "Print the URI instead of opening it")
	_ = pickCmd.MarkFlagRequired("target")
}
