package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/viant/locator/picker"
	"github.com/viant/locator/picker/htmldoc"
)

const sessionPrompt = "locate> "

var sessionOpen bool

var sessionCommands = map[string]string{
	"arm":      "arm the picker",
	"disarm":   "disarm the picker",
	"click":    "click <id>: deliver a click to an element",
	"esc":      "press Escape",
	"settings": "toggle the settings panel",
	"close":    "close the settings panel",
	"editor":   "editor <name>: choose the preferred editor",
	"state":    "print the picker state",
	"render":   "print the page with picker controls",
	"help":     "list commands",
	"quit":     "leave the session",
}

var sessionCmd = &cobra.Command{
	Use:   "session <page.html>",
	Short: "Drive the picker on a rendered page interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		doc, err := htmldoc.Load(ctx, args[0])
		if err != nil {
			return err
		}
		prefs, closer, err := openStore(prefsPath)
		if err != nil {
			return err
		}
		defer closer()
		s := &session{doc: doc, recorder: &picker.RecordingOpener{}, out: cmd.OutOrStdout()}
		opener := picker.Opener(s.recorder)
		if sessionOpen {
			system := picker.NewCommandOpener()
			opener = picker.OpenerFunc(func(ctx context.Context, uri string) error {
				_ = s.recorder.Open(ctx, uri)
				return system.Open(ctx, uri)
			})
		}
		s.runtime = picker.New(doc, picker.WithStore(prefs), picker.WithOpener(opener), picker.WithLogger(logger))
		s.runtime.Init(ctx)

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)
		ln.SetCompleter(completeCommand)
		for {
			line, err := ln.Prompt(sessionPrompt)
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			ln.AppendHistory(line)
			if s.execute(ctx, line) {
				return nil
			}
		}
	},
}

func completeCommand(line string) []string {
	var result []string
	for name := range sessionCommands {
		if strings.HasPrefix(name, strings.ToLower(line)) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

type session struct {
	doc      *htmldoc.Document
	runtime  *picker.Runtime
	recorder *picker.RecordingOpener
	opened   int
	out      io.Writer
}

// execute runs one session command and reports whether the session should end
func (s *session) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "quit", "exit":
		return true
	case "arm":
		s.runtime.SetActive(true)
	case "disarm":
		s.runtime.SetActive(false)
	case "esc":
		s.runtime.Dispatch(ctx, picker.NewKeyDown(picker.EscapeKey))
	case "settings":
		s.click(ctx, picker.SettingsToggleID)
	case "close":
		s.click(ctx, picker.SettingsCloseID)
	case "click":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: click <id>")
			return false
		}
		s.click(ctx, args[0])
	case "editor":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: editor <name>")
			return false
		}
		if selector := s.doc.ElementByID(picker.EditorSelectID); selector != nil {
			s.runtime.Dispatch(ctx, picker.NewChange(selector, args[0]))
		}
	case "render":
		if err := s.doc.Render(s.out); err != nil {
			fmt.Fprintln(s.out, err)
		}
		fmt.Fprintln(s.out)
		return false
	case "help":
		names := completeCommand("")
		for _, command := range names {
			fmt.Fprintf(s.out, "  %-9s %s\n", command, sessionCommands[command])
		}
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help\n", name)
		return false
	}
	s.report(ctx)
	return false
}

func (s *session) click(ctx context.Context, id string) {
	target := s.doc.ElementByID(id)
	if target == nil {
		fmt.Fprintf(s.out, "no element with id %q\n", id)
		return
	}
	s.runtime.Dispatch(ctx, picker.NewClick(target))
}

func (s *session) report(ctx context.Context) {
	uris := s.recorder.URIs()
	for _, uri := range uris[s.opened:] {
		fmt.Fprintf(s.out, "open %s\n", uri)
	}
	s.opened = len(uris)
	state := s.runtime.State(ctx)
	fmt.Fprintf(s.out, "%s editor=%s settings=%t\n", state.Mode(), state.PreferredEditor, s.runtime.SettingsOpen())
}

func init() {
	sessionCmd.Flags().BoolVar(&sessionOpen, "open", false, "Also hand picked URIs to the system URL handler")
}
