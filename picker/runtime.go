// Package picker implements the element picker: an armed click on annotated
// markup opens the originating source in the preferred editor.
package picker

import (
	"context"
	"log/slog"

	"github.com/viant/locator/picker/store"
)

// Stable element IDs used to keep initialization idempotent
const (
	SettingsPanelID  = "locate-source-settings"
	SettingsToggleID = "locate-source-settings-toggle"
	PickerToggleID   = "locate-source-picker-toggle"
	EditorSelectID   = "locate-source-ide-select"
	SettingsCloseID  = "locate-source-settings-close"

	// ActiveClass marks the picker button and ArmedBodyClass the body while armed
	ActiveClass    = "active"
	ArmedBodyClass = "locate-source-picker-active"

	armedTitle = "Click any element to open its source (ESC to cancel)"
	idleTitle  = "Pick element to open source"
)

// Locator attribute names read from annotated markup
const (
	AttrAt       = "data-at"
	AttrFilepath = "data-filepath"
	AttrLine     = "data-line"
)

// Runtime owns the picker state of one document
type Runtime struct {
	doc    Document
	store  PreferenceStore
	opener Opener
	logger *slog.Logger
	active bool
}

// New creates a runtime for doc; a nil doc yields an inert runtime
func New(doc Document, options ...Option) *Runtime {
	ret := &Runtime{doc: doc}
	for _, option := range options {
		option(ret)
	}
	if ret.store == nil {
		ret.store = store.NewMemory()
	}
	if ret.opener == nil {
		ret.opener = NewCommandOpener()
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret
}

// Available reports whether an interactive document is attached
func (r *Runtime) Available() bool {
	return r.doc != nil
}

// Init creates the settings toggle, the settings panel and the picker button.
// Each control is created only when its ID is absent, so Init may be called repeatedly.
func (r *Runtime) Init(ctx context.Context) {
	if !r.Available() {
		r.logger.Debug("picker.init.skip", "reason", "no_document")
		return
	}
	r.createSettingsPanel(ctx)
	r.createSettingsToggle()
	r.createPickerToggle()
	r.logger.Debug("picker.init.done")
}

// State returns a snapshot of the picker state
func (r *Runtime) State(ctx context.Context) State {
	return State{Active: r.active, PreferredEditor: r.PreferredEditor(ctx)}
}

// Active reports whether the picker is armed
func (r *Runtime) Active() bool {
	return r.active
}

// SetActive arms or disarms the picker and refreshes its affordances
func (r *Runtime) SetActive(active bool) {
	r.active = active
	if !r.Available() {
		return
	}
	button := r.doc.ElementByID(PickerToggleID)
	if button == nil {
		return
	}
	body := r.doc.Body()
	if active {
		button.AddClass(ActiveClass)
		button.SetAttribute("title", armedTitle)
		if body != nil {
			body.AddClass(ArmedBodyClass)
		}
		return
	}
	button.RemoveClass(ActiveClass)
	button.SetAttribute("title", idleTitle)
	if body != nil {
		body.RemoveClass(ArmedBodyClass)
	}
}

// Toggle flips the armed state
func (r *Runtime) Toggle() {
	r.SetActive(!r.active)
}

// Dispatch delivers a host event. Clicks are first offered to the picker,
// as a capturing listener would see them, then to the runtime controls.
func (r *Runtime) Dispatch(ctx context.Context, event *Event) {
	if event == nil {
		return
	}
	switch event.Type {
	case Click:
		if r.active {
			r.capture(ctx, event)
			if event.PropagationStopped() {
				return
			}
		}
		switch closestID(event.Target, PickerToggleID, SettingsToggleID, SettingsCloseID) {
		case PickerToggleID:
			r.Toggle()
			r.CloseSettings()
		case SettingsToggleID:
			r.ToggleSettings()
		case SettingsCloseID:
			r.CloseSettings()
		}
	case KeyDown:
		if event.Key == EscapeKey && r.active {
			r.SetActive(false)
		}
	case Change:
		if event.Target != nil && event.Target.ID() == EditorSelectID {
			r.SelectEditor(ctx, event.Value)
		}
	}
}

// capture intercepts a click landing on or inside annotated markup.
// Without a resolvable locator the picker stays armed.
func (r *Runtime) capture(ctx context.Context, event *Event) {
	if event.Target == nil || Closest(event.Target, AttrAt) == nil {
		return
	}
	event.PreventDefault()
	event.StopPropagation()
	if _, ok := r.Pick(ctx, event.Target); ok {
		r.SetActive(false)
	}
}

// Pick resolves target to an editor URI and opens it.
// It reports false when no ancestor carries a file path and line.
func (r *Runtime) Pick(ctx context.Context, target Element) (string, bool) {
	located := Closest(target, AttrFilepath, AttrLine)
	if located == nil {
		r.logger.Debug("picker.pick.skip", "reason", "no_locator")
		return "", false
	}
	location, _ := located.Attribute(AttrFilepath)
	line, _ := located.Attribute(AttrLine)
	if location == "" || line == "" {
		return "", false
	}
	editor := r.PreferredEditor(ctx)
	uri := editor.URI(location, line)
	if err := r.opener.Open(ctx, uri); err != nil {
		r.logger.Warn("picker.open.failed", "uri", uri, "error", err)
	} else {
		r.logger.Info("picker.open", "file", location, "line", line, "editor", string(editor))
	}
	return uri, true
}

// PreferredEditor reads the stored editor, defaulting to VS Code
func (r *Runtime) PreferredEditor(ctx context.Context) Editor {
	value, ok, err := r.store.Get(ctx, PreferenceKey)
	if err != nil {
		r.logger.Warn("picker.preference.read_failed", "error", err)
		return DefaultEditor
	}
	if !ok {
		return DefaultEditor
	}
	editor, err := ParseEditor(value)
	if err != nil {
		return DefaultEditor
	}
	return editor
}
