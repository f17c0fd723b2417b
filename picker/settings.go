package picker

import (
	"context"
)

const pickerStyle = `#locate-source-picker-toggle.active {
  background-color: #f44336;
}
.locate-source-picker-active [data-at]:hover {
  outline: 2px solid #f44336 !important;
  cursor: pointer !important;
}`

func (r *Runtime) createSettingsPanel(ctx context.Context) {
	if r.doc.ElementByID(SettingsPanelID) != nil {
		return
	}
	body := r.doc.Body()
	if body == nil {
		r.logger.Debug("picker.settings.skip", "reason", "no_body")
		return
	}
	panel := r.doc.CreateElement("div")
	panel.SetAttribute("id", SettingsPanelID)
	setVisible(panel, false)

	title := r.doc.CreateElement("strong")
	title.SetText("Source Location Settings")
	panel.AppendChild(title)

	label := r.doc.CreateElement("div")
	label.SetText("Select your IDE:")
	panel.AppendChild(label)

	current := r.PreferredEditor(ctx)
	selector := r.doc.CreateElement("select")
	selector.SetAttribute("id", EditorSelectID)
	for _, editor := range Editors {
		option := r.doc.CreateElement("option")
		option.SetAttribute("value", string(editor))
		option.SetText(editor.Label())
		if editor == current {
			option.SetAttribute("selected", "")
		}
		selector.AppendChild(option)
	}
	panel.AppendChild(selector)

	closer := r.doc.CreateElement("button")
	closer.SetAttribute("id", SettingsCloseID)
	closer.SetText("Save & Close")
	panel.AppendChild(closer)

	body.AppendChild(panel)
}

func (r *Runtime) createSettingsToggle() {
	if r.doc.ElementByID(SettingsToggleID) != nil {
		return
	}
	body := r.doc.Body()
	if body == nil {
		return
	}
	button := r.doc.CreateElement("div")
	button.SetAttribute("id", SettingsToggleID)
	button.SetAttribute("title", "Source Location Settings")
	button.SetText("⚙️")
	body.AppendChild(button)
}

func (r *Runtime) createPickerToggle() {
	if r.doc.ElementByID(PickerToggleID) != nil {
		return
	}
	body := r.doc.Body()
	if body == nil {
		return
	}
	button := r.doc.CreateElement("div")
	button.SetAttribute("id", PickerToggleID)
	button.SetAttribute("title", idleTitle)
	button.SetText("🎯")
	body.AppendChild(button)

	if head := r.doc.Head(); head != nil {
		style := r.doc.CreateElement("style")
		style.SetText(pickerStyle)
		head.AppendChild(style)
	}
}

// SettingsOpen reports whether the settings panel is shown
func (r *Runtime) SettingsOpen() bool {
	if !r.Available() {
		return false
	}
	panel := r.doc.ElementByID(SettingsPanelID)
	return panel != nil && visible(panel)
}

// ToggleSettings shows or hides the settings panel; showing it disarms the picker
func (r *Runtime) ToggleSettings() {
	if !r.Available() {
		return
	}
	panel := r.doc.ElementByID(SettingsPanelID)
	if panel == nil {
		return
	}
	show := !visible(panel)
	setVisible(panel, show)
	if show {
		r.SetActive(false)
	}
}

// CloseSettings hides the settings panel without touching the armed state
func (r *Runtime) CloseSettings() {
	if !r.Available() {
		return
	}
	if panel := r.doc.ElementByID(SettingsPanelID); panel != nil && visible(panel) {
		setVisible(panel, false)
	}
}

// SelectEditor persists the preferred editor; unknown values are ignored.
// Write failures are logged, never surfaced.
func (r *Runtime) SelectEditor(ctx context.Context, value string) {
	editor, err := ParseEditor(value)
	if err != nil {
		r.logger.Warn("picker.preference.rejected", "value", value)
		return
	}
	if err := r.store.Set(ctx, PreferenceKey, string(editor)); err != nil {
		r.logger.Warn("picker.preference.write_failed", "error", err)
	}
}
