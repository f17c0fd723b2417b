package picker_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/locator/picker"
	"github.com/viant/locator/picker/htmldoc"
	"github.com/viant/locator/picker/store"
)

const page = `<html><head></head><body>
<main data-line="1" data-filepath="/a/page.jsx" data-is="main" data-at="page.jsx:1-9">
  <div id="card" data-line="12" data-filepath="/a/b.ext" data-is="div" data-at="b.ext:12">
    <span id="inner">text</span>
  </div>
  <p id="partial" data-at="c.jsx:4"><b id="bold">x</b></p>
</main>
<a id="plain" href="/x">plain</a>
</body></html>`

type fixture struct {
	doc     *htmldoc.Document
	runtime *picker.Runtime
	opener  *picker.RecordingOpener
	store   *store.Memory
}

func newFixture(t *testing.T, source string) *fixture {
	t.Helper()
	doc, err := htmldoc.Parse(strings.NewReader(source))
	require.NoError(t, err)
	ret := &fixture{doc: doc, opener: &picker.RecordingOpener{}, store: store.NewMemory()}
	ret.runtime = picker.New(doc, picker.WithOpener(ret.opener), picker.WithStore(ret.store))
	ret.runtime.Init(context.Background())
	return ret
}

func (f *fixture) click(t *testing.T, id string) *picker.Event {
	t.Helper()
	target := f.doc.ElementByID(id)
	require.NotNil(t, target, id)
	event := picker.NewClick(target)
	f.runtime.Dispatch(context.Background(), event)
	return event
}

func countID(doc *htmldoc.Document, id string) int {
	return len(doc.FindAll(func(e *htmldoc.Element) bool { return e.ID() == id }))
}

func TestRuntime_InitIdempotent(t *testing.T) {
	f := newFixture(t, page)
	f.runtime.Init(context.Background())
	f.runtime.Init(context.Background())
	for _, id := range []string{picker.SettingsPanelID, picker.SettingsToggleID, picker.PickerToggleID, picker.EditorSelectID, picker.SettingsCloseID} {
		assert.Equal(t, 1, countID(f.doc, id), id)
	}
	assert.Len(t, f.doc.FindAll(func(e *htmldoc.Element) bool { return e.Tag() == "style" }), 1)
	assert.False(t, f.runtime.SettingsOpen())
	assert.False(t, f.runtime.Active())
}

func TestRuntime_Pick(t *testing.T) {
	f := newFixture(t, page)
	f.click(t, picker.PickerToggleID)
	require.True(t, f.runtime.Active())
	assert.True(t, f.doc.ElementByID(picker.PickerToggleID).HasClass(picker.ActiveClass))
	assert.True(t, f.doc.Body().HasClass(picker.ArmedBodyClass))

	event := f.click(t, "inner")
	assert.True(t, event.DefaultPrevented())
	assert.True(t, event.PropagationStopped())
	assert.Equal(t, []string{"vscode://file/%2Fa%2Fb.ext:12"}, f.opener.URIs())
	assert.False(t, f.runtime.Active())
	assert.False(t, f.doc.ElementByID(picker.PickerToggleID).HasClass(picker.ActiveClass))
	assert.False(t, f.doc.Body().HasClass(picker.ArmedBodyClass))
}

func TestRuntime_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		arm         bool
		action      func(t *testing.T, f *fixture) *picker.Event
		expectArmed bool
		intercepted bool
		opened      int
	}{
		{
			name:   "idle click is not intercepted",
			action: func(t *testing.T, f *fixture) *picker.Event { return f.click(t, "inner") },
		},
		{
			name:        "armed click outside annotated markup stays armed",
			arm:         true,
			action:      func(t *testing.T, f *fixture) *picker.Event { return f.click(t, "plain") },
			expectArmed: true,
		},
		{
			name:        "armed click resolves locator from outer ancestor",
			arm:         true,
			action:      func(t *testing.T, f *fixture) *picker.Event { return f.click(t, "bold") },
			intercepted: true,
			opened:      1,
		},
		{
			name: "escape disarms",
			arm:  true,
			action: func(t *testing.T, f *fixture) *picker.Event {
				event := picker.NewKeyDown(picker.EscapeKey)
				f.runtime.Dispatch(context.Background(), event)
				return event
			},
		},
		{
			name: "other keys are ignored",
			arm:  true,
			action: func(t *testing.T, f *fixture) *picker.Event {
				event := picker.NewKeyDown("Enter")
				f.runtime.Dispatch(context.Background(), event)
				return event
			},
			expectArmed: true,
		},
		{
			name:   "toggle disarms",
			arm:    true,
			action: func(t *testing.T, f *fixture) *picker.Event { return f.click(t, picker.PickerToggleID) },
		},
		{
			name:   "opening settings disarms",
			arm:    true,
			action: func(t *testing.T, f *fixture) *picker.Event { return f.click(t, picker.SettingsToggleID) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, page)
			f.runtime.SetActive(tt.arm)
			event := tt.action(t, f)
			assert.Equal(t, tt.expectArmed, f.runtime.Active())
			assert.Equal(t, tt.intercepted, event.DefaultPrevented())
			assert.Len(t, f.opener.URIs(), tt.opened)
		})
	}
}

func TestRuntime_PartialLocator(t *testing.T) {
	doc := `<html><body><p id="partial" data-at="c.jsx:4"><b id="bold">x</b></p></body></html>`
	f := newFixture(t, doc)
	f.runtime.SetActive(true)
	event := f.click(t, "bold")
	assert.True(t, event.DefaultPrevented())
	assert.True(t, f.runtime.Active())
	assert.Empty(t, f.opener.URIs())
}

func TestRuntime_Settings(t *testing.T) {
	f := newFixture(t, page)
	ctx := context.Background()
	assert.Equal(t, picker.VSCode, f.runtime.PreferredEditor(ctx))

	f.click(t, picker.SettingsToggleID)
	assert.True(t, f.runtime.SettingsOpen())

	f.runtime.Dispatch(ctx, picker.NewChange(f.doc.ElementByID(picker.EditorSelectID), "intellij"))
	assert.Equal(t, picker.IntelliJ, f.runtime.PreferredEditor(ctx))
	stored, ok, err := f.store.Get(ctx, picker.PreferenceKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "intellij", stored)

	f.runtime.Dispatch(ctx, picker.NewChange(f.doc.ElementByID(picker.EditorSelectID), "notepad"))
	assert.Equal(t, picker.IntelliJ, f.runtime.PreferredEditor(ctx))

	f.runtime.SetActive(true)
	f.click(t, picker.SettingsCloseID)
	assert.False(t, f.runtime.SettingsOpen())
	assert.True(t, f.runtime.Active())

	f.click(t, "inner")
	assert.Equal(t, []string{"idea://open?file=%2Fa%2Fb.ext&line=12"}, f.opener.URIs())

	fresh := newFixture(t, page)
	assert.Equal(t, picker.VSCode, fresh.runtime.State(ctx).PreferredEditor)
}

func TestRuntime_PickerToggleClosesSettings(t *testing.T) {
	f := newFixture(t, page)
	f.click(t, picker.SettingsToggleID)
	require.True(t, f.runtime.SettingsOpen())
	f.click(t, picker.PickerToggleID)
	assert.False(t, f.runtime.SettingsOpen())
	assert.True(t, f.runtime.Active())
	assert.Equal(t, picker.Armed, f.runtime.State(context.Background()).Mode())
}

func TestRuntime_SelectedOptionReflectsPreference(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(page))
	require.NoError(t, err)
	prefs := store.NewMemory()
	require.NoError(t, prefs.Set(context.Background(), picker.PreferenceKey, "cursor"))
	picker.New(doc, picker.WithStore(prefs), picker.WithOpener(&picker.RecordingOpener{})).Init(context.Background())
	selected := doc.FindAll(func(e *htmldoc.Element) bool {
		_, ok := e.Attribute("selected")
		return e.Tag() == "option" && ok
	})
	require.Len(t, selected, 1)
	value, _ := selected[0].Attribute("value")
	assert.Equal(t, "cursor", value)
}

func TestRuntime_OpenFailureIsLogged(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(page))
	require.NoError(t, err)
	failing := picker.OpenerFunc(func(ctx context.Context, uri string) error {
		return errors.New("no handler")
	})
	runtime := picker.New(doc, picker.WithOpener(failing))
	runtime.Init(context.Background())
	runtime.SetActive(true)
	event := picker.NewClick(doc.ElementByID("inner"))
	runtime.Dispatch(context.Background(), event)
	assert.True(t, event.DefaultPrevented())
	assert.False(t, runtime.Active())
}

func TestRuntime_NoDocument(t *testing.T) {
	runtime := picker.New(nil, picker.WithOpener(&picker.RecordingOpener{}))
	assert.False(t, runtime.Available())
	runtime.Init(context.Background())
	runtime.ToggleSettings()
	runtime.CloseSettings()
	runtime.Dispatch(context.Background(), picker.NewKeyDown(picker.EscapeKey))
	assert.False(t, runtime.SettingsOpen())
	assert.False(t, runtime.Active())
}
