package annotator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/locator/annotator"
	"github.com/viant/locator/transform"
)

func newAnnotator(t *testing.T, extended bool) *annotator.Annotator {
	t.Helper()
	ret, err := annotator.New(annotator.WithEnabled(true), annotator.WithExtendedLocators(extended))
	require.NoError(t, err)
	return ret
}

func TestAnnotator_Annotate(t *testing.T) {
	tests := []struct {
		name     string
		location string
		extended bool
		source   string
		expect   string
	}{
		{
			name:     "nested elements in arrow component",
			location: "/src/file.jsx",
			source: `import React from 'react';

const Page = () => <div><h1>Hi</h1></div>;
`,
			expect: `import React from 'react';

const Page = () => <div data-line="3" data-filepath="/src/file.jsx" data-in="Page" data-is="div" data-at="file.jsx:3"><h1 data-line="3" data-filepath="/src/file.jsx" data-in="Page" data-is="h1" data-at="file.jsx:3">Hi</h1></div>;
`,
		},
		{
			name:     "extended locators add clickable marker",
			location: "/src/button.jsx",
			extended: true,
			source:   `const Button = () => <button onClick={go} />;`,
			expect:   `const Button = () => <button data-clickable="true" data-line="1" data-filepath="/src/button.jsx" data-in="Button" data-is="button" data-at="button.jsx:1" onClick={go} />;`,
		},
		{
			name:     "multi line element",
			location: "/src/x.jsx",
			source:   "\n\n\n\nconst X = () => (<div>\n<p>a</p>\n<p>b</p>\n<p>c</p>\n</div>);",
			expect: "\n\n\n\nconst X = () => (<div data-line=\"5\" data-filepath=\"/src/x.jsx\" data-in=\"X\" data-is=\"div\" data-at=\"x.jsx:5-9\">\n" +
				"<p data-line=\"6\" data-filepath=\"/src/x.jsx\" data-in=\"X\" data-is=\"p\" data-at=\"x.jsx:6\">a</p>\n" +
				"<p data-line=\"7\" data-filepath=\"/src/x.jsx\" data-in=\"X\" data-is=\"p\" data-at=\"x.jsx:7\">b</p>\n" +
				"<p data-line=\"8\" data-filepath=\"/src/x.jsx\" data-in=\"X\" data-is=\"p\" data-at=\"x.jsx:8\">c</p>\n</div>);",
		},
		{
			name:     "no enclosing scope omits data-in",
			location: "main.jsx",
			source:   `render(<App />, root);`,
			expect:   `render(<App data-line="1" data-filepath="main.jsx" data-is="App" data-at="main.jsx:1" />, root);`,
		},
		{
			name:     "qualified tag uses member name",
			location: "/src/menu.jsx",
			source:   `function Menu() { return <UI.Item />; }`,
			expect:   `function Menu() { return <UI.Item data-line="1" data-filepath="/src/menu.jsx" data-in="Menu" data-is="Item" data-at="menu.jsx:1" />; }`,
		},
		{
			name:     "path with double quote switches quote style",
			location: `/src/we"ird/a.jsx`,
			source:   `const A = () => <i />;`,
			expect:   `const A = () => <i data-line="1" data-filepath='/src/we"ird/a.jsx' data-in="A" data-is="i" data-at="a.jsx:1" />;`,
		},
		{
			name:     "dependency unit is left untouched",
			location: "/app/node_modules/lib/index.jsx",
			source:   `const A = () => <i />;`,
			expect:   `const A = () => <i />;`,
		},
		{
			name:     "already annotated element is skipped",
			location: "/src/a.jsx",
			source:   `const A = () => <i data-at="other.jsx:9" />;`,
			expect:   `const A = () => <i data-at="other.jsx:9" />;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newAnnotator(t, tt.extended).Annotate(context.Background(), tt.location, []byte(tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.expect, string(result.Source))
			assert.Equal(t, tt.expect != tt.source, result.Changed)
		})
	}
}

func TestAnnotator_Idempotence(t *testing.T) {
	source := `const TestComponent = () => {
  return (
    <div className="test">
      <h1>Test Header</h1>
      <p>Test paragraph</p>
    </div>
  );
};`
	for _, extended := range []bool{false, true} {
		a := newAnnotator(t, extended)
		first, err := a.Annotate(context.Background(), "/src/test-duplicate.jsx", []byte(source))
		require.NoError(t, err)
		assert.Equal(t, 3, first.Annotated)
		assert.Equal(t, 3, strings.Count(string(first.Source), `data-at=`))

		second, err := a.Annotate(context.Background(), "/src/test-duplicate.jsx", first.Source)
		require.NoError(t, err)
		assert.False(t, second.Changed)
		assert.Equal(t, 0, second.Annotated)
		assert.Equal(t, 3, second.Skipped)
		assert.Equal(t, string(first.Source), string(second.Source))
	}
}

func TestAnnotator_Disabled(t *testing.T) {
	a, err := annotator.New(annotator.WithEnabled(false), annotator.WithExtendedLocators(true))
	require.NoError(t, err)
	source := []byte(`const A = () => <div><span /></div>;`)
	result, err := a.Annotate(context.Background(), "/src/a.jsx", source)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	for _, name := range annotator.Names {
		assert.NotContains(t, string(result.Source), name)
	}
}

func TestAnnotator_ExtendedGate(t *testing.T) {
	source := []byte(`const A = () => <div />;`)
	for _, extended := range []bool{false, true} {
		result, err := newAnnotator(t, extended).Annotate(context.Background(), "/src/a.jsx", source)
		require.NoError(t, err)
		output := string(result.Source)
		assert.Equal(t, extended, strings.Contains(output, annotator.AttrClickable))
		assert.Contains(t, output, annotator.AttrFilepath)
		assert.Contains(t, output, annotator.AttrLine)
		require.Len(t, result.Records, 1)
		assert.Equal(t, extended, result.Records[0].ClickableRequested)
	}
}

func TestAnnotator_Records(t *testing.T) {
	source := `export const Button = ({ children }) => {
  return (
    <button>
      <span>{children}</span>
    </button>
  );
};`
	result, err := newAnnotator(t, false).Annotate(context.Background(), "/ui/Button.jsx", []byte(source))
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "button", result.Records[0].TagName)
	assert.Equal(t, "Button", result.Records[0].EnclosingComponentName)
	assert.Equal(t, "Button.jsx:3-5", result.Records[0].At())
	assert.Equal(t, "span", result.Records[1].TagName)
	assert.Equal(t, "Button", result.Records[1].EnclosingComponentName)
	assert.Equal(t, "Button.jsx", result.Records[1].ShortSourceUnitName)
	assert.Equal(t, "/ui/Button.jsx", result.Records[1].SourceUnitPath)
}

func TestAnnotator_Transform(t *testing.T) {
	a := newAnnotator(t, false)
	assert.Equal(t, annotator.Name, a.Name())
	pipeline := transform.NewPipeline(nil, a)
	assert.Equal(t, []string{"locate-source-plugin"}, pipeline.Names())

	unit := transform.NewUnit("/src/a.jsx", []byte(`const A = () => <div />;`))
	require.NoError(t, pipeline.Run(context.Background(), unit))
	assert.Contains(t, string(unit.Source), `data-at="a.jsx:1"`)
	assert.Equal(t, 1, unit.Metric("annotated"))

	require.NoError(t, pipeline.Run(context.Background(), unit))
	assert.Equal(t, 1, unit.Metric("annotated"))
	assert.Equal(t, 1, unit.Metric("skipped"))

	frozen := transform.NewUnit("/src/b.jsx", []byte(`const B = () => <div />;`))
	frozen.Freeze()
	err := pipeline.Run(context.Background(), frozen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, transform.ErrFrozenUnit))
	assert.Equal(t, `const B = () => <div />;`, string(frozen.Source))
	assert.Zero(t, frozen.Metric(transform.MetricAnnotated))
	assert.Zero(t, frozen.Metric(transform.MetricSkipped))
}

func TestAnnotator_InvalidPath(t *testing.T) {
	_, err := newAnnotator(t, false).Annotate(context.Background(), "/src/\xff.jsx", []byte(`const A = () => <div />;`))
	assert.True(t, errors.Is(err, annotator.ErrInvalidEdit))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := annotator.New(annotator.WithDependencyMarkers(""))
	assert.True(t, errors.Is(err, annotator.ErrInvalidConfig))

	_, err = annotator.New(annotator.WithConfig(nil))
	assert.True(t, errors.Is(err, annotator.ErrInvalidConfig))
}
