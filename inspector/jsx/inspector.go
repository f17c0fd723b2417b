package jsx

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/locator/inspector/graph"
)

// Config controls which source units the inspector visits
type Config struct {
	SkipTests bool
}

// Inspector extracts markup elements from JSX and TSX source units
type Inspector struct {
	config *Config
	fs     afs.Service
}

// NewInspector creates a new Inspector with the provided configuration
func NewInspector(config *Config) *Inspector {
	if config == nil {
		config = &Config{}
	}
	return &Inspector{
		config: config,
		fs:     afs.New(),
	}
}

// InspectSource parses src and lists its markup elements.
// filename selects the grammar and is recorded on the returned file.
func (i *Inspector) InspectSource(ctx context.Context, src []byte, filename string) (*graph.File, error) {
	tree, language, err := Parse(ctx, src, filename)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	hash, err := graph.Hash(src)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %s: %w", filename, err)
	}
	return &graph.File{
		Name:     path.Base(toSlash(filename)),
		Path:     filename,
		Language: string(language),
		Hash:     hash,
		Elements: Elements(tree.RootNode(), src),
	}, nil
}

// InspectFile downloads and inspects a source unit
func (i *Inspector) InspectFile(ctx context.Context, URL string) (*graph.File, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return i.InspectSource(ctx, src, URL)
}

// InspectPackage inspects every source unit directly under a directory
func (i *Inspector) InspectPackage(ctx context.Context, URL string) (*graph.Package, error) {
	objects, err := i.fs.List(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", URL, err)
	}
	pkg := &graph.Package{
		Name:       path.Base(toSlash(strings.TrimRight(URL, "/"))),
		ImportPath: URL,
	}
	for _, object := range objects {
		if object.IsDir() || !IsSource(object.Name()) {
			continue
		}
		if i.config.SkipTests && isTest(object.Name()) {
			continue
		}
		file, err := i.InspectFile(ctx, object.URL())
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", object.URL(), err)
		}
		pkg.AddFile(file)
	}
	if len(pkg.FileSet) == 0 {
		return nil, fmt.Errorf("no markup source files found in package: %s", URL)
	}
	return pkg, nil
}

func isTest(name string) bool {
	return strings.Contains(name, ".test.") || strings.Contains(name, ".spec.")
}

// toSlash converts Windows separators so path.Base works on either form
func toSlash(location string) string {
	return strings.ReplaceAll(location, `\`, "/")
}
