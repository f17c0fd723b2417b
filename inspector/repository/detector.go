package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"package.json", // JavaScript/Node projects
			"go.mod",       // Go projects hosting a web frontend
			".git",
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(ctx context.Context, filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	info := &Project{Type: TypeUnknown, RootPath: startDir}
	if rootPath, marker := d.findProjectRoot(ctx, startDir); rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType(marker)
	}
	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	info.Name = d.projectName(ctx, info.RootPath, info.Type)
	return info, nil
}

func (d *Detector) exists(ctx context.Context, location string) bool {
	ok, err := d.fs.Exists(ctx, location)
	return err == nil && ok
}

// findProjectRoot searches up from startDir for the first directory holding a marker
func (d *Detector) findProjectRoot(ctx context.Context, startDir string) (string, string) {
	for dir := startDir; ; {
		for _, marker := range d.markers {
			if d.exists(ctx, filepath.Join(dir, marker)) {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

// gitOrigin extracts the origin URL from git config
func (d *Detector) gitOrigin(ctx context.Context, gitRoot string) string {
	data, err := d.fs.DownloadWithURL(ctx, filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = line == `[remote "origin"]`
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url") {
			if _, value, ok := strings.Cut(line, "="); ok {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

func (d *Detector) projectName(ctx context.Context, rootPath, kind string) string {
	var name string
	switch kind {
	case TypeJavaScript:
		name = d.packageName(ctx, filepath.Join(rootPath, "package.json"))
	case TypeGo:
		name = d.moduleName(ctx, filepath.Join(rootPath, "go.mod"))
	case TypeGit:
		if origin := d.gitOrigin(ctx, rootPath); origin != "" {
			name = strings.TrimSuffix(origin[strings.LastIndexAny(origin, "/:")+1:], ".git")
		}
	}
	if name == "" {
		name = filepath.Base(rootPath)
	}
	return name
}

func (d *Detector) packageName(ctx context.Context, location string) string {
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return ""
	}
	manifest := struct {
		Name string `json:"name"`
	}{}
	if err = json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

func (d *Detector) moduleName(ctx context.Context, location string) string {
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func projectType(marker string) string {
	switch marker {
	case "package.json":
		return TypeJavaScript
	case "go.mod":
		return TypeGo
	case ".git":
		return TypeGit
	}
	return TypeUnknown
}
