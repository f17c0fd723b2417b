package repository

// Project type identifiers
const (
	TypeJavaScript = "javascript"
	TypeGo         = "go"
	TypeGit        = "git"
	TypeUnknown    = "unknown"
)

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string
	Name         string // Name from package.json or go.mod, else the root folder name
	RelativePath string // Slash separated path from project root to the specified file
}
