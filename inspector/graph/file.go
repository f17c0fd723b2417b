package graph

// File represents a markup source unit with its elements
type File struct {
	Name     string     // File name
	Path     string     // File path
	Language string     // Grammar used to parse the file
	Hash     uint64     // Hash of the source content
	Elements []*Element // Markup elements in document order
}

// Package represents a directory of markup source units
type Package struct {
	Name       string
	ImportPath string
	FileSet    []*File // Files that are part of this package
}

// AddFile adds a file to the package
func (p *Package) AddFile(file *File) {
	p.FileSet = append(p.FileSet, file)
}

// ElementCount returns the number of elements across all files
func (p *Package) ElementCount() int {
	count := 0
	for _, file := range p.FileSet {
		count += len(file.Elements)
	}
	return count
}
