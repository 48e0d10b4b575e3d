package typescript

import "os"

// Document is the contract consumed from the document layer. Version
// must be strictly increasing per textual change of one document.
type Document interface {
	FilePath() string
	Text() string
	Version() int
}

// ScriptKinder is implemented by documents that already know their
// script kind, e.g. a script fragment classified by its tag attributes.
type ScriptKinder interface {
	ScriptKind() ScriptKind
}

// DocumentFactory materializes a component document discovered through
// the filesystem, returning its script view.
type DocumentFactory func(filePath string, text string) Document

// ServiceHost is the pull-based callback contract the language service
// queries for file content. ServiceContainer implements it.
type ServiceHost interface {
	ScriptFileNames() []string
	ScriptVersion(path string) string
	ScriptSnapshot(path string) ScriptSnapshot
	FileExists(path string) bool
	ReadFile(path string) (string, bool)
	ReadDirectory(path string) []string
	CurrentDirectory() string
	DefaultLibFileName() string
	CompilationSettings() CompilerOptions
}

// FileSystem abstracts the synchronous filesystem reads performed by the
// host callbacks, so containers can be tested against an in-memory tree.
type FileSystem interface {
	FileExists(path string) bool
	// ReadFile returns the file content, or false when the read failed.
	ReadFile(path string) (string, bool)
	ReadDirectory(path string) []string
}

type osFileSystem struct{}

// OSFileSystem returns the real filesystem.
func OSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (osFileSystem) ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (osFileSystem) ReadDirectory(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
