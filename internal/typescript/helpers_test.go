package typescript_test

import (
	"path/filepath"
	"strings"

	"github.com/orta/language-tools/internal/typescript"
)

// memFS is an in-memory FileSystem for tests.
type memFS struct {
	files map[string]string
}

func (m memFS) FileExists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m memFS) ReadFile(path string) (string, bool) {
	text, ok := m.files[path]
	return text, ok
}

func (m memFS) ReadDirectory(path string) []string {
	var names []string
	prefix := strings.TrimSuffix(path, "/") + "/"
	for file := range m.files {
		if strings.HasPrefix(file, prefix) && !strings.Contains(strings.TrimPrefix(file, prefix), "/") {
			names = append(names, filepath.Base(file))
		}
	}
	return names
}

// testDoc implements the Document contract.
type testDoc struct {
	path    string
	text    string
	version int
}

func (d testDoc) FilePath() string { return d.path }
func (d testDoc) Text() string     { return d.text }
func (d testDoc) Version() int     { return d.version }

// kindedDoc additionally carries an explicit script kind, the way the
// LSP layer's script views do.
type kindedDoc struct {
	testDoc
	kind typescript.ScriptKind
}

func (d kindedDoc) ScriptKind() typescript.ScriptKind { return d.kind }

// newTestDoc is the document factory used in tests.
func newTestDoc(path string, text string) typescript.Document {
	return testDoc{path: path, text: text}
}
