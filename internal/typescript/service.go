package typescript

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var importQuery = []byte(`(import_statement source: (string (string_fragment) @path))`)

// Position represents a location in a script, relative to the script's
// own text.
type Position struct {
	Line      uint32
	Character uint32
}

// Range represents a span in a script.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is a single analysis finding in script-local coordinates.
// StartOffset and EndOffset are byte offsets into the script text, the
// exact handle callers need to map a finding back into a host document
// through a fragment.
type Diagnostic struct {
	Range       Range
	StartOffset int
	EndOffset   int
	Message     string
}

// parsedScript is one entry of the service's parse cache.
type parsedScript struct {
	version string
	kind    ScriptKind
	content []byte
	tree    *sitter.Tree
}

// LanguageService analyzes script files pulled through a ServiceHost.
// Parse trees are cached per file and invalidated by the host-reported
// script version. Parser state is bound to a grammar, so a file whose
// kind changes cannot be served by the same instance; the owning
// container disposes and recreates the service instead (see
// ServiceContainer.UpdateDocument).
type LanguageService struct {
	host     ServiceHost
	parsers  map[ScriptKind]*sitter.Parser
	queries  map[ScriptKind]*sitter.Query
	scripts  map[string]*parsedScript
	disposed bool
	mu       sync.Mutex
}

func NewLanguageService(host ServiceHost) *LanguageService {
	return &LanguageService{
		host:    host,
		parsers: make(map[ScriptKind]*sitter.Parser),
		queries: make(map[ScriptKind]*sitter.Query),
		scripts: make(map[string]*parsedScript),
	}
}

func languageFor(kind ScriptKind) *sitter.Language {
	switch kind {
	case KindJS:
		return javascript.GetLanguage()
	case KindJSX, KindTSX:
		return tsx.GetLanguage()
	default:
		return typescript.GetLanguage()
	}
}

// grammarKey folds kinds that share a grammar onto one parser.
func grammarKey(kind ScriptKind) ScriptKind {
	switch kind {
	case KindJS:
		return KindJS
	case KindJSX, KindTSX:
		return KindTSX
	default:
		return KindTS
	}
}

// SyntaxDiagnostics parses the script and reports syntax errors. The
// file's resolved imports are pulled through the host as a side effect,
// so referenced component files become visible to subsequent queries.
func (s *LanguageService) SyntaxDiagnostics(ctx context.Context, fileName string) ([]Diagnostic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	script, err := s.script(ctx, fileName)
	if err != nil {
		return nil, err
	}

	var diagnostics []Diagnostic
	collectErrors(script.tree.RootNode(), &diagnostics)

	s.pullImports(fileName, script)
	return diagnostics, nil
}

// ScriptImports resolves the file's import specifiers to absolute paths
// and pulls each one through the host.
func (s *LanguageService) ScriptImports(ctx context.Context, fileName string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	script, err := s.script(ctx, fileName)
	if err != nil {
		return nil, err
	}
	return s.pullImports(fileName, script), nil
}

// Dispose releases all parser and tree resources. A disposed service
// serves no further queries.
func (s *LanguageService) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	for _, script := range s.scripts {
		if script.tree != nil {
			script.tree.Close()
		}
	}
	s.scripts = nil
	for _, query := range s.queries {
		query.Close()
	}
	s.queries = nil
	for _, parser := range s.parsers {
		parser.Close()
	}
	s.parsers = nil
}

// script returns the cached parse for fileName, re-parsing when the
// host-reported version moved. Caller must hold the lock.
func (s *LanguageService) script(ctx context.Context, fileName string) (*parsedScript, error) {
	if s.disposed {
		return nil, fmt.Errorf("language service is disposed")
	}

	version := s.host.ScriptVersion(fileName)
	// "0" is the host's answer for any path it has no tracked version
	// for: a read-through, a synthesized file, or a document whose
	// counter reset when it was replaced. It cannot vouch for cached
	// analysis, so re-read the snapshot every time.
	if cached, ok := s.scripts[fileName]; ok && version != "0" && cached.version == version {
		return cached, nil
	}

	snapshot := s.host.ScriptSnapshot(fileName)
	content := []byte(snapshot.Text(0, snapshot.Length()))
	kind := snapshot.Kind()

	// ChangeRange is always unknown for these snapshots, so parse from
	// scratch rather than feeding the old tree back in.
	tree, err := s.parserFor(kind).ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	if old, ok := s.scripts[fileName]; ok && old.tree != nil {
		old.tree.Close()
	}

	script := &parsedScript{
		version: version,
		kind:    kind,
		content: content,
		tree:    tree,
	}
	s.scripts[fileName] = script
	return script, nil
}

func (s *LanguageService) parserFor(kind ScriptKind) *sitter.Parser {
	key := grammarKey(kind)
	if parser, ok := s.parsers[key]; ok {
		return parser
	}
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(key))
	s.parsers[key] = parser
	return parser
}

func (s *LanguageService) queryFor(kind ScriptKind) (*sitter.Query, error) {
	key := grammarKey(kind)
	if query, ok := s.queries[key]; ok {
		return query, nil
	}
	query, err := sitter.NewQuery(importQuery, languageFor(key))
	if err != nil {
		return nil, err
	}
	s.queries[key] = query
	return query, nil
}

// pullImports resolves the script's import specifiers and requests a
// snapshot for every resolved path. Pulling is what lets the container
// synthesize sibling component documents on demand. Caller must hold
// the lock.
func (s *LanguageService) pullImports(fileName string, script *parsedScript) []string {
	query, err := s.queryFor(script.kind)
	if err != nil {
		return nil
	}

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, script.tree.RootNode())

	fromDir := filepath.Dir(fileName)
	var resolved []string
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, script.content)
		for _, capture := range match.Captures {
			if capture.Node == nil {
				continue
			}
			specifier := capture.Node.Content(script.content)
			path, ok := s.resolveImport(fromDir, specifier)
			if !ok {
				continue
			}
			resolved = append(resolved, path)
			s.host.ScriptSnapshot(path)
		}
	}
	return resolved
}

// resolveImport maps a relative import specifier to an existing file,
// probing the plain script extensions and the configured virtual
// component extensions. Bare module specifiers are not resolved here.
func (s *LanguageService) resolveImport(fromDir, specifier string) (string, bool) {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") {
		return "", false
	}

	base := filepath.Join(fromDir, specifier)
	candidates := []string{base}
	for _, ext := range []string{".ts", ".tsx", ".js", ".jsx"} {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range s.host.CompilationSettings().VirtualExtensions {
		candidates = append(candidates, base+ext)
	}

	for _, candidate := range candidates {
		if filepath.Ext(candidate) != "" && s.host.FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func collectErrors(node *sitter.Node, diagnostics *[]Diagnostic) {
	if node == nil || !node.HasError() {
		return
	}

	switch {
	case node.Type() == "ERROR":
		*diagnostics = append(*diagnostics, nodeDiagnostic(node, "Syntax error"))
	case node.IsMissing():
		*diagnostics = append(*diagnostics, nodeDiagnostic(node, fmt.Sprintf("Missing %q", node.Type())))
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectErrors(node.Child(i), diagnostics)
	}
}

func nodeDiagnostic(node *sitter.Node, message string) Diagnostic {
	start := node.StartPoint()
	end := node.EndPoint()
	return Diagnostic{
		Range: Range{
			Start: Position{Line: start.Row, Character: start.Column},
			End:   Position{Line: end.Row, Character: end.Column},
		},
		StartOffset: int(node.StartByte()),
		EndOffset:   int(node.EndByte()),
		Message:     message,
	}
}
