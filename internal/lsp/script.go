package lsp

import (
	"github.com/orta/language-tools/internal/document"
	"github.com/orta/language-tools/internal/typescript"
)

// scriptDocument adapts a component document's script fragment to the
// contract the typescript layer consumes. It carries the parent's file
// identity and version; its text is the fragment's text only.
type scriptDocument struct {
	doc      *document.Document
	fragment *document.Fragment
	kind     typescript.ScriptKind
}

// scriptDocumentFor builds the script view of a document. Plain script
// files are served whole; component files are narrowed to their script
// tag. A component without a script tag yields an empty view, so the
// service sees a valid, empty script instead of the raw markup.
func scriptDocumentFor(doc *document.Document) scriptDocument {
	if !document.IsComponentFilePath(doc.FilePath()) {
		return scriptDocument{
			doc:      doc,
			fragment: document.NewFragment(doc, 0, doc.TextLength(), nil),
			kind:     typescript.KindFromFileName(doc.FilePath()),
		}
	}

	fragment, ok := document.ExtractScriptFragment(doc)
	if !ok {
		fragment = document.NewFragment(doc, 0, 0, nil)
	}

	attrs := make(map[string]string)
	for _, name := range []string{"lang", "type"} {
		if value, found := fragment.Attribute(name); found {
			attrs[name] = value
		}
	}

	return scriptDocument{
		doc:      doc,
		fragment: fragment,
		kind:     typescript.KindFromAttributes(attrs),
	}
}

// newScriptDocument is the document factory injected into the registry:
// it materializes component files the language service discovers via
// imports.
func newScriptDocument(filePath string, text string) typescript.Document {
	return scriptDocumentFor(document.NewDocument(filePath, text))
}

func (s scriptDocument) FilePath() string {
	return s.fragment.FilePath()
}

func (s scriptDocument) Text() string {
	return s.fragment.Text()
}

func (s scriptDocument) Version() int {
	return s.doc.Version()
}

func (s scriptDocument) ScriptKind() typescript.ScriptKind {
	return s.kind
}
