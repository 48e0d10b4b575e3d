package typescript

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ScriptKind classifies the language flavor of a script file. The
// language service binds parser state to a kind, so a file changing kind
// forces a service restart (see ServiceContainer.UpdateDocument).
type ScriptKind int

const (
	KindUnknown ScriptKind = iota
	KindJS
	KindJSX
	KindTS
	KindTSX
)

func (k ScriptKind) String() string {
	switch k {
	case KindJS:
		return "js"
	case KindJSX:
		return "jsx"
	case KindTS:
		return "ts"
	case KindTSX:
		return "tsx"
	default:
		return "unknown"
	}
}

// KindFromFileName classifies a file by extension. Component files are
// KindUnknown here; their kind comes from the script tag attributes.
func KindFromFileName(path string) ScriptKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return KindJS
	case ".jsx":
		return KindJSX
	case ".ts", ".mts", ".cts":
		return KindTS
	case ".tsx":
		return KindTSX
	default:
		return KindUnknown
	}
}

// KindFromAttributes classifies a script tag by its lang/type attribute.
// Untyped script tags are plain JavaScript.
func KindFromAttributes(attrs map[string]string) ScriptKind {
	lang := attrs["lang"]
	if lang == "" {
		lang = attrs["type"]
	}
	switch strings.ToLower(strings.TrimPrefix(lang, "text/")) {
	case "ts", "typescript":
		return KindTS
	case "tsx":
		return KindTSX
	case "jsx":
		return KindJSX
	default:
		return KindJS
	}
}

var langAttrRegexp = regexp.MustCompile(`(?is)<script[^>]*\b(?:lang|type)\s*=\s*["']?([\w/-]+)["']?[^>]*>`)

// KindFromDocument resolves the script kind the compiler service should
// use for a document: an explicit classification from the document if it
// carries one, the file extension otherwise, and for component files a
// sniff of the script tag's lang attribute in the raw content.
func KindFromDocument(doc Document) ScriptKind {
	if sk, ok := doc.(ScriptKinder); ok {
		return sk.ScriptKind()
	}
	if kind := KindFromFileName(doc.FilePath()); kind != KindUnknown {
		return kind
	}
	if m := langAttrRegexp.FindStringSubmatch(doc.Text()); m != nil {
		return KindFromAttributes(map[string]string{"lang": m[1]})
	}
	return KindJS
}
