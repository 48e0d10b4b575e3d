package document

import (
	"regexp"
	"strings"
)

var (
	scriptTagRegexp  = regexp.MustCompile(`(?is)<script([^>]*)>`)
	scriptEndRegexp  = regexp.MustCompile(`(?i)</script\s*>`)
	attributeRegexp  = regexp.MustCompile(`([\w-]+)(?:\s*=\s*"([^"]*)"|\s*=\s*'([^']*)'|\s*=\s*([^\s"'>]+))?`)
	componentExtList = []string{".svelte", ".html"}
)

// IsComponentFilePath reports whether the path carries one of the
// component file extensions this server treats as mixed-content hosts.
func IsComponentFilePath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range componentExtList {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ExtractScriptFragment locates the first script region of a component
// document and returns a fragment spanning the tag body, with the tag's
// attributes attached. Returns false when the document has no script tag.
// Fragments do not survive a re-parse of the document; extract again
// after every content change.
func ExtractScriptFragment(doc *Document) (*Fragment, bool) {
	text := doc.Text()

	open := scriptTagRegexp.FindStringSubmatchIndex(text)
	if open == nil {
		return nil, false
	}
	bodyStart := open[1]

	end := scriptEndRegexp.FindStringIndex(text[bodyStart:])
	if end == nil {
		return nil, false
	}
	bodyEnd := bodyStart + end[0]

	attrs := parseAttributes(text[open[2]:open[3]])
	return NewFragment(doc, bodyStart, bodyEnd, attrs), true
}

func parseAttributes(raw string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attributeRegexp.FindAllStringSubmatch(raw, -1) {
		name := m[1]
		if name == "" {
			continue
		}
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value == "" {
			value = m[4]
		}
		attrs[name] = value
	}
	return attrs
}
