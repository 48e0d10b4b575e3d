package document_test

import (
	"testing"

	"github.com/orta/language-tools/internal/document"
)

func TestExtractScriptFragment(t *testing.T) {
	content := "<h1>hi</h1>\n<script lang=\"ts\">\nlet count = 0;\n</script>\n<p>{count}</p>\n"
	doc := document.NewDocument("/test/App.svelte", content)

	fragment, ok := document.ExtractScriptFragment(doc)
	if !ok {
		t.Fatal("expected a script fragment")
	}

	if got := fragment.Text(); got != "\nlet count = 0;\n" {
		t.Errorf("Text() = %q, want %q", got, "\nlet count = 0;\n")
	}
	if lang, _ := fragment.Attribute("lang"); lang != "ts" {
		t.Errorf("Attribute(lang) = %q, want %q", lang, "ts")
	}
}

func TestExtractScriptFragmentAttributes(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		attr string
		want string
	}{
		{"double quotes", `<script lang="ts">`, "lang", "ts"},
		{"single quotes", `<script lang='ts'>`, "lang", "ts"},
		{"unquoted", `<script lang=ts>`, "lang", "ts"},
		{"type attribute", `<script type="text/typescript">`, "type", "text/typescript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.NewDocument("/test/App.svelte", tt.tag+"x</script>")
			fragment, ok := document.ExtractScriptFragment(doc)
			if !ok {
				t.Fatal("expected a script fragment")
			}
			if got, _ := fragment.Attribute(tt.attr); got != tt.want {
				t.Errorf("Attribute(%s) = %q, want %q", tt.attr, got, tt.want)
			}
		})
	}
}

func TestExtractScriptFragmentMissing(t *testing.T) {
	doc := document.NewDocument("/test/App.svelte", "<h1>no script here</h1>")
	if _, ok := document.ExtractScriptFragment(doc); ok {
		t.Error("expected no fragment for a document without a script tag")
	}
}

func TestExtractScriptFragmentEmptyBody(t *testing.T) {
	doc := document.NewDocument("/test/App.svelte", "<script></script>")
	fragment, ok := document.ExtractScriptFragment(doc)
	if !ok {
		t.Fatal("expected a script fragment")
	}
	if fragment.TextLength() != 0 {
		t.Errorf("TextLength() = %d, want 0", fragment.TextLength())
	}
}

func TestIsComponentFilePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/a/App.svelte", true},
		{"/a/index.html", true},
		{"/a/main.ts", false},
		{"/a/util.js", false},
	}

	for _, tt := range tests {
		if got := document.IsComponentFilePath(tt.path); got != tt.want {
			t.Errorf("IsComponentFilePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
