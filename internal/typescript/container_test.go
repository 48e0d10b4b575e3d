package typescript_test

import (
	"testing"

	"github.com/orta/language-tools/internal/typescript"
)

func newTestRegistry(fs memFS) *typescript.Registry {
	return typescript.NewRegistry(fs, newTestDoc)
}

func TestUpdateDocumentKeepsHandle(t *testing.T) {
	registry := newTestRegistry(memFS{})
	container := registry.ContainerForDocument(testDoc{path: "/proj/main.ts"})

	first := container.UpdateDocument(testDoc{path: "/proj/main.ts", text: "let x = 1;"})
	second := container.UpdateDocument(testDoc{path: "/proj/main.ts", text: "let x = 2;", version: 1})

	if first != second {
		t.Error("same-kind update must return the same service handle")
	}
}

func TestUpdateDocumentRestartsOnKindChange(t *testing.T) {
	registry := newTestRegistry(memFS{})
	container := registry.ContainerForDocument(testDoc{path: "/proj/App.svelte"})

	js := kindedDoc{
		testDoc: testDoc{path: "/proj/App.svelte", text: "let x = 1;"},
		kind:    typescript.KindJS,
	}
	ts := kindedDoc{
		testDoc: testDoc{path: "/proj/App.svelte", text: "let x: number = 1;", version: 1},
		kind:    typescript.KindTS,
	}

	first := container.UpdateDocument(js)
	second := container.UpdateDocument(ts)
	if first == second {
		t.Fatal("kind change must replace the service handle")
	}

	third := container.UpdateDocument(kindedDoc{
		testDoc: testDoc{path: "/proj/App.svelte", text: "let x: number = 2;", version: 2},
		kind:    typescript.KindTS,
	})
	if second != third {
		t.Error("handle must be stable again after the restart")
	}
}

func TestSnapshotsSurviveRestart(t *testing.T) {
	registry := newTestRegistry(memFS{})
	container := registry.ContainerForDocument(testDoc{path: "/proj/App.svelte"})

	container.UpdateDocument(kindedDoc{
		testDoc: testDoc{path: "/proj/other.ts", text: "let y = 1;"},
		kind:    typescript.KindTS,
	})
	container.UpdateDocument(kindedDoc{
		testDoc: testDoc{path: "/proj/App.svelte", text: "let x = 1;"},
		kind:    typescript.KindJS,
	})
	// Kind change restarts the service.
	container.UpdateDocument(kindedDoc{
		testDoc: testDoc{path: "/proj/App.svelte", text: "let x: number = 1;", version: 1},
		kind:    typescript.KindTS,
	})

	if got := container.ScriptVersion("/proj/other.ts"); got != "0" {
		t.Errorf("unrelated snapshot lost in restart: version %q", got)
	}
	snapshot := container.ScriptSnapshot("/proj/other.ts")
	if got := snapshot.Text(0, snapshot.Length()); got != "let y = 1;" {
		t.Errorf("unrelated snapshot content lost: %q", got)
	}
}

func TestScriptVersion(t *testing.T) {
	registry := newTestRegistry(memFS{})
	container := registry.ContainerForDocument(testDoc{path: "/proj/main.ts"})

	container.UpdateDocument(testDoc{path: "/proj/main.ts", text: "let x = 1;", version: 7})

	if got := container.ScriptVersion("/proj/main.ts"); got != "7" {
		t.Errorf("ScriptVersion = %q, want %q", got, "7")
	}
	if got := container.ScriptVersion("/proj/unseen.ts"); got != "0" {
		t.Errorf("ScriptVersion for unseen path = %q, want %q", got, "0")
	}
}

func TestScriptSnapshotReadThrough(t *testing.T) {
	fs := memFS{files: map[string]string{"/proj/util.ts": "export const n = 1;"}}
	registry := newTestRegistry(fs)
	container := registry.ContainerForDocument(testDoc{path: "/proj/main.ts"})

	snapshot := container.ScriptSnapshot("/proj/util.ts")
	if got := snapshot.Text(0, snapshot.Length()); got != "export const n = 1;" {
		t.Errorf("read-through text = %q", got)
	}
	if snapshot.Kind() != typescript.KindTS {
		t.Errorf("read-through kind = %v", snapshot.Kind())
	}

	// Read-through snapshots are not cached as documents.
	if got := container.ScriptVersion("/proj/util.ts"); got != "0" {
		t.Errorf("read-through must not cache a version, got %q", got)
	}
}

func TestScriptSnapshotMissingFileIsEmpty(t *testing.T) {
	registry := newTestRegistry(memFS{})
	container := registry.ContainerForDocument(testDoc{path: "/proj/main.ts"})

	snapshot := container.ScriptSnapshot("/proj/missing.ts")
	if snapshot == nil {
		t.Fatal("ScriptSnapshot must never return nil")
	}
	if snapshot.Length() != 0 {
		t.Errorf("missing file snapshot length = %d, want 0", snapshot.Length())
	}
}

func TestScriptSnapshotSynthesizesComponent(t *testing.T) {
	fs := memFS{files: map[string]string{
		"/proj/Other.svelte": `<script lang="ts">export let name: string;</script>`,
	}}
	registry := newTestRegistry(fs)
	container := registry.ContainerForDocument(testDoc{path: "/proj/main.ts"})

	snapshot := container.ScriptSnapshot("/proj/Other.svelte")
	if snapshot.Length() == 0 {
		t.Fatal("expected a synthesized snapshot with content")
	}
	// The factory's document was classified through the content sniff.
	if snapshot.Kind() != typescript.KindTS {
		t.Errorf("synthesized kind = %v, want %v", snapshot.Kind(), typescript.KindTS)
	}

	// Synthesized documents are cached like pushed ones.
	if second := container.ScriptSnapshot("/proj/Other.svelte"); second != snapshot {
		t.Error("synthesized snapshot must be served from the cache")
	}
}

func TestScriptFileNames(t *testing.T) {
	fs := memFS{files: map[string]string{
		"/proj/tsconfig.json": `{"files": ["src/entry.ts"]}`,
	}}
	registry := newTestRegistry(fs)
	container := registry.ContainerForDocument(testDoc{path: "/proj/main.ts"})

	container.UpdateDocument(testDoc{path: "/proj/main.ts", text: "let x = 1;"})

	names := container.ScriptFileNames()
	want := map[string]bool{"/proj/src/entry.ts": false, "/proj/main.ts": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("ScriptFileNames missing %q (got %v)", name, names)
		}
	}
}

func TestContainerDirectories(t *testing.T) {
	fs := memFS{files: map[string]string{"/proj/tsconfig.json": "{}"}}
	registry := newTestRegistry(fs)

	container := registry.ContainerForDocument(testDoc{path: "/proj/src/main.ts"})
	if got := container.CurrentDirectory(); got != "/proj" {
		t.Errorf("CurrentDirectory = %q, want %q", got, "/proj")
	}
	if got := container.ConfigPath(); got != "/proj/tsconfig.json" {
		t.Errorf("ConfigPath = %q, want %q", got, "/proj/tsconfig.json")
	}
}
