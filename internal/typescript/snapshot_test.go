package typescript_test

import (
	"testing"

	"github.com/orta/language-tools/internal/document"
	"github.com/orta/language-tools/internal/typescript"
)

func TestSnapshotIsImmutable(t *testing.T) {
	doc := document.NewDocument("/a/main.ts", "let x = 1;")
	snapshot := typescript.SnapshotDocument(doc)

	doc.SetText("let y = 2;")

	if got := snapshot.Text(0, snapshot.Length()); got != "let x = 1;" {
		t.Errorf("snapshot text changed after edit: %q", got)
	}
	if snapshot.Version() != 0 {
		t.Errorf("snapshot version changed after edit: %d", snapshot.Version())
	}
}

func TestSnapshotCapturesVersionAndKind(t *testing.T) {
	doc := document.NewDocument("/a/main.ts", "let x = 1;")
	doc.SetText("let x = 2;")
	doc.SetText("let x = 3;")

	snapshot := typescript.SnapshotDocument(doc)
	if snapshot.Version() != 2 {
		t.Errorf("Version() = %d, want 2", snapshot.Version())
	}
	if snapshot.Kind() != typescript.KindTS {
		t.Errorf("Kind() = %v, want %v", snapshot.Kind(), typescript.KindTS)
	}
}

func TestSnapshotChangeRangeUnknown(t *testing.T) {
	doc := document.NewDocument("/a/main.ts", "let x = 1;")
	old := typescript.SnapshotDocument(doc)
	doc.SetText("let x = 2;")
	next := typescript.SnapshotDocument(doc)

	if _, known := next.ChangeRange(old); known {
		t.Error("ChangeRange must report unknown")
	}
}

func TestSnapshotTextSlicing(t *testing.T) {
	doc := document.NewDocument("/a/main.ts", "abcdef")
	snapshot := typescript.SnapshotDocument(doc)

	if got := snapshot.Text(2, 4); got != "cd" {
		t.Errorf("Text(2, 4) = %q, want %q", got, "cd")
	}
	if snapshot.Length() != 6 {
		t.Errorf("Length() = %d, want 6", snapshot.Length())
	}
}
