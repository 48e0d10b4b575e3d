package typescript

// TextChangeRange describes an edit between two snapshots.
type TextChangeRange struct {
	Start     int
	Length    int
	NewLength int
}

// ScriptSnapshot is the read contract the language service consumes.
type ScriptSnapshot interface {
	// Text returns the snapshot text between start and end.
	Text(start, end int) string
	Length() int
	// ChangeRange reports the edit between old and this snapshot. The
	// second return value is false when the change is unknown, which
	// forces the service to re-parse from scratch.
	ChangeRange(old ScriptSnapshot) (TextChangeRange, bool)
	Kind() ScriptKind
}

// DocumentSnapshot is an immutable capture of a document's text, version
// and script kind. A changed document requires a new snapshot; snapshots
// are never mutated in place.
type DocumentSnapshot struct {
	text    string
	version int
	kind    ScriptKind
}

// SnapshotDocument captures the document's current state.
func SnapshotDocument(doc Document) *DocumentSnapshot {
	return &DocumentSnapshot{
		text:    doc.Text(),
		version: doc.Version(),
		kind:    KindFromDocument(doc),
	}
}

func (s *DocumentSnapshot) Text(start, end int) string {
	return s.text[start:end]
}

func (s *DocumentSnapshot) Length() int {
	return len(s.text)
}

// ChangeRange always reports unknown; every update is a full-text
// replacement snapshot, incremental diffing is not attempted.
func (s *DocumentSnapshot) ChangeRange(old ScriptSnapshot) (TextChangeRange, bool) {
	return TextChangeRange{}, false
}

func (s *DocumentSnapshot) Kind() ScriptKind {
	return s.kind
}

func (s *DocumentSnapshot) Version() int {
	return s.version
}

// stringSnapshot wraps raw file content read through from disk for files
// the container has never been handed as documents.
type stringSnapshot struct {
	text string
	kind ScriptKind
}

func (s stringSnapshot) Text(start, end int) string {
	return s.text[start:end]
}

func (s stringSnapshot) Length() int {
	return len(s.text)
}

func (s stringSnapshot) ChangeRange(old ScriptSnapshot) (TextChangeRange, bool) {
	return TextChangeRange{}, false
}

func (s stringSnapshot) Kind() ScriptKind {
	return s.kind
}
