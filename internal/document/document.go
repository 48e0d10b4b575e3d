package document

import (
	"sort"
	"sync"
)

// Document holds the full text of one open file together with a version
// counter that increases on every textual change. All coordinate
// conversions between absolute offsets and line/character positions go
// through the document's line-offset table.
type Document struct {
	filePath    string
	content     string
	version     int
	lineOffsets []int
	mu          sync.RWMutex
}

// NewDocument creates a document for the given absolute file path.
func NewDocument(filePath string, content string) *Document {
	return &Document{
		filePath: filePath,
		content:  content,
	}
}

func (d *Document) FilePath() string {
	return d.filePath
}

func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

func (d *Document) TextLength() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.content)
}

func (d *Document) Version() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// SetText replaces the whole document content.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.content = text
	d.version++
	d.lineOffsets = nil
}

// Update replaces the span [start, end) of the content with text.
// Offsets are byte offsets into the current content.
func (d *Document) Update(text string, start, end int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.content = d.content[:start] + text + d.content[end:]
	d.version++
	d.lineOffsets = nil
}

// OffsetAt converts a position into an absolute offset. Lines beyond the
// last line map to the document end; characters beyond a line's end are
// clamped to the line, since clients may send positions past it.
func (d *Document) OffsetAt(pos Position) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	offsets := d.ensureLineOffsets()

	line := int(pos.Line)
	if line >= len(offsets) {
		return len(d.content)
	}

	lineStart := offsets[line]
	lineEnd := len(d.content)
	if line+1 < len(offsets) {
		lineEnd = offsets[line+1]
	}

	offset := lineStart + int(pos.Character)
	if offset > lineEnd {
		offset = lineEnd
	}
	return offset
}

// PositionAt converts an absolute offset into a position. The offset is
// clamped to the document bounds.
func (d *Document) PositionAt(offset int) Position {
	d.mu.Lock()
	defer d.mu.Unlock()
	return positionAt(d.ensureLineOffsets(), len(d.content), offset)
}

func positionAt(offsets []int, length, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > length {
		offset = length
	}

	// First line whose start is past the offset; the offset's line is the
	// one before it.
	line := sort.Search(len(offsets), func(i int) bool {
		return offsets[i] > offset
	}) - 1

	return Position{
		Line:      uint32(line),
		Character: uint32(offset - offsets[line]),
	}
}

// ensureLineOffsets returns the line-offset table, rebuilding it after an
// edit. Caller must hold the write lock.
func (d *Document) ensureLineOffsets() []int {
	if d.lineOffsets == nil {
		d.lineOffsets = lineOffsets(d.content)
	}
	return d.lineOffsets
}

func lineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
