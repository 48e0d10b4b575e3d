package document

// Fragment is a read/write view over the span [start, end) of a parent
// document, typically the body of a script tag. It shares the parent's
// text, it never copies it; edits made through the fragment go back into
// the parent.
//
// Coordinate arguments are not validated: offsets and positions outside
// the fragment are a caller contract violation and yield out-of-range
// results rather than clamped ones, so that caller bugs stay visible.
type Fragment struct {
	parent     *Document
	start      int
	end        int
	attributes map[string]string
}

// NewFragment creates a view over parent[start:end). Requires
// 0 <= start <= end <= parent length.
func NewFragment(parent *Document, start, end int, attributes map[string]string) *Fragment {
	if attributes == nil {
		attributes = make(map[string]string)
	}
	return &Fragment{
		parent:     parent,
		start:      start,
		end:        end,
		attributes: attributes,
	}
}

func (f *Fragment) Text() string {
	return f.parent.Text()[f.start:f.end]
}

func (f *Fragment) TextLength() int {
	return f.end - f.start
}

// SetText replaces the fragment's span in the parent document and
// re-anchors the fragment's end so subsequent reads stay consistent.
func (f *Fragment) SetText(text string) {
	f.parent.Update(text, f.start, f.end)
	f.end = f.start + len(text)
}

// IsInFragment reports whether a parent position falls inside the
// fragment. The start offset is inclusive, the end offset exclusive: a
// position sitting exactly on the closing boundary belongs to the
// surrounding document, not the fragment.
func (f *Fragment) IsInFragment(pos Position) bool {
	offset := f.parent.OffsetAt(pos)
	return offset >= f.start && offset < f.end
}

func (f *Fragment) OffsetInParent(offset int) int {
	return f.start + offset
}

func (f *Fragment) OffsetInFragment(offset int) int {
	return offset - f.start
}

// PositionInParent maps a fragment-local position to the parent's
// coordinate space. The fragment shares the newline structure of the
// enclosing slice, so the fragment-local offset is computed against the
// parent's line table before shifting.
func (f *Fragment) PositionInParent(pos Position) Position {
	offset := f.parent.OffsetAt(pos)
	return f.parent.PositionAt(f.OffsetInParent(offset))
}

// PositionInFragment maps a parent position to the fragment's coordinate
// space by shifting the absolute offset back by the fragment start.
func (f *Fragment) PositionInFragment(pos Position) Position {
	offset := f.parent.OffsetAt(pos)
	return f.parent.PositionAt(f.OffsetInFragment(offset))
}

// FilePath returns the parent's file path; a fragment has no file
// identity of its own.
func (f *Fragment) FilePath() string {
	return f.parent.FilePath()
}

// Attribute returns the value of a tag attribute captured at parse time.
func (f *Fragment) Attribute(name string) (string, bool) {
	value, ok := f.attributes[name]
	return value, ok
}
