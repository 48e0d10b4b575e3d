package document

// Position represents a position in a document
type Position struct {
	Line      uint32
	Character uint32
}

// Range represents a range in a document
type Range struct {
	Start Position
	End   Position
}
