package document

import (
	"fmt"
	"sync"
)

// Manager tracks the documents the client currently has open.
type Manager struct {
	docs map[string]*Document
	mu   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		docs: make(map[string]*Document),
	}
}

// Open creates and tracks a document for path. Opening an already open
// path replaces the previous document, matching client open semantics
// after an editor reload.
func (m *Manager) Open(path string, content string) *Document {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := NewDocument(path, content)
	m.docs[path] = doc
	return doc
}

func (m *Manager) Get(path string) (*Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[path]
	return doc, exists
}

func (m *Manager) Close(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[path]; !exists {
		return fmt.Errorf("document not found: %s", path)
	}
	delete(m.docs, path)
	return nil
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]*Document)
}
