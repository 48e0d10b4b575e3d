package typescript

import (
	"log"
	"path/filepath"
	"sync"
)

// Registry caches one ServiceContainer per configuration scope. The
// scope key is the resolved config file path ("" when no config exists
// above the document). Containers are created lazily and never evicted;
// the number of scopes is bounded by project structure, not file count.
//
// A registry is an explicit value with an injectable lifetime: the LSP
// server constructs one per session and passes it down, there is no
// package-level instance.
type Registry struct {
	fs             FileSystem
	createDocument DocumentFactory
	containers     map[string]*ServiceContainer
	mu             sync.Mutex
}

func NewRegistry(fs FileSystem, createDocument DocumentFactory) *Registry {
	return &Registry{
		fs:             fs,
		createDocument: createDocument,
		containers:     make(map[string]*ServiceContainer),
	}
}

// ServiceForDocument resolves the document's configuration scope,
// ingests the document into that scope's container and returns the
// service handle to query. Two documents under the same resolved config
// share one container and therefore one service.
func (r *Registry) ServiceForDocument(doc Document) *LanguageService {
	return r.ContainerForDocument(doc).UpdateDocument(doc)
}

// ContainerForDocument resolves (or lazily creates) the container for
// the document's configuration scope.
func (r *Registry) ContainerForDocument(doc Document) *ServiceContainer {
	searchDir := filepath.Dir(doc.FilePath())
	configPath := FindConfigFile(r.fs, searchDir)

	r.mu.Lock()
	defer r.mu.Unlock()

	if container, ok := r.containers[configPath]; ok {
		return container
	}

	container, err := newServiceContainer(configPath, r.fs, r.createDocument)
	if err != nil {
		// Malformed config: the container fell back to the default
		// options, the scope stays usable.
		log.Printf("config %s: %v", configPath, err)
	}
	r.containers[configPath] = container
	return container
}
