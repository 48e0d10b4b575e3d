package typescript

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ServiceContainer owns one language service for a configuration scope
// together with the snapshot cache the service's host callbacks read
// from. The container is the host: every callback consults the snapshot
// cache first and falls back to real filesystem reads.
type ServiceContainer struct {
	configPath     string
	configDir      string
	config         ProjectConfig
	fs             FileSystem
	createDocument DocumentFactory
	snapshots      map[string]*DocumentSnapshot
	service        *LanguageService
	mu             sync.Mutex
}

// newServiceContainer builds the container for a config scope.
// configPath may be "" for the default scope. A malformed config file
// falls back to the defaults; a scope is never unusable.
func newServiceContainer(configPath string, fs FileSystem, createDocument DocumentFactory) (*ServiceContainer, error) {
	configDir := ""
	if configPath != "" {
		configDir = filepath.Dir(configPath)
	}

	config, err := ParseConfig(fs, configPath, configDir)

	container := &ServiceContainer{
		configPath:     configPath,
		configDir:      configDir,
		config:         config,
		fs:             fs,
		createDocument: createDocument,
		snapshots:      make(map[string]*DocumentSnapshot),
	}
	container.service = NewLanguageService(container)
	return container, err
}

// UpdateDocument ingests a fresh snapshot of the document and returns
// the service handle to query against it. If the document's script kind
// changed since the previous snapshot, the live service is disposed and
// a fresh one is created against the same container; the other cached
// snapshots survive the restart. The snapshot is stored before the
// handle is returned, so queries against the handle observe the new
// content.
func (c *ServiceContainer) UpdateDocument(doc Document) *LanguageService {
	path := doc.FilePath()
	next := SnapshotDocument(doc)

	c.mu.Lock()
	var stale *LanguageService
	if prev, ok := c.snapshots[path]; ok && prev.Kind() != next.Kind() {
		// The service cannot reclassify a file once its parser state is
		// built; replace the handle and retire the old one.
		stale = c.service
		c.service = NewLanguageService(c)
	}
	c.snapshots[path] = next
	service := c.service
	c.mu.Unlock()

	// Outside the lock: Dispose takes the service's own lock, and live
	// queries hold it while calling back into the container.
	if stale != nil {
		stale.Dispose()
	}
	return service
}

// Service returns the current handle without ingesting anything.
func (c *ServiceContainer) Service() *LanguageService {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.service
}

// ConfigPath returns the scope key: the resolved config file path, or
// "" for the default scope.
func (c *ServiceContainer) ConfigPath() string {
	return c.configPath
}

// ScriptFileNames returns the union of the statically configured project
// files and every cached snapshot path.
func (c *ServiceContainer) ScriptFileNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{}, len(c.config.Files)+len(c.snapshots))
	var names []string
	for _, file := range c.config.Files {
		if _, ok := seen[file]; !ok {
			seen[file] = struct{}{}
			names = append(names, file)
		}
	}
	for path := range c.snapshots {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			names = append(names, path)
		}
	}
	sort.Strings(names)
	return names
}

// ScriptVersion reports the cached snapshot's version. Unknown paths are
// "0", which the service treats as unversioned: it re-reads the snapshot
// on every query instead of trusting its cache. Document counters start
// at 0 and reset when a file is closed and reopened, so "0" can never
// vouch for previously parsed content.
func (c *ServiceContainer) ScriptVersion(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snapshot, ok := c.snapshots[path]; ok {
		return strconv.Itoa(snapshot.Version())
	}
	return "0"
}

// ScriptSnapshot serves the cached snapshot for path. A component file
// the container has never seen is synthesized on demand through the
// injected document factory, cached and served, which is how the service
// sees into sibling component files discovered via imports. Anything
// else is a plain read-through; a failed read degrades to empty content,
// never to an error.
func (c *ServiceContainer) ScriptSnapshot(path string) ScriptSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snapshot, ok := c.snapshots[path]; ok {
		return snapshot
	}

	if c.isComponentPath(path) {
		text, _ := c.fs.ReadFile(path)
		doc := c.createDocument(path, text)
		snapshot := SnapshotDocument(doc)
		c.snapshots[path] = snapshot
		return snapshot
	}

	text, _ := c.fs.ReadFile(path)
	return stringSnapshot{text: text, kind: KindFromFileName(path)}
}

func (c *ServiceContainer) FileExists(path string) bool {
	return c.fs.FileExists(path)
}

func (c *ServiceContainer) ReadFile(path string) (string, bool) {
	return c.fs.ReadFile(path)
}

func (c *ServiceContainer) ReadDirectory(path string) []string {
	return c.fs.ReadDirectory(path)
}

func (c *ServiceContainer) CurrentDirectory() string {
	return c.configDir
}

func (c *ServiceContainer) DefaultLibFileName() string {
	return DefaultLibFileName(c.config.Options)
}

func (c *ServiceContainer) CompilationSettings() CompilerOptions {
	return c.config.Options
}

func (c *ServiceContainer) isComponentPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, virtual := range c.config.Options.VirtualExtensions {
		if ext == virtual {
			return true
		}
	}
	return false
}
