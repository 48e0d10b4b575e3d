package lsp

import (
	"github.com/orta/language-tools/internal/document"
	"github.com/orta/language-tools/internal/scheduler"
	"github.com/orta/language-tools/internal/typescript"
	"github.com/orta/language-tools/internal/version"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "svelteserver"

var lsVersion = version.Version

type Server struct {
	manager   *document.Manager
	registry  *typescript.Registry
	scheduler *scheduler.Scheduler
	handler   *protocol.Handler
}

func NewServer() (*server.Server, error) {
	ls := &Server{
		manager:   document.NewManager(),
		scheduler: scheduler.NewScheduler(32),
	}
	ls.registry = typescript.NewRegistry(typescript.OSFileSystem(), newScriptDocument)
	ls.scheduler.Start()

	ls.handler = &protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		SetTrace:              ls.setTrace,
		Shutdown:              ls.shutdown,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
