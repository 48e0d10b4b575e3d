package lsp

import (
	con "context"
	"fmt"
	"log"

	"github.com/orta/language-tools/internal/scheduler"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &lsVersion,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Server initialized")
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	log.Println("Server shutting down")
	ls.scheduler.Stop()
	ls.manager.CloseAll()
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	ls.manager.Open(path, params.TextDocument.Text)
	ls.scheduleDiagnostics(context, path)
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	doc, ok := ls.manager.Get(path)
	if !ok {
		return fmt.Errorf("document not open: %s", path)
	}

	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			doc.SetText(contentChange.Text)

		case protocol.TextDocumentContentChangeEvent:
			if contentChange.Range == nil {
				doc.SetText(contentChange.Text)
				continue
			}
			start := doc.OffsetAt(fromProtocolPosition(contentChange.Range.Start))
			end := doc.OffsetAt(fromProtocolPosition(contentChange.Range.End))
			doc.Update(contentChange.Text, start, end)
		}
	}

	ls.scheduleDiagnostics(context, path)
	return nil
}

func (ls *Server) textDocumentDidSave(
	context *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	return nil
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	if err := ls.manager.Close(path); err != nil {
		return err
	}
	publishDiagnostics(context, path, nil)
	return nil
}

// scheduleDiagnostics queues the diagnostics run for a document. All
// language-service work goes through the scheduler's single worker so
// the service layer stays single-threaded.
func (ls *Server) scheduleDiagnostics(context *glsp.Context, path string) {
	ls.scheduler.Schedule(scheduler.Task{
		Name: "diagnostics " + path,
		Run: func() error {
			return ls.runDiagnostics(context, path)
		},
	})
}

func (ls *Server) runDiagnostics(context *glsp.Context, path string) error {
	doc, ok := ls.manager.Get(path)
	if !ok {
		// Closed while the task was queued.
		return nil
	}

	script := scriptDocumentFor(doc)
	service := ls.registry.ServiceForDocument(script)

	diagnostics, err := service.SyntaxDiagnostics(con.Background(), path)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	published := make([]protocol.Diagnostic, 0, len(diagnostics))
	severity := protocol.DiagnosticSeverityError
	source := lsName
	for _, diagnostic := range diagnostics {
		// Service offsets are script-local; lift them into the host
		// document through the fragment.
		start := doc.PositionAt(script.fragment.OffsetInParent(diagnostic.StartOffset))
		end := doc.PositionAt(script.fragment.OffsetInParent(diagnostic.EndOffset))
		published = append(published, protocol.Diagnostic{
			Range: protocol.Range{
				Start: toProtocolPosition(start),
				End:   toProtocolPosition(end),
			},
			Severity: &severity,
			Source:   &source,
			Message:  diagnostic.Message,
		})
	}

	publishDiagnostics(context, path, published)
	return nil
}

func publishDiagnostics(context *glsp.Context, path string, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: diagnostics,
	})
}
