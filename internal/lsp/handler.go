// Package lsp serves lexical diagnostics to editors over the language
// server protocol.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("oberon.lsp")

// Handler implements the LSP methods for Oberon source files. Document
// contents are kept in memory and re-scanned on every change.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewHandler creates an empty handler.
func NewHandler() *Handler {
	return &Handler{content: make(map[string]string)}
}

// Initialize advertises the server's capabilities. Only full-document
// sync is supported; the scanner has no incremental mode.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen scans the newly opened document and publishes its
// diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("opened %s", uri)

	h.mu.Lock()
	h.content[uri] = params.TextDocument.Text
	h.mu.Unlock()

	h.publish(ctx, uri, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange replaces the stored document text and re-scans.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	h.mu.Lock()
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.content[uri] = c.Text
		case protocol.TextDocumentContentChangeEvent:
			// Full sync is advertised, so the range is always absent.
			h.content[uri] = c.Text
		}
	}
	text := h.content[uri]
	h.mu.Unlock()

	h.publish(ctx, uri, text)
	return nil
}

// TextDocumentDidClose drops the stored document text.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	h.mu.Unlock()
	return nil
}

func (h *Handler) publish(ctx *glsp.Context, uri string, text string) {
	diagnostics := Scan(uri, text)
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
