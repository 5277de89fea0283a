// Package lsp exposes the front end over the Language Server Protocol.
package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lumen/internal/ast"
	"lumen/internal/compiler"
	"lumen/internal/lexer"
)

// Handler implements the LSP server for Lumen documents. Documents are
// tracked by URI with full-text sync; every open/change recompiles and
// republishes diagnostics.
type Handler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	trees   map[protocol.DocumentUri][]ast.Node
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[protocol.DocumentUri]string),
		trees:   make(map[protocol.DocumentUri][]ast.Node),
	}
}

func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DocumentSymbolProvider: true,
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Lumen LSP initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("Lumen LSP shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	h.compileAndPublish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.compileAndPublish(ctx, params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.trees, params.TextDocument.URI)
	return nil
}

// TextDocumentCompletion offers the reserved-word set. Context-sensitive
// completion would need the cursor's grammar position, which the fail-fast
// parser does not expose.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for _, word := range lexer.Keywords() {
		items = append(items, protocol.CompletionItem{
			Label: word,
			Kind:  &kind,
		})
	}
	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

// TextDocumentDocumentSymbol lists top-level declarations of the last
// successfully parsed tree for the document.
func (h *Handler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	h.mu.RLock()
	nodes := h.trees[params.TextDocument.URI]
	h.mu.RUnlock()

	var symbols []protocol.DocumentSymbol
	for _, node := range nodes {
		if sym, ok := symbolFor(node); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols, nil
}

// compileAndPublish recompiles the document and pushes the full diagnostic
// set, clearing stale diagnostics when the set is empty.
func (h *Handler) compileAndPublish(ctx *glsp.Context, uri protocol.DocumentUri, source string) {
	res := compiler.Compile(string(uri), source)

	h.mu.Lock()
	h.content[uri] = source
	if res.Nodes != nil {
		h.trees[uri] = res.Nodes
	}
	h.mu.Unlock()

	diagnostics := ConvertFindings(res.Findings())
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func symbolFor(node ast.Node) (protocol.DocumentSymbol, bool) {
	var name string
	var kind protocol.SymbolKind

	switch n := node.(type) {
	case *ast.Page:
		name, kind = n.Name.Value, protocol.SymbolKindClass
	case *ast.Component:
		name, kind = n.Name.Value, protocol.SymbolKindClass
	case *ast.App:
		name, kind = n.Name.Value, protocol.SymbolKindModule
	case *ast.ModelDecl:
		name, kind = n.Name.Value, protocol.SymbolKindStruct
	case *ast.StoreDecl:
		name, kind = n.Name.Value, protocol.SymbolKindObject
	case *ast.ApiDecl:
		name, kind = n.Name.Value, protocol.SymbolKindInterface
	case *ast.TypeDecl:
		name, kind = n.Name.Value, protocol.SymbolKindStruct
	case *ast.TaskDecl:
		name, kind = n.Name.Value, protocol.SymbolKindFunction
	default:
		return protocol.DocumentSymbol{}, false
	}

	r := rangeFor(node.NodePos(), node.NodeEndPos())
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}, true
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
