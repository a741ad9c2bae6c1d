// Package lspserver implements a diagnostics-only Language Server for Java
// SE 8-era source: every didOpen, full-text didChange, and didSave (with
// text) notification re-tokenizes and re-parses the document and
// republishes the first lexer.Error or parser.Error it hits (the
// first-error-abort model leaves no partial AST to offer richer diagnostics
// from); didClose clears the document's diagnostics without parsing. No
// completion, no workspace scanning:
// the library has no symbol table to serve them from.
package lspserver

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/evaristocosta/javalang/lexer"
	"github.com/evaristocosta/javalang/parser"
	"github.com/evaristocosta/javalang/token"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const languageServerName = "javaparse"

// Server is one running Language Server instance.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger
}

// NewServer builds a Server ready for RunStdio. verbosity is forwarded to
// commonlog.Configure the same way every tliron/glsp-based server does.
func NewServer(version string, verbosity int) *Server {
	commonlog.Configure(verbosity, nil)

	ls := &Server{
		version: version,
		log:     commonlog.GetLogger(languageServerName),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, languageServerName, false)
	return ls
}

// RunStdio serves the Language Server Protocol over stdin/stdout until the
// client disconnects.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    textDocumentSyncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    languageServerName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.diagnose(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.diagnose(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.diagnose(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

// diagnose tokenizes and parses source, publishing either an empty
// diagnostics set (clean parse) or a single diagnostic for the first
// LexerError or *parser.Error encountered.
func (ls *Server) diagnose(ctx *glsp.Context, uri protocol.DocumentUri, source string) {
	diagnostics := []protocol.Diagnostic{}

	path, err := uriToPath(string(uri))
	if err != nil {
		path = string(uri)
	}

	if _, err := parser.Parse(source, parser.WithFile(path)); err != nil {
		diagnostics = append(diagnostics, diagnosticFor(err))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticFor(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	message := err.Error()
	pos := token.Position{Line: 1, Column: 1}

	switch e := err.(type) {
	case *lexer.Error:
		pos = e.Pos
	case *parser.Error:
		pos = e.Pos
	}

	rangeStart := protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
	rangeEnd := protocol.Position{
		Line:      rangeStart.Line,
		Character: rangeStart.Character + 1,
	}

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: rangeStart, End: rangeEnd},
		Severity: &severity,
		Source:   stringPtr(languageServerName),
		Message:  message,
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool { return &b }

func stringPtr(s string) *string { return &s }

func textDocumentSyncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
