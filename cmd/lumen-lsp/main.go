// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"lumen/internal/lsp"
)

const lsName = "lumen"

var handler protocol.Handler

func main() {
	commonlog.Configure(1, nil)

	lumenHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                 lumenHandler.Initialize,
		Initialized:                lumenHandler.Initialized,
		Shutdown:                   lumenHandler.Shutdown,
		SetTrace:                   lumenHandler.SetTrace,
		TextDocumentDidOpen:        lumenHandler.TextDocumentDidOpen,
		TextDocumentDidChange:      lumenHandler.TextDocumentDidChange,
		TextDocumentDidClose:       lumenHandler.TextDocumentDidClose,
		TextDocumentCompletion:     lumenHandler.TextDocumentCompletion,
		TextDocumentDocumentSymbol: lumenHandler.TextDocumentDocumentSymbol,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Lumen LSP server...")
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Lumen LSP server:", err)
		os.Exit(1)
	}
}
