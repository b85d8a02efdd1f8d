// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"oberon/internal/lsp"
)

const lsName = "oberon"

var handler protocol.Handler

func main() {
	commonlog.Configure(1, nil)

	oberonHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:            oberonHandler.Initialize,
		Initialized:           oberonHandler.Initialized,
		Shutdown:              oberonHandler.Shutdown,
		SetTrace:              oberonHandler.SetTrace,
		TextDocumentDidOpen:   oberonHandler.TextDocumentDidOpen,
		TextDocumentDidChange: oberonHandler.TextDocumentDidChange,
		TextDocumentDidClose:  oberonHandler.TextDocumentDidClose,
	}

	s := server.NewServer(&handler, lsName, false)

	// Editors talk to the server over stdin/stdout.
	if err := s.RunStdio(); err != nil {
		os.Exit(1)
	}
}
