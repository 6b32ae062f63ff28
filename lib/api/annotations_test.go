package api

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swag builds the OpenAPI document from these comments, so every handler
// needs a route and a summary
func TestHandlersCarrySwagAnnotations(t *testing.T) {
	handlers := map[string]string{
		"profileCPU":      "/prof [get]",
		"suicide":         "/api/kill [post]",
		"getStats":        "/api/stats [get]",
		"handleConfig":    "/api/config [get]",
		"handleWebsocket": "/api/ws [get]",
	}

	fset := token.NewFileSet()
	found := map[string]bool{}
	for _, name := range []string{"api.go", "websocket.go"} {
		f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil {
				continue
			}
			route, ok := handlers[fn.Name.Name]
			if !ok {
				continue
			}
			found[fn.Name.Name] = true
			require.NotNil(t, fn.Doc, "%s has no doc comment", fn.Name.Name)
			doc := fn.Doc.Text()
			assert.Contains(t, doc, "@Summary", fn.Name.Name)
			assert.Contains(t, doc, "@Tags", fn.Name.Name)
			assert.Contains(t, doc, "@Success", fn.Name.Name)
			assert.True(t, strings.Contains(doc, "@Router") && strings.Contains(doc, route),
				"%s should be routed at %s", fn.Name.Name, route)
		}
	}
	assert.Len(t, found, len(handlers))
}
