// Command kodeptd is a small HTTP debug-dump server: POST a path and its
// source, get back the AST/RLT JSON dump plus whatever diagnostics the
// pipeline produced (spec §4.10). Structure — flag-configured port,
// origin-allowlist CORS middleware, writeJSON/writeError helpers — is
// carried over directly from cmd/server/main.go; only the request/response
// shape and the work done per request changed, from a graph-query engine
// to a compiler front end.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/rlt"
	"github.com/ITesserakt/kodept/internal/scope"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// dumpResponse is what /dump returns: the AST dump (nil on a parse
// failure), the RLT dump (nil likewise), and every diagnostic Report
// accumulated: the parse error, or else whatever the scope pass reported.
type dumpResponse struct {
	AST         *ast.DumpNode `json:"ast,omitempty"`
	RLT         *rlt.File     `json:"rlt,omitempty"`
	Diagnostics []diag.Report `json:"diagnostics"`
}

func dumpHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		Path   string `json:"path"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Path == "" {
		writeError(w, http.StatusBadRequest, "missing field: path")
		return
	}

	reporter := diag.NewReporter()
	path := position.CodePath{Kind: position.ToMemory, Name: body.Path}

	file, err := rlt.Parse(body.Source)
	if err != nil {
		reporter.Report(diag.SeverityError, "KC100", err.Error(), nil, path)
		writeJSON(w, http.StatusOK, dumpResponse{Diagnostics: reporter.All()})
		return
	}

	arena, root, _ := ast.Lower(file)
	rootID := ast.Cast[ast.GenericASTNode](root)
	scope.Build(arena, rootID, reporter, path)

	astDump := ast.Dump(arena, rootID)
	writeJSON(w, http.StatusOK, dumpResponse{
		AST:         &astDump,
		RLT:         file,
		Diagnostics: reporter.All(),
	})
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/dump", dumpHandler)

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("kodeptd listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
