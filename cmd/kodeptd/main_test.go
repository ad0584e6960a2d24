package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDumpHandlerReturnsASTForValidSource(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"path": "mem.kd", "source": "fun id(x) => x"})
	req := httptest.NewRequest(http.MethodPost, "/dump", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	dumpHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dumpResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.AST == nil || resp.AST.Kind != "FileDecl" {
		t.Fatalf("expected an AST dump rooted at FileDecl, got %+v", resp.AST)
	}
}

func TestDumpHandlerReportsParseErrors(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"path": "mem.kd", "source": "fun (((" })
	req := httptest.NewRequest(http.MethodPost, "/dump", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	dumpHandler(rec, req)

	var resp dumpResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Diagnostics) == 0 {
		t.Fatalf("expected a diagnostic for malformed source")
	}
}

func TestDumpHandlerRejectsMissingPath(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"source": "fun id(x) => x"})
	req := httptest.NewRequest(http.MethodPost, "/dump", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	dumpHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing path, got %d", rec.Code)
	}
}

func TestCorsMiddlewareAllowsKnownOrigin(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/dump", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected the allowed origin to be echoed back, got %q", got)
	}
}
