package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

func testDAG() *onto.DAG {
	d := onto.NewDAG()
	d.AddNode(onto.Node{Accession: "cyto", Name: "cytoplasm"})
	return d
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(Config{DAG: testDAG()})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandleComputeLayoutRejectsMalformedBody(t *testing.T) {
	s := NewServer(Config{DAG: testDAG()})

	req := httptest.NewRequest(http.MethodPost, "/v1/layouts", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestHandleComputeLayoutComputesAndTagsResponse(t *testing.T) {
	s := NewServer(Config{DAG: testDAG()})

	payload := `{
		"reaction": {"id": "R1", "name": "reaction", "compartment_id": "cyto", "shape": "transition"},
		"entities": [
			{"id": "A", "name": "A", "class": "protein", "compartment_id": "cyto", "roles": [{"type": "INPUT", "stoichiometry": 1}]},
			{"id": "B", "name": "B", "class": "protein", "compartment_id": "cyto", "roles": [{"type": "OUTPUT", "stoichiometry": 1}]}
		],
		"compartments": [{"accession": "cyto", "name": "cytoplasm"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/layouts", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Layout-Id") == "" {
		t.Error("expected a non-empty X-Layout-Id header")
	}
}
