package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mdimension/mdim/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(Config{
		Runner: pipeline.NewRunner(nil, nil, logger),
		Logger: logger,
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestObjectsListing(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/objects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Objects []objectInfo `json:"objects"`
	}
	decodeBody(t, rec, &body)
	if len(body.Objects) != 10 {
		t.Errorf("objects = %d, want 10", len(body.Objects))
	}
	found := false
	for _, o := range body.Objects {
		if o.Type == "hypercube" {
			found = true
			if o.Capability.MinDimension != 2 {
				t.Errorf("hypercube MinDimension = %d", o.Capability.MinDimension)
			}
		}
	}
	if !found {
		t.Error("hypercube missing from listing")
	}
}

func TestPlanes(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/planes?dimension=4", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Dimension int `json:"dimension"`
		Groups    []struct {
			Label  string `json:"label"`
			Planes []struct {
				Name string `json:"name"`
			} `json:"planes"`
		} `json:"groups"`
	}
	decodeBody(t, rec, &body)
	if body.Dimension != 4 {
		t.Errorf("dimension = %d", body.Dimension)
	}
	if len(body.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(body.Groups))
	}
	if len(body.Groups[0].Planes) != 3 || len(body.Groups[1].Planes) != 3 {
		t.Errorf("plane split = %d/%d, want 3/3",
			len(body.Groups[0].Planes), len(body.Groups[1].Planes))
	}
}

func TestPlanesValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/planes?dimension=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric dimension: status = %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/planes?dimension=50", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized dimension: status = %d", rec.Code)
	}
	var body errorBody
	decodeBody(t, rec, &body)
	if body.Error.Code != "INVALID_DIMENSION" {
		t.Errorf("error code = %s", body.Error.Code)
	}
}

func TestGeometryPost(t *testing.T) {
	s := newTestServer(t)
	payload := `{"object_type": "hypercube", "dimension": 4, "formats": ["json", "svg"]}`
	rec := doRequest(t, s, http.MethodPost, "/api/geometry", strings.NewReader(payload))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body geometryResponse
	decodeBody(t, rec, &body)
	if body.VertexCount != 16 || body.EdgeCount != 32 {
		t.Errorf("counts = %d/%d", body.VertexCount, body.EdgeCount)
	}
	if body.Mode != "polytope" {
		t.Errorf("mode = %s", body.Mode)
	}
	if len(body.Artifacts["json"]) == 0 || len(body.Artifacts["svg"]) == 0 {
		t.Error("artifacts missing")
	}
	if !bytes.Contains(body.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact should contain an svg element")
	}
}

func TestGeometryPostValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		payload string
		code    string
	}{
		{"malformed body", `{not json`, "INVALID_INPUT"},
		{"unknown object", `{"object_type": "teapot", "dimension": 4}`, "INVALID_OBJECT"},
		{"bad dimension", `{"object_type": "simplex", "dimension": 1}`, "INVALID_DIMENSION"},
		{"bad format", `{"object_type": "simplex", "dimension": 3, "formats": ["gif"]}`, "INVALID_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/geometry", strings.NewReader(tt.payload))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			var body errorBody
			decodeBody(t, rec, &body)
			if body.Error.Code != tt.code {
				t.Errorf("code = %s, want %s", body.Error.Code, tt.code)
			}
		})
	}
}

func TestGeometryArtifact(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/geometry/hypercube?dimension=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body should contain an svg element")
	}
}

func TestGeometryArtifactValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/geometry/hypercube?format=gif", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad format: status = %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/geometry/teapot", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown object: status = %d", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry a request ID")
	}

	// An incoming ID is preserved.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec2 := httptest.NewRecorder()
	s.Router().ServeHTTP(rec2, req)
	if rec2.Header().Get("X-Request-ID") != "abc-123" {
		t.Errorf("request ID = %s, want abc-123", rec2.Header().Get("X-Request-ID"))
	}
}
