package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mdimension/mdim/pkg/buildinfo"
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/object"
	"github.com/mdimension/mdim/pkg/pipeline"
	"github.com/mdimension/mdim/pkg/rotation"
)

// artifactContentTypes maps output formats to MIME types.
var artifactContentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatPNG:  "image/png",
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// objectInfo is one entry of the /api/objects listing.
type objectInfo struct {
	Type       string            `json:"type"`
	Capability object.Capability `json:"capability"`
}

func (s *Server) handleObjects(w http.ResponseWriter, r *http.Request) {
	types := object.Types()
	infos := make([]objectInfo, 0, len(types))
	for _, t := range types {
		c, _ := object.Lookup(t)
		infos = append(infos, objectInfo{Type: string(t), Capability: c})
	}
	writeJSON(w, http.StatusOK, map[string]any{"objects": infos})
}

func (s *Server) handlePlanes(w http.ResponseWriter, r *http.Request) {
	dim, err := queryInt(r, "dimension", 4)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateDimension(dim, 2); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"dimension": dim,
		"groups":    rotation.Groups(dim),
	})
}

// geometryResponse is the POST /api/geometry response shape. Artifact bytes
// are base64-encoded by encoding/json.
type geometryResponse struct {
	GeometryHash  string             `json:"geometry_hash"`
	TransformHash string             `json:"transform_hash"`
	Mode          string             `json:"mode"`
	VertexCount   int                `json:"vertex_count"`
	EdgeCount     int                `json:"edge_count"`
	FaceCount     int                `json:"face_count"`
	Artifacts     map[string][]byte  `json:"artifacts"`
	Cache         pipeline.CacheInfo `json:"cache"`
}

func (s *Server) handleGeometry(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	opts.Logger = s.cfg.Logger

	result, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, geometryResponse{
		GeometryHash:  result.GeometryHash,
		TransformHash: result.TransformHash,
		Mode:          string(result.Mode),
		VertexCount:   result.Stats.VertexCount,
		EdgeCount:     result.Stats.EdgeCount,
		FaceCount:     result.Stats.FaceCount,
		Artifacts:     result.Artifacts,
		Cache:         result.CacheInfo,
	})
}

// handleGeometryArtifact serves a single artifact directly, suitable for
// <img> tags and curl.
func (s *Server) handleGeometryArtifact(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}

	dim, err := queryInt(r, "dimension", 4)
	if err != nil {
		writeError(w, err)
		return
	}
	size, err := queryInt(r, "size", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	distance, err := queryFloat(r, "distance", 0)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		ObjectType:   chi.URLParam(r, "type"),
		Dimension:    dim,
		Formats:      []string{format},
		Distance:     distance,
		Size:         size,
		FacesVisible: r.URL.Query().Get("faces") == "true",
		Logger:       s.cfg.Logger,
	}

	result, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifactContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, raw)
	}
	return n, nil
}

// queryFloat parses a float query parameter with a default.
func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, raw)
	}
	return f, nil
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsDomain(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeSceneNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		status = http.StatusUnprocessableEntity
	}

	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
