package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/toruinaba/structools/internal/section"
	"github.com/toruinaba/structools/internal/service"
)

// errorResponse is the body of every non-2xx reply
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

// errBadRequest marks malformed request bodies and parameters
var errBadRequest = errors.New("bad request")

// classify maps an error to its HTTP status and error kind
func classify(err error) (int, errorResponse) {
	resp := errorResponse{Error: err.Error()}

	var dimErr *section.DimensionError
	if errors.As(err, &dimErr) {
		resp.Field = dimErr.Field
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		resp.Kind = "not_found"
		return http.StatusNotFound, resp
	case errors.Is(err, section.ErrInvalidDimension):
		resp.Kind = "invalid_dimension"
	case errors.Is(err, section.ErrOutOfRange):
		resp.Kind = "out_of_range"
	case errors.Is(err, section.ErrDegenerateGeometry):
		resp.Kind = "degenerate_geometry"
	case errors.Is(err, section.ErrUnsupportedShape):
		resp.Kind = "unsupported_shape"
	case errors.Is(err, section.ErrUnsupportedGrade):
		resp.Kind = "unsupported_grade"
	case errors.Is(err, errBadRequest):
		resp.Kind = "bad_request"
	default:
		resp.Kind = "internal"
		resp.Error = "internal error"
		return http.StatusInternalServerError, resp
	}
	return http.StatusBadRequest, resp
}

// writeJSON encodes v before committing the status, so a value that cannot
// be encoded becomes a 500 instead of an empty 200
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "failed to encode response", Kind: "internal"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, err error) {
	status, resp := classify(err)
	writeJSON(w, status, resp)
}
