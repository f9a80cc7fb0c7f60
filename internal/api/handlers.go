package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/definition"
	"github.com/toruinaba/structools/internal/section"
	"github.com/toruinaba/structools/internal/service"
)

// Handler serves the section endpoints on top of a WebService
type Handler struct {
	svc          service.WebService
	metrics      *Metrics
	maxBodyBytes int64
	maxItems     int
}

// batchRequest is the body of POST /api/properties/batch
type batchRequest struct {
	Sections []definition.Definition `json:"sections"`
}

// batchResponse is the reply of POST /api/properties/batch
type batchResponse struct {
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

// CreateSection handles POST /api/sections
func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var def definition.Definition
	if err := h.decode(w, r, &def); err != nil {
		writeError(w, err)
		return
	}

	handle, err := h.svc.CreateSection(r.Context(), def)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/api/sections/"+handle.ID)
	writeJSON(w, http.StatusCreated, handle)
}

// ListSections handles GET /api/sections
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	handles, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, handles)
}

// Properties handles GET /api/sections/{id}/properties
func (h *Handler) Properties(w http.ResponseWriter, r *http.Request) {
	props, err := h.svc.CalculateProperties(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, props)
}

// WidthThickness handles GET /api/sections/{id}/width-thickness?grade=
func (h *Handler) WidthThickness(w http.ResponseWriter, r *http.Request) {
	check, err := h.svc.CheckWidthThickness(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("grade"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

// DeleteSection handles DELETE /api/sections/{id}
func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Batch handles POST /api/properties/batch. Nothing is stored; each
// definition gets its own result or error.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Sections) == 0 {
		writeError(w, fmt.Errorf("%w: no sections given", errBadRequest))
		return
	}
	if h.maxItems > 0 && len(req.Sections) > h.maxItems {
		writeError(w, fmt.Errorf("%w: %d sections exceed the limit of %d", errBadRequest, len(req.Sections), h.maxItems))
		return
	}

	results, err := h.svc.Evaluate(r.Context(), req.Sections)
	if err != nil {
		writeError(w, err)
		return
	}

	sum := batch.Summarize(results)
	if h.metrics != nil {
		h.metrics.BatchItems.WithLabelValues("ok").Add(float64(sum.Total - sum.Failed))
		h.metrics.BatchItems.WithLabelValues("failed").Add(float64(sum.Failed))
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results, Summary: sum})
}

// decode reads a JSON body, keeping numbers as json.Number so that the
// section validator sees exactly what the client sent
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	dec := json.NewDecoder(body)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if dimErr := reinforcementTypeError(err); dimErr != nil {
			return dimErr
		}
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

// reinforcementTypeError reports a non-numeric bar position or area as an
// invalid dimension naming the field, like the dimensions map does
func reinforcementTypeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || !strings.Contains(typeErr.Field, "reinforcement") {
		return nil
	}
	return &section.DimensionError{
		Field:  typeErr.Field,
		Value:  typeErr.Value,
		Err:    section.ErrInvalidDimension,
		Reason: "must be a real number",
	}
}
