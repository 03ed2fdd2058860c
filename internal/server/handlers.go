package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ukaji3/figchart-go/internal/logging"
	"github.com/ukaji3/figchart-go/pkg/figchart"
	"github.com/ukaji3/figchart-go/pkg/figchart/builder"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/output"
	"github.com/ukaji3/figchart-go/pkg/figchart/parser"
)

// chartRequest is the body of POST /api/v1/charts. Settings fields that are
// absent keep the server defaults.
type chartRequest struct {
	ChartType models.ChartType `json:"chartType"`
	Settings  json.RawMessage  `json:"settings"`
	Dataset   *models.Dataset  `json:"dataset"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleDataset decodes an uploaded file and returns the dataset.
// Query: format (required), sheet, transpose.
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.decodeUpload(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var req chartRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Dataset == nil {
		s.writeError(w, http.StatusBadRequest, errors.New("dataset is required"))
		return
	}

	settings := s.defaults.Clone()
	if len(req.Settings) > 0 {
		if err := json.Unmarshal(req.Settings, &settings); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid settings: %w", err))
			return
		}
	}
	s.build(w, req.Dataset, settings, req.ChartType)
}

// handleChartFromFile decodes an uploaded file and builds a chart from it
// with the default settings.
// Query: format (required), sheet, transpose, chartType, title.
func (s *Server) handleChartFromFile(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.decodeUpload(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	settings := s.defaults.Clone()
	if title := q.Get("title"); title != "" {
		settings.Title = title
	}
	s.build(w, ds, settings, models.ChartType(q.Get("chartType")))
}

func (s *Server) build(w http.ResponseWriter, ds *models.Dataset, settings models.Settings, chartType models.ChartType) {
	spec, err := builder.Build(ds, settings, chartType)
	if err != nil {
		var notFound *builder.ColumnNotFoundError
		var buildErr *builder.SpecBuildError
		if errors.As(err, &notFound) || errors.As(err, &buildErr) {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := output.WriteJSON(w, spec, false); err != nil {
		s.log.Error("failed to write chart", logging.Err(err))
	}
}

func (s *Server) decodeUpload(w http.ResponseWriter, r *http.Request) (*models.Dataset, bool) {
	q := r.URL.Query()
	format, ok := parser.ParseFormat(q.Get("format"))
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", figchart.ErrUnsupportedFormat, q.Get("format")))
		return nil, false
	}
	opts := figchart.Options{Format: format, Sheet: q.Get("sheet")}
	if raw := q.Get("transpose"); raw != "" {
		t, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid transpose %q", raw))
			return nil, false
		}
		opts.Transpose = &t
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return nil, false
	}
	ds, err := figchart.Decode(body, format, opts)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return ds, true
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		return nil, false
	}
	return body, true
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", logging.Int("status", status), logging.Err(err))
	} else {
		s.log.Debug("request rejected", logging.Int("status", status), logging.Err(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
