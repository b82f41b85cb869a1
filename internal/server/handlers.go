package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/hyperjump/vecplot/internal/models"
	"github.com/hyperjump/vecplot/pkg/vector"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	v, err := vectorParam(r, "x", "y")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, models.NewVectorReport(v))
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	v, err := vectorParam(r, "x", "y")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := v.Normalize()
	if errors.Is(err, vector.ErrInvalidOperation) {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, models.PointOf(n))
}

func (s *Server) handleEqual(w http.ResponseWriter, r *http.Request) {
	a, err := vectorParam(r, "x1", "y1")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, err := vectorParam(r, "x2", "y2")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, models.NewEqualityReport(a, b))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer().WritePNG(&buf); err != nil {
		s.logger.Error("chart render failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// vectorParam reads two finite float query parameters.
func vectorParam(r *http.Request, xKey, yKey string) (vector.Vector2D, error) {
	q := r.URL.Query()
	var coords [2]float64
	for i, key := range []string{xKey, yKey} {
		raw := q.Get(key)
		if raw == "" {
			return vector.Vector2D{}, fmt.Errorf("%s is required", key)
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return vector.Vector2D{}, fmt.Errorf("%s must be a finite number", key)
		}
		coords[i] = f
	}
	return vector.New(coords[0], coords[1]), nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Debug("response encode failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
