package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoggen/grove/pkg/cache"
	"github.com/mvoggen/grove/pkg/forest"
	forestio "github.com/mvoggen/grove/pkg/io"
	"github.com/mvoggen/grove/pkg/render/dot"
	"github.com/mvoggen/grove/pkg/store"
)

// parseRequest is the body of POST /api/parse.
type parseRequest struct {
	Notation string `json:"notation"`
	Sort     bool   `json:"sort"`
}

// saveRequest is the body of POST /api/forests.
type saveRequest struct {
	Name     string `json:"name"`
	Notation string `json:"notation"`
}

// forestResponse is a saved document together with its parsed forest.
type forestResponse struct {
	store.Forest
	Items json.RawMessage `json:"forest"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	items := forest.Parse(req.Notation)
	if req.Sort {
		forest.Sort(items)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := forestio.WriteJSON(items, w); err != nil {
		s.logger.Error("write parse response", "err", err)
	}
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	f, err := store.New(req.Name, req.Notation)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.Put(r.Context(), f); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"id": f.ID})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	forests, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if forests == nil {
		forests = []*store.Forest{}
	}
	s.writeJSON(w, http.StatusOK, forests)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	f := s.lookup(w, r)
	if f == nil {
		return
	}

	var buf bytes.Buffer
	if err := forestio.WriteJSON(forest.Parse(f.Notation), &buf); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, forestResponse{
		Forest: *f,
		Items:  buf.Bytes(),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	f := s.lookup(w, r)
	if f == nil {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}

	items := forest.Parse(f.Notation)
	if r.URL.Query().Get("sort") == "true" {
		forest.Sort(items)
	}

	switch format {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		forest.Fprint(w, items)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		if err := forestio.WriteJSON(items, w); err != nil {
			s.logger.Error("write render response", "err", err)
		}
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = w.Write([]byte(dot.ToDOT(items)))
	case "svg", "png":
		s.renderArtifact(w, r, items, f.Notation, format)
	default:
		s.writeError(w, http.StatusBadRequest, errors.New("unsupported format: "+format))
	}
}

// renderArtifact serves a rasterized artifact, consulting the cache
// before invoking Graphviz.
func (s *Server) renderArtifact(w http.ResponseWriter, r *http.Request, items []*forest.Item, notation, format string) {
	key := cache.Key("render", notation, r.URL.Query().Get("sort"), format)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		s.serveArtifact(w, format, data)
		return
	}

	dotSrc := dot.ToDOT(items)
	var (
		data []byte
		err  error
	)
	if format == "svg" {
		data, err = dot.RenderSVG(dotSrc)
	} else {
		data, err = dot.RenderPNG(dotSrc)
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, renderTTL); err != nil {
		s.logger.Warn("cache artifact", "err", err)
	}
	s.serveArtifact(w, format, data)
}

func (s *Server) serveArtifact(w http.ResponseWriter, format string, data []byte) {
	if format == "svg" {
		w.Header().Set("Content-Type", "image/svg+xml")
	} else {
		w.Header().Set("Content-Type", "image/png")
	}
	_, _ = w.Write(data)
}

// lookup fetches the document named by the id route parameter. On
// failure it writes the error response and returns nil.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *store.Forest {
	id := chi.URLParam(r, "id")
	f, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return nil
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return nil
	}
	return f
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
