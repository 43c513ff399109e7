package api

import (
	"net/http"
	"strings"
)

func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	clause := r.URL.Query().Get("clause")
	if strings.TrimSpace(clause) == "" {
		jsonError(w, "clause is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"original":   clause,
		"simplified": s.analyzer.Simplify(clause),
	})
}

func (s *Server) handleExtractEntities(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entities": s.analyzer.ExtractEntities(text)})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.analyzer.Classify(text))
}
