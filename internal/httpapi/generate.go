package httpapi

import (
	"net/http"

	"newsflow/internal/editor"
)

type bodyRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type summaryRequest struct {
	Content string `json:"content"`
}

type textResponse struct {
	Text      string `json:"text"`
	Available bool   `json:"available"`
}

func (s *Server) handleGenerateBody(w http.ResponseWriter, r *http.Request) {
	var req bodyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	text := s.gen.GenerateArticleBody(r.Context(), req.Title, req.Category)
	writeJSON(w, http.StatusOK, textResponse{Text: text, Available: s.gen.Available()})
}

func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	text := s.gen.GenerateSummary(r.Context(), req.Content)
	writeJSON(w, http.StatusOK, textResponse{Text: text, Available: s.gen.Available()})
}

// handleAutoWrite fills a posted draft. Nothing is saved.
func (s *Server) handleAutoWrite(w http.ResponseWriter, r *http.Request) {
	d := editor.NewDraft()
	if err := decodeJSON(r, &d); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := editor.AutoWrite(r.Context(), s.gen, d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
