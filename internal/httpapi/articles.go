package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"newsflow/internal/article"
	"newsflow/internal/dashboard"
)

type i18nResponse struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}

func (s *Server) handleI18n(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, i18nResponse{
		Language: string(s.loc.Language()),
		Strings:  s.loc.Strings(),
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.store.Query(q.Get("search"), q.Get("category")))
}

// articleDetail is the article as the detail page renders it.
type articleDetail struct {
	Article       article.Article `json:"article"`
	Paragraphs    []string        `json:"paragraphs"`
	Date          string          `json:"date"`
	LongDate      string          `json:"longDate"`
	Views         string          `json:"views"`
	CategoryLabel string          `json:"categoryLabel"`
}

func (s *Server) detail(a article.Article) articleDetail {
	return articleDetail{
		Article:       a,
		Paragraphs:    a.Paragraphs(),
		Date:          s.loc.FormatDate(a.CreatedAt),
		LongDate:      s.loc.FormatLongDate(a.CreatedAt),
		Views:         s.loc.FormatNumber(a.Views),
		CategoryLabel: s.loc.Translate(string(a.Category)),
	}
}

func (s *Server) lookup(id string) (article.Article, error) {
	a, ok := s.store.GetByID(id)
	if !ok {
		return article.Article{}, fmt.Errorf("article %s: %w", id, errNotFound)
	}
	return a, nil
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	a, err := s.lookup(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.detail(a))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var p article.Patch
	if err := decodeOptionalJSON(r, &p); err != nil {
		s.writeError(w, err)
		return
	}
	s.save(w, p)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var p article.Patch
	if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, err)
		return
	}
	p.ID = mux.Vars(r)["id"]
	s.save(w, p)
}

func (s *Server) save(w http.ResponseWriter, p article.Patch) {
	created := p.ID == ""
	a, err := s.store.Save(p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if created {
		writeJSON(w, http.StatusCreated, a)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleDelete answers 204 whether or not the article existed.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.store.Delete(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Analytics())
}

func (s *Server) handleCategoryStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.CategoryStats())
}

type dashboardResponse struct {
	dashboard.Overview
	Totals dashboard.Totals `json:"totals"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	o := dashboard.Build(s.store)
	writeJSON(w, http.StatusOK, dashboardResponse{Overview: o, Totals: o.Totals(s.loc)})
}
