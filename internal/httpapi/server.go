// Package httpapi exposes the store, the generation adapter, the editor flow
// and the view-state controller as a JSON API on a gorilla/mux router.
package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsflow/internal/article"
	"newsflow/internal/editor"
	"newsflow/internal/i18n"
	"newsflow/internal/metrics"
	"newsflow/internal/navigation"
)

// ContentGenerator is implemented by generate.Adapter.
type ContentGenerator interface {
	editor.ContentWriter
	Available() bool
}

type Server struct {
	store  *article.Store
	gen    ContentGenerator
	loc    *i18n.Localizer
	nav    *navigation.Controller
	logger *log.Logger
}

// NewServer holds one navigation controller: the API serves a single
// interactive session.
func NewServer(store *article.Store, gen ContentGenerator, loc *i18n.Localizer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:  store,
		gen:    gen,
		loc:    loc,
		nav:    navigation.NewController(),
		logger: logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverer, s.requestLogger, metrics.Middleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/i18n", s.handleI18n).Methods(http.MethodGet)

	api.HandleFunc("/articles", s.handleQuery).Methods(http.MethodGet)
	api.HandleFunc("/articles", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/articles/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/articles/{id}", s.handleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/articles/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/analytics", s.handleAnalytics).Methods(http.MethodGet)
	api.HandleFunc("/stats/categories", s.handleCategoryStats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)

	api.HandleFunc("/generate/body", s.handleGenerateBody).Methods(http.MethodPost)
	api.HandleFunc("/generate/summary", s.handleGenerateSummary).Methods(http.MethodPost)
	api.HandleFunc("/editor/autowrite", s.handleAutoWrite).Methods(http.MethodPost)

	api.HandleFunc("/view", s.handleView).Methods(http.MethodGet)
	view := api.PathPrefix("/view").Subrouter()
	view.HandleFunc("/open/{id}", s.handleOpenArticle).Methods(http.MethodPost)
	view.HandleFunc("/back", s.transition(s.nav.Back)).Methods(http.MethodPost)
	view.HandleFunc("/home", s.transition(s.nav.Home)).Methods(http.MethodPost)
	view.HandleFunc("/admin/{view:dashboard|editor|settings}", s.handleAdminView).Methods(http.MethodPost)
	view.HandleFunc("/editor/new", s.transition(s.nav.NewArticle)).Methods(http.MethodPost)
	view.HandleFunc("/editor/done", s.transition(s.nav.EditorDone)).Methods(http.MethodPost)
	view.HandleFunc("/editor/{id}", s.handleEditArticle).Methods(http.MethodPost)
	view.HandleFunc("/exit", s.transition(s.nav.ExitToSite)).Methods(http.MethodPost)

	return r
}

// ListenAndServe starts the server in the background; the caller shuts it down.
func (s *Server) ListenAndServe(addr string) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	go func() {
		s.logger.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("HTTP server error: %v", err)
		}
	}()

	return srv
}
