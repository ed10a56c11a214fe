package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"newsflow/internal/navigation"
)

var adminViews = map[string]navigation.View{
	"dashboard": navigation.AdminDashboard,
	"editor":    navigation.AdminEditor,
	"settings":  navigation.AdminSettings,
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.nav.Current())
}

func (s *Server) transition(fn func() (navigation.State, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.respondState(w, fn)
	}
}

func (s *Server) respondState(w http.ResponseWriter, fn func() (navigation.State, error)) {
	st, err := fn()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleOpenArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.lookup(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondState(w, func() (navigation.State, error) { return s.nav.OpenArticle(a) })
}

func (s *Server) handleAdminView(w http.ResponseWriter, r *http.Request) {
	v := adminViews[mux.Vars(r)["view"]]
	s.respondState(w, func() (navigation.State, error) { return s.nav.Navigate(v) })
}

func (s *Server) handleEditArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.lookup(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondState(w, func() (navigation.State, error) { return s.nav.EditArticle(a.ID) })
}
