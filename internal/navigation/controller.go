// Package navigation is the view-state machine behind the public site and the
// admin panel. A session starts on PublicHome and has no terminal state.
package navigation

import (
	"errors"
	"fmt"
	"sync"

	"newsflow/internal/article"
)

var ErrInvalidTransition = errors.New("invalid view transition")

type View string

const (
	PublicHome     View = "PUBLIC_HOME"
	PublicArticle  View = "PUBLIC_ARTICLE"
	AdminDashboard View = "ADMIN_DASHBOARD"
	AdminEditor    View = "ADMIN_EDITOR"
	AdminSettings  View = "ADMIN_SETTINGS"
)

func (v View) IsAdmin() bool {
	return v == AdminDashboard || v == AdminEditor || v == AdminSettings
}

func (v View) IsPublic() bool {
	return v == PublicHome || v == PublicArticle
}

// State is a snapshot. Selected is set only on PublicArticle, EditingID only
// on AdminEditor; an empty EditingID there means a new article.
type State struct {
	View      View             `json:"view"`
	Selected  *article.Article `json:"selected,omitempty"`
	EditingID string           `json:"editingId,omitempty"`
}

type Controller struct {
	mu    sync.Mutex
	state State
}

func NewController() *Controller {
	return &Controller{state: State{View: PublicHome}}
}

func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// OpenArticle attaches a copy of a, so later store edits do not leak into
// the detail view.
func (c *Controller) OpenArticle(a article.Article) (State, error) {
	return c.transition("open article", View.IsPublic, State{View: PublicArticle, Selected: &a})
}

func (c *Controller) Back() (State, error) {
	return c.transition("back", func(v View) bool { return v == PublicArticle }, State{View: PublicHome})
}

// Home is the site logo on public pages.
func (c *Controller) Home() (State, error) {
	return c.transition("home", View.IsPublic, State{View: PublicHome})
}

// Navigate is a sidebar selection. Choosing the editor this way starts a new article.
func (c *Controller) Navigate(v View) (State, error) {
	if !v.IsAdmin() {
		return c.Current(), fmt.Errorf("navigate to %s: %w", v, ErrInvalidTransition)
	}
	return c.transition("navigate", anyView, State{View: v})
}

func (c *Controller) NewArticle() (State, error) {
	return c.transition("new article", anyView, State{View: AdminEditor})
}

func (c *Controller) EditArticle(id string) (State, error) {
	return c.transition("edit article", anyView, State{View: AdminEditor, EditingID: id})
}

// EditorDone covers both save-success and cancel.
func (c *Controller) EditorDone() (State, error) {
	return c.transition("editor done", func(v View) bool { return v == AdminEditor }, State{View: AdminDashboard})
}

func (c *Controller) ExitToSite() (State, error) {
	return c.transition("exit to site", View.IsAdmin, State{View: PublicHome})
}

func anyView(View) bool { return true }

func (c *Controller) transition(action string, allowed func(View) bool, next State) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !allowed(c.state.View) {
		return c.snapshot(), fmt.Errorf("%s from %s: %w", action, c.state.View, ErrInvalidTransition)
	}
	c.state = next
	return c.snapshot(), nil
}

func (c *Controller) snapshot() State {
	s := c.state
	if s.Selected != nil {
		a := *s.Selected
		s.Selected = &a
	}
	return s
}
