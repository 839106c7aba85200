package cli

import (
	"context"
	"fmt"
)

// View is a screen of the client. Show runs one interaction cycle: render,
// read input, submit, display the result.
type View interface {
	Show(ctx context.Context) error
}

// Router maps paths to views, mirroring the routes of the web client:
// "/" and "/login", "/signup", "/home", "/tips". Routes are deliberately
// unguarded; any view is reachable without a valid session.
type Router struct {
	routes  map[string]View
	current string
}

func NewRouter() *Router {
	return &Router{routes: make(map[string]View)}
}

// Handle registers view under path, replacing any previous registration.
func (r *Router) Handle(path string, view View) {
	r.routes[path] = view
}

// Navigate makes path the active route and shows its view.
func (r *Router) Navigate(ctx context.Context, path string) error {
	view, ok := r.routes[path]
	if !ok {
		return fmt.Errorf("unknown route: %s", path)
	}
	r.current = path
	return view.Show(ctx)
}

// Current returns the active route path, or "" before the first navigation.
func (r *Router) Current() string {
	return r.current
}
