// Package router maps client-side paths to pages and keeps the
// navigation history. There are no route guards: an unauthenticated
// user can reach any route and the backend rejects what it must.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akulagin/storefront/internal/pages"
	"github.com/akulagin/storefront/internal/session"
)

var ErrNoRoute = errors.New("no such route")

type Router struct {
	routes  map[string]func() pages.Page
	order   []string
	history []string

	session session.Store
	log     *slog.Logger

	active pages.Page
	cancel context.CancelFunc
}

func New(b pages.Backend, store session.Store, log *slog.Logger) *Router {
	r := &Router{
		routes:  map[string]func() pages.Page{},
		session: store,
		log:     log,
	}
	r.register("/products", func() pages.Page { return pages.NewProductsPage(b) })
	r.register("/orders", func() pages.Page { return pages.NewOrdersPage(b) })
	r.register("/login", func() pages.Page { return pages.NewLoginPage(b, store) })
	r.register("/register", func() pages.Page { return pages.NewRegisterPage(b) })
	r.register("/add-product", func() pages.Page { return pages.NewAddProductPage(b) })
	return r
}

func (r *Router) register(path string, factory func() pages.Page) {
	r.routes[path] = factory
	r.order = append(r.order, path)
}

// Routes lists the registered paths in registration order.
func (r *Router) Routes() []string { return r.order }

func (r *Router) Active() pages.Page { return r.active }

func (r *Router) History() []string { return r.history }

// Navigate enters a page. The outgoing page's context is cancelled so a
// late response cannot touch state the user has left behind. A Load
// failure is not returned: the page renders it inline.
func (r *Router) Navigate(ctx context.Context, path string, replace bool) (pages.Page, error) {
	if path == "/" {
		path = "/products"
		replace = true
	}
	factory, ok := r.routes[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, path)
	}

	if r.cancel != nil {
		r.cancel()
	}
	pageCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	page := factory()
	if loader, ok := page.(pages.Loader); ok {
		if err := loader.Load(pageCtx); err != nil {
			r.log.Warn("page load failed", "route", path, "error", err)
		}
	}

	if replace && len(r.history) > 0 {
		r.history[len(r.history)-1] = path
	} else {
		r.history = append(r.history, path)
	}
	r.active = page
	return page, nil
}

// Back pops the history and re-enters the previous route.
func (r *Router) Back(ctx context.Context) (pages.Page, error) {
	if len(r.history) < 2 {
		return nil, errors.New("no previous route")
	}
	r.history = r.history[:len(r.history)-1]
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return r.Navigate(ctx, prev, false)
}

// Logout clears the credential and drops all page state, the CLI analog
// of the full page reload the browser client forced.
func (r *Router) Logout() error {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.active = nil
	r.history = nil
	return r.session.Logout()
}
