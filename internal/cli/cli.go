// Package cli is the transport of the storefront client: one cobra
// subcommand per route for one-shot use, plus an interactive shell that
// navigates the same router.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/akulagin/storefront/internal/pages"
	"github.com/akulagin/storefront/internal/router"
	"github.com/akulagin/storefront/internal/session"
)

type App struct {
	Router *router.Router
	Store  session.Store
	Log    *slog.Logger

	Out io.Writer
	In  io.Reader

	// sleep is swapped out in tests so the deferred register → login
	// navigation does not stall the suite.
	sleep func(time.Duration)
}

func NewApp(backend pages.Backend, store session.Store, log *slog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		Router: router.New(backend, store, log),
		Store:  store,
		Log:    log,
		Out:    out,
		In:     in,
		sleep:  time.Sleep,
	}
}

// New assembles the command tree. The bare command behaves like the
// root route: it redirects to the products page.
func New(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Terminal client for the storefront API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.open(cmd.Context(), "/")
		},
	}

	root.AddCommand(
		app.productsCmd(),
		app.ordersCmd(),
		app.loginCmd(),
		app.registerCmd(),
		app.addProductCmd(),
		app.logoutCmd(),
		app.whoamiCmd(),
		app.shellCmd(),
	)
	return root
}

func (a *App) open(ctx context.Context, path string) error {
	page, err := a.Router.Navigate(ctx, path, false)
	if err != nil {
		return err
	}
	page.Render(a.Out)
	return nil
}

// followNav acts on a navigation a page requested after a successful
// submit, honoring its delay and history-replace flag.
func (a *App) followNav(ctx context.Context, page pages.Page) error {
	nav, ok := page.(pages.Navigator)
	if !ok || nav.Nav() == nil {
		return nil
	}
	n := nav.Nav()
	if n.After > 0 {
		a.sleep(n.After)
	}
	next, err := a.Router.Navigate(ctx, n.Path, n.Replace)
	if err != nil {
		return err
	}
	next.Render(a.Out)
	return nil
}
