// Package pages holds one explicit state machine per screen of the
// storefront client. A page moves idle → loading/submitting →
// success | failure; a failed submit returns to idle with an inline
// error so the user can correct and resubmit. Render maps the current
// state to text, so transitions are unit-testable without a terminal.
package pages

import (
	"context"
	"io"
	"time"

	"github.com/akulagin/storefront/pkg/apiclient"
)

// Backend is the slice of the API client the pages consume.
// *apiclient.Client satisfies it.
type Backend interface {
	ListProducts(ctx context.Context) ([]apiclient.Product, error)
	ListOrders(ctx context.Context) ([]apiclient.Order, error)
	CreateOrder(ctx context.Context, items []apiclient.OrderItemInput) (*apiclient.Order, error)
	CreateProduct(ctx context.Context, input apiclient.ProductInput) (*apiclient.Product, error)
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, input apiclient.RegisterInput) error
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSubmitting
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Nav is a navigation a page requests after a successful submit.
// Replace means the route it leaves should not be reachable via Back.
// After delays the transition so the user can read the confirmation.
type Nav struct {
	Path    string
	Replace bool
	After   time.Duration
}

type Page interface {
	Route() string
	Render(w io.Writer)
}

// Loader is implemented by pages that fetch data when they are entered.
type Loader interface {
	Load(ctx context.Context) error
}

// Navigator is implemented by pages that request a route change after a
// successful submit.
type Navigator interface {
	Nav() *Nav
}
