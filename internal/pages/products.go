package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/akulagin/storefront/pkg/apiclient"
)

// ProductsPage lists the catalog. One ListProducts call on entry, no
// retry, no pagination.
type ProductsPage struct {
	backend Backend

	phase    Phase
	products []apiclient.Product
	err      error
}

func NewProductsPage(b Backend) *ProductsPage {
	return &ProductsPage{backend: b}
}

func (p *ProductsPage) Route() string { return "/products" }

func (p *ProductsPage) Phase() Phase { return p.phase }

func (p *ProductsPage) Load(ctx context.Context) error {
	p.phase = PhaseLoading
	p.err = nil

	products, err := p.backend.ListProducts(ctx)
	if ctx.Err() != nil {
		// The page was left before the response arrived.
		p.phase = PhaseIdle
		return ctx.Err()
	}
	if err != nil {
		p.phase = PhaseFailure
		p.err = err
		return err
	}

	p.products = products
	p.phase = PhaseSuccess
	return nil
}

func (p *ProductsPage) Products() []apiclient.Product { return p.products }

func (p *ProductsPage) Render(w io.Writer) {
	fmt.Fprintln(w, "Products")
	switch p.phase {
	case PhaseLoading:
		fmt.Fprintln(w, "Loading products...")
	case PhaseFailure:
		fmt.Fprintf(w, "Error: %v\n", p.err)
	default:
		if len(p.products) == 0 {
			fmt.Fprintln(w, "No products.")
			return
		}
		for _, prod := range p.products {
			fmt.Fprintf(w, "  %s  $%s\n", prod.Name, prod.Price.StringFixed(2))
			if prod.Description != "" {
				fmt.Fprintf(w, "    %s\n", prod.Description)
			}
		}
	}
}
