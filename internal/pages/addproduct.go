package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/akulagin/storefront/pkg/apiclient"
)

// AddProductPage submits a new product straight to the creation
// endpoint. Success shows a confirmation only; the user navigates to
// Products themselves to see the result.
type AddProductPage struct {
	backend Backend

	Input apiclient.ProductInput

	phase Phase
	msg   string
	err   error
}

func NewAddProductPage(b Backend) *AddProductPage {
	return &AddProductPage{
		backend: b,
		Input: apiclient.ProductInput{
			Name:          "Sample",
			Description:   "Test product",
			Price:         decimal.NewFromFloat(9.99),
			StockQuantity: 100,
			Category:      "GENERAL",
			Rating:        apiclient.RatingGood,
		},
	}
}

func (p *AddProductPage) Route() string { return "/add-product" }

func (p *AddProductPage) Phase() Phase { return p.phase }

func (p *AddProductPage) Submit(ctx context.Context) error {
	p.phase = PhaseSubmitting
	p.err = nil
	p.msg = ""

	if !p.Input.Rating.Valid() {
		p.phase = PhaseIdle
		p.err = fmt.Errorf("rating must be GOOD, AVERAGE or EXCELLENT")
		return p.err
	}

	_, err := p.backend.CreateProduct(ctx, p.Input)
	if ctx.Err() != nil {
		p.phase = PhaseIdle
		return ctx.Err()
	}
	if err != nil {
		p.phase = PhaseIdle
		p.err = err
		return err
	}

	p.phase = PhaseSuccess
	p.msg = "Product created. Go to Products to see it."
	return nil
}

func (p *AddProductPage) Render(w io.Writer) {
	fmt.Fprintln(w, "Add Product")
	if p.err != nil {
		fmt.Fprintf(w, "Error: %v\n", p.err)
	}
	if p.msg != "" {
		fmt.Fprintln(w, p.msg)
	}
	fmt.Fprintf(w, "  %s  $%s  stock %d  %s  %s\n",
		p.Input.Name, p.Input.Price.StringFixed(2), p.Input.StockQuantity, p.Input.Category, p.Input.Rating)
	if p.phase == PhaseSubmitting {
		fmt.Fprintln(w, "...")
	}
}
