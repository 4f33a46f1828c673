package pages

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/akulagin/storefront/pkg/apiclient"
)

// OrdersPage shows past orders and lets the user build an order draft:
// a productId → quantity mapping that only exists client-side until it
// is submitted. Only entries with quantity > 0 are ever sent.
type OrdersPage struct {
	backend Backend

	phase      Phase
	submitting bool

	orders   []apiclient.Order
	products []apiclient.Product
	draft    map[int]int

	loadErr   error
	submitErr error
}

func NewOrdersPage(b Backend) *OrdersPage {
	return &OrdersPage{backend: b, draft: map[int]int{}}
}

func (p *OrdersPage) Route() string { return "/orders" }

func (p *OrdersPage) Phase() Phase { return p.phase }

// Load fetches orders and products concurrently and joins both before
// any state is applied: if either call fails, neither result is shown.
func (p *OrdersPage) Load(ctx context.Context) error {
	p.phase = PhaseLoading
	p.loadErr = nil

	var (
		orders   []apiclient.Order
		products []apiclient.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = p.backend.ListOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = p.backend.ListProducts(gctx)
		return err
	})
	err := g.Wait()

	if ctx.Err() != nil {
		p.phase = PhaseIdle
		return ctx.Err()
	}
	if err != nil {
		p.phase = PhaseFailure
		p.loadErr = err
		return err
	}

	p.orders = orders
	p.products = products
	p.phase = PhaseSuccess
	return nil
}

// SetQuantity records a draft entry. Negative input clamps to zero, the
// same floor the quantity input enforced.
func (p *OrdersPage) SetQuantity(productID, qty int) {
	if qty < 0 {
		qty = 0
	}
	if p.draft == nil {
		p.draft = map[int]int{}
	}
	p.draft[productID] = qty
}

func (p *OrdersPage) Draft() map[int]int { return p.draft }

func (p *OrdersPage) Orders() []apiclient.Order { return p.orders }

// Total sums price × quantity over draft entries with quantity > 0.
// Entries for product ids not in the loaded list contribute zero.
func (p *OrdersPage) Total() decimal.Decimal {
	total := decimal.Zero
	for id, qty := range p.draft {
		if qty <= 0 {
			continue
		}
		for i := range p.products {
			if p.products[i].ID == id {
				total = total.Add(p.products[i].Price.Mul(decimal.NewFromInt(int64(qty))))
				break
			}
		}
	}
	return total
}

// CanSubmit mirrors the submit control: disabled while a submission is
// in flight or while the total is exactly zero.
func (p *OrdersPage) CanSubmit() bool {
	return !p.submitting && !p.Total().IsZero()
}

// Submit sends the draft, filtered to quantity > 0 entries in ascending
// product id order. An empty filtered draft is a silent no-op. On
// success the created order is prepended to the list and the draft is
// cleared; on failure the draft survives so the user can resubmit.
func (p *OrdersPage) Submit(ctx context.Context) error {
	items := make([]apiclient.OrderItemInput, 0, len(p.draft))
	for id, qty := range p.draft {
		if qty > 0 {
			items = append(items, apiclient.OrderItemInput{ProductID: id, Quantity: qty})
		}
	}
	if len(items) == 0 {
		return nil
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	p.submitting = true
	p.submitErr = nil
	defer func() { p.submitting = false }()

	created, err := p.backend.CreateOrder(ctx, items)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		p.submitErr = err
		return err
	}

	p.orders = append([]apiclient.Order{*created}, p.orders...)
	p.draft = map[int]int{}
	return nil
}

func (p *OrdersPage) Render(w io.Writer) {
	switch p.phase {
	case PhaseLoading:
		fmt.Fprintln(w, "Loading...")
		return
	case PhaseFailure:
		fmt.Fprintf(w, "Error: %v\n", p.loadErr)
		return
	}

	fmt.Fprintln(w, "Create Order")
	for _, prod := range p.products {
		fmt.Fprintf(w, "  %s  qty %d  $%s\n", prod.Name, p.draft[prod.ID], prod.Price.StringFixed(2))
	}
	fmt.Fprintf(w, "Total: $%s\n", p.Total().StringFixed(2))
	if p.submitErr != nil {
		fmt.Fprintf(w, "Error: %v\n", p.submitErr)
	}
	if !p.CanSubmit() {
		fmt.Fprintln(w, "(submit disabled)")
	}

	fmt.Fprintln(w, "Orders")
	if len(p.orders) == 0 {
		fmt.Fprintln(w, "No orders.")
		return
	}
	for _, o := range p.orders {
		fmt.Fprintf(w, "  Order #%d  %s\n", o.ID, o.Status)
		for _, it := range o.Items {
			fmt.Fprintf(w, "    %d × %d\n", it.ProductID, it.Quantity)
		}
	}
}
