package pages

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/akulagin/storefront/pkg/apiclient"
)

// stubBackend answers page calls from canned data and records what it
// was asked.
type stubBackend struct {
	products    []apiclient.Product
	orders      []apiclient.Order
	productsErr error
	ordersErr   error

	createdOrder   *apiclient.Order
	createOrderErr error
	gotItems       []apiclient.OrderItemInput
	orderCalls     int

	loginToken string
	loginErr   error

	registerErr error
	gotRegister *apiclient.RegisterInput

	createProductErr error
	gotProduct       *apiclient.ProductInput
}

func (s *stubBackend) ListProducts(ctx context.Context) ([]apiclient.Product, error) {
	return s.products, s.productsErr
}

func (s *stubBackend) ListOrders(ctx context.Context) ([]apiclient.Order, error) {
	return s.orders, s.ordersErr
}

func (s *stubBackend) CreateOrder(ctx context.Context, items []apiclient.OrderItemInput) (*apiclient.Order, error) {
	s.orderCalls++
	s.gotItems = items
	if s.createOrderErr != nil {
		return nil, s.createOrderErr
	}
	if s.createdOrder != nil {
		return s.createdOrder, nil
	}
	return nil, errors.New("no canned order")
}

func (s *stubBackend) CreateProduct(ctx context.Context, input apiclient.ProductInput) (*apiclient.Product, error) {
	s.gotProduct = &input
	if s.createProductErr != nil {
		return nil, s.createProductErr
	}
	return &apiclient.Product{ID: 99, Name: input.Name, Price: input.Price}, nil
}

func (s *stubBackend) Login(ctx context.Context, email, password string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.loginToken, nil
}

func (s *stubBackend) Register(ctx context.Context, input apiclient.RegisterInput) error {
	s.gotRegister = &input
	return s.registerErr
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func widgetCatalog() []apiclient.Product {
	return []apiclient.Product{
		{ID: 1, Name: "Widget", Price: price("9.99")},
		{ID: 2, Name: "Gadget", Price: price("1.50")},
	}
}
