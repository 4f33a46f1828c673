package apiclient

import "github.com/shopspring/decimal"

func init() {
	// The storefront API speaks bare JSON numbers for prices.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock,omitempty"`
}

type OrderItem struct {
	ProductID int              `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

type Order struct {
	ID        int         `json:"id"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt,omitempty"`
	Items     []OrderItem `json:"items"`
}

type OrderItemInput struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type createOrderRequest struct {
	OrderItems []OrderItemInput `json:"orderItems"`
}

type Rating string

const (
	RatingGood      Rating = "GOOD"
	RatingAverage   Rating = "AVERAGE"
	RatingExcellent Rating = "EXCELLENT"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingGood, RatingAverage, RatingExcellent:
		return true
	}
	return false
}

type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"imageUrl"`
	Rating        Rating          `json:"rating"`
}

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// RegisterInput carries the registration form. Role is part of the wire
// format the backend expects; privilege assignment is the server's call,
// so this client always sends RoleUser.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
