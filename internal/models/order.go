package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Address struct {
	ZIP        string `json:"zip"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// OrderItem is an immutable snapshot of a product line taken at checkout.
// Name and price stay fixed even when the catalog changes afterwards.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	CustomerRef   string          `json:"customer_ref,omitempty"`
	Buyer         Buyer           `json:"buyer"`
	Address       Address         `json:"address"`
	PaymentMethod string          `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
	Items         []OrderItem     `json:"items"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Reference is the short human-facing order id used on payment payloads
// and notifications.
func (o *Order) Reference() string {
	ref := o.ID.String()

	if len(ref) > 8 {
		ref = ref[:8]
	}

	return ref
}

type CheckoutRequest struct {
	Name          string `json:"name"           validate:"required,max=120"`
	Email         string `json:"email"          validate:"required,max=120,simple_email"`
	Phone         string `json:"phone"          validate:"omitempty,max=20"`
	ZIP           string `json:"zip"            validate:"required,max=10"`
	Street        string `json:"street"         validate:"required,max=120"`
	Number        string `json:"number"         validate:"required,max=10"`
	Complement    string `json:"complement"     validate:"omitempty,max=60"`
	District      string `json:"district"       validate:"required,max=60"`
	City          string `json:"city"           validate:"required,max=60"`
	State         string `json:"state"          validate:"required,max=2"`
	PaymentMethod string `json:"payment_method" validate:"required,max=30"`
}

type PaymentCodeResponse struct {
	OrderID string `json:"order_id"`
	Payload string `json:"payload"`
}

type PaymentCheckResult struct {
	OrderID string      `json:"order_id"`
	Paid    bool        `json:"paid"`
	Status  OrderStatus `json:"status"`
}

type OrderConfirmation struct {
	OrderID  string `json:"order_id"`
	Message  string `json:"message"`
	DeepLink string `json:"deep_link"`
}
