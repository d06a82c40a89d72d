package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity    = 1
	MaxQuantity    = 99
	MaxAdjustDelta = 10

	// Sentinel variant values for products sold without real variants.
	DefaultSize  = "M"
	DefaultColor = "Padrão"
)

// CartItem is one purchasable line, identified by its variant key
// (product id, size, color). Quantity is the only field that changes
// after the line is created.
type CartItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (i CartItem) SameVariant(productID int64, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Cart is the session-scoped line item list. Lines stay unique by variant
// key; adds merge into the existing line instead of appending a duplicate.
// Insertion order is preserved.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
		UpdatedAt: time.Now(),
	}
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}

	if q > MaxQuantity {
		return MaxQuantity
	}

	return q
}

// AddItem merges quantity into an existing variant line or appends a new
// one. Quantities saturate at MaxQuantity rather than erroring.
func (c *Cart) AddItem(productID int64, quantity int, size, color string) {
	if size == "" {
		size = DefaultSize
	}

	if color == "" {
		color = DefaultColor
	}

	quantity = clampQuantity(quantity)

	for idx, item := range c.Items {
		if item.SameVariant(productID, size, color) {
			c.Items[idx].Quantity = clampQuantity(item.Quantity + quantity)
			c.UpdatedAt = time.Now()

			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	})
	c.UpdatedAt = time.Now()
}

// RemoveItem removes the exact variant line when both size and color are
// given. When either is omitted it removes every line for the product,
// regardless of variant. The asymmetry is intentional and relied upon by
// the storefront UI.
func (c *Cart) RemoveItem(productID int64, size, color string) {
	exact := size != "" && color != ""

	kept := c.Items[:0]

	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
			continue
		}

		if exact && !(item.Size == size && item.Color == color) {
			kept = append(kept, item)
		}
	}

	c.Items = kept
	c.UpdatedAt = time.Now()
}

// AdjustQuantity shifts a line's quantity by delta, clamped to
// [-MaxAdjustDelta, MaxAdjustDelta]. A resulting quantity of zero or less
// deletes the line. Returns false when no line matches the variant key.
func (c *Cart) AdjustQuantity(productID int64, size, color string, delta int) bool {
	if delta > MaxAdjustDelta {
		delta = MaxAdjustDelta
	}

	if delta < -MaxAdjustDelta {
		delta = -MaxAdjustDelta
	}

	if size == "" {
		size = DefaultSize
	}

	if color == "" {
		color = DefaultColor
	}

	for idx, item := range c.Items {
		if !item.SameVariant(productID, size, color) {
			continue
		}

		if delta == 0 {
			return true
		}

		newQuantity := item.Quantity + delta

		if newQuantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		} else {
			if newQuantity > MaxQuantity {
				newQuantity = MaxQuantity
			}
			c.Items[idx].Quantity = newQuantity
		}

		c.UpdatedAt = time.Now()

		return true
	}

	return false
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.UpdatedAt = time.Now()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy of the current lines so callers never mutate
// the live cart through a returned slice.
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	return items
}

// CartLineView is a cart line joined with current catalog data for display.
type CartLineView struct {
	CartItem
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items []CartLineView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Quantity carries no validation bounds on purpose: the cart clamps any
// value into [MinQuantity, MaxQuantity] instead of rejecting the request.
type AddCartItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"       validate:"omitempty,max=20"`
	Color     string `json:"color"      validate:"omitempty,max=40"`
}

type RemoveCartItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Size      string `json:"size"       validate:"omitempty,max=20"`
	Color     string `json:"color"      validate:"omitempty,max=40"`
}

// Delta is unconstrained here: zero is a documented no-op and the cart
// clamps the shift to [-MaxAdjustDelta, MaxAdjustDelta] itself.
type AdjustQuantityRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Size      string `json:"size"       validate:"omitempty,max=20"`
	Color     string `json:"color"      validate:"omitempty,max=40"`
	Delta     int    `json:"delta"`
}
