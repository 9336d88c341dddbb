// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrComputation is returned when cart aggregation receives numeric input that
// would produce an invalid (negative or non-finite) amount. Upstream
// validation should have rejected such input already; this is the last guard
// before a document is persisted.
var ErrComputation = errors.New("cart computation received invalid numeric input")

// CartItem is a single line in a shopping cart. UnitPrice is a snapshot taken
// when the item was added and is never re-read from the live product here.
type CartItem struct {
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	NameAr     string    `json:"nameAr,omitempty"`
	Image      string    `json:"image,omitempty"`
	UnitPrice  float64   `json:"unitPrice"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
}

// Cart is the shopping cart document, owned by exactly one customer.
// Subtotal and Total are derived values; Recompute must run before every
// persist so a cart is never stored with stale totals.
type Cart struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customerId"`
	Items      []CartItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	Tax        float64    `json:"tax"`
	Shipping   float64    `json:"shipping"`
	Discount   float64    `json:"discount"`
	Total      float64    `json:"total"`
	CouponCode string     `json:"couponCode,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Recompute recalculates every line total, the subtotal and the payable total
// in place. Tax, shipping and discount are inputs from the pricing layer and
// are only summed, never derived here. The total is clamped at zero so a
// coupon can never make the cart payable amount negative.
func (c *Cart) Recompute() error {
	var subtotal float64

	for i := range c.Items {
		item := &c.Items[i]
		if item.Quantity < 1 {
			return errors.Wrapf(ErrComputation, "item %s has quantity %d", item.ProductID, item.Quantity)
		}
		if item.UnitPrice < 0 || !isFinite(item.UnitPrice) {
			return errors.Wrapf(ErrComputation, "item %s has unit price %v", item.ProductID, item.UnitPrice)
		}

		// Always overwrite: a missing or stale line total must never survive a write.
		item.TotalPrice = item.UnitPrice * float64(item.Quantity)
		subtotal += item.TotalPrice
	}

	if c.Tax < 0 || c.Shipping < 0 || c.Discount < 0 ||
		!isFinite(c.Tax) || !isFinite(c.Shipping) || !isFinite(c.Discount) {
		return errors.Wrapf(ErrComputation, "tax=%v shipping=%v discount=%v", c.Tax, c.Shipping, c.Discount)
	}

	c.Subtotal = subtotal

	total := subtotal + c.Tax + c.Shipping - c.Discount
	if total < 0 {
		total = 0
	}
	c.Total = total

	return nil
}

// ItemCount is the derived number of units in the cart. It is recomputed on
// every read and never stored as authoritative state.
func (c *Cart) ItemCount() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}

	return count
}

// FindItem returns the cart line for a product, or nil if absent.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}

// RemoveItem drops the cart line for a product. It reports whether a line was
// actually removed.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
