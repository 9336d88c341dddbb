package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the live catalog document. Carts and orders snapshot its price
// and display fields instead of referencing it, so later edits never
// retroactively change a cart line or a historical order.
type Product struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
	NameAr     string    `json:"nameAr,omitempty"`
	Price      float64   `json:"price"`
	Image      string    `json:"image,omitempty"`
	Stock      int       `json:"stock"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CartItem builds a cart line from the product's current state with the given
// quantity. The line keeps its own copies of price and display fields.
func (p *Product) CartItem(quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		NameAr:    p.NameAr,
		Image:     p.Image,
		UnitPrice: p.Price,
		Quantity:  quantity,
	}
}
