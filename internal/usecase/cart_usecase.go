// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// UpdateCartItemInput defines the data required to change a line's quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// ApplyCouponInput carries a coupon application priced by the upstream
// pricing collaborator; the cart only stores the code and sums the discount.
type ApplyCouponInput struct {
	Code     string  `json:"code" validate:"required"`
	Discount float64 `json:"discount" validate:"gte=0"`
}

// CartView is the serialized cart, carrying the derived item count alongside
// the persisted document.
type CartView struct {
	*entity.Cart
	ItemCount int `json:"itemCount"`
}

// NewCartView wraps a cart with its derived item count.
func NewCartView(cart *entity.Cart) *CartView {
	return &CartView{Cart: cart, ItemCount: cart.ItemCount()}
}

// CartUsecase defines the interface for cart business operations. Every
// mutation recomputes the cart's derived totals before persisting.
type CartUsecase interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, customerID uuid.UUID, input *AddCartItemInput) (*CartView, error)
	UpdateItemQuantity(ctx context.Context, customerID, productID uuid.UUID, input *UpdateCartItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*CartView, error)
	ApplyCoupon(ctx context.Context, customerID uuid.UUID, input *ApplyCouponInput) (*CartView, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}
