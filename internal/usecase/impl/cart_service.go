// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetCart retrieves the customer's cart. A customer without a cart gets an
// empty, unsaved one rather than an error.
func (srv *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartView, error) {
	srv.logger.Debug("Getting cart", "customerID", customerID)

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartRepo().FindCartByCustomer(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				cart = &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{}}

				return nil
			}

			return errors.Wrap(err, "failed to find cart")
		}
		cart = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return usecase.NewCartView(cart), nil
}

// AddItem adds a product to the cart, snapshotting the product's current
// price. Adding a product that is already in the cart increases the line's
// quantity and keeps the original price snapshot.
func (srv *cartService) AddItem(ctx context.Context, customerID uuid.UUID, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	srv.logger.Info("Adding cart item", "customerID", customerID, "productID", input.ProductID, "quantity", input.Quantity)

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		found, err := cartRepo.FindCartByCustomer(ctx, customerID)
		if err != nil {
			if !errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(err, "failed to find cart")
			}
			found = &entity.Cart{ID: uuid.New(), CustomerID: customerID}
		}
		cart = found

		product, err := repoFactory.ProductRepo().FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		if !product.IsActive {
			return errors.Wrap(domainerrors.ErrNotFound, "product is not available")
		}

		if line := cart.FindItem(product.ID); line != nil {
			line.Quantity += input.Quantity
		} else {
			cart.Items = append(cart.Items, product.CartItem(input.Quantity))
		}

		return srv.priceAndSave(ctx, repoFactory, cart)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return usecase.NewCartView(cart), nil
}

// UpdateItemQuantity replaces the quantity of an existing cart line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, customerID, productID uuid.UUID, input *usecase.UpdateCartItemInput) (*usecase.CartView, error) {
	srv.logger.Info("Updating cart item quantity", "customerID", customerID, "productID", productID, "quantity", input.Quantity)

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.requireCart(ctx, repoFactory, customerID)
		if err != nil {
			return err
		}
		cart = found

		line := cart.FindItem(productID)
		if line == nil {
			return errors.Wrap(domainerrors.ErrNotFound, "product is not in the cart")
		}
		line.Quantity = input.Quantity

		return srv.priceAndSave(ctx, repoFactory, cart)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return usecase.NewCartView(cart), nil
}

// RemoveItem drops a cart line.
func (srv *cartService) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*usecase.CartView, error) {
	srv.logger.Info("Removing cart item", "customerID", customerID, "productID", productID)

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.requireCart(ctx, repoFactory, customerID)
		if err != nil {
			return err
		}
		cart = found

		if !cart.RemoveItem(productID) {
			return errors.Wrap(domainerrors.ErrNotFound, "product is not in the cart")
		}

		return srv.priceAndSave(ctx, repoFactory, cart)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return usecase.NewCartView(cart), nil
}

// ApplyCoupon records a coupon priced by the upstream pricing collaborator.
// The discount is an input here; aggregation only sums and clamps it.
func (srv *cartService) ApplyCoupon(ctx context.Context, customerID uuid.UUID, input *usecase.ApplyCouponInput) (*usecase.CartView, error) {
	srv.logger.Info("Applying coupon", "customerID", customerID, "code", input.Code)

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.requireCart(ctx, repoFactory, customerID)
		if err != nil {
			return err
		}
		cart = found

		if len(cart.Items) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cannot apply a coupon to an empty cart")
		}

		cart.CouponCode = input.Code
		cart.Discount = input.Discount

		return srv.priceAndSave(ctx, repoFactory, cart)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to apply coupon")
	}

	return usecase.NewCartView(cart), nil
}

// ClearCart drops the customer's cart document entirely.
func (srv *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	srv.logger.Info("Clearing cart", "customerID", customerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CartRepo().DeleteCart(ctx, customerID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// requireCart loads the customer's cart or fails with a not-found error.
func (srv *cartService) requireCart(ctx context.Context, repoFactory repository.RepositoryFactory, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := repoFactory.CartRepo().FindCartByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "cart not found")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

// priceAndSave fills in tax and shipping from the site settings, recomputes
// the derived totals and persists the cart. Tax and shipping are decided
// here, upstream of the aggregation; Recompute only sums them.
func (srv *cartService) priceAndSave(ctx context.Context, repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
	settings, err := repoFactory.SettingsRepo().GetSettings(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load site settings")
	}

	// First pass establishes the subtotal the tax rate applies to.
	if err := cart.Recompute(); err != nil {
		return srv.computationError(err)
	}

	cart.Tax = roundAmount(cart.Subtotal * settings.TaxRate)
	cart.Shipping = 0
	if len(cart.Items) > 0 {
		cart.Shipping = settings.ShippingFee
	}

	if err := cart.Recompute(); err != nil {
		return srv.computationError(err)
	}

	if err := repoFactory.CartRepo().SaveCart(ctx, cart); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

func (srv *cartService) computationError(err error) error {
	if errors.Is(err, entity.ErrComputation) {
		return domainerrors.ErrComputation.WithDetails(err.Error())
	}

	return errors.Wrap(err, "failed to recompute cart")
}

// roundAmount rounds a monetary amount to two decimal places.
func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
