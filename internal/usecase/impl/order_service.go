package impl

import (
	"context"
	"fmt"
	"log/slog"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	"souq/internal/domain/service"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager        repository.TransactionManager
	numberGen        service.OrderNumberGenerator
	publisher        service.EventPublisher
	notifier         service.NotificationService
	qrGen            service.QRCodeService
	maxNumberRetries int
	logger           *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	numberGen service.OrderNumberGenerator,
	publisher service.EventPublisher,
	notifier service.NotificationService,
	qrGen service.QRCodeService,
	maxNumberRetries int,
	logger *slog.Logger,
) usecase.OrderUsecase {
	if maxNumberRetries < 1 {
		maxNumberRetries = 1
	}

	return &orderService{
		txManager:        txManager,
		numberGen:        numberGen,
		publisher:        publisher,
		notifier:         notifier,
		qrGen:            qrGen,
		maxNumberRetries: maxNumberRetries,
		logger:           logger,
	}
}

// Checkout converts the customer's cart into an order. Stock decrements, the
// order insert and the cart deletion commit or roll back together; the cart
// stays intact whenever checkout fails.
func (srv *orderService) Checkout(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.logger.Info("Checking out", "customerID", customerID, "addressID", input.AddressID, "paymentMethod", input.PaymentMethod)

	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown payment method %q", input.PaymentMethod))
	}

	var (
		order    *entity.Order
		fcmToken string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindCartByCustomer(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.WithStack(domainerrors.ErrEmptyCart)
			}

			return errors.Wrap(err, "failed to find cart")
		}
		if len(cart.Items) == 0 {
			return errors.WithStack(domainerrors.ErrEmptyCart)
		}

		address, err := repoFactory.AddressRepo().FindAddressByID(ctx, input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "shipping address not found")
			}

			return errors.Wrap(err, "failed to find shipping address")
		}
		if address.CustomerID != customerID {
			return errors.Wrap(domainerrors.ErrNotFound, "shipping address not found")
		}

		settings, err := repoFactory.SettingsRepo().GetSettings(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load site settings")
		}
		if input.PaymentMethod == entity.PaymentMethodCOD && !settings.CODEnabled {
			return errors.WithStack(domainerrors.ErrPaymentMethodDisabled)
		}
		if cart.Total < settings.MinOrderAmount {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("order total %.2f is below the minimum of %.2f", cart.Total, settings.MinOrderAmount))
		}

		for i := range cart.Items {
			item := &cart.Items[i]
			if err := repoFactory.ProductRepo().DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(
						fmt.Sprintf("product %q has less than %d in stock", item.Name, item.Quantity))
				}
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrapf(domainerrors.ErrNotFound, "product %q no longer exists", item.Name)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		order = buildOrder(cart, address, input)

		if err := srv.createWithFreshNumber(ctx, repoFactory.OrderRepo(), order); err != nil {
			return err
		}

		if err := repoFactory.CartRepo().DeleteCart(ctx, customerID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		customer, err := repoFactory.CustomerRepo().FindCustomerByID(ctx, customerID)
		if err == nil {
			fcmToken = customer.FCMToken
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to check out")
	}

	srv.logger.Info("Order placed", "orderID", order.ID, "orderNumber", order.OrderNumber, "total", order.Total)

	srv.publishOrderEvent(ctx, service.OrderEventCreated, order)
	srv.notifyCustomer(ctx, fcmToken, "Order placed",
		fmt.Sprintf("Your order %s has been received.", order.OrderNumber), order)

	return order, nil
}

// ListOrders returns the customer's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	srv.logger.Debug("Listing orders", "customerID", customerID)

	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindOrdersByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to find orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order the customer owns.
func (srv *orderService) GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	srv.logger.Debug("Getting order", "customerID", customerID, "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.requireOwnedOrder(ctx, repoFactory.OrderRepo(), customerID, orderID)
		if err != nil {
			return err
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// CancelOrder lets the customer cancel an order that has not started
// processing. Cancelling a paid order marks the payment as refunded.
func (srv *orderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	srv.logger.Info("Cancelling order", "customerID", customerID, "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.requireOwnedOrder(ctx, repoFactory.OrderRepo(), customerID, orderID)
		if err != nil {
			return err
		}
		order = found

		if !order.CancellableByCustomer() {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("an order in status %s can no longer be cancelled", order.Status))
		}

		return srv.applyTransition(ctx, repoFactory.OrderRepo(), order, func(o *entity.Order) error {
			return o.TransitionStatus(entity.OrderStatusCancelled)
		})
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	srv.publishOrderEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// TrackingQR renders the tracking reference of an order the customer owns as
// a PNG QR code.
func (srv *orderService) TrackingQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	srv.logger.Debug("Generating tracking QR", "customerID", customerID, "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.requireOwnedOrder(ctx, repoFactory.OrderRepo(), customerID, orderID)
		if err != nil {
			return err
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	png, err := srv.qrGen.GenerateTrackingQR(order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// TransitionStatus moves an order along the fulfilment state machine. Staff
// only; not scoped to a customer.
func (srv *orderService) TransitionStatus(ctx context.Context, orderID uuid.UUID, input *usecase.TransitionOrderInput) (*entity.Order, error) {
	srv.logger.Info("Transitioning order status", "orderID", orderID, "target", input.Status)

	order, err := srv.transitionOrder(ctx, orderID, func(o *entity.Order) error {
		return o.TransitionStatus(input.Status)
	})
	if err != nil {
		return nil, err
	}

	srv.publishOrderEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// TransitionPayment moves an order along the payment state machine.
func (srv *orderService) TransitionPayment(ctx context.Context, orderID uuid.UUID, input *usecase.TransitionPaymentInput) (*entity.Order, error) {
	srv.logger.Info("Transitioning payment status", "orderID", orderID, "target", input.PaymentStatus)

	order, err := srv.transitionOrder(ctx, orderID, func(o *entity.Order) error {
		return o.TransitionPayment(input.PaymentStatus)
	})
	if err != nil {
		return nil, err
	}

	srv.publishOrderEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// transitionOrder loads the order and applies a state change with
// compare-and-set persistence.
func (srv *orderService) transitionOrder(ctx context.Context, orderID uuid.UUID, transition func(*entity.Order) error) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return srv.applyTransition(ctx, orderRepo, order, transition)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to transition order")
	}

	return order, nil
}

// applyTransition runs the in-memory transition and persists the resulting
// status pair guarded on the previously loaded one. When a concurrent
// transition lands first, the guarded update matches no row; the landed state
// is reported back so callers see what the order actually became.
func (srv *orderService) applyTransition(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order, transition func(*entity.Order) error) error {
	prevStatus := order.Status
	prevPayment := order.PaymentStatus

	if err := transition(order); err != nil {
		var invalid *entity.InvalidTransitionError
		if errors.As(err, &invalid) {
			return domainerrors.ErrInvalidTransition.WithDetails(invalid.Error())
		}

		return errors.Wrap(err, "failed to apply transition")
	}

	if err := orderRepo.UpdateOrderStatus(ctx, order, prevStatus, prevPayment); err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			landed, findErr := orderRepo.FindOrderByID(ctx, order.ID)
			details := "the order was changed concurrently"
			if findErr == nil {
				details = fmt.Sprintf("the order moved to status %s / payment %s concurrently",
					landed.Status, landed.PaymentStatus)
			}

			return domainerrors.ErrInvalidTransition.WithDetails(details)
		}

		return errors.Wrap(err, "failed to persist transition")
	}

	return nil
}

// requireOwnedOrder loads an order and verifies ownership, reporting foreign
// orders as not found.
func (srv *orderService) requireOwnedOrder(ctx context.Context, orderRepo repository.OrderRepository, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
	}

	return order, nil
}

// createWithFreshNumber inserts the order, regenerating the order number when
// the unique index reports a collision.
func (srv *orderService) createWithFreshNumber(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	for attempt := 0; attempt < srv.maxNumberRetries; attempt++ {
		number, err := srv.numberGen.Next()
		if err != nil {
			return errors.Wrap(err, "failed to generate order number")
		}
		order.OrderNumber = number

		err = orderRepo.CreateOrder(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
			return errors.Wrap(err, "failed to create order")
		}

		srv.logger.Warn("Order number collision, regenerating", "orderNumber", number, "attempt", attempt+1)
	}

	return errors.WithStack(domainerrors.ErrDuplicateOrderNumber)
}

// publishOrderEvent emits an order event, best effort. A broker outage must
// not fail an already committed order operation.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Total:         order.Total,
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish order event", "type", eventType, "orderID", order.ID, "error", err)
	}
}

// notifyCustomer sends a push notification, best effort.
func (srv *orderService) notifyCustomer(ctx context.Context, token, title, body string, order *entity.Order) {
	if srv.notifier == nil || token == "" {
		return
	}

	data := map[string]string{
		"orderId":     order.ID.String(),
		"orderNumber": order.OrderNumber,
	}
	if err := srv.notifier.SendSingleNotification(ctx, token, title, body, data); err != nil {
		srv.logger.Error("Failed to send push notification", "orderID", order.ID, "error", err)
	}
}

// buildOrder snapshots the cart lines and the shipping address into a new
// pending order. Charges computed on the cart carry over verbatim.
func buildOrder(cart *entity.Cart, address *entity.Address, input *usecase.CheckoutInput) *entity.Order {
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		line := &cart.Items[i]
		items = append(items, entity.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			NameAr:    line.NameAr,
			Image:     line.Image,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	order := &entity.Order{
		ID:              uuid.New(),
		CustomerID:      cart.CustomerID,
		Items:           items,
		ShippingAddress: address.Snapshot(),
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
		Status:          entity.OrderStatusPending,
		Tax:             cart.Tax,
		ShippingCost:    cart.Shipping,
		Discount:        cart.Discount,
		Notes:           input.Notes,
	}
	order.Recompute()

	return order
}
