package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	mockRepo "souq/internal/mocks/repository"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCartService(txManager, logger)

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestCartService_GetCart_EmptyWhenMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(nil, repository.ErrCartNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil)

	view, err := fx.service.GetCart(ctx, customerID)

	require.NoError(t, err)
	assert.Equal(t, customerID, view.CustomerID)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
	assert.Zero(t, view.ItemCount)
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddCartItemInput{ProductID: productID, Quantity: 2}

	product := &entity.Product{
		ID:       productID,
		Name:     "Ceramic Mug",
		Price:    10.0,
		Stock:    7,
		IsActive: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)

			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(nil, repository.ErrCartNotFound)
			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(product, nil)
			mockSettingsRepo.EXPECT().
				GetSettings(ctx).
				Return(&entity.SiteSettings{TaxRate: 0.1, ShippingFee: 5, CODEnabled: true}, nil)
			mockCartRepo.EXPECT().
				SaveCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	view, err := fx.service.AddItem(ctx, customerID, input)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.InEpsilon(t, 20.0, view.Subtotal, 1e-9)
	assert.InEpsilon(t, 2.0, view.Tax, 1e-9)
	assert.InEpsilon(t, 5.0, view.Shipping, 1e-9)
	assert.InEpsilon(t, 27.0, view.Total, 1e-9)
	assert.Equal(t, 2, view.ItemCount)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddCartItemInput{ProductID: productID, Quantity: 1}

	// The existing line keeps its price snapshot even though the live
	// product now costs more.
	existing := &entity.Cart{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items: []entity.CartItem{
			{ProductID: productID, Name: "Ceramic Mug", UnitPrice: 10.0, Quantity: 2},
		},
	}
	product := &entity.Product{ID: productID, Name: "Ceramic Mug", Price: 12.5, IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)

			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(existing, nil)
			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(product, nil)
			mockSettingsRepo.EXPECT().
				GetSettings(ctx).
				Return(&entity.SiteSettings{}, nil)
			mockCartRepo.EXPECT().
				SaveCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	view, err := fx.service.AddItem(ctx, customerID, input)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.InEpsilon(t, 10.0, view.Items[0].UnitPrice, 1e-9)
	assert.InEpsilon(t, 30.0, view.Subtotal, 1e-9)
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddCartItemInput{ProductID: productID, Quantity: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(nil, repository.ErrCartNotFound)
			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{ID: productID, IsActive: false}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "product is not available"))

	view, err := fx.service.AddItem(ctx, customerID, input)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_UpdateItemQuantity_MissingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	input := &usecase.UpdateCartItemInput{Quantity: 3}

	cart := &entity.Cart{ID: uuid.New(), CustomerID: customerID, Items: []entity.CartItem{}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(cart, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "product is not in the cart"))

	view, err := fx.service.UpdateItemQuantity(ctx, customerID, productID, input)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_RemoveItem_DropsShippingWhenEmpty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	cart := &entity.Cart{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items: []entity.CartItem{
			{ProductID: productID, UnitPrice: 10, Quantity: 1},
		},
		Shipping: 5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)

			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(cart, nil)
			mockSettingsRepo.EXPECT().
				GetSettings(ctx).
				Return(&entity.SiteSettings{TaxRate: 0.1, ShippingFee: 5}, nil)
			mockCartRepo.EXPECT().
				SaveCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	view, err := fx.service.RemoveItem(ctx, customerID, productID)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Subtotal)
	assert.Zero(t, view.Shipping)
	assert.Zero(t, view.Tax)
	assert.Zero(t, view.Total)
}

func TestCartService_ApplyCoupon_EmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.ApplyCouponInput{Code: "WELCOME10", Discount: 10}

	cart := &entity.Cart{ID: uuid.New(), CustomerID: customerID, Items: []entity.CartItem{}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(cart, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrEmptyCart, "cannot apply a coupon to an empty cart"))

	view, err := fx.service.ApplyCoupon(ctx, customerID, input)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestCartService_ApplyCoupon_ClampsTotalAtZero(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	input := &usecase.ApplyCouponInput{Code: "MEGA", Discount: 100}

	cart := &entity.Cart{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items: []entity.CartItem{
			{ProductID: productID, UnitPrice: 10, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)

			mockCartRepo.EXPECT().
				FindCartByCustomer(ctx, customerID).
				Return(cart, nil)
			mockSettingsRepo.EXPECT().
				GetSettings(ctx).
				Return(&entity.SiteSettings{}, nil)
			mockCartRepo.EXPECT().
				SaveCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	view, err := fx.service.ApplyCoupon(ctx, customerID, input)

	require.NoError(t, err)
	assert.Equal(t, "MEGA", view.CouponCode)
	assert.Zero(t, view.Total)
}

func TestCartService_ClearCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().
				DeleteCart(ctx, customerID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ClearCart(ctx, customerID)

	require.NoError(t, err)
}
