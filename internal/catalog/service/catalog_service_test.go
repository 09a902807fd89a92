package service

import (
	"context"
	"testing"

	"github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/catalog/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/catalog/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testLowStockThreshold = 5

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.TODO()

	t.Run("creates a stocked good with rounded price", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		repo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		p, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
			Name:          "Tinta Preta 30ml",
			Price:         decimal.RequireFromString("12.005"),
			StockQuantity: 10,
			Kind:          domain.KindStockedGood,
		})

		assert.NoError(t, err)
		assert.Equal(t, "mock-product-id", p.ID)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("12.00")))
		assert.Equal(t, 10, p.StockQuantity)
		repo.AssertExpectations(t)
	})

	t.Run("service kind always starts with zero stock", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		repo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		p, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
			Name:          "Sessao Fechada",
			Price:         decimal.RequireFromString("450.00"),
			StockQuantity: 99,
			Kind:          domain.KindService,
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, p.StockQuantity)
	})

	t.Run("validation failures never reach the repository", func(t *testing.T) {
		cases := []struct {
			name string
			req  domain.CreateProductRequest
			want error
		}{
			{
				name: "unknown kind",
				req:  domain.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(1), Kind: "bundle"},
				want: ErrInvalidKind,
			},
			{
				name: "negative price",
				req:  domain.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-1), Kind: domain.KindStockedGood},
				want: ErrInvalidPrice,
			},
			{
				name: "negative stock",
				req:  domain.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(1), StockQuantity: -1, Kind: domain.KindStockedGood},
				want: ErrInvalidStock,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := new(mocks.MockProductRepository)
				svc := NewCatalogService(repo, testLowStockThreshold)

				p, err := svc.CreateProduct(ctx, tc.req)

				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, p)
				repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.TODO()

	existing := func() *domain.Product {
		return &domain.Product{
			ID:            "prod-a",
			Name:          "Agulha RL 05",
			Price:         decimal.RequireFromString("5.50"),
			StockQuantity: 3,
			Kind:          domain.KindStockedGood,
		}
	}

	t.Run("applies only the fields present in the request", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		repo.On("GetProductByID", ctx, "prod-a").Return(existing(), nil).Once()
		repo.On("UpdateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		newStock := 20
		p, err := svc.UpdateProduct(ctx, "prod-a", domain.UpdateProductRequest{StockQuantity: &newStock})

		assert.NoError(t, err)
		assert.Equal(t, 20, p.StockQuantity)
		assert.Equal(t, "Agulha RL 05", p.Name)
		repo.AssertExpectations(t)
	})

	t.Run("stock updates are ignored for services", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		svcProduct := &domain.Product{ID: "svc-1", Name: "Sessao", Price: decimal.NewFromInt(450), Kind: domain.KindService}
		repo.On("GetProductByID", ctx, "svc-1").Return(svcProduct, nil).Once()
		repo.On("UpdateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		newStock := 50
		p, err := svc.UpdateProduct(ctx, "svc-1", domain.UpdateProductRequest{StockQuantity: &newStock})

		assert.NoError(t, err)
		assert.Equal(t, 0, p.StockQuantity)
	})

	t.Run("negative price update is rejected", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		repo.On("GetProductByID", ctx, "prod-a").Return(existing(), nil).Once()

		badPrice := decimal.NewFromInt(-10)
		p, err := svc.UpdateProduct(ctx, "prod-a", domain.UpdateProductRequest{Price: &badPrice})

		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Nil(t, p)
		repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("unknown product propagates not-found", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		repo.On("GetProductByID", ctx, "ghost").Return(nil, repository.ErrProductNotFound).Once()

		p, err := svc.UpdateProduct(ctx, "ghost", domain.UpdateProductRequest{})

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		assert.Nil(t, p)
	})
}

func TestCatalogService_ListInventory(t *testing.T) {
	ctx := context.TODO()
	repo := new(mocks.MockProductRepository)
	svc := NewCatalogService(repo, testLowStockThreshold)

	repo.On("ListProducts", ctx).Return([]domain.Product{
		{ID: "p1", Kind: domain.KindStockedGood, StockQuantity: 0},
		{ID: "p2", Kind: domain.KindStockedGood, StockQuantity: 3},
		{ID: "p3", Kind: domain.KindStockedGood, StockQuantity: 5},
		{ID: "p4", Kind: domain.KindStockedGood, StockQuantity: 12},
		{ID: "p5", Kind: domain.KindService},
	}, nil).Once()

	items, err := svc.ListInventory(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, domain.StockStatusOut, items[0].Status)
	assert.Equal(t, domain.StockStatusLow, items[1].Status)
	// Tepat di ambang masih dihitung menipis
	assert.Equal(t, domain.StockStatusLow, items[2].Status)
	assert.Equal(t, domain.StockStatusIn, items[3].Status)
	assert.Equal(t, domain.StockStatusAvailable, items[4].Status)
	repo.AssertExpectations(t)
}

func TestCatalogService_DecrementStock(t *testing.T) {
	ctx := context.TODO()

	t.Run("rejects non-positive quantities locally", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)

		assert.ErrorIs(t, svc.DecrementStock(ctx, "prod-a", 0), ErrInvalidStock)
		assert.ErrorIs(t, svc.DecrementStock(ctx, "prod-a", -2), ErrInvalidStock)
		repo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("passes underflow from the repository through unchanged", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewCatalogService(repo, testLowStockThreshold)
		repo.On("DecrementStock", ctx, "prod-a", 4).Return(repository.ErrStockUnderflow).Once()

		err := svc.DecrementStock(ctx, "prod-a", 4)

		assert.ErrorIs(t, err, repository.ErrStockUnderflow)
		repo.AssertExpectations(t)
	})
}
