package mocks

import (
	"context"

	"github.com/ridloal/tattoo-studio-backend/internal/sales/domain"
	"github.com/stretchr/testify/mock"
)

type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	if sale != nil && args.Error(0) == nil {
		sale.ID = "mock-sale-id"
	}
	return args.Error(0)
}

func (m *MockSalesRepository) CreateSaleItems(ctx context.Context, saleID string, items []domain.SaleItem) error {
	args := m.Called(ctx, saleID, items)
	return args.Error(0)
}

func (m *MockSalesRepository) GetSaleByID(ctx context.Context, id string) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if sales := args.Get(0); sales != nil {
		return sales.([]domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}
