package mocks

import (
	"context"

	catalogDomain "github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	ledgerDomain "github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) GetProduct(ctx context.Context, id string) (*catalogDomain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*catalogDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogClient) DecrementStock(ctx context.Context, id string, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) AppendEntry(ctx context.Context, req ledgerDomain.CreateEntryRequest) (*ledgerDomain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if e := args.Get(0); e != nil {
		return e.(*ledgerDomain.LedgerEntry), args.Error(1)
	}
	return nil, args.Error(1)
}
