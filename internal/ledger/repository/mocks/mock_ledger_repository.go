package mocks

import (
	"context"

	"github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	if entry != nil && args.Error(0) == nil {
		entry.ID = "mock-entry-id"
	}
	return args.Error(0)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if entries := args.Get(0); entries != nil {
		return entries.([]domain.LedgerEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) SummarizeEntries(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}
