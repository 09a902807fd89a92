package service

import (
	"context"
	"errors"
	"time"

	"github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/ledger/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEntryType = errors.New("entry type must be Receita or Despesa")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
)

const dateLayout = "2006-01-02"

type LedgerService interface {
	AppendEntry(ctx context.Context, req domain.CreateEntryRequest) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

type ledgerServiceImpl struct {
	repo repository.LedgerRepository
}

func NewLedgerService(repo repository.LedgerRepository) LedgerService {
	return &ledgerServiceImpl{repo: repo}
}

func (s *ledgerServiceImpl) AppendEntry(ctx context.Context, req domain.CreateEntryRequest) (*domain.LedgerEntry, error) {
	if !req.Type.IsValid() {
		return nil, ErrInvalidEntryType
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, ErrNegativeAmount
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	entry := &domain.LedgerEntry{
		Date:        date,
		Description: req.Description,
		Artist:      req.Artist,
		Type:        req.Type,
		Amount:      req.Amount.Round(2),
		Category:    req.Category,
	}
	if err := s.repo.AppendEntry(ctx, entry); err != nil {
		logger.Error("Svc.AppendEntry: repo error", err)
		return nil, err
	}
	return entry, nil
}

func (s *ledgerServiceImpl) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return s.repo.ListEntries(ctx)
}

func (s *ledgerServiceImpl) Summary(ctx context.Context) (*domain.Summary, error) {
	revenue, expense, err := s.repo.SummarizeEntries(ctx)
	if err != nil {
		logger.Error("Svc.Summary: repo error", err)
		return nil, err
	}
	return &domain.Summary{
		TotalRevenue: revenue,
		TotalExpense: expense,
		Balance:      revenue.Sub(expense),
	}, nil
}
