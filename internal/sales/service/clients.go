package service

import (
	"context"

	catalogDomain "github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	ledgerDomain "github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
)

// CatalogClient adalah irisan catalog service yang dipakai modul sales:
// membaca snapshot produk untuk cart dan memotong stok saat checkout.
// Modul sales tidak pernah memutasi katalog lewat jalur lain.
type CatalogClient interface {
	GetProduct(ctx context.Context, id string) (*catalogDomain.Product, error)
	DecrementStock(ctx context.Context, id string, quantity int) error
}

// LedgerClient mencatat entri finansial turunan dari penjualan.
type LedgerClient interface {
	AppendEntry(ctx context.Context, req ledgerDomain.CreateEntryRequest) (*ledgerDomain.LedgerEntry, error)
}
