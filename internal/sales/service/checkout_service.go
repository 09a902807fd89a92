package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "github.com/ridloal/tattoo-studio-backend/internal/catalog/repository"
	ledgerDomain "github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/repository"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrCheckoutFailed = errors.New("checkout failed, sale may be partially recorded")
)

const saleLedgerCategory = "Venda"

// CheckoutService mengubah cart menjadi penjualan tersimpan plus efek
// sampingnya: item penjualan, pemotongan stok, dan entri kas. Langkah-langkah
// dijalankan berurutan sebagai panggilan store yang independen; kegagalan di
// tengah TIDAK di-rollback otomatis, langkah yang sudah selesai tetap
// tersimpan dan error diteruskan ke pemanggil. Pemanggil boleh mengulang
// ConfirmSale dengan cart yang sama; seluruh urutan dijalankan lagi dari awal.
type CheckoutService interface {
	ConfirmSale(ctx context.Context, cartID string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
}

type checkoutServiceImpl struct {
	salesRepo repository.SalesRepository
	catalog   CatalogClient
	ledger    LedgerClient
	carts     *CartStore
}

func NewCheckoutService(sr repository.SalesRepository, catalog CatalogClient, ledger LedgerClient, carts *CartStore) CheckoutService {
	return &checkoutServiceImpl{
		salesRepo: sr,
		catalog:   catalog,
		ledger:    ledger,
		carts:     carts,
	}
}

func (s *checkoutServiceImpl) ConfirmSale(ctx context.Context, cartID string) (*domain.Sale, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}

	// Prekondisi: ditolak di sini, belum ada satu pun panggilan ke store
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := cart.Lines()
	total := cart.Total()

	// Langkah 1: record penjualan
	sale := &domain.Sale{Total: total, Status: domain.SaleStatusCompleted}
	if err := s.salesRepo.CreateSale(ctx, sale); err != nil {
		logger.Error("ConfirmSale: failed to create sale record", err)
		return nil, fmt.Errorf("%w: creating sale record: %v", ErrCheckoutFailed, err)
	}

	// Langkah 2: snapshot item per baris cart
	items := make([]domain.SaleItem, len(lines))
	for i, line := range lines {
		items[i] = domain.SaleItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		}
	}
	if err := s.salesRepo.CreateSaleItems(ctx, sale.ID, items); err != nil {
		logger.Error(fmt.Sprintf("ConfirmSale: sale %s recorded WITHOUT items, manual reconciliation needed", sale.ID), err)
		return nil, fmt.Errorf("%w: recording items for sale %s: %v", ErrCheckoutFailed, sale.ID, err)
	}
	sale.Items = items

	// Langkah 3: potong stok, hanya untuk baris barang fisik
	for _, line := range lines {
		if !line.Kind.StockTracked() {
			continue
		}
		if err := s.catalog.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			logger.Error(fmt.Sprintf("ConfirmSale: stock deduction failed mid-checkout for product %s (sale %s)", line.ProductID, sale.ID), err)
			if errors.Is(err, catalogRepo.ErrStockUnderflow) {
				// Penjualan paralel sudah menghabiskan stok; penjualan dan
				// itemnya sudah tersimpan
				return nil, fmt.Errorf("deducting stock for product %s (sale %s): %w", line.ProductID, sale.ID, err)
			}
			return nil, fmt.Errorf("%w: deducting stock for product %s: %v", ErrCheckoutFailed, line.ProductID, err)
		}
	}

	// Langkah 4: entri kas Receita sebesar total, tertanggal hari ini
	entryReq := ledgerDomain.CreateEntryRequest{
		Date:        time.Now().Format("2006-01-02"),
		Description: fmt.Sprintf("Venda %s", sale.ID),
		Type:        ledgerDomain.TypeRevenue,
		Amount:      total,
		Category:    saleLedgerCategory,
	}
	if _, err := s.ledger.AppendEntry(ctx, entryReq); err != nil {
		logger.Error(fmt.Sprintf("ConfirmSale: ledger entry missing for completed sale %s, manual reconciliation needed", sale.ID), err)
		return nil, fmt.Errorf("%w: recording ledger entry for sale %s: %v", ErrCheckoutFailed, sale.ID, err)
	}

	// Semua langkah sukses: sesi cart selesai
	cart.Clear()
	logger.Info("ConfirmSale: sale %s completed, total %s", sale.ID, total.StringFixed(2))
	return sale, nil
}

func (s *checkoutServiceImpl) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.salesRepo.ListSales(ctx)
}

func (s *checkoutServiceImpl) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	return s.salesRepo.GetSaleByID(ctx, id)
}
