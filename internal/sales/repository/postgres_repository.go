package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/domain"
)

var ErrSaleNotFound = errors.New("sale not found")

// SalesRepository menyimpan penjualan dan item-itemnya. CreateSale dan
// CreateSaleItems sengaja dua panggilan terpisah tanpa transaksi bersama:
// checkout dijalankan sebagai urutan langkah best-effort dan kegagalan di
// tengah direkonsiliasi manual oleh operator.
type SalesRepository interface {
	CreateSale(ctx context.Context, sale *domain.Sale) error
	CreateSaleItems(ctx context.Context, saleID string, items []domain.SaleItem) error
	GetSaleByID(ctx context.Context, id string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

type postgresSalesRepository struct {
	db *sql.DB
}

func NewPostgresSalesRepository(db *sql.DB) SalesRepository {
	return &postgresSalesRepository{db: db}
}

func (r *postgresSalesRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	query := `INSERT INTO sales (total, status, created_at)
              VALUES ($1, $2, $3) RETURNING id, created_at, status`

	sale.CreatedAt = time.Now()
	if sale.Status == "" {
		sale.Status = domain.SaleStatusCompleted // Default status
	}

	err := r.db.QueryRowContext(ctx, query, sale.Total, sale.Status, sale.CreatedAt).
		Scan(&sale.ID, &sale.CreatedAt, &sale.Status)
	if err != nil {
		logger.Error("CreateSale: failed to insert sale", err)
		return err
	}
	return nil
}

func (r *postgresSalesRepository) CreateSaleItems(ctx context.Context, saleID string, items []domain.SaleItem) error {
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price, subtotal, created_at)
                                           VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`)
	if err != nil {
		logger.Error("CreateSaleItems: failed to prepare item statement", err)
		return err
	}
	defer stmt.Close()

	for i := range items {
		items[i].SaleID = saleID
		items[i].CreatedAt = time.Now()
		err = stmt.QueryRowContext(ctx, items[i].SaleID, items[i].ProductID, items[i].ProductName,
			items[i].Quantity, items[i].UnitPrice, items[i].Subtotal, items[i].CreatedAt).
			Scan(&items[i].ID, &items[i].CreatedAt)
		if err != nil {
			logger.Error("CreateSaleItems: failed to insert sale item", err)
			return err
		}
	}
	return nil
}

func (r *postgresSalesRepository) GetSaleByID(ctx context.Context, id string) (*domain.Sale, error) {
	query := `SELECT id, total, status, created_at FROM sales WHERE id = $1`
	var s domain.Sale
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Total, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		logger.Error("GetSaleByID: query failed", err)
		return nil, err
	}

	items, err := r.getSaleItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

func (r *postgresSalesRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT id, total, status, created_at FROM sales ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListSales: query failed", err)
		return nil, err
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.Total, &s.Status, &s.CreatedAt); err != nil {
			logger.Error("ListSales: scan failed", err)
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListSales: rows iteration error", err)
		return nil, err
	}

	// Di-populate item per penjualan untuk riwayat halaman vendas
	for i := range sales {
		items, err := r.getSaleItems(ctx, sales[i].ID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}
	return sales, nil
}

func (r *postgresSalesRepository) getSaleItems(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, product_name, quantity, unit_price, subtotal, created_at
              FROM sale_items WHERE sale_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		logger.Error("getSaleItems: query failed", err)
		return nil, err
	}
	defer rows.Close()

	var items []domain.SaleItem
	for rows.Next() {
		var it domain.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.Subtotal, &it.CreatedAt); err != nil {
			logger.Error("getSaleItems: scan failed", err)
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
