package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq" // Untuk pq.Error
	"github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrStockUnderflow     = errors.New("stock underflow, not enough stock to deduct")
	ErrInvalidProductData = errors.New("product data violates catalog constraints")
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// DecrementStock mengurangi stok secara kondisional: baris hanya diubah
	// jika stok tersisa cukup. Mengembalikan ErrStockUnderflow jika tidak.
	DecrementStock(ctx context.Context, id string, quantity int) error
}

type postgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	// Urutan sama dengan halaman katalog: jasa dan barang dikelompokkan, lalu nama
	query := `SELECT id, name, price, stock_quantity, kind, image_url, created_at, updated_at
              FROM products ORDER BY kind ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, price, stock_quantity, kind, image_url, created_at, updated_at
              FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return p, nil
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products (name, price, stock_quantity, kind, image_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	var imageURL sql.NullString
	if product.ImageURL != nil {
		imageURL = sql.NullString{String: *product.ImageURL, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Price, product.StockQuantity, product.Kind, imageURL,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" { // check_violation
			logger.Error("CreateProduct: check violation", err)
			return ErrInvalidProductData
		}
		logger.Error("CreateProduct: failed to insert product", err)
		return err
	}
	return nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products SET name = $1, price = $2, stock_quantity = $3, image_url = $4, updated_at = $5
              WHERE id = $6`
	product.UpdatedAt = time.Now()

	var imageURL sql.NullString
	if product.ImageURL != nil {
		imageURL = sql.NullString{String: *product.ImageURL, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Price, product.StockQuantity, imageURL, product.UpdatedAt, product.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" { // check_violation
			logger.Error("UpdateProduct: check violation", err)
			return ErrInvalidProductData
		}
		logger.Error("UpdateProduct: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.Error("DeleteProduct: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *postgresProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	query := `UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
              WHERE id = $2 AND kind = $3 AND stock_quantity >= $1`
	res, err := r.db.ExecContext(ctx, query, quantity, id, domain.KindStockedGood)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" { // check_violation
			logger.Error("DecrementStock: check violation", err)
			return ErrStockUnderflow
		}
		logger.Error("DecrementStock: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		// Produk tidak ada, bukan barang fisik, atau stok tersisa kurang dari quantity
		return ErrStockUnderflow
	}
	return nil
}

func scanProduct(scan func(dest ...interface{}) error) (*domain.Product, error) {
	var p domain.Product
	var imageURL sql.NullString
	err := scan(&p.ID, &p.Name, &p.Price, &p.StockQuantity, &p.Kind, &imageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	return &p, nil
}
