package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductKind membedakan barang fisik (estoque dihitung) dari jasa
// seperti sesi tato (tanpa stok).
type ProductKind string

const (
	KindStockedGood ProductKind = "stocked_good"
	KindService     ProductKind = "service"
)

func (k ProductKind) IsValid() bool {
	switch k {
	case KindStockedGood, KindService:
		return true
	}
	return false
}

// StockTracked melaporkan apakah kuantitas produk jenis ini berkurang saat dijual.
func (k ProductKind) StockTracked() bool {
	return k == KindStockedGood
}

type StockStatus string

const (
	StockStatusOut       StockStatus = "out_of_stock"
	StockStatusLow       StockStatus = "low_stock"
	StockStatusIn        StockStatus = "in_stock"
	StockStatusAvailable StockStatus = "available" // Untuk jasa, selalu tersedia
)

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Kind          ProductKind     `json:"kind"`
	ImageURL      *string         `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockStatus menurunkan status tampilan inventaris dari kuantitas saat ini.
func (p Product) StockStatus(lowStockThreshold int) StockStatus {
	switch p.Kind {
	case KindService:
		return StockStatusAvailable
	case KindStockedGood:
		if p.StockQuantity <= 0 {
			return StockStatusOut
		}
		if p.StockQuantity <= lowStockThreshold {
			return StockStatusLow
		}
		return StockStatusIn
	}
	return StockStatusOut
}

type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity"`
	Kind          ProductKind     `json:"kind" binding:"required"`
	ImageURL      *string         `json:"image_url,omitempty"`
}

// Untuk update parsial dari form katalog; field nil tidak diubah.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
}

// Item tampilan halaman inventaris: produk plus status stoknya.
type InventoryItem struct {
	Product
	Status StockStatus `json:"stock_status"`
}
