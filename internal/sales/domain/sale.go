package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusFailed    SaleStatus = "FAILED"
)

type Sale struct {
	ID        string          `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Status    SaleStatus      `json:"status"`
	Items     []SaleItem      `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaleItem adalah snapshot baris penjualan; tidak berubah lagi setelah dibuat,
// terlepas dari mutasi produk di katalog sesudahnya.
type SaleItem struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"-"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CreatedAt   time.Time       `json:"created_at"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity pakai pointer karena 0 adalah nilai valid (menghapus baris).
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartView adalah bentuk JSON sebuah cart untuk layer HTTP.
type CartView struct {
	ID    string          `json:"id"`
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}
