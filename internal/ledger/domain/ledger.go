package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType menentukan arah nilai; Amount selalu non-negatif, tandanya
// dibawa oleh tipe. Nilai wire mengikuti data lama (Receita/Despesa).
type EntryType string

const (
	TypeRevenue EntryType = "Receita"
	TypeExpense EntryType = "Despesa"
)

func (t EntryType) IsValid() bool {
	switch t {
	case TypeRevenue, TypeExpense:
		return true
	}
	return false
}

// LedgerEntry tidak pernah dimutasi setelah dibuat.
type LedgerEntry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Artist      *string         `json:"artist,omitempty"` // Atribusi tatuador, opsional
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Untuk form entri manual dan entri otomatis hasil checkout.
// Date dalam format "2006-01-02".
type CreateEntryRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Artist      *string         `json:"artist,omitempty"`
	Type        EntryType       `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
}

// Ringkasan halaman financeiro.
type Summary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}
