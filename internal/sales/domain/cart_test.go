package domain

import (
	"testing"

	catalogDomain "github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stockedProduct(id string, price string, stock int) catalogDomain.Product {
	return catalogDomain.Product{
		ID:            id,
		Name:          "Product " + id,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		Kind:          catalogDomain.KindStockedGood,
	}
}

func serviceProduct(id string, price string) catalogDomain.Product {
	return catalogDomain.Product{
		ID:    id,
		Name:  "Service " + id,
		Price: decimal.RequireFromString(price),
		Kind:  catalogDomain.KindService,
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("first add inserts line with quantity 1", func(t *testing.T) {
		cart := NewCart()
		err := cart.AddItem(stockedProduct("prod-a", "5.50", 3))

		assert.NoError(t, err)
		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
		assert.True(t, lines[0].Subtotal.Equal(decimal.RequireFromString("5.50")))
	})

	t.Run("repeated add is clamped to stock at add-time", func(t *testing.T) {
		// Skenario: harga 5.50, stok 3. Dua kali tambah -> qty 2,
		// tambahan ketiga sukses (qty 3), keempat ditolak tanpa mutasi.
		prodA := stockedProduct("prod-a", "5.50", 3)
		cart := NewCart()

		assert.NoError(t, cart.AddItem(prodA))
		assert.NoError(t, cart.AddItem(prodA))
		assert.NoError(t, cart.AddItem(prodA))

		err := cart.AddItem(prodA)
		assert.ErrorIs(t, err, ErrInsufficientStock)

		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
		assert.True(t, cart.Total().Equal(decimal.RequireFromString("16.50")), "total should stay 16.50, got %s", cart.Total())
	})

	t.Run("add rejected when stock is zero", func(t *testing.T) {
		cart := NewCart()
		err := cart.AddItem(stockedProduct("prod-a", "5.50", 0))

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("service products bypass stock checks entirely", func(t *testing.T) {
		tattoo := serviceProduct("svc-1", "450.00")
		cart := NewCart()

		for i := 0; i < 50; i++ {
			assert.NoError(t, cart.AddItem(tattoo))
		}
		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, 50, lines[0].Quantity)
	})

	t.Run("unit price is a snapshot, later catalog price changes are ignored", func(t *testing.T) {
		prod := stockedProduct("prod-a", "10.00", 5)
		cart := NewCart()
		assert.NoError(t, cart.AddItem(prod))

		// Harga katalog naik di tengah sesi
		prod.Price = decimal.RequireFromString("99.99")
		assert.NoError(t, cart.AddItem(prod))

		lines := cart.Lines()
		assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
		assert.True(t, lines[0].Subtotal.Equal(decimal.RequireFromString("20.00")))
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("replaces quantity and recomputes subtotal", func(t *testing.T) {
		prod := stockedProduct("prod-a", "12.00", 10)
		cart := NewCart()
		assert.NoError(t, cart.AddItem(prod))

		err := cart.SetQuantity("prod-a", 4, 10)
		assert.NoError(t, err)
		lines := cart.Lines()
		assert.Equal(t, 4, lines[0].Quantity)
		assert.True(t, lines[0].Subtotal.Equal(decimal.RequireFromString("48.00")))
	})

	t.Run("quantity zero removes the line, same as RemoveItem", func(t *testing.T) {
		prod := stockedProduct("prod-a", "12.00", 10)

		viaSet := NewCart()
		assert.NoError(t, viaSet.AddItem(prod))
		assert.NoError(t, viaSet.SetQuantity("prod-a", 0, 10))

		viaRemove := NewCart()
		assert.NoError(t, viaRemove.AddItem(prod))
		viaRemove.RemoveItem("prod-a")

		assert.True(t, viaSet.IsEmpty())
		assert.True(t, viaRemove.IsEmpty())
		assert.True(t, viaSet.Total().Equal(viaRemove.Total()))
	})

	t.Run("negative quantity also removes the line", func(t *testing.T) {
		prod := stockedProduct("prod-a", "12.00", 10)
		cart := NewCart()
		assert.NoError(t, cart.AddItem(prod))

		assert.NoError(t, cart.SetQuantity("prod-a", -3, 10))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("rejects quantity above available stock and keeps state", func(t *testing.T) {
		prod := stockedProduct("prod-a", "12.00", 5)
		cart := NewCart()
		assert.NoError(t, cart.AddItem(prod))
		assert.NoError(t, cart.SetQuantity("prod-a", 3, 5))

		err := cart.SetQuantity("prod-a", 6, 5)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 3, cart.Lines()[0].Quantity)
	})

	t.Run("service line ignores the stock argument", func(t *testing.T) {
		cart := NewCart()
		assert.NoError(t, cart.AddItem(serviceProduct("svc-1", "450.00")))

		assert.NoError(t, cart.SetQuantity("svc-1", 50, 0))
		assert.Equal(t, 50, cart.Lines()[0].Quantity)
	})

	t.Run("unknown product returns ErrLineNotFound", func(t *testing.T) {
		cart := NewCart()
		err := cart.SetQuantity("ghost", 2, 10)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	prod := stockedProduct("prod-a", "12.00", 10)
	cart := NewCart()
	assert.NoError(t, cart.AddItem(prod))

	cart.RemoveItem("prod-a")
	assert.True(t, cart.IsEmpty())

	// No-op jika produk tidak ada
	cart.RemoveItem("ghost")
	assert.True(t, cart.IsEmpty())
}

func TestCart_Total(t *testing.T) {
	t.Run("total equals sum of quantity times unit price snapshot", func(t *testing.T) {
		cart := NewCart()
		prodB := stockedProduct("prod-b", "12.00", 10)
		assert.NoError(t, cart.AddItem(prodB))
		assert.NoError(t, cart.AddItem(prodB))
		assert.NoError(t, cart.AddItem(serviceProduct("svc-c", "450.00")))

		expected := decimal.Zero
		for _, line := range cart.Lines() {
			expected = expected.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		assert.True(t, cart.Total().Equal(expected))
		assert.True(t, cart.Total().Equal(decimal.RequireFromString("474.00")))
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		assert.True(t, NewCart().Total().Equal(decimal.Zero))
	})

	t.Run("no rounding drift on fractional prices", func(t *testing.T) {
		cart := NewCart()
		prod := stockedProduct("prod-a", "0.10", 100)
		assert.NoError(t, cart.AddItem(prod))
		assert.NoError(t, cart.SetQuantity("prod-a", 3, 100))

		assert.True(t, cart.Total().Equal(decimal.RequireFromString("0.30")))
	})
}

func TestCart_RoundTrip(t *testing.T) {
	// Serialisasi cart ke baris lalu rekonstruksi menghasilkan total identik
	cart := NewCart()
	prodB := stockedProduct("prod-b", "12.00", 10)
	assert.NoError(t, cart.AddItem(prodB))
	assert.NoError(t, cart.AddItem(prodB))
	assert.NoError(t, cart.AddItem(serviceProduct("svc-c", "450.00")))

	rebuilt := NewCartFromLines(cart.Lines())

	assert.True(t, rebuilt.Total().Equal(cart.Total()))
	assert.Equal(t, len(cart.Lines()), len(rebuilt.Lines()))
	for i, line := range cart.Lines() {
		assert.Equal(t, line.ProductID, rebuilt.Lines()[i].ProductID)
		assert.Equal(t, line.Quantity, rebuilt.Lines()[i].Quantity)
	}
}
