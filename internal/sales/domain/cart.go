package domain

import (
	"errors"

	catalogDomain "github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
	ErrLineNotFound      = errors.New("product is not in the cart")
)

// CartLine adalah satu baris keranjang. UnitPrice adalah snapshot harga saat
// produk pertama kali dimasukkan; perubahan harga katalog sesudahnya tidak
// mempengaruhi keranjang yang sedang berjalan.
type CartLine struct {
	ProductID   string                   `json:"product_id"`
	ProductName string                   `json:"product_name"`
	Kind        catalogDomain.ProductKind `json:"kind"`
	Quantity    int                      `json:"quantity"`
	UnitPrice   decimal.Decimal          `json:"unit_price"`
	Subtotal    decimal.Decimal          `json:"subtotal"`
}

// Cart menampung baris belanja satu sesi kasir, maksimal satu baris per
// produk, urutan penyisipan dipertahankan. Cart tidak aman untuk akses
// concurrent; satu cart dipegang oleh satu operator.
type Cart struct {
	lines []*CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// NewCartFromLines membangun ulang cart dari baris-baris yang sudah ada
// (mis. hasil serialisasi). Subtotal dihitung ulang dari quantity x snapshot.
func NewCartFromLines(lines []CartLine) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		line := l
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		c.lines = append(c.lines, &line)
	}
	return c
}

// AddItem menambah satu unit produk ke cart. Untuk barang fisik, kuantitas di
// cart tidak boleh melewati stok pada snapshot produk yang diberikan; jika
// sudah sama dengan stok, cart tidak berubah dan ErrInsufficientStock
// dikembalikan.
func (c *Cart) AddItem(p catalogDomain.Product) error {
	if line := c.findLine(p.ID); line != nil {
		if p.Kind.StockTracked() && line.Quantity+1 > p.StockQuantity {
			return ErrInsufficientStock
		}
		line.Quantity++
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		return nil
	}

	if p.Kind.StockTracked() && p.StockQuantity < 1 {
		return ErrInsufficientStock
	}
	unitPrice := p.Price.Round(2)
	c.lines = append(c.lines, &CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		Kind:        p.Kind,
		Quantity:    1,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice,
	})
	return nil
}

// SetQuantity mengganti kuantitas sebuah baris. quantity <= 0 menghapus baris
// (sama dengan RemoveItem). availableStock adalah stok katalog saat ini dan
// hanya diperiksa untuk barang fisik.
func (c *Cart) SetQuantity(productID string, quantity int, availableStock int) error {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	line := c.findLine(productID)
	if line == nil {
		return ErrLineNotFound
	}
	if line.Kind.StockTracked() && quantity > availableStock {
		return ErrInsufficientStock
	}
	line.Quantity = quantity
	line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return nil
}

// RemoveItem menghapus baris produk; no-op jika tidak ada.
func (c *Cart) RemoveItem(productID string) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total menjumlahkan semua subtotal baris.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal)
	}
	return total
}

// Lines mengembalikan salinan baris-baris cart dalam urutan penyisipan.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		lines[i] = *line
	}
	return lines
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) findLine(productID string) *CartLine {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line
		}
	}
	return nil
}
