package service

import (
	"context"

	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/domain"
)

// CartService adalah Cart Manager yang bisa di-inject: semua aturan keranjang
// (snapshot harga, batas stok, subtotal) hidup di sini dan di domain.Cart,
// lepas dari binding UI mana pun.
type CartService interface {
	CreateCart(ctx context.Context) domain.CartView
	GetCart(ctx context.Context, cartID string) (*domain.CartView, error)
	AddItem(ctx context.Context, cartID, productID string) (*domain.CartView, error)
	SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.CartView, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*domain.CartView, error)
	AbandonCart(ctx context.Context, cartID string) error
}

type cartServiceImpl struct {
	carts   *CartStore
	catalog CatalogClient
}

func NewCartService(carts *CartStore, catalog CatalogClient) CartService {
	return &cartServiceImpl{carts: carts, catalog: catalog}
}

func (s *cartServiceImpl) CreateCart(ctx context.Context) domain.CartView {
	id, cart := s.carts.Create()
	return *cartView(id, cart)
}

func (s *cartServiceImpl) GetCart(ctx context.Context, cartID string) (*domain.CartView, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}
	return cartView(cartID, cart), nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, cartID, productID string) (*domain.CartView, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}

	// Snapshot stok dan harga diambil saat penambahan; Cart Manager sendiri
	// tidak pernah memutasi katalog
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(*product); err != nil {
		logger.Warn("Svc.AddItem: rejected for product %s: %v", productID, err)
		return nil, err
	}
	return cartView(cartID, cart), nil
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.CartView, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		// Sama dengan RemoveItem, tidak perlu cek stok
		cart.RemoveItem(productID)
		return cartView(cartID, cart), nil
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetQuantity(productID, quantity, product.StockQuantity); err != nil {
		logger.Warn("Svc.SetQuantity: rejected for product %s: %v", productID, err)
		return nil, err
	}
	return cartView(cartID, cart), nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, cartID, productID string) (*domain.CartView, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	return cartView(cartID, cart), nil
}

func (s *cartServiceImpl) AbandonCart(ctx context.Context, cartID string) error {
	if _, err := s.carts.Get(cartID); err != nil {
		return err
	}
	s.carts.Delete(cartID)
	return nil
}

func cartView(id string, cart *domain.Cart) *domain.CartView {
	return &domain.CartView{
		ID:    id,
		Lines: cart.Lines(),
		Total: cart.Total(),
	}
}
