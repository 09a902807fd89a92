package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// CartStore menyimpan cart yang sedang berjalan di memori, satu per sesi
// kasir. Map dijaga mutex supaya layer HTTP bisa dipanggil dari goroutine
// mana pun; cart-nya sendiri dipegang satu operator per sesi.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*domain.Cart)}
}

// Create membuat cart kosong baru dan mengembalikan ID sesinya.
func (s *CartStore) Create() (string, *domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	cart := domain.NewCart()
	s.carts[id] = cart
	return id, cart
}

func (s *CartStore) Get(id string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// Delete membuang cart dari store (abandonment eksplisit).
func (s *CartStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}
