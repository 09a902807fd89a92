package service

import (
	"context"
	"errors"

	"github.com/ridloal/tattoo-studio-backend/internal/catalog/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/catalog/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidStock = errors.New("stock quantity must not be negative")
	ErrInvalidKind  = errors.New("unknown product kind")
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, quantity int) error
}

type catalogServiceImpl struct {
	repo              repository.ProductRepository
	lowStockThreshold int
}

func NewCatalogService(repo repository.ProductRepository, lowStockThreshold int) CatalogService {
	return &catalogServiceImpl{repo: repo, lowStockThreshold: lowStockThreshold}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *catalogServiceImpl) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.InventoryItem, len(products))
	for i, p := range products {
		items[i] = domain.InventoryItem{
			Product: p,
			Status:  p.StockStatus(s.lowStockThreshold),
		}
	}
	return items, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if !req.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if req.Price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if req.StockQuantity < 0 {
		return nil, ErrInvalidStock
	}

	p := &domain.Product{
		Name:          req.Name,
		Price:         req.Price.Round(2),
		StockQuantity: req.StockQuantity,
		Kind:          req.Kind,
		ImageURL:      req.ImageURL,
	}
	if p.Kind == domain.KindService {
		// Jasa tidak pernah punya stok tersimpan
		p.StockQuantity = 0
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		logger.Error("Svc.CreateProduct: repo error", err)
		return nil, err
	}
	return p, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error) {
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.LessThan(decimal.Zero) {
			return nil, ErrInvalidPrice
		}
		p.Price = req.Price.Round(2)
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, ErrInvalidStock
		}
		if p.Kind.StockTracked() {
			p.StockQuantity = *req.StockQuantity
		}
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		logger.Error("Svc.UpdateProduct: repo error", err)
		return nil, err
	}
	return p, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *catalogServiceImpl) DecrementStock(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidStock
	}
	return s.repo.DecrementStock(ctx, id, quantity)
}
