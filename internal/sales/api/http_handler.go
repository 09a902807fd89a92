package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogRepo "github.com/ridloal/tattoo-studio-backend/internal/catalog/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/sales/service"
)

type SalesHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

func NewSalesHandler(cs service.CartService, chs service.CheckoutService) *SalesHandler {
	return &SalesHandler{cartService: cs, checkoutService: chs}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/carts")
	{
		cartRoutes.POST("", h.CreateCart)
		cartRoutes.GET("/:id", h.GetCart)
		cartRoutes.DELETE("/:id", h.AbandonCart)
		cartRoutes.POST("/:id/items", h.AddItem)
		cartRoutes.PUT("/:id/items/:product_id", h.SetQuantity)
		cartRoutes.DELETE("/:id/items/:product_id", h.RemoveItem)
		cartRoutes.POST("/:id/checkout", h.Checkout)
	}
	saleRoutes := router.Group("/sales")
	{
		saleRoutes.GET("", h.ListSales)
		saleRoutes.GET("/:id", h.GetSale)
	}
}

func (h *SalesHandler) CreateCart(c *gin.Context) {
	view := h.cartService.CreateCart(c.Request.Context())
	c.JSON(http.StatusCreated, view)
}

func (h *SalesHandler) GetCart(c *gin.Context) {
	view, err := h.cartService.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderCartError(c, "Hdl.GetCart", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SalesHandler) AbandonCart(c *gin.Context) {
	if err := h.cartService.AbandonCart(c.Request.Context(), c.Param("id")); err != nil {
		h.renderCartError(c, "Hdl.AbandonCart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart abandoned"})
}

func (h *SalesHandler) AddItem(c *gin.Context) {
	var req domain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	view, err := h.cartService.AddItem(c.Request.Context(), c.Param("id"), req.ProductID)
	if err != nil {
		h.renderCartError(c, "Hdl.AddItem", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SalesHandler) SetQuantity(c *gin.Context) {
	var req domain.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	view, err := h.cartService.SetQuantity(c.Request.Context(), c.Param("id"), c.Param("product_id"), *req.Quantity)
	if err != nil {
		h.renderCartError(c, "Hdl.SetQuantity", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SalesHandler) RemoveItem(c *gin.Context) {
	view, err := h.cartService.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("product_id"))
	if err != nil {
		h.renderCartError(c, "Hdl.RemoveItem", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SalesHandler) Checkout(c *gin.Context) {
	sale, err := h.checkoutService.ConfirmSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyCart):
			// Ditolak lokal, tidak ada yang tersimpan
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty, nothing was recorded"})
		case errors.Is(err, catalogRepo.ErrStockUnderflow):
			c.JSON(http.StatusConflict, gin.H{"error": "Stock was consumed by a concurrent sale; the sale record may be partially recorded: " + err.Error()})
		case errors.Is(err, service.ErrCheckoutFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			logger.Error("Hdl.Checkout: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	sales, err := h.checkoutService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.ListSales: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SalesHandler) GetSale(c *gin.Context) {
	sale, err := h.checkoutService.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.GetSale: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sale"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// renderCartError memetakan error operasi cart: penolakan validasi/stok
// berarti state tidak berubah sama sekali.
func (h *SalesHandler) renderCartError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrCartNotFound), errors.Is(err, catalogRepo.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock, cart unchanged"})
	case errors.Is(err, domain.ErrLineNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}
