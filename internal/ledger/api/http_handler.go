package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/ledger/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/ledger/service"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
)

type LedgerHandler struct {
	ledgerService service.LedgerService
}

func NewLedgerHandler(ls service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	ledgerRoutes := router.Group("/ledger")
	{
		ledgerRoutes.GET("/entries", h.ListEntries)
		ledgerRoutes.POST("/entries", h.AppendEntry)
		ledgerRoutes.GET("/summary", h.Summary)
	}
}

func (h *LedgerHandler) ListEntries(c *gin.Context) {
	entries, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.ListEntries: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LedgerHandler) AppendEntry(c *gin.Context) {
	var req domain.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	entry, err := h.ledgerService.AppendEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntryType) ||
			errors.Is(err, service.ErrNegativeAmount) ||
			errors.Is(err, service.ErrInvalidDate) ||
			errors.Is(err, repository.ErrInvalidEntryData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() + ", nothing was recorded"})
			return
		}
		logger.Error("Hdl.AppendEntry: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record ledger entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.Summary: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ledger summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
