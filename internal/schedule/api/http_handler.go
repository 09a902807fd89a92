package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/service"
)

type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

func NewScheduleHandler(ss service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	appointmentRoutes := router.Group("/appointments")
	{
		appointmentRoutes.GET("", h.ListAppointments)
		appointmentRoutes.POST("", h.CreateAppointment)
		appointmentRoutes.GET("/:id", h.GetAppointment)
		appointmentRoutes.PUT("/:id", h.UpdateAppointment)
		appointmentRoutes.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *ScheduleHandler) ListAppointments(c *gin.Context) {
	// ?date=2025-01-31 menyaring ke satu hari untuk tampilan agenda
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		appointments, err := h.scheduleService.ListAppointmentsForDay(c.Request.Context(), day)
		if err != nil {
			logger.Error("Hdl.ListAppointments: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
			return
		}
		c.JSON(http.StatusOK, appointments)
		return
	}

	appointments, err := h.scheduleService.ListAppointments(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.ListAppointments: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *ScheduleHandler) CreateAppointment(c *gin.Context) {
	var req domain.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	appointment, err := h.scheduleService.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.CreateAppointment: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *ScheduleHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.scheduleService.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.GetAppointment: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get appointment"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *ScheduleHandler) UpdateAppointment(c *gin.Context) {
	var req domain.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	appointment, err := h.scheduleService.UpdateAppointment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidTimeRange), errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Hdl.UpdateAppointment: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *ScheduleHandler) DeleteAppointment(c *gin.Context) {
	err := h.scheduleService.DeleteAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.DeleteAppointment: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
