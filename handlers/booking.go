package handlers

import (
	"net/http"

	"roamify/models"
	"roamify/services/inquiry"
	"roamify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking inquiry endpoints.
type BookingHandler struct {
	Service inquiry.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc inquiry.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var in inquiry.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := h.Service.CreateBooking(in); err != nil {
		logger.Error("Failed to save booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving booking", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking saved successfully"})
}

// ListBookingsHandler handles GET /api/bookings, newest first.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	bookings, err := h.Service.ListBookings()
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
