package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudhar3084/sriram-cab-service/domain"
	"github.com/sudhar3084/sriram-cab-service/internal/http/middleware"
)

// BookingHandlers handles booking HTTP requests
type BookingHandlers struct {
	bookingSvc domain.BookingService
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(bookingSvc domain.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingSvc: bookingSvc}
}

// CreateBookingRequest represents a new ride booking request
type CreateBookingRequest struct {
	Pickup        string  `json:"pickup" binding:"required"`
	Dropoff       string  `json:"dropoff" binding:"required"`
	Distance      float64 `json:"distance" binding:"required"`
	Fare          float64 `json:"fare" binding:"required"`
	EstimatedTime float64 `json:"estimatedTime" binding:"required"`
}

// Create handles POST /api/bookings (requires authentication)
func (h *BookingHandlers) Create(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), user.ID, domain.BookingInput{
		Pickup:        req.Pickup,
		Dropoff:       req.Dropoff,
		Distance:      req.Distance,
		Fare:          req.Fare,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ride booked successfully!",
		"booking": booking,
	})
}

// List handles GET /api/bookings (requires authentication). Returns the
// caller's bookings, most recent first.
func (h *BookingHandlers) List(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
		return
	}

	bookings, err := h.bookingSvc.List(c.Request.Context(), user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}
