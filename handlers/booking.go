package handlers

import (
	"errors"
	"net/http"

	"travelease/middleware"
	"travelease/models"
	"travelease/services/booking"
	"travelease/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking lifecycle and checkout endpoints.
type BookingHandler struct {
	Service  booking.Service
	Payments *booking.PaymentProcessor
}

func NewBookingHandler(svc booking.Service, payments *booking.PaymentProcessor) *BookingHandler {
	return &BookingHandler{Service: svc, Payments: payments}
}

// Create confirms a booking at payment time.
func (h *BookingHandler) Create(c *gin.Context) {
	var input struct {
		TripData  models.TripRequest    `json:"tripData"`
		Breakdown models.PriceBreakdown `json:"breakdown"`
		PaymentID string                `json:"paymentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := h.Service.Create(c.Request.Context(), middleware.UserID(c), input.TripData, input.Breakdown, input.PaymentID)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Booking validation failed", verr.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, b)
}

// Get returns one booking by id.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListByUser returns a user's bookings newest first.
func (h *BookingHandler) ListByUser(c *gin.Context) {
	bookings, err := h.Service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Cancel marks a booking cancelled.
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Rebook moves a booking to a new date or time.
func (h *BookingHandler) Rebook(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := h.Service.Rebook(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ProcessPayment validates checkout details and returns a receipt.
func (h *BookingHandler) ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	receipt, err := h.Payments.Process(req)
	if err != nil {
		var perr *booking.PaymentError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": perr.Reason, "status": "Failed"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Payment failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	var terr *booking.TransitionError
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
	case errors.As(err, &terr):
		utils.JSONError(c, http.StatusConflict, "Booking transition not allowed", terr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}
