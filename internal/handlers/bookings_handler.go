package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
)

func AdminBookingsPage(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.BookingFilter{
			EventType: c.Query("eventType"),
			Status:    c.Query("status"),
			Search:    c.Query("search"),
		}
		list, err := bookings.List(c.Request.Context(), filter)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading bookings")
			return
		}

		c.HTML(http.StatusOK, "admin_bookings.html", pageData(c, gin.H{
			"title":    "Bookings - Admin",
			"bookings": list,
			"filter":   filter,
		}))
	}
}

func GetBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		booking, err := bookings.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Booking not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func UpdateBookingStatus(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		updated, err := bookings.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err, "Booking not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Booking status updated"))
	}
}
