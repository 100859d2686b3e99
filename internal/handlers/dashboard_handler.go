package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/services"
)

func DashboardPage(dashboard *services.DashboardService, bookings *services.BookingService, contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := dashboard.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading dashboard")
			return
		}
		recentBookings, err := bookings.Recent(c.Request.Context(), 5)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading dashboard")
			return
		}
		recentMessages, err := contacts.Recent(c.Request.Context(), 5)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading dashboard")
			return
		}

		c.HTML(http.StatusOK, "admin_dashboard.html", pageData(c, gin.H{
			"title":          "Dashboard - Admin",
			"stats":          stats,
			"recentBookings": recentBookings,
			"recentMessages": recentMessages,
		}))
	}
}
