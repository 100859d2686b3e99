package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/helpers"
	"github.com/fmhevents/elation/internal/middleware"
	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
)

func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{}
	if user, ok := middleware.UserFrom(c); ok {
		data["user"] = user
	}
	if sess, ok := middleware.SessionFrom(c); ok {
		data["isAdmin"] = sess.IsAdmin
	} else {
		data["isAdmin"] = false
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"message": message})
}

func HomePage(portfolio *services.PortfolioService, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		recentPortfolio, err := portfolio.Recent(c.Request.Context(), 4)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading page")
			return
		}
		allServices, err := catalog.List(c.Request.Context(), "")
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading page")
			return
		}

		featured := allServices
		if len(featured) > 3 {
			featured = featured[:3]
		}

		c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
			"title":            "Home - Elation by FMH",
			"recentPortfolio":  recentPortfolio,
			"featuredServices": featured,
			"services":         allServices,
		}))
	}
}

func ServicesPage(catalog *services.CatalogService, packages *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svcs, err := catalog.List(c.Request.Context(), "")
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading services")
			return
		}
		pkgs, err := packages.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading services")
			return
		}

		c.HTML(http.StatusOK, "services.html", pageData(c, gin.H{
			"title":    "Services - Elation by FMH",
			"services": svcs,
			"packages": pkgs,
		}))
	}
}

func PortfolioPage(portfolio *services.PortfolioService, about *services.AboutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := portfolio.List(c.Request.Context(), "")
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading portfolio")
			return
		}
		aboutDoc, err := about.Get(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading portfolio")
			return
		}

		c.HTML(http.StatusOK, "portfolio.html", pageData(c, gin.H{
			"title":     "Portfolio - Elation by FMH",
			"portfolio": items,
			"about":     aboutDoc,
		}))
	}
}

func AboutPage(about *services.AboutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		aboutDoc, err := about.Get(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading page")
			return
		}

		c.HTML(http.StatusOK, "about.html", pageData(c, gin.H{
			"title": "About Us - Elation by FMH",
			"about": aboutDoc,
		}))
	}
}

func ContactPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", pageData(c, gin.H{
			"title": "Contact Us - Elation by FMH",
		}))
	}
}

func SubmitContact(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
			Phone     string `json:"phone"`
			Subject   string `json:"subject"`
			Message   string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		contact := &models.Contact{
			FirstName: helpers.StringTrim(req.FirstName),
			LastName:  helpers.StringTrim(req.LastName),
			Email:     helpers.StringTrim(req.Email),
			Phone:     helpers.StringTrim(req.Phone),
			Subject:   helpers.StringTrim(req.Subject),
			Message:   helpers.StringTrim(req.Message),
		}
		if _, err := contacts.Submit(c.Request.Context(), contact); err != nil {
			respondError(c, err, "Message not found")
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Thank you! Your message has been sent successfully.",
		})
	}
}

// bookingRequest carries the public intake form; the event date arrives as
// a plain "YYYY-MM-DD" string.
type bookingRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EventType   string `json:"eventType"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	GuestCount  int    `json:"guestCount"`
	ServiceID   string `json:"serviceId"`
	PackageType string `json:"packageType"`
	Message     string `json:"message"`
}

func SubmitBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		booking := &models.Booking{
			FirstName:   helpers.StringTrim(req.FirstName),
			LastName:    helpers.StringTrim(req.LastName),
			Email:       helpers.StringTrim(req.Email),
			Phone:       helpers.StringTrim(req.Phone),
			EventType:   req.EventType,
			Location:    req.Location,
			GuestCount:  req.GuestCount,
			PackageType: req.PackageType,
			Message:     helpers.StringTrim(req.Message),
		}

		if req.Date != "" {
			date, err := parseEventDate(req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("Event date is invalid"))
				return
			}
			booking.Date = date
		}

		if raw := helpers.TrimID(req.ServiceID); raw != "" {
			serviceID, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid service ID format"))
				return
			}
			booking.ServiceID = &serviceID
		}

		if _, err := bookings.Submit(c.Request.Context(), booking); err != nil {
			respondError(c, err, "Booking not found")
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Booking request submitted successfully! We will contact you soon.",
		})
	}
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
