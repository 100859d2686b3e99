package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/upload"
)

func AdminPortfolioPage(portfolio *services.PortfolioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		items, err := portfolio.List(c.Request.Context(), search)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading portfolio")
			return
		}

		c.HTML(http.StatusOK, "admin_portfolio.html", pageData(c, gin.H{
			"title":     "Portfolio - Admin",
			"portfolio": items,
			"search":    search,
		}))
	}
}

func portfolioInput(c *gin.Context) services.PortfolioInput {
	footCount, _ := strconv.Atoi(c.PostForm("footCount"))
	return services.PortfolioInput{
		EventName:   c.PostForm("eventName"),
		Location:    c.PostForm("location"),
		Timing:      c.PostForm("timing"),
		FootCount:   footCount,
		Description: c.PostForm("description"),
		ImageURLs:   c.PostForm("imageUrls"),
	}
}

func CreatePortfolio(portfolio *services.PortfolioService, uploader *upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := portfolioInput(c)

		paths, ok := saveUploads(c, uploader, "images", models.MaxPortfolioImages)
		if !ok {
			return
		}
		input.UploadedImages = paths

		created, err := portfolio.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, err, "Portfolio item not found")
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Portfolio item created successfully"))
	}
}

func GetPortfolio(portfolio *services.PortfolioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		item, err := portfolio.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Portfolio item not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(item, ""))
	}
}

func UpdatePortfolio(portfolio *services.PortfolioService, uploader *upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		input := portfolioInput(c)

		paths, ok := saveUploads(c, uploader, "images", models.MaxPortfolioImages)
		if !ok {
			return
		}
		input.UploadedImages = paths

		updated, err := portfolio.Update(c.Request.Context(), id, input)
		if err != nil {
			respondError(c, err, "Portfolio item not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Portfolio item updated successfully"))
	}
}

func DeletePortfolio(portfolio *services.PortfolioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := portfolio.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Portfolio item not found")
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Portfolio item deleted successfully",
		})
	}
}
