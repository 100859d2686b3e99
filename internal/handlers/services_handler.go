package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/upload"
)

func AdminServicesPage(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		svcs, err := catalog.List(c.Request.Context(), search)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading services")
			return
		}

		c.HTML(http.StatusOK, "admin_services.html", pageData(c, gin.H{
			"title":    "Services - Admin",
			"services": svcs,
			"search":   search,
		}))
	}
}

// serviceInput reads the multipart admin form. Price is a form string;
// anything unparseable becomes zero and fails validation downstream.
func serviceInput(c *gin.Context) services.ServiceInput {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	return services.ServiceInput{
		Name:      c.PostForm("name"),
		ShortDesc: c.PostForm("shortDesc"),
		FullDesc:  c.PostForm("fullDesc"),
		Price:     price,
		ImageURLs: c.PostForm("imageUrls"),
	}
}

func CreateService(catalog *services.CatalogService, uploader *upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := serviceInput(c)

		paths, ok := saveUploads(c, uploader, "images", models.MaxServiceImages)
		if !ok {
			return
		}
		input.UploadedImages = paths

		created, err := catalog.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, err, "Service not found")
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Service created successfully"))
	}
}

func GetService(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		svc, err := catalog.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Service not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(svc, ""))
	}
}

func UpdateService(catalog *services.CatalogService, uploader *upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		input := serviceInput(c)

		paths, ok := saveUploads(c, uploader, "images", models.MaxServiceImages)
		if !ok {
			return
		}
		input.UploadedImages = paths

		updated, err := catalog.Update(c.Request.Context(), id, input)
		if err != nil {
			respondError(c, err, "Service not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Service updated successfully"))
	}
}

func DeleteService(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := catalog.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Service not found")
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Service deleted successfully",
		})
	}
}
