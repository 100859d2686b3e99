package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
)

func AdminPackagesPage(packages *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := packages.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading packages")
			return
		}

		c.HTML(http.StatusOK, "admin_packages.html", pageData(c, gin.H{
			"title":    "Packages - Admin",
			"packages": list,
		}))
	}
}

// SavePackage upserts a pricing tier by its name; editing the same tier
// twice never duplicates it.
func SavePackage(packages *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		saved, err := packages.Save(c.Request.Context(), input)
		if err != nil {
			respondError(c, err, "Package not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(saved, "Package saved successfully"))
	}
}

func GetPackage(packages *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		pkg, err := packages.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Package not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(pkg, ""))
	}
}
