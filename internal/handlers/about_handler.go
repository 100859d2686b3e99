package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/upload"
)

func AdminAboutPage(about *services.AboutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		aboutDoc, err := about.Get(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading page content")
			return
		}

		c.HTML(http.StatusOK, "admin_about.html", pageData(c, gin.H{
			"title": "About Page - Admin",
			"about": aboutDoc,
		}))
	}
}

func UpdateAbout(about *services.AboutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.AboutUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		updated, err := about.Update(c.Request.Context(), update)
		if err != nil {
			respondError(c, err, "About content not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "About content updated successfully"))
	}
}

// UploadTeamPhoto stores a single image (team photo, section illustration)
// and returns its public URL for the edit form to reference.
func UploadTeamPhoto(uploader *upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		paths, ok := saveUploads(c, uploader, "photo", 1)
		if !ok {
			return
		}
		if len(paths) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("No file uploaded"))
			return
		}
		c.JSON(http.StatusOK, models.UploadResponse(paths[0]))
	}
}
