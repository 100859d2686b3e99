package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/helpers"
	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/upload"
	"github.com/fmhevents/elation/internal/validation"
)

// respondError maps the error taxonomy onto status codes: validation and
// bad input are 400-class, missing records 404, everything else a logged
// generic 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(verr.Result.Message()))
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid status value"))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFoundMsg))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
	}
}

// idParam parses the :id path segment into an ObjectID.
func idParam(c *gin.Context) (primitive.ObjectID, bool) {
	raw := helpers.TrimID(c.Param("id"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("ID is required"))
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid ID format"))
		return primitive.NilObjectID, false
	}
	return id, true
}

// formFiles pulls attached files for a field. A request that is not
// multipart at all simply proceeds with no files.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// saveUploads stores attached files, distinguishing real file violations
// (fatal, 400) from the absence of files (not an error).
func saveUploads(c *gin.Context, uploader *upload.Uploader, field string, max int) ([]string, bool) {
	paths, err := uploader.SaveAll(formFiles(c, field), max)
	if err != nil {
		var ferr *upload.FileError
		if errors.As(err, &ferr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(ferr.Error()))
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("File upload error"))
		}
		return nil, false
	}
	return paths, true
}
