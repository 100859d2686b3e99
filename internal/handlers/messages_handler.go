package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
)

func AdminMessagesPage(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.ContactFilter{
			Status: c.Query("status"),
			Search: c.Query("search"),
		}
		list, err := contacts.List(c.Request.Context(), filter)
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading messages")
			return
		}

		c.HTML(http.StatusOK, "admin_messages.html", pageData(c, gin.H{
			"title":    "Messages - Admin",
			"messages": list,
			"filter":   filter,
		}))
	}
}

func GetMessage(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		msg, err := contacts.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Message not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(msg, ""))
	}
}

func UpdateMessageStatus(contacts *services.ContactService) gin.HandlerFunc {
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

		updated, err := contacts.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err, "Message not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Message status updated"))
	}
}
