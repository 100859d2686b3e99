package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/services"
)

func AdminUsersPage(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := auth.ListUsers(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			renderError(c, http.StatusInternalServerError, "Error loading users")
			return
		}

		c.HTML(http.StatusOK, "admin_users.html", pageData(c, gin.H{
			"title": "Users - Admin",
			"users": users,
		}))
	}
}
