package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/config"
	"github.com/fmhevents/elation/internal/middleware"
	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/session"
	"github.com/fmhevents/elation/internal/upload"
)

func setSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetCookie(
		session.CookieName,
		session.SignToken(cfg.SessionSecret, token),
		int(session.TTL.Seconds()),
		"/",
		"",
		cfg.IsProduction(),
		true,
	)
}

func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetCookie(session.CookieName, "", -1, "/", "", cfg.IsProduction(), true)
}

func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := middleware.SessionFrom(c); ok {
			if sess.IsAdmin {
				c.Redirect(http.StatusFound, "/admin/dashboard")
			} else {
				c.Redirect(http.StatusFound, "/")
			}
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login - Elation by FMH"})
	}
}

func SignupPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.SessionFrom(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "signup.html", gin.H{"title": "Sign Up - Elation by FMH"})
	}
}

func Login(auth *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		user, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Invalid email or password"))
			return
		}
		if err != nil {
			respondError(c, err, "User not found")
			return
		}

		setSessionCookie(c, cfg, token)

		redirect := "/"
		if user.IsAdmin {
			redirect = "/admin/dashboard"
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Login successful",
			Data: gin.H{
				"redirect": redirect,
				"user": gin.H{
					"email":     user.Email,
					"firstName": user.FirstName,
					"isAdmin":   user.IsAdmin,
				},
			},
		})
	}
}

func Signup(auth *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email     string `json:"email"`
			Password  string `json:"password"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		user, token, err := auth.Signup(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusConflict, models.ErrorResponse("Email already registered"))
			return
		}
		if err != nil {
			respondError(c, err, "User not found")
			return
		}

		setSessionCookie(c, cfg, token)

		c.JSON(http.StatusCreated, models.ApiResponse{
			Success: true,
			Message: "Account created successfully",
			Data:    gin.H{"redirect": "/", "email": user.Email},
		})
	}
}

func Logout(auth *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := middleware.SessionFrom(c); ok {
			auth.Logout(sess.Token)
		}
		clearSessionCookie(c, cfg)
		c.Redirect(http.StatusFound, "/auth/login")
	}
}

func Profile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.SessionFrom(c)
		id, err := primitive.ObjectIDFromHex(sess.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
			return
		}

		user, err := auth.GetProfile(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile fetched"))
	}
}

func UpdateProfile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.SessionFrom(c)
		id, err := primitive.ObjectIDFromHex(sess.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
			return
		}

		var update services.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		user, err := auth.UpdateProfile(c.Request.Context(), id, update)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile updated successfully"))
	}
}

func UploadProfilePicture(auth *services.AuthService, uploader *upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.SessionFrom(c)
		id, err := primitive.ObjectIDFromHex(sess.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
			return
		}

		paths, ok := saveUploads(c, uploader, "profilePic", 1)
		if !ok {
			return
		}
		if len(paths) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("No file uploaded"))
			return
		}

		user, err := auth.SetProfilePicture(c.Request.Context(), id, paths[0])
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Profile picture updated",
			Data:    gin.H{"profilePic": user.ProfilePic},
		})
	}
}
