package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/session"
)

const (
	// SessionKey holds the *session.Session for an authenticated request.
	SessionKey = "session"
	// CurrentUserKey holds the freshly re-read *models.User.
	CurrentUserKey = "currentUser"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			// Don't return error details in production
			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
			}
		}
	}
}

// CurrentUser resolves the session cookie and re-reads the user record so
// profile edits are immediately visible. Absence of a session means
// anonymous access; the request always proceeds.
func CurrentUser(store session.Store, users models.UserRepo, secret string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil {
			c.Next()
			return
		}

		token, ok := session.VerifyCookie(secret, cookie)
		if !ok {
			c.Next()
			return
		}

		sess, ok := store.Get(token)
		if !ok {
			c.Next()
			return
		}
		c.Set(SessionKey, sess)

		userID, err := primitive.ObjectIDFromHex(sess.UserID)
		if err != nil {
			c.Next()
			return
		}
		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Session user lookup failed", "user_id", sess.UserID, "error", err)
			c.Next()
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// SessionFrom pulls the authenticated session out of the context, if any.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// UserFrom pulls the re-read current user out of the context, if any.
func UserFrom(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// AuthRequired guards the JSON profile endpoints.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c); !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired gates the back office: page requests redirect to the login
// page, API-style requests get 401 JSON. Binary allow/deny, no role
// granularity.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if ok && sess.IsAdmin {
			c.Next()
			return
		}

		if wantsJSON(c) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
		} else {
			c.Redirect(http.StatusFound, "/auth/login")
		}
		c.Abort()
	}
}

func wantsJSON(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") ||
		c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
