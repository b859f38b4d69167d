package delivery

import (
	"net/http"
	"strings"
	"time"

	"contact_service/internal/auth"
	"contact_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const sessionKey = "session"

// AuthMiddleware verifies the bearer token and stores the caller's identity
// in the request context. Identity travels per-request from here on; nothing
// is kept in shared process state.
func AuthMiddleware(secret []byte, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Middleware: Authorization header is missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Warnf("Middleware: Invalid Authorization header format: %s", authHeader)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			log.Warnf("Middleware: Token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(sessionKey, domain.Session{
			UserID:   claims.UserID,
			Username: claims.Name,
			Email:    claims.Email,
		})
		c.Next()
	}
}

// CurrentSession returns the identity placed in the context by AuthMiddleware.
func CurrentSession(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", reqID)

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"remote_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"request_id": reqID,
		}).Info("Incoming request")

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		completedEntry := logger.WithFields(logrus.Fields{
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"remote_ip":   c.ClientIP(),
			"latency_ms":  latency.Milliseconds(),
			"request_id":  reqID,
		})

		if len(c.Errors) > 0 {
			completedEntry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else {
			if statusCode >= 500 {
				completedEntry.Error("Request completed with server error")
			} else if statusCode >= 400 {
				completedEntry.Warn("Request completed with client error")
			} else {
				completedEntry.Info("Request completed successfully")
			}
		}
	}
}
