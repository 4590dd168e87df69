package httpapi

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mithaq/auth"
)

const (
	actorIDKey   = "actorId"
	actorRoleKey = "actorRole"
	requestIDKey = "requestId"
)

// RequestID attaches a request ID to context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// Logging emits one log line per request.
func Logging(logger *log.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Printf("%s %s -> %d (%s) request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			c.GetString(requestIDKey),
		)
	}
}

// TokenVerifier checks a bearer token and returns the subject and role.
type TokenVerifier interface {
	VerifyToken(token string) (string, auth.Role, error)
}

// Authenticate validates the Authorization header and stores the actor's
// identity in the request context.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		userID, role, err := verifier.VerifyToken(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(actorIDKey, userID)
		c.Set(actorRoleKey, role)
		c.Next()
	}
}

// RequireRoles rejects actors whose role is not in the allow list.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorRole(c)
		for _, r := range roles {
			if actor == r {
				c.Next()
				return
			}
		}
		respondError(c, http.StatusForbidden, "forbidden", "insufficient role", nil)
	}
}

// ActorID fetches the user ID set by the auth middleware.
func ActorID(c *gin.Context) string {
	val, _ := c.Get(actorIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// ActorRole fetches the role set by the auth middleware.
func ActorRole(c *gin.Context) auth.Role {
	val, _ := c.Get(actorRoleKey)
	if role, ok := val.(auth.Role); ok {
		return role
	}
	return ""
}
