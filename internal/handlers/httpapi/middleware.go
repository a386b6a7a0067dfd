package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// identityKey is where middleware stores the authenticated player id
const identityKey = "playerID"

// authenticatedPlayerID returns the identity set by the auth
// middleware, or empty when the request carried no valid token
func authenticatedPlayerID(c *gin.Context) string {
	id, _ := c.Get(identityKey)
	s, _ := id.(string)
	return s
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondUnauthorized(c, "Acceso denegado. No se proporcionó token.")
			return
		}

		playerID, err := h.issuer.Verify(token)
		if err != nil {
			respondUnauthorized(c, "Token inválido o expirado")
			return
		}

		c.Set(identityKey, playerID)
		c.Next()
	}
}

// OptionalAuth populates the identity when a valid token is present
// and lets the request through either way
func (h *Handler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if playerID, err := h.issuer.Verify(token); err == nil {
				c.Set(identityKey, playerID)
			}
		}
		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
