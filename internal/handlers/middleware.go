package handlers

import (
	"net/http"
	"strings"

	"battery_alert/internal/models"
	"battery_alert/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
	userIDKey           = "userId"
	principalKey        = "principal"
)

// userIdMiddleware rejects requests without a valid bearer token and stores the caller.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerScheme || strings.TrimSpace(parts[1]) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	p, err := h.services.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		if h.log != nil {
			h.log.Debugw("auth_token_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDKey, p.UserID)
	c.Set(principalKey, p)
	c.Next()
}

// requireRole lets the request through only when the caller's role grants required.
// It must run after userIdMiddleware.
func (h *Handler) requireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := c.Get(principalKey)
		principal, _ := p.(service.Principal)
		if err := service.Authorize(principal, required); err != nil {
			if h.log != nil {
				h.log.Infow("auth_role_denied",
					"path", c.FullPath(),
					"user_id", principal.UserID,
					"role", principal.Role,
					"required", required,
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": string(required) + " role required",
			})
			return
		}
		c.Next()
	}
}
