package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/services"
)

const (
	adminKey    = "admin"
	roleEditor  = common.RoleEditor
	roleManager = common.RoleManager
)

// requireAuth resolves the bearer token to an account and stores it in the
// gin context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeader)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			abortWith(c, http.StatusUnauthorized, "missing token")
			return
		}

		admin, err := s.admins.Authorize(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.Set(adminKey, admin)
		c.Next()
	}
}

func (s *Server) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.HasRole(currentAdmin(c), role) {
			abortWith(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

func currentAdmin(c *gin.Context) *models.Admin {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil
	}
	a, _ := v.(*models.Admin)
	return a
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if a := currentAdmin(c); a != nil {
			args = append(args, "admin", a.Login)
		}
		s.logger.Info(c.Request.Context(), "request", args...)
	}
}
