package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type changeAuthRequest struct {
	NeedsAuth *bool `json:"needs_auth"`
}

// pathID reads the numeric :id parameter. Anything else is reported as
// not found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWith(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func (s *Server) bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", common.ErrorValidation, err))
		return false
	}
	return true
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !s.bindJSON(c, &req) {
		return
	}

	token, err := s.admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Logged in", "admin", req.Username)
	c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (s *Server) listCategories(c *gin.Context) {
	out, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := s.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createCategory(c *gin.Context) {
	var req nameRequest
	if !s.bindJSON(c, &req) {
		return
	}
	out, err := s.catalog.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) renameCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if !s.bindJSON(c, &req) {
		return
	}
	out, err := s.catalog.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listIngredients(c *gin.Context) {
	out, err := s.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ingredientUnits(c *gin.Context) {
	out, err := s.catalog.IngredientUnits(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := s.catalog.GetIngredient(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createIngredient(c *gin.Context) {
	var req nameRequest
	if !s.bindJSON(c, &req) {
		return
	}
	out, err := s.catalog.CreateIngredient(c.Request.Context(), req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) renameIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if !s.bindJSON(c, &req) {
		return
	}
	out, err := s.catalog.RenameIngredient(c.Request.Context(), id, req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.catalog.DeleteIngredient(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listActivations(c *gin.Context) {
	out, err := s.activations.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createActivation(c *gin.Context) {
	var req services.ActivationRequest
	if !s.bindJSON(c, &req) {
		return
	}
	out, err := s.activations.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.logger.Info(c.Request.Context(), "Activation code created", "id", out.ID, "limit", out.ActivationsLimit)
	c.JSON(http.StatusCreated, out)
}
