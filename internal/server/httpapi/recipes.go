package httpapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/services"
)

func (s *Server) listRecipes(c *gin.Context) {
	out, err := s.recipes.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := s.recipes.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createRecipe(c *gin.Context) {
	in, err := s.readRecipeForm(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	out, err := s.recipes.Create(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) updateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	in, err := s.readRecipeForm(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	out, err := s.recipes.Update(c.Request.Context(), id, in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.recipes.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) changeRecipeAuth(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req changeAuthRequest
	if !s.bindJSON(c, &req) {
		return
	}
	if req.NeedsAuth == nil {
		s.fail(c, fmt.Errorf("%w: needs_auth is required", common.ErrorValidation))
		return
	}
	out, err := s.recipes.SetNeedsAuth(c.Request.Context(), id, *req.NeedsAuth)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// picture redirects to a short-lived download URL. It is public so plain
// <img> tags work.
func (s *Server) picture(c *gin.Context) {
	u, err := s.recipes.PictureURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, u)
}

// readRecipeForm decodes the multipart body of a recipe create or update.
func (s *Server) readRecipeForm(c *gin.Context) (services.RecipeInput, error) {
	var in services.RecipeInput

	if s.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	}
	form, err := c.MultipartForm()
	if err != nil {
		if statusFor(err) == http.StatusRequestEntityTooLarge {
			return in, err
		}
		return in, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	in.Name = formValue(form, common.FieldName)
	in.Instructions = formValue(form, common.FieldInstructions)
	in.Ingredients = formValue(form, common.FieldIngredients)

	category := formValue(form, common.FieldCategory)
	if category == "" {
		category = formValue(form, "categoryId")
	}
	if category != "" {
		in.CategoryID, err = strconv.ParseInt(strings.TrimSpace(category), 10, 64)
		if err != nil {
			return in, fmt.Errorf("%w: bad category %q", common.ErrorValidation, category)
		}
	}

	if v, ok := form.Value[common.FieldNeedsAuth]; ok && len(v) > 0 {
		b, err := strconv.ParseBool(strings.TrimSpace(v[0]))
		if err != nil {
			return in, fmt.Errorf("%w: bad needs_auth %q", common.ErrorValidation, v[0])
		}
		in.NeedsAuth = &b
	}

	if v, ok := form.Value[common.FieldPicsToRemain]; ok {
		in.KeepPictures, err = keepList(v)
		if err != nil {
			return in, err
		}
	}

	for _, fh := range form.File[common.FieldPictures] {
		data, err := readPart(fh)
		if err != nil {
			return in, fmt.Errorf("%w: picture %q: %v", common.ErrorValidation, fh.Filename, err)
		}
		in.Pictures = append(in.Pictures, services.Upload{FileName: fh.Filename, Data: data})
	}
	return in, nil
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// keepList accepts pics_to_remain as one encoded value or as repeated fields.
func keepList(values []string) ([]string, error) {
	if len(values) == 1 {
		return services.ParseKeepList(values[0])
	}
	out := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
