package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/pictures"
	"github.com/dmitrijs2005/recipeadmin/internal/common"
)

// RecipeForm is everything a create or update submission carries.
type RecipeForm struct {
	Name         string
	Instructions string
	CategoryID   int64
	Ingredients  []models.ResolvedIngredient
	Pictures     pictures.Projection
	// IncludeKept adds the pics_to_remain field; set on update only.
	IncludeKept bool
}

// Body is an encoded multipart form ready to be sent.
type Body struct {
	Data        []byte
	ContentType string
}

// Build encodes form as multipart/form-data. With no pictures to upload a
// single empty "pictures" field is written so the key is always present.
func Build(form RecipeForm) (*Body, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ key, value string }{
		{common.FieldName, form.Name},
		{common.FieldInstructions, form.Instructions},
		{common.FieldCategory, strconv.FormatInt(form.CategoryID, 10)},
		{common.FieldIngredients, FormatIngredients(form.Ingredients)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f.key, err)
		}
	}

	if len(form.Pictures.Added) == 0 {
		if err := w.WriteField(common.FieldPictures, ""); err != nil {
			return nil, fmt.Errorf("write field %s: %w", common.FieldPictures, err)
		}
	}
	for _, pic := range form.Pictures.Added {
		if err := writePicture(w, pic); err != nil {
			return nil, err
		}
	}

	if form.IncludeKept {
		kept := form.Pictures.Kept
		if kept == nil {
			kept = []string{}
		}
		raw, err := json.Marshal(kept)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", common.FieldPicsToRemain, err)
		}
		if err := w.WriteField(common.FieldPicsToRemain, string(raw)); err != nil {
			return nil, fmt.Errorf("write field %s: %w", common.FieldPicsToRemain, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	return &Body{Data: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

func writePicture(w *multipart.Writer, pic models.PictureRef) error {
	name := pic.FileName
	if name == "" {
		name = uuid.NewString() + ".jpg"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, common.FieldPictures, filepath.Base(name)))
	h.Set("Content-Type", contentType(pic.Payload))

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create picture part: %w", err)
	}
	if _, err := part.Write(pic.Payload); err != nil {
		return fmt.Errorf("write picture %s: %w", name, err)
	}
	return nil
}

func contentType(data []byte) string {
	return http.DetectContentType(data)
}
