package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingIngredient = errors.New("missing ingredient")
	ErrMissingQuantity   = errors.New("missing quantity")
	ErrMissingUnit       = errors.New("missing unit")
	ErrMissingName       = errors.New("missing recipe name")
	ErrMissingCategory   = errors.New("missing category")
	ErrBadQuantity       = errors.New("quantity must be positive")
	ErrUnresolvedRef     = errors.New("unresolved ingredient reference")
)

// IngredientLine is one row of the recipe's ingredient list as edited.
// Quantity is a pointer so that "not entered" differs from zero.
type IngredientLine struct {
	Ref      IngredientRef
	Quantity *float64
	Unit     Unit
}

func Qty(v float64) *float64 { return &v }

// Validate reports the first required field that is absent or unusable.
// A raw reference must carry a numeric id.
func (l IngredientLine) Validate() error {
	if l.Ref.IsZero() {
		return ErrMissingIngredient
	}
	if l.Ref.Kind() == RefRaw {
		if _, ok := l.Ref.RawID(); !ok {
			return fmt.Errorf("%w: %q", ErrUnresolvedRef, l.Ref.Raw())
		}
	}
	if l.Quantity == nil {
		return ErrMissingQuantity
	}
	if *l.Quantity <= 0 {
		return ErrBadQuantity
	}
	if l.Unit == "" {
		return ErrMissingUnit
	}
	if !l.Unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, l.Unit)
	}
	return nil
}

// ResolvedIngredient is a line whose reference has become a concrete id.
type ResolvedIngredient struct {
	ID       int64
	Quantity float64
	Unit     Unit
}

type PictureOrigin string

const (
	PictureOriginPersisted PictureOrigin = "persisted"
	PictureOriginLocal     PictureOrigin = "local"
)

// PictureRef is one picture of the draft. A persisted picture has ID and URL
// and no payload; a local picture carries its bytes and has no ID/URL.
type PictureRef struct {
	ID       string
	Origin   PictureOrigin
	Payload  []byte
	URL      string
	FileName string
}

func PersistedPicture(id, url string) PictureRef {
	return PictureRef{ID: id, Origin: PictureOriginPersisted, URL: url}
}

func LocalPicture(fileName string, payload []byte) PictureRef {
	return PictureRef{Origin: PictureOriginLocal, FileName: fileName, Payload: payload}
}

func (p PictureRef) IsPersisted() bool { return p.Origin == PictureOriginPersisted }

// UnitIndex maps an ingredient id to the unit it was last used with.
type UnitIndex map[int64]Unit

func NewUnitIndex(units []IngredientUnit) UnitIndex {
	idx := make(UnitIndex, len(units))
	for _, u := range units {
		if u.Unit.Valid() {
			idx[u.IngredientID] = u.Unit
		}
	}
	return idx
}

// RecipeDraft is the denormalized form state of a recipe being created or
// edited. It is never persisted locally.
type RecipeDraft struct {
	Name         string
	Instructions string
	CategoryID   int64
	Lines        []IngredientLine
	Pictures     []PictureRef
}

// AddLine appends an empty ingredient line and returns its index.
func (d *RecipeDraft) AddLine() int {
	d.Lines = append(d.Lines, IngredientLine{})
	return len(d.Lines) - 1
}

func (d *RecipeDraft) RemoveLine(i int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
}

// SetLineRef changes the reference of line i. When the reference actually
// changes to an existing ingredient with a known default unit, the line's
// unit is pre-filled from index. A unit set afterwards is never touched.
func (d *RecipeDraft) SetLineRef(i int, ref IngredientRef, index UnitIndex) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	line := &d.Lines[i]
	if line.Ref == ref {
		return
	}
	line.Ref = ref
	if ref.Kind() != RefExisting {
		return
	}
	if u, ok := index[ref.ID()]; ok {
		line.Unit = u
	}
}

// Validate checks the draft before anything is sent. Ingredient line errors
// carry the 1-based line number.
func (d *RecipeDraft) Validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	if d.CategoryID == 0 {
		return ErrMissingCategory
	}
	for i, l := range d.Lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("ingredient line %d: %w", i+1, err)
		}
	}
	return nil
}

// DraftFromRecipe hydrates a draft for the edit flow. pictureURL turns a
// picture id into the URL it is served from.
func DraftFromRecipe(r *Recipe, pictureURL func(id string) string) *RecipeDraft {
	d := &RecipeDraft{
		Name:         r.Name,
		Instructions: r.Instructions,
		CategoryID:   r.Category.ID,
		Lines:        make([]IngredientLine, 0, len(r.Ingredients)),
		Pictures:     make([]PictureRef, 0, len(r.Pictures)),
	}
	for _, ing := range r.Ingredients {
		d.Lines = append(d.Lines, IngredientLine{
			Ref:      ExistingIngredient(ing.Ingredient.ID),
			Quantity: Qty(ing.Quantity),
			Unit:     ing.Unit,
		})
	}
	for _, id := range r.Pictures {
		url := ""
		if pictureURL != nil {
			url = pictureURL(id)
		}
		d.Pictures = append(d.Pictures, PersistedPicture(id, url))
	}
	return d
}
