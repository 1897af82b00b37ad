package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit(" KG ")
	require.NoError(t, err)
	assert.Equal(t, UnitKg, u)

	_, err = ParseUnit("spoon")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestIngredientLine_Validate(t *testing.T) {
	tests := []struct {
		name string
		line IngredientLine
		err  error
	}{
		{"ok", IngredientLine{Ref: ExistingIngredient(1), Quantity: Qty(2), Unit: UnitKg}, nil},
		{"raw id ok", IngredientLine{Ref: RawRef("12"), Quantity: Qty(0.5), Unit: UnitCup}, nil},
		{"zero quantity", IngredientLine{Ref: NewIngredient("Salt"), Quantity: Qty(0), Unit: UnitPinch}, ErrBadQuantity},
		{"negative quantity", IngredientLine{Ref: NewIngredient("Salt"), Quantity: Qty(-1), Unit: UnitPinch}, ErrBadQuantity},
		{"raw name", IngredientLine{Ref: RawRef("basil"), Quantity: Qty(1), Unit: UnitKg}, ErrUnresolvedRef},
		{"raw empty", IngredientLine{Ref: RawRef(""), Quantity: Qty(1), Unit: UnitKg}, ErrUnresolvedRef},
		{"no ref", IngredientLine{Quantity: Qty(1), Unit: UnitKg}, ErrMissingIngredient},
		{"no quantity", IngredientLine{Ref: ExistingIngredient(1), Unit: UnitKg}, ErrMissingQuantity},
		{"no unit", IngredientLine{Ref: ExistingIngredient(1), Quantity: Qty(1)}, ErrMissingUnit},
		{"bad unit", IngredientLine{Ref: ExistingIngredient(1), Quantity: Qty(1), Unit: "spoon"}, ErrUnknownUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRecipeDraft_Validate(t *testing.T) {
	d := &RecipeDraft{Name: "Soup", CategoryID: 5}
	assert.NoError(t, d.Validate())

	d.AddLine()
	err := d.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingIngredient)
	assert.Contains(t, err.Error(), "line 1")

	d.Lines[0] = IngredientLine{Ref: RawRef("basil"), Quantity: Qty(1), Unit: UnitKg}
	err = d.Validate()
	assert.ErrorIs(t, err, ErrUnresolvedRef)
	assert.Contains(t, err.Error(), "basil")

	assert.ErrorIs(t, (&RecipeDraft{CategoryID: 1}).Validate(), ErrMissingName)
	assert.ErrorIs(t, (&RecipeDraft{Name: "x"}).Validate(), ErrMissingCategory)
}

func TestSetLineRef_PrefillsUnit(t *testing.T) {
	idx := NewUnitIndex([]IngredientUnit{{IngredientID: 3, Unit: UnitGram}, {IngredientID: 4, Unit: "bogus"}})
	d := &RecipeDraft{}
	i := d.AddLine()

	d.SetLineRef(i, ExistingIngredient(3), idx)
	assert.Equal(t, UnitGram, d.Lines[i].Unit)

	// unit chosen by the operator survives re-selecting the same ingredient
	d.Lines[i].Unit = UnitCup
	d.SetLineRef(i, ExistingIngredient(3), idx)
	assert.Equal(t, UnitCup, d.Lines[i].Unit)

	// no default known: unit left as is
	d.SetLineRef(i, ExistingIngredient(4), idx)
	assert.Equal(t, UnitCup, d.Lines[i].Unit)

	d.SetLineRef(i, NewIngredient("Dill"), idx)
	assert.Equal(t, UnitCup, d.Lines[i].Unit)
	assert.Equal(t, RefNew, d.Lines[i].Ref.Kind())

	// out of range is ignored
	d.SetLineRef(9, ExistingIngredient(3), idx)
	assert.Len(t, d.Lines, 1)
}

func TestRemoveLine(t *testing.T) {
	d := &RecipeDraft{}
	d.AddLine()
	d.AddLine()
	d.Lines[1].Ref = NewIngredient("Egg")
	d.RemoveLine(0)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "Egg", d.Lines[0].Ref.Name())
	d.RemoveLine(5)
	assert.Len(t, d.Lines, 1)
}

func TestDraftFromRecipe(t *testing.T) {
	r := &Recipe{
		ID:           9,
		Name:         "Pancakes",
		Instructions: "Mix and fry",
		Category:     Category{ID: 3, Name: "Breakfasts"},
		Ingredients: []RecipeIngredient{
			{Ingredient: Ingredient{ID: 1, Name: "Flour"}, Quantity: 0.25, Unit: UnitKg},
			{Ingredient: Ingredient{ID: 2, Name: "Milk"}, Quantity: 1, Unit: UnitCup},
		},
		Pictures: []string{"p1", "p2"},
	}
	d := DraftFromRecipe(r, func(id string) string { return "http://x/pictures/" + id })

	assert.Equal(t, "Pancakes", d.Name)
	assert.Equal(t, int64(3), d.CategoryID)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, ExistingIngredient(1), d.Lines[0].Ref)
	assert.Equal(t, 0.25, *d.Lines[0].Quantity)
	assert.Equal(t, UnitCup, d.Lines[1].Unit)
	require.Len(t, d.Pictures, 2)
	assert.True(t, d.Pictures[0].IsPersisted())
	assert.Equal(t, "http://x/pictures/p2", d.Pictures[1].URL)
	assert.NoError(t, d.Validate())
}
