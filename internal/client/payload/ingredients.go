// Package payload builds the multipart body sent on recipe create and update.
package payload

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// FormatIngredients renders resolved lines as "<id>, <qty>, <unit>;" entries,
// the last one terminated as well. Order is kept.
func FormatIngredients(items []models.ResolvedIngredient) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(strconv.FormatInt(it.ID, 10))
		b.WriteString(", ")
		b.WriteString(FormatQuantity(it.Quantity))
		b.WriteString(", ")
		b.WriteString(string(it.Unit))
		b.WriteByte(';')
	}
	return b.String()
}

// FormatQuantity prints the shortest decimal that round-trips (2, 0.5, 1.25).
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
