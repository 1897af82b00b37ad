package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

// IngredientEntry is one "<id>, <qty>, <unit>" triple of the ingredients field.
type IngredientEntry struct {
	IngredientID int64
	Quantity     float64
	Unit         string
}

// ParseIngredients reads the ingredients form field: entries separated by
// ';', each a comma-separated id, quantity and unit. Empty entries are skipped.
func ParseIngredients(s string) ([]IngredientEntry, error) {
	out := []IngredientEntry{}
	for n, raw := range strings.Split(strings.TrimSpace(s), ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		parts := strings.Split(raw, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: ingredient entry %d: want id, qty, unit", common.ErrorValidation, n+1)
		}

		id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: ingredient entry %d: bad id %q", common.ErrorValidation, n+1, parts[0])
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("%w: ingredient entry %d: bad quantity %q", common.ErrorValidation, n+1, parts[1])
		}
		unit := strings.ToLower(strings.TrimSpace(parts[2]))
		if !models.ValidUnit(unit) {
			return nil, fmt.Errorf("%w: ingredient entry %d: unknown unit %q", common.ErrorValidation, n+1, parts[2])
		}

		out = append(out, IngredientEntry{IngredientID: id, Quantity: qty, Unit: unit})
	}
	return out, nil
}

// ParseKeepList reads pics_to_remain. A JSON array and a plain
// comma-separated list are both accepted.
func ParseKeepList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	out := []string{}
	if s == "" {
		return out, nil
	}

	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("%w: pics_to_remain: %v", common.ErrorValidation, err)
		}
		return out, nil
	}

	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out, nil
}
