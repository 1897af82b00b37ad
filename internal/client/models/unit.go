// Package models defines the recipe console's data model: the editable
// recipe draft, the ingredient reference union with its wire codec, and the
// records fetched from the recipe API.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is the closed set of measurement units the recipe API accepts.
type Unit string

const (
	UnitPinch Unit = "pinch"
	UnitPiece Unit = "piece"
	UnitKg    Unit = "kg"
	UnitGram  Unit = "gram"
	UnitMl    Unit = "ml"
	UnitLiter Unit = "liter"
	UnitCup   Unit = "cup"
)

var ErrUnknownUnit = errors.New("unknown unit")

// Units lists every unit in the order the console offers them.
var Units = []Unit{UnitPinch, UnitPiece, UnitKg, UnitGram, UnitMl, UnitLiter, UnitCup}

func (u Unit) Valid() bool {
	for _, x := range Units {
		if u == x {
			return true
		}
	}
	return false
}

func (u Unit) String() string { return string(u) }

// ParseUnit accepts a unit name case-insensitively.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}
