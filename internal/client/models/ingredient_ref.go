package models

import (
	"errors"
	"fmt"
	"strconv"
)

// RefKind tags the variant held by an IngredientRef.
type RefKind int

const (
	// RefNone is the zero value: no ingredient chosen yet.
	RefNone RefKind = iota
	// RefExisting points at an ingredient that already has an id.
	RefExisting
	// RefNew carries a name the operator typed; the ingredient must be
	// created before the recipe can reference it.
	RefNew
	// RefRaw holds a token that bypassed the encoding (e.g. an initial value
	// supplied directly as a numeric id). It is kept verbatim.
	RefRaw
)

const (
	existingPrefix = '#'
	newPrefix      = '*'
)

var ErrMalformedRef = errors.New("malformed ingredient reference")

// IngredientRef is the identity of one ingredient line:
// ExistingIngredient(id) | NewIngredient(name), plus the raw pass-through
// variant produced by DecodeRef for unprefixed tokens.
type IngredientRef struct {
	kind RefKind
	id   int64
	name string
	raw  string
}

func ExistingIngredient(id int64) IngredientRef {
	return IngredientRef{kind: RefExisting, id: id}
}

func NewIngredient(name string) IngredientRef {
	return IngredientRef{kind: RefNew, name: name}
}

func RawRef(token string) IngredientRef {
	return IngredientRef{kind: RefRaw, raw: token}
}

func (r IngredientRef) Kind() RefKind { return r.kind }
func (r IngredientRef) ID() int64     { return r.id }
func (r IngredientRef) Name() string  { return r.name }
func (r IngredientRef) Raw() string   { return r.raw }
func (r IngredientRef) IsZero() bool  { return r.kind == RefNone }

// RawID interprets a raw token as an existing ingredient id.
func (r IngredientRef) RawID() (int64, bool) {
	if r.kind != RefRaw {
		return 0, false
	}
	id, err := strconv.ParseInt(r.raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r IngredientRef) String() string {
	switch r.kind {
	case RefExisting:
		return fmt.Sprintf("ingredient #%d", r.id)
	case RefNew:
		return fmt.Sprintf("new ingredient %q", r.name)
	case RefRaw:
		return fmt.Sprintf("ingredient %s", r.raw)
	default:
		return "no ingredient"
	}
}

// EncodeRef renders the selector token: "#<id>" for an existing ingredient,
// "*<name>" for a new one. Raw tokens come back unchanged.
//
// Names that themselves begin with '#' or '*' are not escaped.
func EncodeRef(r IngredientRef) string {
	switch r.kind {
	case RefExisting:
		return string(existingPrefix) + strconv.FormatInt(r.id, 10)
	case RefNew:
		return string(newPrefix) + r.name
	case RefRaw:
		return r.raw
	default:
		return ""
	}
}

// DecodeRef is the inverse of EncodeRef. A token whose first character is
// neither '#' nor '*' (including the empty token) is returned as RawRef.
func DecodeRef(token string) (IngredientRef, error) {
	if token == "" {
		return RawRef(token), nil
	}
	rest := token[1:]
	switch token[0] {
	case existingPrefix:
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return IngredientRef{}, fmt.Errorf("%w: %q", ErrMalformedRef, token)
		}
		return ExistingIngredient(id), nil
	case newPrefix:
		if rest == "" {
			return IngredientRef{}, fmt.Errorf("%w: %q", ErrMalformedRef, token)
		}
		return NewIngredient(rest), nil
	default:
		return RawRef(token), nil
	}
}
