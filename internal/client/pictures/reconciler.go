// Package pictures tracks the ordered picture list of a recipe draft and
// projects it into what the server must keep and what must be uploaded.
package pictures

import (
	"errors"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

var ErrEmptyPicture = errors.New("picture has no content")

// Projection is derived from the current picture list. Kept holds ids of
// persisted pictures to retain, Added the local pictures to upload; both
// preserve list order.
type Projection struct {
	Kept  []string
	Added []models.PictureRef
}

// Project recomputes the projection from the full list. Local pictures with
// no payload are skipped.
func Project(current []models.PictureRef) Projection {
	p := Projection{Kept: []string{}, Added: []models.PictureRef{}}
	for _, pic := range current {
		switch {
		case pic.IsPersisted():
			if pic.ID != "" {
				p.Kept = append(p.Kept, pic.ID)
			}
		case len(pic.Payload) > 0:
			p.Added = append(p.Added, pic)
		}
	}
	return p
}

// Reconciler owns the picture list during editing. Every change recomputes
// the projection from scratch, so a picture can never be both kept and added.
// The list only holds pictures Project accounts for, so Kept and Added
// together always cover Current.
type Reconciler struct {
	current []models.PictureRef
	proj    Projection
}

// NewReconciler copies initial, dropping persisted pictures without an id
// and local pictures without content.
func NewReconciler(initial []models.PictureRef) *Reconciler {
	r := &Reconciler{current: make([]models.PictureRef, 0, len(initial))}
	for _, pic := range initial {
		if usable(pic) {
			r.current = append(r.current, pic)
		}
	}
	r.proj = Project(r.current)
	return r
}

func usable(pic models.PictureRef) bool {
	if pic.IsPersisted() {
		return pic.ID != ""
	}
	return len(pic.Payload) > 0
}

// Add appends a local picture.
func (r *Reconciler) Add(fileName string, payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyPicture
	}
	r.current = append(r.current, models.LocalPicture(fileName, payload))
	r.proj = Project(r.current)
	return nil
}

// Remove drops the picture at position i. Out of range positions are ignored.
func (r *Reconciler) Remove(i int) bool {
	if i < 0 || i >= len(r.current) {
		return false
	}
	r.current = append(r.current[:i], r.current[i+1:]...)
	r.proj = Project(r.current)
	return true
}

func (r *Reconciler) Current() []models.PictureRef {
	return append([]models.PictureRef(nil), r.current...)
}

func (r *Reconciler) Projection() Projection {
	return Projection{Kept: r.Kept(), Added: r.Added()}
}

func (r *Reconciler) Kept() []string {
	return append([]string{}, r.proj.Kept...)
}

func (r *Reconciler) Added() []models.PictureRef {
	return append([]models.PictureRef{}, r.proj.Added...)
}
