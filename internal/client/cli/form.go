package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/payload"
	"github.com/dmitrijs2005/recipeadmin/internal/client/pictures"
	"github.com/dmitrijs2005/recipeadmin/internal/client/services"
	"github.com/dmitrijs2005/recipeadmin/internal/filex"
)

// formSession is the reference data loaded once per form.
type formSession struct {
	categories  []models.Category
	ingredients []models.Ingredient
	names       map[int64]string
	units       models.UnitIndex
}

func (a *App) loadFormSession(ctx context.Context) (*formSession, error) {
	cats, err := a.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	ings, err := a.catalog.Ingredients(ctx)
	if err != nil {
		return nil, err
	}
	units, err := a.catalog.UnitIndex(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(ings))
	for _, ing := range ings {
		names[ing.ID] = ing.Name
	}
	return &formSession{categories: cats, ingredients: ings, names: names, units: units}, nil
}

// fillDraft edits d in place. Empty answers keep the current value.
// Returns errAborted when the operator declines to save.
func (a *App) fillDraft(ctx context.Context, d *models.RecipeDraft) error {
	fs, err := a.loadFormSession(ctx)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, withDefault("Name", d.Name), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		d.Name = name
	}

	prompt := "Instructions"
	if d.Instructions != "" {
		prompt += " (empty keeps the current text)"
	}
	instructions, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if instructions != "" {
		d.Instructions = instructions
	}

	if err := a.chooseCategory(d, fs); err != nil {
		return err
	}
	if err := a.editIngredients(d, fs); err != nil {
		return err
	}
	if err := a.editPictures(d); err != nil {
		return err
	}

	a.printDraft(d, fs)
	if !confirm(a.reader, a.out, "Save recipe?", true) {
		return errAborted
	}
	return nil
}

func withDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}

func (a *App) chooseCategory(d *models.RecipeDraft, fs *formSession) error {
	a.println("Categories:")
	current := ""
	for _, c := range fs.categories {
		a.printf("  %d. %s\n", c.ID, c.Name)
		if c.ID == d.CategoryID {
			current = c.Name
		}
	}
	answer, err := getSimpleText(a.reader, withDefault("Category id", current), a.out)
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		a.println("Not a category id, keeping the current one.")
		return nil
	}
	d.CategoryID = id
	return nil
}

func (a *App) editIngredients(d *models.RecipeDraft, fs *formSession) error {
	for {
		a.printLines(d, fs)
		answer, err := getSimpleText(a.reader, "Ingredients: add | rm <n> | done", a.out)
		if err != nil {
			return err
		}
		fields := strings.Fields(answer)
		if len(fields) == 0 || fields[0] == "done" {
			return nil
		}
		switch fields[0] {
		case "add":
			i := d.AddLine()
			if err := a.editLine(d, i, fs); err != nil {
				return err
			}
		case "rm":
			n, err := strconv.Atoi(strings.Join(fields[1:], ""))
			if err != nil || n < 1 || n > len(d.Lines) {
				a.println("No such line.")
				continue
			}
			d.RemoveLine(n - 1)
		default:
			a.println("Unknown answer:", fields[0])
		}
	}
}

func (a *App) editLine(d *models.RecipeDraft, i int, fs *formSession) error {
	token, err := getSimpleText(a.reader, "Ingredient (#id, *new name, or a name)", a.out)
	if err != nil {
		return err
	}
	if ref, err := services.SelectIngredient(token, fs.ingredients); err != nil {
		a.println(services.Notify(err))
	} else {
		d.SetLineRef(i, ref, fs.units)
	}

	qty, err := getSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}
	if qty != "" {
		q, perr := strconv.ParseFloat(strings.ReplaceAll(qty, ",", "."), 64)
		switch {
		case perr != nil:
			a.println("Not a quantity:", qty)
		case q <= 0:
			a.println("Quantity must be positive:", qty)
		default:
			d.Lines[i].Quantity = models.Qty(q)
		}
	}

	unitNames := make([]string, len(models.Units))
	for k, u := range models.Units {
		unitNames[k] = string(u)
	}
	unit, err := getSimpleText(a.reader,
		withDefault("Unit ("+strings.Join(unitNames, ", ")+")", string(d.Lines[i].Unit)), a.out)
	if err != nil {
		return err
	}
	if unit != "" {
		u, perr := models.ParseUnit(unit)
		if perr != nil {
			a.println(perr.Error())
		} else {
			d.Lines[i].Unit = u
		}
	}
	return nil
}

func (a *App) editPictures(d *models.RecipeDraft) error {
	rec := pictures.NewReconciler(d.Pictures)
	defer func() { d.Pictures = rec.Current() }()

	for {
		a.printPictures(rec)
		answer, err := getSimpleText(a.reader, "Pictures: add <path> | rm <n> | done", a.out)
		if err != nil {
			return err
		}
		verb, rest, _ := strings.Cut(answer, " ")
		rest = strings.TrimSpace(rest)
		switch verb {
		case "", "done":
			return nil
		case "add":
			if rest == "" {
				a.println("add <path>")
				continue
			}
			data, err := filex.ReadImage(rest, a.config.MaxPictureBytes)
			if err != nil {
				a.println("Cannot add picture:", err)
				continue
			}
			if err := rec.Add(filepath.Base(rest), data); err != nil {
				a.println("Cannot add picture:", err)
			}
		case "rm":
			n, err := strconv.Atoi(rest)
			if err != nil || !rec.Remove(n-1) {
				a.println("No such picture.")
			}
		default:
			a.println("Unknown answer:", verb)
		}
	}
}

func (a *App) lineLabel(l models.IngredientLine, fs *formSession) string {
	switch l.Ref.Kind() {
	case models.RefExisting:
		if name, ok := fs.names[l.Ref.ID()]; ok {
			return name
		}
		return fmt.Sprintf("#%d", l.Ref.ID())
	case models.RefNew:
		return l.Ref.Name() + " (new)"
	case models.RefRaw:
		return l.Ref.Raw()
	default:
		return "?"
	}
}

func (a *App) printLines(d *models.RecipeDraft, fs *formSession) {
	if len(d.Lines) == 0 {
		a.println("  (no ingredients)")
		return
	}
	for i, l := range d.Lines {
		qty := "?"
		if l.Quantity != nil {
			qty = payload.FormatQuantity(*l.Quantity)
		}
		unit := string(l.Unit)
		if unit == "" {
			unit = "?"
		}
		a.printf("  %d. %s: %s %s\n", i+1, a.lineLabel(l, fs), qty, unit)
	}
}

func (a *App) printPictures(rec *pictures.Reconciler) {
	cur := rec.Current()
	if len(cur) == 0 {
		a.println("  (no pictures)")
		return
	}
	for i, p := range cur {
		if p.IsPersisted() {
			a.printf("  %d. %s\n", i+1, p.URL)
		} else {
			a.printf("  %d. %s (new, %d bytes)\n", i+1, p.FileName, len(p.Payload))
		}
	}
	a.printf("  keeping %d, uploading %d\n", len(rec.Kept()), len(rec.Added()))
}

func (a *App) printDraft(d *models.RecipeDraft, fs *formSession) {
	a.println("----")
	a.println("Name:", d.Name)
	for _, c := range fs.categories {
		if c.ID == d.CategoryID {
			a.println("Category:", c.Name)
		}
	}
	a.println("Ingredients:")
	a.printLines(d, fs)
	a.printf("Pictures: %d\n", len(d.Pictures))
	a.println("----")
}
