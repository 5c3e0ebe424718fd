package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kasaapp/kasa/internal/model"
)

// ExpenseCategories returns the expense category list.
func (a *App) ExpenseCategories() []model.Category {
	return a.expenseCats
}

// IncomeCategories returns the income category list.
func (a *App) IncomeCategories() []model.Category {
	return a.incomeCats
}

// AllCategories returns both collections in one slice, expenses first.
func (a *App) AllCategories() []model.Category {
	all := make([]model.Category, 0, len(a.expenseCats)+len(a.incomeCats))
	all = append(all, a.expenseCats...)
	all = append(all, a.incomeCats...)
	return all
}

// FindCategory resolves a category id across both collections.
func (a *App) FindCategory(id string) *model.Category {
	for i := range a.expenseCats {
		if a.expenseCats[i].ID == id {
			return &a.expenseCats[i]
		}
	}
	for i := range a.incomeCats {
		if a.incomeCats[i].ID == id {
			return &a.incomeCats[i]
		}
	}
	return nil
}

// CategoryPatch carries the fields of a category update; empty fields are
// left unchanged.
type CategoryPatch struct {
	Name  string
	Icon  string
	Emoji string
	Color string
}

// AddCategory creates a new category in the collection matching its kind.
func (a *App) AddCategory(ctx context.Context, cat model.Category) (model.Category, error) {
	if cat.Name == "" {
		return model.Category{}, fmt.Errorf("category name cannot be empty")
	}
	if cat.Kind != model.CategoryKindExpense && cat.Kind != model.CategoryKindIncome {
		return model.Category{}, fmt.Errorf("unknown category kind: %q", cat.Kind)
	}

	cat.ID = model.NewCategoryID(a.now())

	cats, save := a.collection(cat.Kind)
	updated := append(append([]model.Category{}, cats...), cat)
	if err := a.store.SaveCategories(ctx, cat.Kind, updated); err != nil {
		return model.Category{}, err
	}
	save(updated)
	a.recompute()
	slog.Info("created category", "id", cat.ID, "name", cat.Name, "kind", cat.Kind)
	return cat, nil
}

// UpdateCategory applies a partial update to an existing category.
func (a *App) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (model.Category, error) {
	existing := a.FindCategory(id)
	if existing == nil {
		return model.Category{}, fmt.Errorf("category %q: %w", id, model.ErrNotFound)
	}

	cats, save := a.collection(existing.Kind)
	updated := make([]model.Category, len(cats))
	var result model.Category
	for i, c := range cats {
		if c.ID == id {
			if patch.Name != "" {
				c.Name = patch.Name
			}
			if patch.Icon != "" {
				c.Icon = patch.Icon
			}
			if patch.Emoji != "" {
				c.Emoji = patch.Emoji
			}
			if patch.Color != "" {
				c.Color = patch.Color
			}
			result = c
		}
		updated[i] = c
	}

	if err := a.store.SaveCategories(ctx, existing.Kind, updated); err != nil {
		return model.Category{}, err
	}
	save(updated)
	a.recompute()
	return result, nil
}

// DeleteCategory removes a category. Deleting the last category of a
// collection is a domain-rule violation and leaves the list unchanged.
func (a *App) DeleteCategory(ctx context.Context, id string) error {
	existing := a.FindCategory(id)
	if existing == nil {
		return fmt.Errorf("category %q: %w", id, model.ErrNotFound)
	}

	cats, save := a.collection(existing.Kind)
	if len(cats) <= 1 {
		return model.ErrLastCategory
	}

	updated := make([]model.Category, 0, len(cats)-1)
	for _, c := range cats {
		if c.ID == id {
			continue
		}
		updated = append(updated, c)
	}

	if err := a.store.SaveCategories(ctx, existing.Kind, updated); err != nil {
		return err
	}
	save(updated)
	a.recompute()
	slog.Info("deleted category", "id", id, "kind", existing.Kind)
	return nil
}

// collection returns the in-memory list for a kind plus a setter for it.
func (a *App) collection(kind model.CategoryKind) ([]model.Category, func([]model.Category)) {
	if kind == model.CategoryKindIncome {
		return a.incomeCats, func(cats []model.Category) { a.incomeCats = cats }
	}
	return a.expenseCats, func(cats []model.Category) { a.expenseCats = cats }
}
