package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kasaapp/kasa/internal/model"
)

func categoryKey(kind model.CategoryKind) (string, error) {
	switch kind {
	case model.CategoryKindExpense:
		return keyExpenseCategories, nil
	case model.CategoryKindIncome:
		return keyIncomeCategories, nil
	default:
		return "", fmt.Errorf("unknown category kind: %q", kind)
	}
}

// GetCategories loads the stored category list for one kind. A missing or
// malformed value returns nil so the caller can substitute the defaults.
func (s *SQLiteStore) GetCategories(ctx context.Context, kind model.CategoryKind) ([]model.Category, error) {
	key, err := categoryKey(kind)
	if err != nil {
		return nil, err
	}

	raw, err := s.getValue(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cats []model.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		slog.Warn("discarding malformed stored categories", "kind", kind, "error", err)
		return nil, nil
	}
	return cats, nil
}

// SaveCategories persists the whole category list for one kind.
func (s *SQLiteStore) SaveCategories(ctx context.Context, kind model.CategoryKind, cats []model.Category) error {
	key, err := categoryKey(kind)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(cats)
	if err != nil {
		return err
	}
	return s.setValue(ctx, key, raw)
}
