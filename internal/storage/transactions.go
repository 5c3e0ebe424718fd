package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/kasaapp/kasa/internal/model"
)

// GetTransactions loads the full ledger. A missing or malformed value
// returns an empty ledger rather than an error.
func (s *SQLiteStore) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	raw, err := s.getValue(ctx, keyTransactions)
	if errors.Is(err, ErrKeyNotFound) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	if err := json.Unmarshal(raw, &txns); err != nil {
		slog.Warn("discarding malformed stored transactions", "error", err)
		return []model.Transaction{}, nil
	}
	return txns, nil
}

// SaveTransactions persists the whole ledger, replacing the previous list.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}

	raw, err := json.Marshal(txns)
	if err != nil {
		return err
	}
	return s.setValue(ctx, keyTransactions, raw)
}
