package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/model"
)

// AddTransaction validates, assigns an id, appends to the ledger, and
// persists. The stored transaction is returned.
func (a *App) AddTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, err
	}
	if !currency.IsSupported(txn.Currency) {
		return model.Transaction{}, fmt.Errorf("unsupported currency %q", txn.Currency)
	}

	if txn.ID == "" {
		txn.ID = model.NewTransactionID(a.now())
	}
	if txn.Date.IsZero() {
		txn.Date = a.now()
	}

	updated := append(append([]model.Transaction{}, a.transactions...), txn)
	if err := a.store.SaveTransactions(ctx, updated); err != nil {
		return model.Transaction{}, err
	}

	a.transactions = updated
	a.recompute()
	slog.Debug("added transaction", "id", txn.ID, "kind", txn.Kind, "amount", txn.Amount)
	return txn, nil
}

// DeleteTransaction removes a transaction from the ledger by id.
func (a *App) DeleteTransaction(ctx context.Context, id string) error {
	updated := make([]model.Transaction, 0, len(a.transactions))
	found := false
	for _, t := range a.transactions {
		if t.ID == id {
			found = true
			continue
		}
		updated = append(updated, t)
	}
	if !found {
		return fmt.Errorf("transaction %q: %w", id, model.ErrNotFound)
	}

	if err := a.store.SaveTransactions(ctx, updated); err != nil {
		return err
	}
	a.transactions = updated
	a.recompute()
	return nil
}

// ReplaceTransaction swaps a transaction's contents in place, keeping its
// id. The whole ledger is written in one store operation, so there is no
// window where the record is missing.
func (a *App) ReplaceTransaction(ctx context.Context, id string, txn model.Transaction) (model.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, err
	}
	if !currency.IsSupported(txn.Currency) {
		return model.Transaction{}, fmt.Errorf("unsupported currency %q", txn.Currency)
	}
	txn.ID = id
	if txn.Date.IsZero() {
		txn.Date = a.now()
	}

	updated := make([]model.Transaction, len(a.transactions))
	found := false
	for i, t := range a.transactions {
		if t.ID == id {
			updated[i] = txn
			found = true
			continue
		}
		updated[i] = t
	}
	if !found {
		return model.Transaction{}, fmt.Errorf("transaction %q: %w", id, model.ErrNotFound)
	}

	if err := a.store.SaveTransactions(ctx, updated); err != nil {
		return model.Transaction{}, err
	}
	a.transactions = updated
	a.recompute()
	return txn, nil
}

// ImportTransactions appends a batch of already-built transactions, skipping
// ones that fail validation. The ledger is persisted once for the whole
// batch. Returns how many were imported.
func (a *App) ImportTransactions(ctx context.Context, txns []model.Transaction) (int, error) {
	updated := append([]model.Transaction{}, a.transactions...)
	imported := 0
	for _, txn := range txns {
		if err := txn.Validate(); err != nil {
			slog.Warn("skipping invalid imported transaction", "id", txn.ID, "error", err)
			continue
		}
		if txn.ID == "" {
			txn.ID = model.NewTransactionID(a.now())
		}
		updated = append(updated, txn)
		imported++
	}

	if imported == 0 {
		return 0, nil
	}
	if err := a.store.SaveTransactions(ctx, updated); err != nil {
		return 0, err
	}
	a.transactions = updated
	a.recompute()
	slog.Info("imported transactions", "count", imported, "skipped", len(txns)-imported)
	return imported, nil
}
