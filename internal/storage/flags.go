package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// GetSetupCompleted reports whether onboarding has been completed. Any
// unreadable stored value degrades to false.
func (s *SQLiteStore) GetSetupCompleted(ctx context.Context) (bool, error) {
	raw, err := s.getValue(ctx, keySetupCompleted)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var completed bool
	if err := json.Unmarshal(raw, &completed); err != nil {
		slog.Warn("discarding malformed setup flag", "error", err)
		return false, nil
	}
	return completed, nil
}

// SetSetupCompleted stores the onboarding flag.
func (s *SQLiteStore) SetSetupCompleted(ctx context.Context, completed bool) error {
	raw, err := json.Marshal(completed)
	if err != nil {
		return err
	}
	return s.setValue(ctx, keySetupCompleted, raw)
}

// GetLastSalaryDate loads the instant salary was last marked received, or
// nil when never recorded. Unparseable dates degrade to nil.
func (s *SQLiteStore) GetLastSalaryDate(ctx context.Context) (*time.Time, error) {
	raw, err := s.getValue(ctx, keyLastSalaryDate)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var date time.Time
	if err := json.Unmarshal(raw, &date); err != nil {
		slog.Warn("discarding malformed last salary date", "error", err)
		return nil, nil
	}
	return &date, nil
}

// SetLastSalaryDate stores the instant salary was marked received.
func (s *SQLiteStore) SetLastSalaryDate(ctx context.Context, date time.Time) error {
	raw, err := json.Marshal(date)
	if err != nil {
		return err
	}
	return s.setValue(ctx, keyLastSalaryDate, raw)
}
