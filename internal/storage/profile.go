package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kasaapp/kasa/internal/model"
)

// GetProfile loads the persisted user profile. A missing or malformed value
// returns (nil, nil): the caller treats that as "not onboarded yet".
func (s *SQLiteStore) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	raw, err := s.getValue(ctx, keyUserProfile)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile model.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		slog.Warn("discarding malformed stored profile", "error", err)
		return nil, nil
	}
	return &profile, nil
}

// SaveProfile persists the whole user profile.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	return s.setValue(ctx, keyUserProfile, raw)
}
