package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

var (
	ErrKeyNotFound       = errors.New("team key not found")
	ErrKeyInactive       = errors.New("team key is inactive")
	ErrKeyExpired        = errors.New("team key has expired")
	ErrKeyQuotaExhausted = errors.New("team key usage limit reached")
)

// TeamKeyService gates signup on provisioned invite keys. Reservation
// is the quota-critical path: two racing signups holding a key with
// one use left must resolve to exactly one winner, which the single
// conditional UPDATE in the store guarantees.
type TeamKeyService struct {
	Store store.Store
}

// Reserve consumes one use of the key, classifying failures so the
// caller can report why the key was refused.
func (s *TeamKeyService) Reserve(ctx context.Context, keyCode string) (domain.TeamKey, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	ok, err := s.Store.TeamKeys().ConsumeKey(ctx, keyCode, now)
	if err != nil {
		log.Error("failed to consume team key", slog.Any("error", err))
		return domain.TeamKey{}, err
	}

	if !ok {
		// The conditional update matched nothing. Re-read to say why.
		key, err := s.Store.TeamKeys().GetKeyByCode(ctx, keyCode)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.TeamKey{}, ErrKeyNotFound
			}
			return domain.TeamKey{}, err
		}

		switch {
		case !key.IsActive:
			return domain.TeamKey{}, ErrKeyInactive
		case key.ExpiresAt != nil && now.After(*key.ExpiresAt):
			return domain.TeamKey{}, ErrKeyExpired
		default:
			return domain.TeamKey{}, ErrKeyQuotaExhausted
		}
	}

	key, err := s.Store.TeamKeys().GetKeyByCode(ctx, keyCode)
	if err != nil {
		return domain.TeamKey{}, err
	}

	log.Debug("team key reserved",
		slog.String("key_id", key.ID),
		slog.Int("current_uses", key.CurrentUses),
		slog.Int("max_uses", key.MaxUses),
	)
	return key, nil
}

// Release undoes a reservation after a downstream signup step failed.
func (s *TeamKeyService) Release(ctx context.Context, keyID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.TeamKeys().ReleaseKey(ctx, keyID); err != nil {
		log.Error("failed to release team key",
			slog.String("key_id", keyID),
			slog.Any("error", err),
		)
		return err
	}

	log.Debug("team key released", slog.String("key_id", keyID))
	return nil
}
