package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/redis/go-redis/v9"
)

// OrganizationRepository is a read-through redis cache in front of unit lookups.
// Every other call goes straight to the wrapped repository.
type OrganizationRepository struct {
	organization.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*OrganizationRepository)

func WithLogger(l *slog.Logger) Option {
	return func(r *OrganizationRepository) { r.logger = l }
}

func NewOrganizationRepository(next organization.Repository, rdb *redis.Client, ttl time.Duration, opts ...Option) *OrganizationRepository {
	r := &OrganizationRepository{Repository: next, rdb: rdb, ttl: ttl, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func unitKey(id string) string { return "org:unit:" + id }

// GetUnit serves from redis when possible. A redis outage degrades to the store.
func (r *OrganizationRepository) GetUnit(ctx context.Context, id string) (*organization.Unit, error) {
	raw, err := r.rdb.Get(ctx, unitKey(id)).Bytes()
	switch {
	case err == nil:
		var u organization.Unit
		if jerr := json.Unmarshal(raw, &u); jerr == nil {
			return &u, nil
		}
		r.logger.WarnContext(ctx, "discarding corrupt cached unit", "unit_id", id)
	case !errors.Is(err, redis.Nil):
		r.logger.WarnContext(ctx, "unit cache read failed", "unit_id", id, "error", err)
	}

	u, err := r.Repository.GetUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload, jerr := json.Marshal(u); jerr == nil {
		if serr := r.rdb.Set(ctx, unitKey(id), payload, r.ttl).Err(); serr != nil {
			r.logger.WarnContext(ctx, "unit cache write failed", "unit_id", id, "error", serr)
		}
	}
	return u, nil
}

// SaveUnit writes through and drops the cached copy.
func (r *OrganizationRepository) SaveUnit(ctx context.Context, u *organization.Unit) error {
	if err := r.Repository.SaveUnit(ctx, u); err != nil {
		return err
	}
	r.InvalidateUnit(ctx, u.ID)
	return nil
}

// InvalidateUnit drops the cached copy of a unit written elsewhere, e.g. inside a
// transaction that bypasses this wrapper.
func (r *OrganizationRepository) InvalidateUnit(ctx context.Context, id string) {
	if err := r.rdb.Del(ctx, unitKey(id)).Err(); err != nil {
		r.logger.WarnContext(ctx, "unit cache invalidate failed", "unit_id", id, "error", err)
	}
}
