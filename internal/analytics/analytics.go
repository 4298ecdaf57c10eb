// Package analytics computes aggregate statistics over the email generation
// log. Results are cached briefly so the stats endpoint stays cheap.
package analytics

import (
	"context"
	"time"

	"mailassist/internal/cache"
	"mailassist/internal/database"
	"mailassist/internal/models"
)

const statsCacheKey = "email_stats"

// Service aggregates email log statistics with short-lived caching
type Service struct {
	store *database.LogStore
	cache *cache.Cache
	ttl   time.Duration
}

// NewService creates a stats service. A nil store is allowed and yields zero
// stats, matching a deployment without persistence.
func NewService(store *database.LogStore) *Service {
	return &Service{
		store: store,
		cache: cache.New(),
		ttl:   time.Minute,
	}
}

// EmailStats returns aggregate counters over the generation log
func (s *Service) EmailStats(ctx context.Context) (*models.EmailStats, error) {
	if s.store == nil {
		return &models.EmailStats{}, nil
	}

	if cached, found := s.cache.Get(statsCacheKey); found {
		if stats, ok := cached.(*models.EmailStats); ok {
			return stats, nil
		}
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	byType, err := s.store.CountByField(ctx, "email_type")
	if err != nil {
		return nil, err
	}

	byTone, err := s.store.CountByField(ctx, "tone")
	if err != nil {
		return nil, err
	}

	stats := &models.EmailStats{
		EmailsGenerated: total,
		ByType:          byType,
		ByTone:          byTone,
	}
	if len(byType) > 0 {
		stats.MostPopularType = byType[0].Value
	}

	s.cache.Set(statsCacheKey, stats, s.ttl)

	return stats, nil
}
