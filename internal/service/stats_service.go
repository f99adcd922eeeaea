package service

import (
	"context"
	"fmt"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/cache"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/repository"
)

// StatsService serves the admin-console distribution and profile listings
type StatsService struct {
	statsCache  cache.StatsCache
	profileRepo repository.ProfileRepo
}

// NewStatsService creates a new stats service
func NewStatsService(statsCache cache.StatsCache, profileRepo repository.ProfileRepo) *StatsService {
	return &StatsService{
		statsCache:  statsCache,
		profileRepo: profileRepo,
	}
}

// Distribution returns archetype and danger-level counters
func (s *StatsService) Distribution(ctx context.Context) (*model.ArchetypeStats, error) {
	stats, err := s.statsCache.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

// RecentProfiles returns the latest completed profiles
func (s *StatsService) RecentProfiles(ctx context.Context, limit int64) ([]*model.Profile, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.profileRepo.ListRecent(ctx, limit)
}

// ProfilesByArchetype lists completed profiles carrying a given archetype
func (s *StatsService) ProfilesByArchetype(ctx context.Context, archetype model.Archetype) ([]*model.Profile, error) {
	return s.profileRepo.ListByArchetype(ctx, archetype)
}

// ProfileByID fetches a single profile for the admin console
func (s *StatsService) ProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}
