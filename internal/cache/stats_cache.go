package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

const (
	archetypeHashKey = "stats:archetypes"
	dangerHashKey    = "stats:danger"
	totalKey         = "stats:total"
)

// StatsCache maintains running distribution counters for the admin console.
type StatsCache interface {
	RecordProfile(ctx context.Context, p *model.Profile) error
	GetStats(ctx context.Context) (*model.ArchetypeStats, error)
}

type statsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{client: client}
}

func (c *statsCache) RecordProfile(ctx context.Context, p *model.Profile) error {
	pipe := c.client.TxPipeline()
	pipe.HIncrBy(ctx, archetypeHashKey, string(p.Archetype), 1)
	pipe.HIncrBy(ctx, dangerHashKey, string(p.DangerLevel), 1)
	pipe.Incr(ctx, totalKey)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *statsCache) GetStats(ctx context.Context) (*model.ArchetypeStats, error) {
	archetypes, err := c.client.HGetAll(ctx, archetypeHashKey).Result()
	if err != nil {
		return nil, err
	}
	danger, err := c.client.HGetAll(ctx, dangerHashKey).Result()
	if err != nil {
		return nil, err
	}
	total, err := c.client.Get(ctx, totalKey).Int64()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	stats := &model.ArchetypeStats{
		Total:      total,
		Archetypes: make(map[string]int64, len(archetypes)),
		Danger:     make(map[string]int64, len(danger)),
	}
	for k, v := range archetypes {
		n, _ := strconv.ParseInt(v, 10, 64)
		stats.Archetypes[k] = n
	}
	for k, v := range danger {
		n, _ := strconv.ParseInt(v, 10, 64)
		stats.Danger[k] = n
	}
	return stats, nil
}
