package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// SessionCache keeps in-progress answer sets in Redis so the question flow
// does not round-trip Mongo on every answer.
type SessionCache interface {
	SetAnswers(ctx context.Context, assessmentID string, answers model.AnswerSet) error
	GetAnswers(ctx context.Context, assessmentID string) (model.AnswerSet, error)
	Delete(ctx context.Context, assessmentID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *sessionCache) key(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:answers", assessmentID)
}

func (c *sessionCache) SetAnswers(ctx context.Context, assessmentID string, answers model.AnswerSet) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessmentID), data, c.ttl).Err()
}

// GetAnswers returns nil, nil on a cache miss.
func (c *sessionCache) GetAnswers(ctx context.Context, assessmentID string) (model.AnswerSet, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var answers model.AnswerSet
	if err := json.Unmarshal([]byte(data), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (c *sessionCache) Delete(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.key(assessmentID)).Err()
}
