package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tweetdigest/internal/model"
)

// artifactTTL bounds how long a run's artifacts linger; each run overwrites
// them anyway, the TTL only cleans up after abandoned runs.
const artifactTTL = 24 * time.Hour

const (
	fetchedKey = "tweetdigest:artifact:fetched"
	itemsKey   = "tweetdigest:artifact:items"
	digestKey  = "tweetdigest:artifact:digest"
)

// RedisStore keeps artifacts in redis under fixed keys, same overwrite-per-run
// contract as the file store.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) SaveFetched(ctx context.Context, tweets []model.Tweet) error {
	return s.setJSON(ctx, fetchedKey, tweets)
}

func (s *RedisStore) LoadFetched(ctx context.Context) ([]model.Tweet, bool, error) {
	return s.getJSON(ctx, fetchedKey)
}

func (s *RedisStore) SaveItems(ctx context.Context, tweets []model.Tweet) error {
	return s.setJSON(ctx, itemsKey, tweets)
}

func (s *RedisStore) LoadItems(ctx context.Context) ([]model.Tweet, bool, error) {
	return s.getJSON(ctx, itemsKey)
}

func (s *RedisStore) SaveDigest(ctx context.Context, text string) error {
	return s.rdb.Set(ctx, digestKey, text, artifactTTL).Err()
}

func (s *RedisStore) LoadDigest(ctx context.Context) (string, bool, error) {
	res, err := s.rdb.Get(ctx, digestKey).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return res, true, nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, tweets []model.Tweet) error {
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	b, err := json.Marshal(tweets)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, artifactTTL).Err()
}

func (s *RedisStore) getJSON(ctx context.Context, key string) ([]model.Tweet, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var tweets []model.Tweet
	if err := json.Unmarshal(b, &tweets); err != nil {
		return nil, false, err
	}
	return tweets, true, nil
}
