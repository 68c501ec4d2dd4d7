package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
)

// redisBlobs keeps blobs in Redis, keyed by blob name. Session snapshots on
// this driver survive restarts as long as Redis does, and multiple instances
// can share one session space.
type redisBlobs struct {
	client *redis.Client
}

func newRedis() (*redisBlobs, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       1, // keep blobs out of the cache keyspace
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("storage/redis: ping: %w", err)
	}

	return &redisBlobs{client: client}, nil
}

func (d *redisBlobs) Put(name string, content []byte) error {
	if err := d.client.Set(context.Background(), name, content, 0).Err(); err != nil {
		return fmt.Errorf("storage/redis: put %s: %w", name, err)
	}
	return nil
}

func (d *redisBlobs) Get(name string) ([]byte, error) {
	val, err := d.client.Get(context.Background(), name).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage/redis: get %s: %w", name, err)
	}
	return val, nil
}

func (d *redisBlobs) Exists(name string) bool {
	n, err := d.client.Exists(context.Background(), name).Result()
	return err == nil && n > 0
}

func (d *redisBlobs) Delete(name string) error {
	if err := d.client.Del(context.Background(), name).Err(); err != nil {
		return fmt.Errorf("storage/redis: delete %s: %w", name, err)
	}
	return nil
}

func (d *redisBlobs) List(prefix string) ([]string, error) {
	var names []string
	iter := d.client.Scan(context.Background(), 0, prefix+"*", 0).Iterator()
	for iter.Next(context.Background()) {
		names = append(names, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("storage/redis: list %s: %w", prefix, err)
	}
	return names, nil
}
