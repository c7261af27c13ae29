package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

// Enabled reports whether a Redis backend is connected.
func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.enabled {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// PushToList left-pushes a JSON-encoded value onto a Redis list, trimming
// the list to maxLen entries. Used as the analytics event queue.
func (c *Cache) PushToList(key string, value interface{}, maxLen int64) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.LPush(ctx, key, jsonData).Err(); err != nil {
		return err
	}
	if maxLen > 0 {
		return c.client.LTrim(ctx, key, 0, maxLen-1).Err()
	}
	return nil
}

// ListLength reports the length of a Redis list, 0 when disabled.
func (c *Cache) ListLength(key string) (int64, error) {
	if !c.enabled {
		return 0, nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.LLen(ctx, key).Result()
}

func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}

func (c *Cache) CacheTemplate(templateID uint, tmpl interface{}) error {
	return c.Set(fmt.Sprintf("template:%d", templateID), tmpl, 1*time.Hour)
}

func (c *Cache) GetCachedTemplate(templateID uint, dest interface{}) error {
	return c.Get(fmt.Sprintf("template:%d", templateID), dest)
}

func (c *Cache) InvalidateTemplate(templateID uint) error {
	if err := c.Delete(fmt.Sprintf("template:%d", templateID)); err != nil {
		return err
	}
	return c.DeletePattern("template:slug:*")
}

func (c *Cache) CacheTemplateBySlug(slug string, tmpl interface{}) error {
	return c.Set(fmt.Sprintf("template:slug:%s", slug), tmpl, 1*time.Hour)
}

func (c *Cache) GetCachedTemplateBySlug(slug string, dest interface{}) error {
	return c.Get(fmt.Sprintf("template:slug:%s", slug), dest)
}

func (c *Cache) InvalidateTemplatesCache() error {
	return c.DeletePattern("template*")
}
