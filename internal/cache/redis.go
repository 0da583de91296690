package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jewelry_store/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Catalog caching

func (c *Client) GetJewelry(id uint) (*models.Jewelry, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, jewelryKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get jewelry from cache: %w", err)
	}

	var item models.Jewelry
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached jewelry: %w", err)
	}
	return &item, nil
}

func (c *Client) SetJewelry(item *models.Jewelry) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal jewelry: %w", err)
	}
	return c.rdb.Set(ctx, jewelryKey(item.ID), jsonData, c.ttl).Err()
}

func (c *Client) InvalidateJewelry(id uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, jewelryKey(id)).Err()
}

func (c *Client) GetCatalog() ([]models.Jewelry, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "jewelry:catalog").Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog from cache: %w", err)
	}

	var items []models.Jewelry
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog: %w", err)
	}
	return items, nil
}

func (c *Client) SetCatalog(items []models.Jewelry) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return c.rdb.Set(ctx, "jewelry:catalog", jsonData, c.ttl).Err()
}

func (c *Client) InvalidateCatalog() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "jewelry:catalog").Err()
}

// Session management

func (c *Client) SetSession(token string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return &session, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func jewelryKey(id uint) string {
	return fmt.Sprintf("jewelry:%d", id)
}
