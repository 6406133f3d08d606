package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flightoffers/internal/models"
)

// Entry is what a completed search leaves behind: everything needed to
// replay the response except the timestamp, which is always fresh.
type Entry struct {
	Flights        []models.FlightOffer `json:"flights"`
	DataSource     string               `json:"dataSource"`
	SearchedRoutes []string             `json:"searchedRoutes"`
	Dictionaries   models.Dictionaries  `json:"dictionaries"`
}

type Cache interface {
	Get(ctx context.Context, req models.SearchRequest) (*Entry, bool)
	Set(ctx context.Context, req models.SearchRequest, entry *Entry) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.SearchRequest) (*Entry, bool) {
	data, err := c.client.Get(ctx, generateKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func (c *RedisCache) Set(ctx context.Context, req models.SearchRequest, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, generateKey(req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.SearchRequest) (*Entry, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.SearchRequest, entry *Entry) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes the normalized request. The searchId participates so a
// seeded search replays its own synthesized offers, not another search's.
func generateKey(req models.SearchRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}
