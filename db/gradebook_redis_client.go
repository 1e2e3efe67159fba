package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// GradebookRedisClient struct holds the Redis client and context
type GradebookRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGradebookRedisClient initializes a new Redis client with default options
func NewGradebookRedisClient(ctx context.Context, client *redis.Client) *GradebookRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &GradebookRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *GradebookRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that expires after ttl.
func (r *GradebookRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GradebookRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// GetContext returns the context tied to this client.
func (r *GradebookRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping checks the Redis connection.
func (r *GradebookRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// Keys returns all keys matching the pattern.
func (r *GradebookRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *GradebookRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
