package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gradebook-server/db"
	"gradebook-server/models"
)

const GRADEBOOK_VIEW_KEY_FORMAT_V1 = "gradebook_view_v1:%s"
const GRADEBOOK_RAW_KEY_FORMAT_V1 = "gradebook_raw_v1:%s"

// RedisGradebookDAO handles gradebook cache operations using Redis.
type RedisGradebookDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisGradebookDAO initializes a RedisGradebookDAO with the Redis client.
func NewRedisGradebookDAO(client db.RedisClient, ttl time.Duration) *RedisGradebookDAO {
	return &RedisGradebookDAO{client: client, ttl: ttl}
}

// UpsertGradebookView caches the enriched gradebook view for a student.
func (dao *RedisGradebookDAO) UpsertGradebookView(studentID string, view *models.GradebookView) error {
	key := fmt.Sprintf(GRADEBOOK_VIEW_KEY_FORMAT_V1, studentID)
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal gradebook view for student %s: %w", studentID, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set gradebook view in redis: %w", err)
	}
	return nil
}

// GetGradebookView retrieves the cached enriched gradebook for a student.
func (dao *RedisGradebookDAO) GetGradebookView(studentID string) (*models.GradebookView, error) {
	key := fmt.Sprintf(GRADEBOOK_VIEW_KEY_FORMAT_V1, studentID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get gradebook view from redis: %w", err)
	}
	var view models.GradebookView
	if err := json.Unmarshal([]byte(str), &view); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gradebook view JSON: %w", err)
	}
	return &view, nil
}

// UpsertRawGradebook caches the raw upstream record for a student, so a
// rebuild after a banding or scale change does not need a refetch.
func (dao *RedisGradebookDAO) UpsertRawGradebook(studentID string, raw *models.GradebookResponse) error {
	key := fmt.Sprintf(GRADEBOOK_RAW_KEY_FORMAT_V1, studentID)
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal raw gradebook for student %s: %w", studentID, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set raw gradebook in redis: %w", err)
	}
	return nil
}

// GetRawGradebook retrieves the cached raw record for a student.
func (dao *RedisGradebookDAO) GetRawGradebook(studentID string) (*models.GradebookResponse, error) {
	key := fmt.Sprintf(GRADEBOOK_RAW_KEY_FORMAT_V1, studentID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get raw gradebook from redis: %w", err)
	}
	var raw models.GradebookResponse
	if err := json.Unmarshal([]byte(str), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw gradebook JSON: %w", err)
	}
	return &raw, nil
}

// ListCachedStudentIDs returns the student IDs for all cached views.
func (dao *RedisGradebookDAO) ListCachedStudentIDs() ([]string, error) {
	pattern := fmt.Sprintf(GRADEBOOK_VIEW_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list gradebook view keys: %w", err)
	}

	prefix := fmt.Sprintf(GRADEBOOK_VIEW_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteGradebook drops both cache entries for a student.
func (dao *RedisGradebookDAO) DeleteGradebook(studentID string) error {
	for _, format := range []string{GRADEBOOK_VIEW_KEY_FORMAT_V1, GRADEBOOK_RAW_KEY_FORMAT_V1} {
		key := fmt.Sprintf(format, studentID)
		if err := dao.client.Del(key); err != nil {
			return fmt.Errorf("failed to delete gradebook key %s: %w", key, err)
		}
	}
	log.Printf("[RedisGradebookDAO] Deleted cached gradebook for %s", studentID)
	return nil
}
