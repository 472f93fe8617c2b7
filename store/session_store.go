package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/utils"
)

// Key layout of the four per-session records.
const (
	cartKeyPrefix      = "touch_cart:"
	packagingKeyPrefix = "touch_packaging:"
	phoneKeyPrefix     = "touch_phone:"
	completedKeyPrefix = "touch_session_completed:"
)

const (
	// RecordTTL applies to cart, packaging and phone records; every write
	// refreshes it.
	RecordTTL = 2 * time.Hour
	// CompletionTTL bounds the re-commit idempotency window.
	CompletionTTL = 5 * time.Minute
)

// ErrCorrupted marks a record whose payload could not be decoded. Transport
// failures are returned as-is; absence is never an error.
var ErrCorrupted = errors.New("corrupted session record")

// SessionStore reads and writes the ephemeral per-session records. Writes are
// last-writer-wins; a session is assumed to be driven by a single kiosk.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// GetCart returns the cart record, or (nil, nil) when absent or expired.
func (s *SessionStore) GetCart(ctx context.Context, sessionID string) (*models.CartRecord, error) {
	var record models.CartRecord
	ok, err := s.getJSON(ctx, cartKeyPrefix+sessionID, &record)
	if err != nil || !ok {
		return nil, err
	}
	if record.Items == nil {
		record.Items = []models.CartLine{}
	}
	return &record, nil
}

// SaveCart stamps updatedAt and persists the record with a fresh TTL.
func (s *SessionStore) SaveCart(ctx context.Context, sessionID string, record *models.CartRecord) error {
	record.UpdatedAt = time.Now().Format(models.SessionTimeLayout)
	return s.putJSON(ctx, cartKeyPrefix+sessionID, record, RecordTTL)
}

func (s *SessionStore) DeleteCart(ctx context.Context, sessionID string) (bool, error) {
	deleted, err := s.rdb.Del(ctx, cartKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (s *SessionStore) HasCart(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, cartKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExpireCart resets the cart TTL without touching its contents, reporting
// whether the key existed.
func (s *SessionStore) ExpireCart(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return s.rdb.Expire(ctx, cartKeyPrefix+sessionID, ttl).Result()
}

// GetPackaging returns the packaging record, or (nil, nil) when absent.
func (s *SessionStore) GetPackaging(ctx context.Context, sessionID string) (*models.PackagingRecord, error) {
	var record models.PackagingRecord
	ok, err := s.getJSON(ctx, packagingKeyPrefix+sessionID, &record)
	if err != nil || !ok {
		return nil, err
	}
	return &record, nil
}

func (s *SessionStore) SavePackaging(ctx context.Context, sessionID string, packagingType string) error {
	record := models.PackagingRecord{
		PackagingType: packagingType,
		UpdatedAt:     time.Now().Format(models.SessionTimeLayout),
	}
	return s.putJSON(ctx, packagingKeyPrefix+sessionID, &record, RecordTTL)
}

// GetPhone returns the phone record, or (nil, nil) when absent.
func (s *SessionStore) GetPhone(ctx context.Context, sessionID string) (*models.PhoneRecord, error) {
	var record models.PhoneRecord
	ok, err := s.getJSON(ctx, phoneKeyPrefix+sessionID, &record)
	if err != nil || !ok {
		return nil, err
	}
	return &record, nil
}

func (s *SessionStore) SavePhone(ctx context.Context, sessionID string, phoneNumber string) error {
	record := models.PhoneRecord{
		PhoneNumber: phoneNumber,
		UpdatedAt:   time.Now().Format(models.SessionTimeLayout),
	}
	return s.putJSON(ctx, phoneKeyPrefix+sessionID, &record, RecordTTL)
}

// IsCompleted reports whether the completion marker is present.
func (s *SessionStore) IsCompleted(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, completedKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkCompleted writes the completion marker with its short TTL. Callers treat
// a failure here as degraded idempotency, not a failed commit.
func (s *SessionStore) MarkCompleted(ctx context.Context, sessionID string, orderID uint) error {
	record := models.CompletionRecord{
		OrderID:     orderID,
		CompletedAt: time.Now().Format(models.SessionTimeLayout),
	}
	return s.putJSON(ctx, completedKeyPrefix+sessionID, &record, CompletionTTL)
}

// GetCompletion returns the completion marker, or (nil, nil) when absent.
func (s *SessionStore) GetCompletion(ctx context.Context, sessionID string) (*models.CompletionRecord, error) {
	var record models.CompletionRecord
	ok, err := s.getJSON(ctx, completedKeyPrefix+sessionID, &record)
	if err != nil || !ok {
		return nil, err
	}
	return &record, nil
}

// Ping verifies the Redis connection, for health checks.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *SessionStore) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	payload, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		utils.ErrorLogger.Printf("corrupted record at %s: %v", key, err)
		return false, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return true, nil
}

func (s *SessionStore) putJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}
