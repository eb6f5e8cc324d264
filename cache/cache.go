package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Gin_postgres_redis_library_api/models"

	"github.com/redis/go-redis/v9"
)

// Store is a read-through cache for book payloads. Book reads are the hot
// path of the API, and loans mutate availability, so every book write and
// every loan write must invalidate the entry. A nil Store is a valid no-op
// (tests run without redis).
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func bookKey(id uint) string { return fmt.Sprintf("lib:book:%d", id) }

func (s *Store) GetBook(ctx context.Context, id uint) (*models.Book, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	b, err := s.rdb.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var book models.Book
	if err := json.Unmarshal(b, &book); err != nil {
		return nil, false
	}
	return &book, true
}

func (s *Store) SaveBook(ctx context.Context, book *models.Book) {
	if s == nil || s.rdb == nil || book == nil {
		return
	}
	b, _ := json.Marshal(book)
	_ = s.rdb.Set(ctx, bookKey(book.ID), b, s.ttl).Err()
}

func (s *Store) InvalidateBook(ctx context.Context, id uint) {
	if s == nil || s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, bookKey(id)).Err()
}
