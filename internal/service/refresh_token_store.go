package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore registra los jti de refresh vigentes. Un jti ausente o
// revocado invalida la rotacion.
type RefreshTokenStore interface {
	Store(jti, userID string, ttl time.Duration) error
	Exists(jti string) (bool, error)
	Revoke(jti string) error
}

const refreshStoreTimeout = 500 * time.Millisecond

type memoryRefreshToken struct {
	userID  string
	expires time.Time
}

// memoryRefreshTokenStore sirve para desarrollo y tests; expira de forma
// perezosa al consultar.
type memoryRefreshTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryRefreshToken
}

func NewMemoryRefreshTokenStore() RefreshTokenStore {
	return &memoryRefreshTokenStore{tokens: make(map[string]memoryRefreshToken)}
}

func (s *memoryRefreshTokenStore) Store(jti, userID string, ttl time.Duration) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[jti] = memoryRefreshToken{
		userID:  userID,
		expires: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (s *memoryRefreshTokenStore) Exists(jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.tokens[jti]
	if !ok {
		return false, nil
	}
	if time.Now().UTC().After(tok.expires) {
		delete(s.tokens, jti)
		return false, nil
	}
	return true, nil
}

func (s *memoryRefreshTokenStore) Revoke(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, jti)
	return nil
}

// redisKV es el subconjunto de comandos redis que usa el store; permite un
// doble de prueba sin servidor.
type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisRefreshTokenStore persiste los jti con TTL; redis expira por si solo.
type redisRefreshTokenStore struct {
	client redisKV
	prefix string
}

func NewRedisRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	if client == nil {
		return nil
	}
	return &redisRefreshTokenStore{client: client, prefix: "gennova:refresh:"}
}

func (s *redisRefreshTokenStore) key(jti string) string { return s.prefix + strings.TrimSpace(jti) }

func (s *redisRefreshTokenStore) Store(jti, userID string, ttl time.Duration) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshStoreTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key(jti), userID, ttl).Err()
}

func (s *redisRefreshTokenStore) Exists(jti string) (bool, error) {
	if strings.TrimSpace(jti) == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshStoreTimeout)
	defer cancel()
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisRefreshTokenStore) Revoke(jti string) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshStoreTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(jti)).Err()
}
