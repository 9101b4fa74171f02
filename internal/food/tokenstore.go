// internal/food/tokenstore.go
package food

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenData хранит токен доступа FatSecret вместе с моментом выдачи.
type TokenData struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	CreatedAt   time.Time `json:"created_at"`
}

// Valid reports whether the token is still usable, with a safety margin
// so a token is never used in its last minute.
func (t *TokenData) Valid(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	expiresAt := t.CreatedAt.Add(time.Duration(t.ExpiresIn-60) * time.Second)
	return now.Before(expiresAt)
}

// TokenStore абстрагирует хранилище токена, чтобы его можно было подменить.
type TokenStore interface {
	Load(ctx context.Context) (*TokenData, error)
	Save(ctx context.Context, token *TokenData) error
}

const tokenKey = "fatsecret:token"

// RedisTokenStore сохраняет токен в Redis как JSON.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Load(ctx context.Context) (*TokenData, error) {
	data, err := s.client.Get(ctx, tokenKey).Bytes()
	if err != nil {
		return nil, err
	}

	var token TokenData
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}

	return &token, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token *TokenData) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}

	// TTL совпадает со сроком жизни токена
	ttl := time.Duration(token.ExpiresIn) * time.Second
	return s.client.Set(ctx, tokenKey, data, ttl).Err()
}

// MemoryTokenStore держит токен в памяти процесса, для тестов и запуска без Redis.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token *TokenData
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(_ context.Context) (*TokenData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, redis.Nil
	}
	copied := *s.token
	return &copied, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, token *TokenData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *token
	s.token = &copied
	return nil
}
