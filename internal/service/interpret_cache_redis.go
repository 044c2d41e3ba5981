package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// InterpretationCache guarda narrativas ya generadas. El motor es
// determinista, así que el hash del payload identifica la respuesta.
type InterpretationCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type redisInterpretationCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisInterpretationCache crea la cache sobre redis. Con client nil
// devuelve nil y los servicios siguen sin cache.
func NewRedisInterpretationCache(client *redis.Client, ttl time.Duration) InterpretationCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisInterpretationCache{
		client: client,
		ttl:    ttl,
		prefix: "interp:",
	}
}

func (c *redisInterpretationCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *redisInterpretationCache) Set(ctx context.Context, key, value string) {
	// Mejor esfuerzo: una cache caída no afecta la generación del reporte.
	_ = c.client.Set(ctx, c.prefix+key, value, c.ttl).Err()
}

// CacheKey deriva la clave de cache para un tipo de reporte y su resumen.
func CacheKey(reportType, summary string) string {
	sum := sha256.Sum256([]byte(reportType + "\n" + summary))
	return hex.EncodeToString(sum[:])
}
