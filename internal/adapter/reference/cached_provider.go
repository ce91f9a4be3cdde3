package reference

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"quiz-grader/internal/cache"
	"quiz-grader/internal/domain"
	"quiz-grader/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedProvider decorates a ReferenceAnswerProvider with a cache keyed by
// prompt hash. Concurrent requests for the same prompt are collapsed into a
// single backend call via singleflight. Cache failures fall back to a live
// call and are never reported as item failures.
type CachedProvider struct {
	next    domain.ReferenceAnswerProvider
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedProvider wraps next with the given cache. A zero ttl caches
// indefinitely (subject to the cache backend's policy).
func NewCachedProvider(next domain.ReferenceAnswerProvider, c domain.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, cache: c, ttl: ttl}
}

// GetReferenceAnswer implements domain.ReferenceAnswerProvider
func (p *CachedProvider) GetReferenceAnswer(ctx context.Context, prompt string) (string, error) {
	key := cache.GenerateCacheKey("reference", "answer", hashString(prompt))

	cached, err := p.cache.Get(ctx, key)
	if err == nil {
		logger.Get().Debug("Reference answer cache hit", zap.String("key", key))
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Reference answer cache read failed, falling back to backend",
			zap.String("key", key), zap.Error(err))
	}

	answer, err, _ := p.sfGroup.Do(key, func() (interface{}, error) {
		completion, err := p.next.GetReferenceAnswer(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if setErr := p.cache.Set(ctx, key, completion, p.ttl); setErr != nil {
			logger.Get().Warn("Failed to cache reference answer",
				zap.String("key", key), zap.Error(setErr))
		}
		return completion, nil
	})
	if err != nil {
		return "", err
	}
	return answer.(string), nil
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
