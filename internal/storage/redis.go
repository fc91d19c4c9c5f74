package storage

import (
	"context"
	"strconv"
	"time"

	"qrorder/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func translationCacheKey(key, lang string) string {
	return "i18n:" + lang + ":" + key
}

func (c *RedisCache) Get(ctx context.Context, key, lang string) (string, bool, error) {
	text, err := c.Client.Get(ctx, translationCacheKey(key, lang)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, lang, text string) error {
	return c.Client.Set(ctx, translationCacheKey(key, lang), text, c.TTL).Err()
}

func salesRankingKey(restaurantID int) string {
	return "menu:sales:" + strconv.Itoa(restaurantID)
}

func (c *RedisCache) IncrementSales(ctx context.Context, restaurantID, menuID, quantity int) error {
	return c.Client.ZIncrBy(ctx, salesRankingKey(restaurantID),
		float64(quantity), strconv.Itoa(menuID)).Err()
}

func (c *RedisCache) TopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuSales, error) {
	entries, err := c.Client.ZRevRangeWithScores(ctx, salesRankingKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	var ranked []domain.MenuSales
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		menuID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ranked = append(ranked, domain.MenuSales{MenuID: menuID, Sales: int64(entry.Score)})
	}
	return ranked, nil
}
