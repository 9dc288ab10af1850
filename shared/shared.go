package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"libdash/shared/cache"
	"libdash/shared/constant"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins a prefix and its parts into a colon-separated cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from arbitrary query/filter
// values by appending their JSON encodings to the prefix.
func BuildCacheKeyWithQuery(prefix string, queries ...any) string {
	parts := make([]string, 0, len(queries))

	for _, query := range queries {
		encoded, err := json.Marshal(query)
		if err != nil {
			log.Error().Err(err).Msg("failed to encode query for cache key")

			parts = append(parts, fmt.Sprintf("%v", query))

			continue
		}

		parts = append(parts, string(encoded))
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches clears every cache entry sharing the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
