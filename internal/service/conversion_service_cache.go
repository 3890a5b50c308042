package service

import (
	"context"
	"strconv"
	"time"
)

const cacheKeyPrefixLatest = "latest_conv:"

func latestCacheKey(from, to string) string {
	return cacheKeyPrefixLatest + "{" + from + ":" + to + "}"
}

func (s *ConversionService) cacheGetLatest(ctx context.Context, from, to string) (*ConversionResult, bool) {
	if s.cache == nil {
		return nil, false
	}

	key := latestCacheKey(from, to)
	vals, err := s.cache.HMGet(ctx, key, "amount", "rate", "result", "converted_at").Result()
	if err != nil || len(vals) != 4 {
		return nil, false
	}
	for _, v := range vals {
		if v == nil {
			return nil, false
		}
	}

	amount, ok1 := asFloat(vals[0])
	rate, ok2 := asFloat(vals[1])
	result, ok3 := asFloat(vals[2])
	ts, ok4 := asString(vals[3])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil, false
	}

	return &ConversionResult{
		From:        from,
		To:          to,
		Amount:      amount,
		Rate:        rate,
		Result:      result,
		ConvertedAt: t,
	}, true
}

func (s *ConversionService) cacheSetLatest(ctx context.Context, res *ConversionResult) {
	if s.cache == nil || res == nil {
		return
	}

	key := latestCacheKey(res.From, res.To)
	pipe := s.cache.Pipeline()
	pipe.HSet(ctx, key,
		"amount", formatFloat(res.Amount),
		"rate", formatFloat(res.Rate),
		"result", formatFloat(res.Result),
		"converted_at", res.ConvertedAt.Format(time.RFC3339),
	)
	pipe.Expire(ctx, key, s.cacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnw("Failed to update cache", "key", key, "error", err)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func asFloat(v any) (float64, bool) {
	str, ok := asString(v)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	default:
		return "", false
	}
}
