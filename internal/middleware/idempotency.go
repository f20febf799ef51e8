package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyCacheTTL = 24 * time.Hour
	idempotencyLockTTL  = 30 * time.Second

	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency replays the stored result of a POST carrying an Idempotency-Key
// the same employee already sent, and rejects a duplicate that is still in
// flight. Requests without the header pass through untouched.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("employee_id"), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached json.RawMessage = val
			c.Header("Idempotent-Replayed", "true")
			response.Success(c, http.StatusOK, cached, nil)
			c.Abort()
			return
		}

		// the lock expires on its own if the process dies mid request
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			c.Next()
			return
		}
		if !isNew {
			response.FromError(c, apperror.ErrRequestInFlight)
			c.Abort()
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()

		rdb.Del(ctx, lockKey)
	}
}

// StoreIdempotentResult records data as the replay value for the current
// request. It is a no-op when the request carried no Idempotency-Key.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	cacheKey := c.GetString(idempotencyCacheKey)
	if cacheKey == "" {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err()
}
