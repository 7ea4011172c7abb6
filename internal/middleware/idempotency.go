package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency menahan POST bulk ganda dengan Idempotency-Key yang sama.
// Lock pendek via SetNX; key lock expire sendiri kalau proses mati.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString(ContextUserID)

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), userID, idempKey)

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			// Request ganda terdeteksi saat proses masih berlangsung
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":   "conflict",
				"message": "A request with this idempotency key is still being processed",
			})
			return
		}

		c.Next()

		// Selesai: lepaskan lock supaya retry setelah kegagalan tetap bisa masuk
		if c.Writer.Status() >= http.StatusInternalServerError {
			rdb.Del(c.Request.Context(), lockKey)
		}
	}
}
