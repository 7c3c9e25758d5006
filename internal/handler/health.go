package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Moskzow/StoreControl/internal/kv"
)

// Health returns a JSON health check response.
// Probes the key-value store; never exposes credentials or internals.
func Health(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		if _, err := store.Get(ctx, kv.KeyProducts); err != nil && err != kv.ErrNotFound {
			storeStatus = "error"
		}

		status := http.StatusOK
		if storeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storeStatus,
		})
	}
}
