package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classquest/classquest-api/internal/metrics"
)

func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		// Route template, not the raw path, to keep label cardinality bounded.
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.APIRequestDuration.
			WithLabelValues(path, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
