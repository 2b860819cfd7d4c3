package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceAdjustment = "adjustment"
	SourceQuest      = "quest"
)

var (
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classquest_http_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	ClassesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classquest_classes_created_total",
			Help: "Total number of classes created",
		},
	)

	PointsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classquest_points_awarded_total",
			Help: "Total points granted to students, by source. Negative adjustments are not counted.",
		},
		[]string{"source"},
	)

	Purchases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classquest_purchases_total",
			Help: "Total number of market purchases",
		},
	)
)
