package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hootline_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// HootsCreated counts hoots created since process start.
	HootsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hootline_hoots_created_total",
		Help: "Total number of hoots created",
	})

	// CommentsCreated counts comments appended since process start.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hootline_comments_created_total",
		Help: "Total number of comments created",
	})
)

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the HTTP metrics collection handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
