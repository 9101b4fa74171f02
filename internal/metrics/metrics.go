// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal подсчитывает обработанные команды бота
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total number of handled bot commands",
		},
		[]string{"command", "status"},
	)

	// CommandDuration измеряет длительность обработки команды
	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bot_command_duration_seconds",
			Help:    "Duration of bot command handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	// CollaboratorRequests подсчитывает обращения к внешним API
	CollaboratorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collaborator_requests_total",
			Help: "Total number of requests to external APIs",
		},
		[]string{"api", "status"},
	)
)

// ObserveCollaborator records the outcome of a single external API call.
func ObserveCollaborator(api string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CollaboratorRequests.WithLabelValues(api, status).Inc()
}
