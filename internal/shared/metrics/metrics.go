package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	submissionStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_submission_started_total",
		Help: "Total analysis submissions sent to the service",
	})
	submissionCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_submission_completed_total",
		Help: "Total analysis submissions that produced a result",
	})
	submissionFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_submission_failed_total",
		Help: "Total analysis submissions that failed, by error kind",
	}, []string{"kind"})
	submissionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_submission_duration_seconds",
		Help:    "Round trip time of analysis submissions",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "upload_sessions_active",
		Help: "Number of live upload sessions",
	})
)

// IncSubmissionStarted increments the started counter.
func IncSubmissionStarted() {
	submissionStartedTotal.Inc()
}

// IncSubmissionCompleted increments the completed counter.
func IncSubmissionCompleted() {
	submissionCompletedTotal.Inc()
}

// IncSubmissionFailed increments the failed counter for kind.
func IncSubmissionFailed(kind string) {
	submissionFailedTotal.WithLabelValues(kind).Inc()
}

// ObserveSubmissionDuration records one submission round trip.
func ObserveSubmissionDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	submissionDuration.Observe(d.Seconds())
}

// SetActiveSessions reports the live session count.
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
