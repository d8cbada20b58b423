package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by service, route and status.",
	}, []string{"service", "method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitness",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "method", "route"})
	domainEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "domain",
		Name:      "events_total",
		Help:      "Domain state changes, by kind.",
	}, []string{"kind"})
	lastSessionGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitness",
		Subsystem: "sessions",
		Name:      "last_recorded_timestamp_seconds",
		Help:      "Unix timestamp of the most recently recorded training session.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, domainEvents, lastSessionGauge)
}

// Domain event kinds
const (
	PlanCreated         = "plan_created"
	SessionRecorded     = "session_recorded"
	ReviewSubmitted     = "review_submitted"
	FavoriteMarked      = "favorite_marked"
	GoalCreated         = "goal_created"
	GoalAchieved        = "goal_achieved"
	UserCreated         = "user_created"
	UserBlocked         = "user_blocked"
	NotificationCreated = "notification_created"
)

// ObserveRequest records one served request.
func ObserveRequest(service, method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(service, method, route).Observe(elapsed.Seconds())
}

// RecordDomainEvent counts a committed state change.
func RecordDomainEvent(kind string) {
	domainEvents.WithLabelValues(kind).Inc()
}

// RecordSessionRecorded updates the session watermark.
func RecordSessionRecorded(ts time.Time) {
	RecordDomainEvent(SessionRecorded)
	if ts.IsZero() {
		return
	}
	lastSessionGauge.Set(float64(ts.Unix()))
}
