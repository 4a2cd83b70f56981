package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_checkins_total",
			Help: "Total number of check-in attempts",
		},
		[]string{"method", "result"},
	)

	MembersOnboardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_members_onboarded_total",
			Help: "Total number of members created with a first subscription",
		},
	)

	RenewalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_subscription_renewals_total",
			Help: "Total number of subscription renewals",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"method"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymdesk_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	ExpiryRemindersQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_expiry_reminders_queued_total",
			Help: "Total number of subscription expiry reminders queued",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckIn(method, result string) {
	CheckInsTotal.WithLabelValues(method, result).Inc()
}

func RecordOnboarding() {
	MembersOnboardedTotal.Inc()
}

func RecordRenewal() {
	RenewalsTotal.Inc()
}

func RecordPayment(method string) {
	PaymentsRecordedTotal.WithLabelValues(method).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordExpiryReminder() {
	ExpiryRemindersQueuedTotal.Inc()
}
