package metrics

import (
	"strings"

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

	MembersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_members_created_total",
			Help: "Total number of members created",
		},
	)

	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_memberships_created_total",
			Help: "Total number of memberships created",
		},
		[]string{"status"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"status", "payment_method"},
	)

	MembershipsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_memberships_expired_total",
			Help: "Total number of memberships marked expired by the sweeper",
		},
	)

	ExpiryRemindersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_expiry_reminders_total",
			Help: "Total number of membership expiry reminders sent",
		},
	)

	NotificationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_notifications_created_total",
			Help: "Total number of notifications created",
		},
		[]string{"type"},
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
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMemberCreated() {
	MembersCreatedTotal.Inc()
}

func RecordMembership(status string) {
	MembershipsCreatedTotal.WithLabelValues(status).Inc()
}

var knownPaymentMethods = map[string]bool{
	"cash": true, "upi": true, "card": true, "netbanking": true, "bank_transfer": true,
}

// RecordPayment folds free-text payment methods into a fixed label set.
func RecordPayment(status, paymentMethod string) {
	method := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(paymentMethod)), " ", "_")
	if !knownPaymentMethods[method] {
		method = "other"
	}
	PaymentsRecordedTotal.WithLabelValues(status, method).Inc()
}

func RecordMembershipsExpired(n int) {
	MembershipsExpiredTotal.Add(float64(n))
}

func RecordExpiryReminder() {
	ExpiryRemindersTotal.Inc()
}

func RecordNotification(notificationType string) {
	NotificationsCreatedTotal.WithLabelValues(notificationType).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}
