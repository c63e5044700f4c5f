package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestDuration mede a latência por rota registrada
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dashboard_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"method", "route", "status"},
	)

	WalletTopUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_wallet_top_ups_total",
			Help: "Number of wallet top-ups by result",
		},
		[]string{"result"}, // success or failure
	)

	WalletTopUpAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_wallet_top_up_amount_total",
			Help: "Sum of successful wallet top-up amounts",
		},
	)

	ApprovalStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_approval_status_changes_total",
			Help: "Approval status changes by kind and resulting status",
		},
		[]string{"kind", "status"},
	)

	OffersExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_offers_expired_total",
			Help: "Offers moved to ENDED by the expiry job",
		},
	)
)

// RecordTopUp registra o resultado de uma recarga de carteira
func RecordTopUp(amount float64, err error) {
	if err != nil {
		WalletTopUps.WithLabelValues("failure").Inc()
		return
	}

	WalletTopUps.WithLabelValues("success").Inc()
	WalletTopUpAmount.Add(amount)
}

func RecordApproval(kind, status string) {
	ApprovalStatusChanges.WithLabelValues(kind, status).Inc()
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// InstrumentRoute mede a duração de uma rota usando o padrão do path (ex.: /v1/offers/:id)
// como label, evitando cardinalidade alta.
func InstrumentRoute(method, route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		HTTPRequestDuration.
			WithLabelValues(method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
