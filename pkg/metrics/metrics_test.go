package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentRoute(t *testing.T) {
	handler := InstrumentRoute(http.MethodGet, "/v1/offers/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/offers/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	// a série usa o padrão da rota, não o path concreto
	observer := HTTPRequestDuration.WithLabelValues(http.MethodGet, "/v1/offers/:id", "404")
	histogram, ok := observer.(prometheus.Histogram)
	assert.True(t, ok)
	assert.Equal(t, 1, testutil.CollectAndCount(histogram))
}

func TestRecordTopUp(t *testing.T) {
	success := testutil.ToFloat64(WalletTopUps.WithLabelValues("success"))
	failure := testutil.ToFloat64(WalletTopUps.WithLabelValues("failure"))
	amount := testutil.ToFloat64(WalletTopUpAmount)

	RecordTopUp(100, nil)
	RecordTopUp(50, errors.New("boom"))

	assert.Equal(t, success+1, testutil.ToFloat64(WalletTopUps.WithLabelValues("success")))
	assert.Equal(t, failure+1, testutil.ToFloat64(WalletTopUps.WithLabelValues("failure")))
	assert.Equal(t, amount+100, testutil.ToFloat64(WalletTopUpAmount))
}
