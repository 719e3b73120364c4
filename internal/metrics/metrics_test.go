package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	out := scrape(t, m)
	assert.Contains(t, out, `omnipos_retail_http_requests_total{method="GET",route="/api/products/{id}",status="404"} 3`)
	assert.Contains(t, out, `route="unmatched"`)
	assert.Contains(t, out, `omnipos_retail_http_request_duration_seconds_count{method="GET",route="/api/products/{id}"} 3`)
}

func TestSaleRecorded(t *testing.T) {
	m := New()
	m.SaleRecorded(model.Sale{
		PaymentMethod: model.PaymentMethodMpesa,
		Total:         120,
		Items:         []model.SaleItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}},
	})
	m.SaleRecorded(model.Sale{PaymentMethod: model.PaymentMethodCash, Total: 30, Items: []model.SaleItem{{ProductID: "p1", Quantity: 1}}})

	out := scrape(t, m)
	assert.Contains(t, out, `omnipos_retail_sales_total{payment_method="Mpesa"} 1`)
	assert.Contains(t, out, `omnipos_retail_sales_total{payment_method="Cash"} 1`)
	assert.Contains(t, out, "omnipos_retail_units_sold_total 6")
	assert.Contains(t, out, "omnipos_retail_sales_revenue_total 150")
}
