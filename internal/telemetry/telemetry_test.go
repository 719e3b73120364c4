package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-retail-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	var buf testBuffer
	shutdown, err := Setup(config.TracingConfig{Enabled: false}, &buf)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Zero(t, buf.n)
}

func TestSetupEnabledExportsOnShutdown(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf testBuffer
	shutdown, err := Setup(config.TracingConfig{Enabled: true, ServiceName: "retail-test"}, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()
	require.NoError(t, shutdown(context.Background()))
	assert.Positive(t, buf.n)
}

func TestMiddlewareRecordsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	var traced []bool
	h := Middleware("retail")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traced = append(traced, trace.SpanContextFromContext(r.Context()).IsValid())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/products", spans[0].Name())
	assert.Equal(t, []bool{true, false}, traced)
}

type testBuffer struct{ n int }

func (b *testBuffer) Write(p []byte) (int, error) {
	b.n += len(p)
	return len(p), nil
}
