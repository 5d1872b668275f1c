package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestRouter(mw ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(mw...)
	r.Get("/{page}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "page") == "broken" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	})
	return r
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newCollector(MetricsConfig{
		Namespace: "test",
		Subsystem: "http",
		Buckets:   prometheus.DefBuckets,
		Registry:  reg,
	})
	r := newTestRouter(c.Middleware)

	serve(r, "/counter")
	serve(r, "/todos")
	serve(r, "/broken")
	serve(r, "/a/b/c")

	tests := []struct {
		route, status string
		want          float64
	}{
		{"/{page}", "2xx", 2},
		{"/{page}", "5xx", 1},
		{"unmatched", "4xx", 1},
	}
	for _, tt := range tests {
		t.Run(tt.route+" "+tt.status, func(t *testing.T) {
			got := testutil.ToFloat64(c.requests.WithLabelValues(tt.route, http.MethodGet, tt.status))
			if got != tt.want {
				t.Errorf("requests_total = %v, want %v", got, tt.want)
			}
		})
	}

	if n := testutil.CollectAndCount(c.duration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestPrometheus_Options(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newTestRouter(Prometheus(
		WithRegistry(reg),
		WithNamespace("site"),
		WithSubsystem("web"),
		WithConstLabels(prometheus.Labels{"env": "dev"}),
		WithBuckets([]float64{0.1, 1}),
	))
	serve(r, "/index")

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"site_web_requests_total", "site_web_request_duration_seconds"} {
		if !names[want] {
			t.Errorf("missing metric %s in %v", want, names)
		}
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "2xx"},
		{200, "2xx"},
		{304, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		if got := statusClass(tt.code); got != tt.want {
			t.Errorf("statusClass(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

type recordingTracer struct {
	noop.Tracer
	spans []string
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.spans = append(t.spans, name)
	return t.Tracer.Start(ctx, name, opts...)
}

func TestOpenTelemetry(t *testing.T) {
	tr := &recordingTracer{}
	r := newTestRouter(OpenTelemetry(
		WithTracer(tr),
		WithFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	))

	if rec := serve(r, "/counter"); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("response = %d %q", rec.Code, rec.Body.String())
	}
	serve(r, "/healthz")

	if len(tr.spans) != 1 || tr.spans[0] != "ftd GET" {
		t.Errorf("spans = %v, want one span for /counter", tr.spans)
	}
}

func TestOpenTelemetry_DefaultTracer(t *testing.T) {
	r := newTestRouter(OpenTelemetry(WithTracerName("test")))
	if rec := serve(r, "/broken"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
