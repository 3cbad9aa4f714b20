package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type observed struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	inflight int
	calls    []observed
}

func (f *fakeObserver) TrackInflight() func() {
	f.inflight++
	return func() { f.inflight-- }
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	f.calls = append(f.calls, observed{method: method, route: route, status: status})
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	observer := &fakeObserver{}
	r := chi.NewRouter()
	r.Use(Metrics(observer))
	r.Get("/api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/recipes/1", "/api/recipes/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(observer.calls) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(observer.calls))
	}
	if observer.calls[0].route != "/api/recipes/{id}" || observer.calls[1].route != "/api/recipes/{id}" {
		t.Fatalf("expected route pattern labels, got %+v", observer.calls)
	}
	if observer.calls[0].status != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", observer.calls[0].status)
	}
	if observer.calls[2].route != unmatchedRoute || observer.calls[2].status != http.StatusNotFound {
		t.Fatalf("expected unmatched 404, got %+v", observer.calls[2])
	}
	if observer.inflight != 0 {
		t.Fatalf("expected inflight back to zero, got %d", observer.inflight)
	}
}
