package observability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
)

func newObservedRouter(t *testing.T, logs *zap.Logger) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Use(InjectLoggerMiddleware(logs))
	r.Use(RecoveryMiddleware(logs))
	r.Use(TraceMiddleware())
	r.Use(RequestLoggerMiddleware())
	return r
}

func TestRequestLoggerLevelsByStatus(t *testing.T) {
	t.Parallel()

	core, recorded := observer.New(zapcore.DebugLevel)
	r := newObservedRouter(t, zap.New(core))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) })

	for _, path := range []string{"/ok", "/missing"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	completed := recorded.FilterMessage("request completed").All()
	require.Len(t, completed, 2)
	require.Equal(t, zapcore.InfoLevel, completed[0].Level)
	require.Equal(t, int64(http.StatusOK), completed[0].ContextMap()["status"])
	require.Equal(t, int64(2), completed[0].ContextMap()["bytes"])
	require.Equal(t, "/ok", completed[0].ContextMap()["route"])
	require.Equal(t, zapcore.WarnLevel, completed[1].Level)
	require.Equal(t, 2, recorded.FilterMessage("request started").Len())
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	t.Parallel()

	core, recorded := observer.New(zapcore.DebugLevel)
	r := newObservedRouter(t, zap.New(core))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal_server_error", body["error"])

	require.Equal(t, 1, recorded.FilterMessage("panic recovered").Len())
	completed := recorded.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	require.Equal(t, zapcore.ErrorLevel, completed[0].Level)
}

func TestTraceMiddlewareAdoptsIncomingTraceparent(t *testing.T) {
	t.Parallel()

	var traceID string
	r := newObservedRouter(t, zap.NewNop())
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		traceID = requestctx.TraceID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", traceID)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("not-a-level", false)
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	debug, err := NewLogger("DEBUG", true)
	require.NoError(t, err)
	require.True(t, debug.Core().Enabled(zapcore.DebugLevel))
}

func TestSanitizeRouteStripsControlCharacters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", SanitizeRoute(""))
	require.Equal(t, "/projectsx", SanitizeRoute("/projects\nx"))
	require.Len(t, SanitizeRoute(strings.Repeat("a", 300)), 180)
}

func TestSanitizeQueryKeepsNavigationKeys(t *testing.T) {
	t.Parallel()

	q := url.Values{
		"op":       {"next"},
		"i":        {"2"},
		"utm_src":  {"newsletter"},
		"category": {"ui\r\nFAKE=1"},
	}
	require.Equal(t, "category=uiFAKE=1&i=2&op=next", SanitizeQuery(q))
	require.Empty(t, SanitizeQuery(url.Values{"email": {"a@b.c"}}))
}

func TestRequestLoggerRecordsNavigationQuery(t *testing.T) {
	t.Parallel()

	core, recorded := observer.New(zapcore.DebugLevel)
	r := newObservedRouter(t, zap.New(core))
	r.Get("/fragments/portfolio", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fragments/portfolio?category=ui&fbclid=x", nil))

	started := recorded.FilterMessage("request started").All()
	require.Len(t, started, 1)
	require.Equal(t, "category=ui", started[0].ContextMap()["query"])
}
