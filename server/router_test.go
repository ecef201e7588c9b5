package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/inference-gateway/voice-scheduling-agent/booking/mocks"
	"github.com/inference-gateway/voice-scheduling-agent/config"
	"github.com/inference-gateway/voice-scheduling-agent/health"
	"github.com/inference-gateway/voice-scheduling-agent/skills"
	"github.com/inference-gateway/voice-scheduling-agent/webhook"
)

const toolCallsBody = `{"message":{"type":"tool-calls","toolCalls":[{"id":"call_1","function":{"name":"create_calendar_event","arguments":{"name":"Alex","date":"2024-03-01","time":"14:00","email":"alex@example.com"}}}]}}`

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		CalCom: config.CalComConfig{AttendeeTimeZone: "Asia/Kolkata"},
		Google: config.GoogleConfig{CalendarID: "primary"},
		App: config.AppConfig{
			MaxRequestSize:     1024,
			ProviderTimeout:    time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *mocks.FakeProvider) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	provider := &mocks.FakeProvider{}
	provider.NameReturns("cal.com")
	provider.BookReturns("Cal.com booking UID: abc123 (view in dashboard: https://app.cal.com/bookings/abc123)", nil)

	hooks := webhook.NewHandler(skills.NewRegistry(logger, provider, cfg.App.ProviderTimeout), logger)
	return NewRouter(cfg, logger, hooks, health.NewReporter(cfg, logger)), provider
}

func do(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_WebhookRoutes(t *testing.T) {
	for _, path := range []string{"/webhook", "/vapi/webhook"} {
		t.Run(path, func(t *testing.T) {
			router, provider := newTestRouter(t, testConfig())

			w := do(router, http.MethodPost, path, toolCallsBody, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp webhook.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.Results, 1)
			assert.Equal(t, "call_1", resp.Results[0].ToolCallID)
			assert.Contains(t, resp.Results[0].Result, "abc123")
			assert.Equal(t, 1, provider.BookCallCount())
		})
	}
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var status health.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "none", status.Provider)
	assert.NotEmpty(t, status.Timestamp)

	w = do(router, http.MethodGet, "/debug/env", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_WebhookSecret(t *testing.T) {
	testCases := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "missing", header: "", expectedCode: http.StatusUnauthorized},
		{name: "wrong", header: "guess", expectedCode: http.StatusUnauthorized},
		{name: "correct", header: "s3cret", expectedCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Webhook.Secret = "s3cret"
			router, provider := newTestRouter(t, cfg)

			headers := map[string]string{}
			if tc.header != "" {
				headers[SecretHeader] = tc.header
			}
			w := do(router, http.MethodPost, "/vapi/webhook", toolCallsBody, headers)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedCode != http.StatusOK {
				assert.Equal(t, 0, provider.BookCallCount())
			}
		})
	}
}

func TestRouter_HealthIsNotBehindSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Webhook.Secret = "s3cret"
	router, _ := newTestRouter(t, cfg)

	w := do(router, http.MethodGet, "/debug/env", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Webhook.RateLimit = 0.001
	cfg.Webhook.RateBurst = 2
	router, provider := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/webhook", toolCallsBody, nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/webhook", toolCallsBody, nil).Code)

	w := do(router, http.MethodPost, "/webhook", toolCallsBody, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 2, provider.BookCallCount())

	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/health", "", nil).Code, "health is not rate limited")
}

func TestRouter_RequestID(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/debug/env", "", map[string]string{RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	w = do(router, http.MethodGet, "/debug/env", "", nil)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRouter_BodyLimit(t *testing.T) {
	router, provider := newTestRouter(t, testConfig())

	oversized := `{"message":{"type":"tool-calls","padding":"` + strings.Repeat("x", 2048) + `"}}`
	w := do(router, http.MethodPost, "/webhook", oversized, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, provider.BookCallCount())
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/a2a", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
	assert.ElementsMatch(t, []any{"GET /health", "GET /debug/env", "POST /webhook", "POST /vapi/webhook"}, body["available_endpoints"])
}

func TestRouter_CORS(t *testing.T) {
	testCases := []struct {
		name           string
		origins        []string
		origin         string
		expectedHeader string
	}{
		{name: "allow_all", origins: []string{"*"}, origin: "https://dashboard.vapi.ai", expectedHeader: "*"},
		{name: "listed_origin", origins: []string{"https://dashboard.vapi.ai"}, origin: "https://dashboard.vapi.ai", expectedHeader: "https://dashboard.vapi.ai"},
		{name: "unlisted_origin", origins: []string{"https://dashboard.vapi.ai"}, origin: "https://evil.example.com", expectedHeader: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.App.CORSAllowedOrigins = tc.origins
			router, _ := newTestRouter(t, cfg)

			w := do(router, http.MethodGet, "/debug/env", "", map[string]string{"Origin": tc.origin})
			assert.Equal(t, tc.expectedHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
