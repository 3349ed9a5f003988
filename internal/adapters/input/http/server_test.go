package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"plex-hue-webhook/internal/domain/model"
	"plex-hue-webhook/internal/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWebhook struct {
	mock.Mock
}

func (m *MockWebhook) Handle(ctx context.Context, payload string) model.Result {
	args := m.Called(ctx, payload)
	return args.Get(0).(model.Result)
}

func newTestServer(webhook *MockWebhook) (http.Handler, *metrics.Metrics) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	return NewServer(webhook, m, reg).Handler(), m
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) model.Result {
	t.Helper()
	var res model.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestServer_WebhookForm(t *testing.T) {
	webhook := new(MockWebhook)
	webhook.On("Handle", mock.Anything, `{"event":"media.play"}`).Return(model.ResultUnfinished)
	h, m := newTestServer(webhook)

	form := url.Values{"payload": {`{"event":"media.play"}`}}
	req := httptest.NewRequest(http.MethodPost, "/plex/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, model.Result{Status: 200, Message: "Unfinished event"}, decodeResult(t, rec))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhookResults.WithLabelValues("200")))
	webhook.AssertExpectations(t)
}

func TestServer_WebhookMultipart(t *testing.T) {
	webhook := new(MockWebhook)
	webhook.On("Handle", mock.Anything, `{"event":"media.stop"}`).Return(model.ResultUnfinished)
	h, _ := newTestServer(webhook)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("payload", `{"event":"media.stop"}`))
	thumb, err := mw.CreateFormFile("thumb", "thumb.jpg")
	require.NoError(t, err)
	thumb.Write([]byte{0xff, 0xd8, 0xff})
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/plex/webhook", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	webhook.AssertExpectations(t)
}

func TestServer_WebhookEmptyForm(t *testing.T) {
	webhook := new(MockWebhook)
	webhook.On("Handle", mock.Anything, "").Return(model.ResultNoPayload)
	h, m := newTestServer(webhook)

	req := httptest.NewRequest(http.MethodPost, "/plex/webhook", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// Semantic status lives in the body, transport is still 200.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Result{Status: 400, Message: "no payload"}, decodeResult(t, rec))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhookResults.WithLabelValues("400")))
}

func TestServer_WebhookWrongMethod(t *testing.T) {
	webhook := new(MockWebhook)
	h, _ := newTestServer(webhook)

	req := httptest.NewRequest(http.MethodGet, "/plex/webhook", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	webhook.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_Health(t *testing.T) {
	h, _ := newTestServer(new(MockWebhook))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "200", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	webhook := new(MockWebhook)
	webhook.On("Handle", mock.Anything, mock.Anything).Return(model.ResultNothingToDo)
	h, _ := newTestServer(webhook)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/plex/webhook", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `plexhue_webhook_results_total{status="200"} 1`)
}
