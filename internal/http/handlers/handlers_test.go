package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymaker2day/daymaker2day/internal/admin"
	"github.com/daymaker2day/daymaker2day/internal/app"
	"github.com/daymaker2day/daymaker2day/internal/booking"
	"github.com/daymaker2day/daymaker2day/internal/bookings"
	"github.com/daymaker2day/daymaker2day/internal/concierge"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

func testLogger() *logging.Logger { return logging.New("error") }

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	logger := testLogger()
	return app.New(app.Options{
		Monitor:  schedule.NewMonitor(schedule.SystemClock{}, time.Minute, nil, logger),
		Bookings: bookings.NewService(bookings.NewInMemoryRepository(), logger),
		Logger:   logger,
	})
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestCatalogListFilters(t *testing.T) {
	h := NewCatalogHandler()

	rec := doJSON(t, h.ListServices, http.MethodGet, "/api/services?category=Creative&type=full", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Services []struct {
			Category  string `json:"category"`
			ClassType string `json:"class_type"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Services)
	for _, s := range resp.Services {
		assert.Equal(t, "Creative", s.Category)
		assert.Equal(t, "full", s.ClassType)
	}
}

func TestCatalogGetUnknownService(t *testing.T) {
	h := NewCatalogHandler()
	r := chi.NewRouter()
	r.Get("/api/services/{serviceID}", h.GetService)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services/zz99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatRejectsEmptyQuery(t *testing.T) {
	h := NewChatHandler(concierge.NewService(nil, nil, testLogger()), testLogger())

	rec := doJSON(t, h.Recommend, http.MethodPost, "/api/chat", map[string]string{"user_query": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatOfflineFallback(t *testing.T) {
	h := NewChatHandler(concierge.NewService(nil, nil, testLogger()), testLogger())

	rec := doJSON(t, h.Recommend, http.MethodPost, "/api/chat", map[string]string{"user_query": "something creative"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), concierge.OfflineFallback)
}

func TestBookingsDeleteUnknown(t *testing.T) {
	h := NewBookingsHandler(newTestApp(t), booking.NewSimulatedProcessor(time.Millisecond), nil, testLogger())
	r := chi.NewRouter()
	r.Delete("/api/bookings/{bookingID}", h.Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/no-such-id", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingsCreateThenDelete(t *testing.T) {
	core := newTestApp(t)
	h := NewBookingsHandler(core, booking.NewSimulatedProcessor(time.Millisecond), nil, testLogger())

	rec := doJSON(t, h.Create, http.MethodPost, "/api/bookings", map[string]any{
		"service_id":     "fc3",
		"date":           "2026-09-02",
		"time_slot":      "10:00 AM",
		"payment_method": "GOOGLE_PAY",
		"user_name":      "Grace Hopper",
		"user_email":     "grace@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	list, err := core.Bookings().List(t.Context(), "grace@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)

	r := chi.NewRouter()
	r.Delete("/api/bookings/{bookingID}", h.Delete)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+list[0].ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	list, err = core.Bookings().List(t.Context(), "grace@example.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionsCancelRemovesFromSchedule(t *testing.T) {
	core := newTestApp(t)
	sess := schedule.Session{
		ID:         schedule.NewSessionID(),
		OfferingID: "hc2",
		Date:       time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local),
		TimeSlot:   "10:00 AM",
	}
	core.ConfirmSession(t.Context(), sess)

	h := NewSessionsHandler(core, nil, testLogger())
	r := chi.NewRouter()
	r.Delete("/api/sessions/{sessionID}", h.Cancel)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sess.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, core.Monitor().Sessions())
}

func adminTestRouter(t *testing.T) chi.Router {
	t.Helper()
	svc := admin.NewService(admin.NewStore(), nil, nil, testLogger())
	return NewAdminHandler(svc, testLogger()).Routes()
}

func TestAdminReleaseLifecycle(t *testing.T) {
	r := adminTestRouter(t)

	body, _ := json.Marshal(map[string]string{"title": "Fall menu refresh", "release_date": "2026-10-01"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/releases", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created admin.ContentRelease
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, admin.ReleasePlanned, created.Status)

	body, _ = json.Marshal(map[string]string{"title": "Fall menu refresh", "status": "released"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/releases/"+created.ID, bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "released")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/releases/"+created.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminPostValidation(t *testing.T) {
	r := adminTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"content":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminAccountConnectFlow(t *testing.T) {
	r := adminTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		Accounts []admin.SocialAccount `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.NotEmpty(t, listResp.Accounts)
	id := listResp.Accounts[0].ID

	body, _ := json.Marshal(map[string]string{"username": "daymaker2day"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/connect", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	var acct admin.SocialAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acct))
	assert.True(t, acct.Connected)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/accounts/"+id+"/disconnect", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
