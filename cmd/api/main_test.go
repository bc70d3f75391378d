package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetupMetricsExposesCollectors(t *testing.T) {
	handler, sessionMetrics, conciergeMetrics := setupMetrics()
	if handler == nil || sessionMetrics == nil || conciergeMetrics == nil {
		t.Fatalf("expected non-nil handler and metric sets")
	}

	sessionMetrics.ObservePoll(false)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "daymaker_monitor_polls_total") {
		t.Fatalf("expected poll counter to be exported")
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" https://daymaker2day.com , http://localhost:5173 ,")
	if len(got) != 2 {
		t.Fatalf("expected 2 origins, got %v", got)
	}
	if got[0] != "https://daymaker2day.com" || got[1] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
