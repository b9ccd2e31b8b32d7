package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrapeMetrics(t *testing.T, m *Metrics) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestMetricsExposition(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	body := scrapeMetrics(t, m)

	for _, name := range []string{
		"coinflip_flips_total",
		"coinflip_active_workers",
		"coinflip_run_duration_seconds",
		"go_goroutines",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("exposition missing metric %q", name)
		}
	}
}

func TestObserveFlips(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveFlips(1500)
	m.ObserveFlips(500)

	body := scrapeMetrics(t, m)
	if !strings.Contains(body, "coinflip_flips_total 2000") {
		t.Errorf("flips counter not incremented, body:\n%s", body)
	}
}

func TestGauges(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.SetActiveWorkers(8)
	m.SetRunDuration(1500 * time.Millisecond)

	body := scrapeMetrics(t, m)
	if !strings.Contains(body, "coinflip_active_workers 8") {
		t.Errorf("worker gauge not set, body:\n%s", body)
	}
	if !strings.Contains(body, "coinflip_run_duration_seconds 1.5") {
		t.Errorf("duration gauge not set, body:\n%s", body)
	}
}

func TestNewMetricsIsolatedRegistries(t *testing.T) {
	t.Parallel()

	// Two instances must not share state or panic on registration.
	a := NewMetrics()
	b := NewMetrics()
	a.ObserveFlips(10)

	if strings.Contains(scrapeMetrics(t, b), "coinflip_flips_total 10") {
		t.Error("registries are shared between instances")
	}
}
