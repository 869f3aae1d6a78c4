package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, r *Recorder) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return rec.Code, string(body)
}

func TestRecorderExposesCounters(t *testing.T) {
	r := New()
	r.GameStarted("mines_beginner")
	r.GameStarted("mines_beginner")
	r.GameFinished("mines_beginner", "won", "", 42)
	r.GameFinished("mines_beginner", "lost", "exploded", 3)
	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()

	code, body := scrape(t, r)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	want := []string{
		`mines_games_started_total{game="mines_beginner"} 2`,
		`mines_games_finished_total{game="mines_beginner",outcome="won",reason=""} 1`,
		`mines_games_finished_total{game="mines_beginner",outcome="lost",reason="exploded"} 1`,
		`mines_game_duration_seconds_count{game="mines_beginner",outcome="won"} 1`,
		`mines_ssh_sessions 1`,
	}
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("metrics output missing %q", w)
		}
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.GameStarted("mines_beginner")
	r.GameFinished("mines_beginner", "won", "", 1)
	r.SessionOpened()
	r.SessionClosed()

	code, _ := scrape(t, r)
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}
