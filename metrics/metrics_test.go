package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/swipe-deck/deck"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()

	r.Decided(deck.CommitRight, 120)
	r.Decided(deck.Cancel, -12)
	r.Decided(deck.CommitRight, 300)
	r.Committed(deck.Right, 0)
	r.Committed(deck.Right, 1)
	r.StaleCompletion(deck.Left)

	if got := testutil.ToFloat64(r.decisions.WithLabelValues("commit-right")); got != 2 {
		t.Errorf("commit-right decisions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.decisions.WithLabelValues("cancel")); got != 1 {
		t.Errorf("cancel decisions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.swipes.WithLabelValues("right")); got != 2 {
		t.Errorf("right swipes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.staleSwipes); got != 1 {
		t.Errorf("stale completions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.activeIndex); got != 2 {
		t.Errorf("active index gauge = %v, want 2", got)
	}

	r.Replaced(2)
	if got := testutil.ToFloat64(r.replacements); got != 1 {
		t.Errorf("replacements = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.activeIndex); got != 0 {
		t.Errorf("active index gauge after replace = %v, want 0", got)
	}
	if n := testutil.CollectAndCount(r.dragDistance); n != 1 {
		t.Errorf("histogram series = %d, want 1", n)
	}
}

func TestWriteFile(t *testing.T) {
	r := NewRecorder()
	r.Committed(deck.Left, 0)

	path := filepath.Join(t.TempDir(), "swipedeck.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `swipedeck_swipes_total{direction="left"} 1`) {
		t.Errorf("Textfile missing swipe counter:\n%s", data)
	}
}
