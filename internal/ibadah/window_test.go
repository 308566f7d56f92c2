package ibadah

import (
	"testing"
	"time"
)

func windowIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestNextWindow(t *testing.T) {
	items := []Item{
		{ID: "start", TimeOfDay: "10:00"},
		{ID: "mid", TimeOfDay: "10:30"},
		{ID: "end", TimeOfDay: "11:00"},
		{ID: "after", TimeOfDay: "11:01"},
		{ID: "untimed"},
	}
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	got := windowIDs(NextWindow(items, now, 60))
	want := []string{"start", "mid", "end"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNextWindowMidnightWrap(t *testing.T) {
	items := []Item{
		{ID: "before-midnight", TimeOfDay: "23:50"},
		{ID: "after-midnight", TimeOfDay: "00:10"},
		{ID: "window-end", TimeOfDay: "00:40"},
		{ID: "too-late", TimeOfDay: "01:00"},
		{ID: "noon", TimeOfDay: "12:00"},
	}
	now := time.Date(2026, time.March, 10, 23, 40, 0, 0, time.UTC)

	got := windowIDs(NextWindow(items, now, 60))
	want := []string{"before-midnight", "after-midnight", "window-end"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNextWindowDefaultsTo60(t *testing.T) {
	items := []Item{{ID: "a", TimeOfDay: "05:30"}}
	now := time.Date(2026, time.March, 10, 5, 0, 0, 0, time.UTC)

	if got := NextWindow(items, now, 0); len(got) != 1 {
		t.Errorf("zero window: got %v, want the default 60-minute window", windowIDs(got))
	}
	if got := NextWindow(items, now, -5); len(got) != 1 {
		t.Errorf("negative window: got %v", windowIDs(got))
	}
}

func TestNextWindowSkipsBadTimes(t *testing.T) {
	items := []Item{
		{ID: "ok", TimeOfDay: "08:15"},
		{ID: "garbled", TimeOfDay: "8 pagi"},
		{ID: "out-of-range", TimeOfDay: "24:00"},
	}
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	got := windowIDs(NextWindow(items, now, 60))
	if len(got) != 1 || got[0] != "ok" {
		t.Errorf("got %v, want [ok]", got)
	}
}
