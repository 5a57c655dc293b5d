package store

import (
	"testing"
	"time"

	"github.com/pondplan/pondplan/internal/calc"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPutAndGet(t *testing.T) {
	s := New()
	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	s.now = fixedClock(at)

	res := &calc.Result{Days: 3, Bottleneck: calc.BottleneckHauling}
	if prev, had := s.Put("backyard-pond", res); had || prev != nil {
		t.Errorf("first Put returned previous entry %+v", prev)
	}

	e, ok := s.Get("backyard-pond")
	if !ok {
		t.Fatal("Get after Put: not found")
	}
	if e.Result != res {
		t.Error("Get returned a different result pointer")
	}
	if !e.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt = %v, want %v", e.UpdatedAt, at)
	}
}

func TestPut_ReturnsPrevious(t *testing.T) {
	s := New()
	first := &calc.Result{Days: 3}
	second := &calc.Result{Days: 5}

	s.Put("pond", first)
	prev, had := s.Put("pond", second)
	if !had {
		t.Fatal("second Put: expected previous entry")
	}
	if prev.Result != first {
		t.Error("previous entry does not hold the first result")
	}
	if e, _ := s.Get("pond"); e.Result != second {
		t.Error("Get does not return the replacement")
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestGet_Missing(t *testing.T) {
	s := New()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get on empty store reported a hit")
	}
}

func TestList_SortedByScenario(t *testing.T) {
	s := New()
	for _, name := range []string{"c", "a", "b"} {
		s.Put(name, &calc.Result{Days: 1})
	}
	entries := s.List()
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].Scenario != want {
			t.Errorf("entries[%d].Scenario = %q, want %q", i, entries[i].Scenario, want)
		}
	}
}
