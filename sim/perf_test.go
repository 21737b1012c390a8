package sim

import (
	"testing"
	"time"
)

func TestPerfStatsAvgAndTotal(t *testing.T) {
	p := NewPerfStats()
	p.Record("R", 10*time.Millisecond)
	p.Record("R", 20*time.Millisecond)
	p.Record("O", 5*time.Millisecond)

	if got := p.Avg("R"); got != 15*time.Millisecond {
		t.Fatalf("Avg(R) = %v, want 15ms", got)
	}
	if got := p.Avg("missing"); got != 0 {
		t.Fatalf("Avg(missing) = %v, want 0", got)
	}

	total := p.Total()
	want := 15*time.Millisecond + 5*time.Millisecond
	if total != want {
		t.Fatalf("Total() = %v, want %v", total, want)
	}
}

func TestPerfStatsWindowCapsSamples(t *testing.T) {
	p := NewPerfStats()
	for i := 0; i < 200; i++ {
		p.Record("R", time.Duration(i)*time.Millisecond)
	}
	if got := p.Avg("R"); got <= 0 {
		t.Fatalf("Avg(R) after 200 samples = %v, want a positive rolling average", got)
	}
}

func TestSortedNamesOrdersBySlowest(t *testing.T) {
	p := NewPerfStats()
	p.Record("fast", 1*time.Millisecond)
	p.Record("slow", 100*time.Millisecond)

	names := p.SortedNames()
	if len(names) != 2 || names[0] != "slow" {
		t.Fatalf("SortedNames() = %v, want [slow fast]", names)
	}
}

func TestOrderedNamesFollowsPipelineOrderAndSkipsUnrecorded(t *testing.T) {
	p := NewPerfStats()
	p.Record("terrain", 1*time.Millisecond)
	p.Record("R", 2*time.Millisecond)

	got := p.OrderedNames()
	want := []string{"R", "terrain"}
	if len(got) != len(want) {
		t.Fatalf("OrderedNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OrderedNames() = %v, want %v", got, want)
		}
	}
}

func TestRealtimeRatio(t *testing.T) {
	p := NewPerfStats()
	p.Record("R", 20*time.Millisecond)

	if got := p.RealtimeRatio(10 * time.Millisecond); got != 2 {
		t.Fatalf("RealtimeRatio(10ms) = %v, want 2 (20ms cost / 10ms budget)", got)
	}
	if got := p.RealtimeRatio(0); got != 0 {
		t.Fatalf("RealtimeRatio(0) = %v, want 0", got)
	}
}
