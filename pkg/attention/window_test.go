package attention

import (
	"math"
	"testing"
	"time"

	"github.com/gazepilot/go-gazepilot/pkg/signal"
)

func TestWindow_PushEvictsOldest(t *testing.T) {
	w := newWindow[int](3)
	base := time.Now()
	for i := 0; i < 5; i++ {
		w.push(i, base.Add(time.Duration(i)*time.Millisecond))
	}

	if w.len() != 3 {
		t.Fatalf("got len %d, want 3", w.len())
	}
	for i, want := range []int{2, 3, 4} {
		if w.samples[i].value != want {
			t.Errorf("sample %d: got %d, want %d", i, w.samples[i].value, want)
		}
	}
}

func TestWindow_PruneDropsStale(t *testing.T) {
	w := newWindow[int](10)
	base := time.Now()
	for i := 0; i < 6; i++ {
		w.push(i, base.Add(time.Duration(i)*100*time.Millisecond))
	}

	// Horizon 250ms from the last sample keeps samples 3, 4, 5.
	w.prune(250*time.Millisecond, base.Add(500*time.Millisecond))
	if w.len() != 3 {
		t.Fatalf("got len %d, want 3", w.len())
	}
	if w.samples[0].value != 3 {
		t.Errorf("oldest survivor: got %d, want 3", w.samples[0].value)
	}

	// Zero horizon disables pruning.
	w.prune(0, base.Add(time.Hour))
	if w.len() != 3 {
		t.Errorf("zero horizon pruned: got len %d, want 3", w.len())
	}
}

func TestVarianceSum(t *testing.T) {
	tests := []struct {
		name   string
		points []signal.Point
		want   float64
	}{
		{name: "empty", points: nil, want: 0},
		{
			name:   "identical points",
			points: []signal.Point{{X: 7, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 7}},
			want:   0,
		},
		{
			// x values 0,2,4: mean 2, variance 8/3. y constant.
			name:   "spread on one axis",
			points: []signal.Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 4, Y: 1}},
			want:   8.0 / 3.0,
		},
		{
			// Both axes spread 0/2: variance 1 each.
			name:   "spread on both axes",
			points: []signal.Point{{X: 0, Y: 0}, {X: 2, Y: 2}},
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWindow[signal.Point](len(tt.points) + 1)
			base := time.Now()
			for i, p := range tt.points {
				w.push(p, base.Add(time.Duration(i)*time.Millisecond))
			}
			if got := varianceSum(w); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
