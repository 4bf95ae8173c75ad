package layout

import (
	"testing"

	"github.com/tsawler/folio/page"
)

// newPagedLayout builds a layout of count blank pages with the given
// page-set parameters
func newPagedLayout(count, perSet, firstSet int) *Layout {
	l := New(nil)
	for i := 0; i < count; i++ {
		l.Append(page.NewBase(100, 100))
	}
	l.PagesPerSet = perSet
	l.PagesFirstSet = firstSet
	return l
}

func TestPageSets(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		perSet   int
		firstSet int
		want     []PageSetRun
	}{
		{"empty", 0, 1, 0, nil},
		{"one per set", 3, 1, 0, []PageSetRun{{3, 1}}},
		{"exact multiple", 6, 2, 0, []PageSetRun{{3, 2}}},
		{"with remainder", 7, 3, 0, []PageSetRun{{2, 3}, {1, 1}}},
		{"distinct first set", 7, 3, 1, []PageSetRun{{1, 1}, {2, 3}}},
		{"first set equals regular", 6, 3, 3, []PageSetRun{{2, 3}}},
		{"first set larger than layout", 2, 3, 5, []PageSetRun{{1, 2}}},
		{"all three runs", 12, 4, 3, []PageSetRun{{1, 3}, {2, 4}, {1, 1}}},
		{"trailing run merges", 6, 5, 3, []PageSetRun{{2, 3}}},
		{"single page", 1, 3, 0, []PageSetRun{{1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newPagedLayout(tt.count, tt.perSet, tt.firstSet)
			got := l.PageSets()

			if len(got) != len(tt.want) {
				t.Fatalf("PageSets() = %+v, want %+v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("PageSets()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}

			// The runs always partition the page count exactly.
			var total int
			for _, run := range got {
				total += run.Count * run.Length
			}
			if total != tt.count {
				t.Errorf("sum of Count*Length = %d, want %d", total, tt.count)
			}
		})
	}
}

func TestPageSetCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		perSet   int
		firstSet int
		want     int
	}{
		{"empty", 0, 2, 0, 0},
		{"exact", 6, 2, 0, 3},
		{"remainder adds a set", 7, 2, 0, 4},
		{"distinct first set", 7, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newPagedLayout(tt.count, tt.perSet, tt.firstSet)
			if got := l.PageSetCount(); got != tt.want {
				t.Errorf("PageSetCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageSetAgreesWithRunWalk(t *testing.T) {
	// For every page index, PageSet must agree with the set index
	// reconstructed by walking the runs by hand.
	configs := []struct {
		count, perSet, firstSet int
	}{
		{13, 5, 3},
		{7, 3, 1},
		{6, 2, 0},
		{1, 1, 0},
		{9, 4, 4},
	}

	for _, cfg := range configs {
		l := newPagedLayout(cfg.count, cfg.perSet, cfg.firstSet)
		runs := l.PageSets()

		for i := 0; i < cfg.count; i++ {
			want := -1
			pages, sets := 0, 0
			for _, run := range runs {
				if i < pages+run.Count*run.Length {
					want = sets + (i-pages)/run.Length
					break
				}
				pages += run.Count * run.Length
				sets += run.Count
			}
			if got := l.PageSet(i); got != want {
				t.Errorf("config %+v: PageSet(%d) = %d, want %d", cfg, i, got, want)
			}
		}
	}
}

func TestPageSetOutOfRange(t *testing.T) {
	l := newPagedLayout(5, 2, 0)
	if got := l.PageSet(100); got != 0 {
		t.Errorf("PageSet(100) = %d, want 0 (defensive clamp)", got)
	}

	empty := New(nil)
	if got := empty.PageSet(0); got != 0 {
		t.Errorf("PageSet(0) on empty layout = %d, want 0", got)
	}
}

func TestDisplayPagesContinuous(t *testing.T) {
	l := newPagedLayout(5, 2, 0)
	if got := l.DisplayPages(); len(got) != 5 {
		t.Errorf("DisplayPages() in continuous mode = %d pages, want all 5", len(got))
	}
}

func TestDisplayPagesPaged(t *testing.T) {
	l := newPagedLayout(7, 3, 1) // sets: [p0] [p1 p2 p3] [p4 p5 p6]
	l.ContinuousMode = false

	tests := []struct {
		name      string
		current   int
		wantLen   int
		wantFirst int
	}{
		{"first set", 0, 1, 0},
		{"second set", 1, 3, 1},
		{"third set", 2, 3, 4},
		{"clamped beyond last", 9, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.CurrentPageSet = tt.current
			got := l.DisplayPages()
			if len(got) != tt.wantLen {
				t.Fatalf("DisplayPages() = %d pages, want %d", len(got), tt.wantLen)
			}
			if l.IndexOf(got[0]) != tt.wantFirst {
				t.Errorf("DisplayPages() starts at page %d, want %d",
					l.IndexOf(got[0]), tt.wantFirst)
			}
		})
	}

	// Clamping writes the corrected set index back.
	l.CurrentPageSet = 9
	l.DisplayPages()
	if l.CurrentPageSet != 2 {
		t.Errorf("CurrentPageSet after clamp = %d, want 2", l.CurrentPageSet)
	}
}

func TestDisplayPagesShortLastSet(t *testing.T) {
	l := newPagedLayout(7, 3, 0) // sets: [p0 p1 p2] [p3 p4 p5] [p6]
	l.ContinuousMode = false
	l.CurrentPageSet = 2

	got := l.DisplayPages()
	if len(got) != 1 || l.IndexOf(got[0]) != 6 {
		t.Errorf("DisplayPages() for the short last set = %d pages", len(got))
	}
}

func TestDisplayPagesEmpty(t *testing.T) {
	l := New(nil)
	l.ContinuousMode = false
	if got := l.DisplayPages(); len(got) != 0 {
		t.Errorf("DisplayPages() on empty layout = %d pages, want 0", len(got))
	}
}
