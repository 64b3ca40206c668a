package raycast

import (
	"math"
	"strings"
	"testing"

	"raycast/level"
)

// room returns a w x h grid of free cells surrounded by walls, with the
// player spawn in the middle.
func room(t *testing.T, w, h int) *level.Grid {
	t.Helper()
	rows := make([]string, h)
	for y := range rows {
		if y == 0 || y == h-1 {
			rows[y] = strings.Repeat("1", w)
			continue
		}
		rows[y] = "1" + strings.Repeat("0", w-2) + "1"
	}
	mid := []byte(rows[h/2])
	mid[w/2] = 'X'
	rows[h/2] = string(mid)

	lvl, err := level.Load(rows, level.Spawn{})
	if err != nil {
		t.Fatalf("level.Load: %v", err)
	}
	return lvl.Grid
}

func TestCastFiveByFive(t *testing.T) {
	m := NewMarcher(room(t, 5, 5))

	hit := m.Cast(2, 2, 0)
	if hit.Miss {
		t.Fatal("expected a wall hit")
	}
	if hit.Distance < 1.99 || hit.Distance > 2.01 {
		t.Errorf("distance = %v, want within [1.99, 2.01]", hit.Distance)
	}
	if math.Abs(hit.HitX-4) > 0.01 || math.Abs(hit.HitY-2) > 1e-9 {
		t.Errorf("hit point = (%v, %v), want (4, 2)", hit.HitX, hit.HitY)
	}

	// from the cell centre the far wall is a cell and a half away
	hit = m.Cast(2.5, 2.5, 0)
	if hit.Distance < 1.49 || hit.Distance > 1.51 {
		t.Errorf("distance from centre = %v, want about 1.5", hit.Distance)
	}
}

func TestCastDeterministic(t *testing.T) {
	m := NewMarcher(room(t, 9, 7))

	for _, angle := range []float64{0, 0.3, 1.7, -2.2, math.Pi} {
		first := m.Cast(4.37, 3.61, angle)
		for i := 0; i < 5; i++ {
			if got := m.Cast(4.37, 3.61, angle); got != first {
				t.Fatalf("angle %v: cast %d = %+v, first = %+v", angle, i, got, first)
			}
		}
	}
}

func TestCastMiss(t *testing.T) {
	g := room(t, 50, 50)

	casters := map[string]Caster{
		"marcher": NewMarcher(g),
		"dda":     NewDDA(g),
	}
	for name, c := range casters {
		t.Run(name, func(t *testing.T) {
			hit := c.Cast(25.5, 25.5, 0)
			if !hit.Miss {
				t.Fatalf("expected a miss, got %+v", hit)
			}
			if hit.Distance != DefaultMaxDepth {
				t.Errorf("distance = %v, want %v", hit.Distance, DefaultMaxDepth)
			}
			if math.Abs(hit.HitX-45.5) > 1e-9 {
				t.Errorf("hitX = %v, want 45.5", hit.HitX)
			}
		})
	}
}

func TestCastLeavingGridIsHit(t *testing.T) {
	lvl, err := level.Load([]string{"000", "0X0", "000"}, level.Spawn{})
	if err != nil {
		t.Fatal(err)
	}
	m := NewMarcher(lvl.Grid)

	hit := m.Cast(1.5, 1.5, math.Pi)
	if hit.Miss {
		t.Fatal("leaving the grid should stop the ray")
	}
	if hit.HitX >= 0 || hit.HitX < -0.02 {
		t.Errorf("hitX = %v, want just past the left edge", hit.HitX)
	}
}

func TestDDAMatchesMarcher(t *testing.T) {
	lvl, err := level.Load(level.DefaultRows, level.Spawn{})
	if err != nil {
		t.Fatal(err)
	}
	marcher, dda := NewMarcher(lvl.Grid), NewDDA(lvl.Grid)

	tests := []struct {
		name    string
		x, y, a float64
	}{
		{"east", 2, 2, 0},
		{"west from centre", 2.5, 2.5, math.Pi},
		{"south corridor", 1.5, 4.5, math.Pi / 2},
		{"north", 2.5, 2.5, -math.Pi / 2},
		{"diagonal", 2.5, 2.5, math.Pi / 4},
		{"shallow", 1.2, 8.5, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := marcher.Cast(tt.x, tt.y, tt.a)
			got := dda.Cast(tt.x, tt.y, tt.a)
			if got.Miss != want.Miss {
				t.Fatalf("miss = %v, marcher miss = %v", got.Miss, want.Miss)
			}
			// the marcher overshoots the boundary by less than one step
			if d := want.Distance - got.Distance; d < 0 || d > DefaultStep+1e-9 {
				t.Errorf("dda %v vs marcher %v", got.Distance, want.Distance)
			}
		})
	}
}
