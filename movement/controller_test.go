package movement

import (
	"math"
	"testing"

	"raycast/level"
	"raycast/model"
)

type keys struct {
	forward, back, left, right, strafe bool
}

func (k keys) Forward() bool   { return k.forward }
func (k keys) Back() bool      { return k.back }
func (k keys) TurnLeft() bool  { return k.left }
func (k keys) TurnRight() bool { return k.right }
func (k keys) Strafe() bool    { return k.strafe }

func load(t *testing.T, rows ...string) *level.Level {
	t.Helper()
	lvl, err := level.Load(rows, level.Spawn{FOV: math.Pi / 3})
	if err != nil {
		t.Fatalf("level.Load: %v", err)
	}
	return lvl
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCanMoveToBounds(t *testing.T) {
	lvl := load(t,
		"X0000",
		"00000",
		"00000",
	)
	c := New(lvl.Grid)

	outside := []struct{ x, y float64 }{
		{-0.01, 1.5},
		{-3, -3},
		{5, 1.5},
		{5.2, 1.5},
		{2.5, -0.5},
		{2.5, 3},
		{2.5, 7.25},
	}
	for _, p := range outside {
		if c.CanMoveTo(p.x, p.y) {
			t.Errorf("CanMoveTo(%v, %v) = true outside the grid", p.x, p.y)
		}
	}

	if !c.CanMoveTo(2.5, 1.5) {
		t.Error("CanMoveTo rejected the middle of a free cell")
	}
	// the grid border counts as blocked
	if c.CanMoveTo(0.05, 1.5) {
		t.Error("CanMoveTo accepted a point inside the tolerance band at the grid edge")
	}
}

func TestCanMoveToTolerance(t *testing.T) {
	lvl := load(t,
		"11111",
		"1X001",
		"10101",
		"10001",
		"11111",
	)
	c := New(lvl.Grid)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 1.5, 1.5, true},
		{"wall cell", 2.5, 2.5, false},
		{"close to west wall", 1.05, 1.5, false},
		{"inside the band", 1.09, 1.5, false},
		{"just past the band", 1.11, 1.5, true},
		{"close to free neighbour", 1.95, 1.5, true},
		{"crossing into free neighbour", 2.02, 1.5, true},
		{"close to north wall", 2.5, 1.08, false},
		{"corner of diagonal wall", 1.95, 1.95, false},
		{"close to free neighbour below", 3.5, 2.95, true},
		{"corner at outer walls", 3.95, 3.95, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CanMoveTo(tt.x, tt.y); got != tt.want {
				t.Errorf("CanMoveTo(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWallBlocksMovement(t *testing.T) {
	lvl := load(t,
		"111",
		"1X1",
		"111",
	)
	c := New(lvl.Grid)
	c.MoveSpeed = 1

	for _, angle := range []float64{0, 0.7, math.Pi / 2, 2, math.Pi, -2.5, -math.Pi / 2} {
		p := model.NewPlayer(1.5, 1.5, angle, math.Pi/3)
		c.Update(p, keys{forward: true})
		if p.Position.X != 1.5 || p.Position.Y != 1.5 {
			t.Errorf("angle %v: player moved to %v", angle, p.Position)
		}
	}

	// a short step that ends in the band next to a wall is rejected too
	c.MoveSpeed = DefaultMoveSpeed
	p := model.NewPlayer(1.88, 1.5, 0, math.Pi/3)
	c.Update(p, keys{forward: true})
	if p.Position.X != 1.88 {
		t.Errorf("player moved to %v", p.Position)
	}
}

func TestStrafeBlockedTurnSucceeds(t *testing.T) {
	lvl := load(t,
		"11111",
		"1X001",
		"10001",
		"11111",
	)
	c := New(lvl.Grid)

	p := model.NewPlayer(2.5, 1.12, 0, math.Pi/3)
	c.Update(p, keys{left: true, strafe: true})
	if p.Position.X != 2.5 || p.Position.Y != 1.12 {
		t.Errorf("strafe into the north wall moved the player to %v", p.Position)
	}
	if p.Angle != 0 {
		t.Errorf("strafing rotated the player to %v", p.Angle)
	}

	c.Update(p, keys{left: true})
	if !near(p.Angle, -DefaultRotationSpeed) {
		t.Errorf("angle after turning left = %v", p.Angle)
	}
	c.Update(p, keys{right: true})
	c.Update(p, keys{right: true})
	if !near(p.Angle, DefaultRotationSpeed) {
		t.Errorf("angle after turning right twice = %v", p.Angle)
	}
}

func TestTurnWrapsAngle(t *testing.T) {
	lvl := load(t, "X")
	c := New(lvl.Grid)

	p := model.NewPlayer(0.5, 0.5, math.Pi-0.01, math.Pi/3)
	c.Update(p, keys{right: true})
	if !near(p.Angle, -math.Pi+0.02) {
		t.Errorf("angle = %v, want %v", p.Angle, -math.Pi+0.02)
	}
	c.Update(p, keys{left: true})
	if !near(p.Angle, math.Pi-0.01) {
		t.Errorf("angle = %v, want %v", p.Angle, math.Pi-0.01)
	}
}

func TestMovesAreIndependent(t *testing.T) {
	lvl := load(t,
		"1111111",
		"1000001",
		"1000001",
		"100X001",
		"1000001",
		"1111111",
	)
	c := New(lvl.Grid)

	t.Run("forward and strafe both apply", func(t *testing.T) {
		p := model.NewPlayer(3.5, 3.5, 0, math.Pi/3)
		c.Update(p, keys{forward: true, right: true, strafe: true})
		if !near(p.Position.X, 3.55) || !near(p.Position.Y, 3.55) {
			t.Errorf("position = %v, want (3.55, 3.55)", p.Position)
		}
	})

	t.Run("blocked strafe keeps forward", func(t *testing.T) {
		p := model.NewPlayer(3.5, 4.85, 0, math.Pi/3)
		c.Update(p, keys{forward: true, right: true, strafe: true})
		if !near(p.Position.X, 3.55) || p.Position.Y != 4.85 {
			t.Errorf("position = %v, want (3.55, 4.85)", p.Position)
		}
	})

	t.Run("forward and back cancel", func(t *testing.T) {
		for _, angle := range []float64{0, 0.3, 1.2, 2.9, -0.7, -2.2, math.Pi} {
			p := model.NewPlayer(3.37, 3.61, angle, math.Pi/3)
			start := p.Position
			c.Update(p, keys{forward: true, back: true})
			if p.Position != start {
				t.Errorf("angle %v: position = %v, want exactly %v", angle, p.Position, start)
			}
		}
	})

	t.Run("back mirrors forward", func(t *testing.T) {
		fwd := model.NewPlayer(3.5, 3.5, 0.9, math.Pi/3)
		back := model.NewPlayer(3.5, 3.5, 0.9, math.Pi/3)
		c.Update(fwd, keys{forward: true})
		c.Update(back, keys{back: true})
		if !near(fwd.Position.X-3.5, 3.5-back.Position.X) || !near(fwd.Position.Y-3.5, 3.5-back.Position.Y) {
			t.Errorf("forward %v and back %v are not symmetric about (3.5, 3.5)", fwd.Position, back.Position)
		}
		want := 3.5 + DefaultMoveSpeed*math.Cos(0.9)
		if !near(fwd.Position.X, want) {
			t.Errorf("forward x = %v, want %v", fwd.Position.X, want)
		}
	})

	t.Run("strafe is perpendicular", func(t *testing.T) {
		p := model.NewPlayer(3.5, 3.5, 0.4, math.Pi/3)
		c.Update(p, keys{left: true, strafe: true})
		dx, dy := p.Position.X-3.5, p.Position.Y-3.5
		if !near(dx*math.Cos(0.4)+dy*math.Sin(0.4), 0) {
			t.Errorf("strafe step (%v, %v) is not perpendicular to the heading", dx, dy)
		}
		if !near(math.Hypot(dx, dy), DefaultMoveSpeed) {
			t.Errorf("strafe step length = %v", math.Hypot(dx, dy))
		}
	})

	t.Run("back", func(t *testing.T) {
		p := model.NewPlayer(3.5, 3.5, math.Pi/2, math.Pi/3)
		c.Update(p, keys{back: true})
		if !near(p.Position.X, 3.5) || !near(p.Position.Y, 3.45) {
			t.Errorf("position = %v, want (3.5, 3.45)", p.Position)
		}
	})
}

func TestStrictTolerance(t *testing.T) {
	lvl := load(t,
		"11111",
		"1X001",
		"10001",
		"11111",
	)
	c := New(lvl.Grid)
	c.StrictTolerance = true

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 1.5, 1.5, true},
		{"edge shared with free cell", 1.95, 1.5, false},
		{"just inside the band", 2.05, 1.5, false},
		{"past the band", 2.15, 1.5, true},
		{"free cell below", 2.5, 1.95, false},
		{"wall", 1.5, 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CanMoveTo(tt.x, tt.y); got != tt.want {
				t.Errorf("CanMoveTo(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// a default step cannot carry the player across the band
	p := model.NewPlayer(1.88, 1.5, 0, math.Pi/3)
	c.Update(p, keys{forward: true})
	if p.Position.X != 1.88 {
		t.Errorf("player crossed into the next cell: %v", p.Position)
	}

	c.StrictTolerance = false
	c.Update(p, keys{forward: true})
	if !near(p.Position.X, 1.93) {
		t.Errorf("without the strict band the step should apply, got %v", p.Position)
	}
}

func TestTurnFromHugeAngle(t *testing.T) {
	lvl := load(t, "X")
	c := New(lvl.Grid)

	for _, angle := range []float64{1e20, -1e20, 1e300, 7 * math.Pi} {
		p := model.NewPlayer(0.5, 0.5, angle, math.Pi/3)
		c.Update(p, keys{left: true})
		if p.Angle <= -math.Pi || p.Angle > math.Pi {
			t.Errorf("angle %v: wrapped to %v, outside (-pi, pi]", angle, p.Angle)
		}
	}
}
