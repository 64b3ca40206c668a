package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"raycast/level"
	"raycast/model"
	"raycast/raycast"
	"raycast/texture"
)

type blit struct {
	src    *texture.Texture
	sr, dr image.Rectangle
}

type fill struct {
	r image.Rectangle
	c color.RGBA
}

// recorder is a Surface that remembers every call made on it.
type recorder struct {
	w, h  int
	fills []fill
	blits []blit
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) FillRect(rect image.Rectangle, c color.RGBA) {
	r.fills = append(r.fills, fill{rect, c})
}

func (r *recorder) Blit(src *texture.Texture, sr, dr image.Rectangle) {
	r.blits = append(r.blits, blit{src, sr, dr})
}

func loadLevel(t *testing.T, rows []string, angle float64) *level.Level {
	t.Helper()
	lvl, err := level.Load(rows, level.Spawn{Angle: angle, FOV: math.Pi / 3})
	if err != nil {
		t.Fatalf("level.Load: %v", err)
	}
	return lvl
}

var fiveByFive = []string{
	"11111",
	"10001",
	"10X01",
	"10001",
	"11111",
}

func TestCentreColumnHasNoFisheyeCorrection(t *testing.T) {
	lvl := loadLevel(t, fiveByFive, 0)
	p := NewWallProjector(raycast.NewMarcher(lvl.Grid), texture.Bricks(16))

	const width = 320
	slice, ok := p.Project(lvl.Player, width/2, width, 200)
	if !ok {
		t.Fatal("centre column should hit the east wall")
	}
	if slice.Angle != lvl.Player.Angle {
		t.Fatalf("centre ray angle = %v, want %v", slice.Angle, lvl.Player.Angle)
	}
	if slice.Corrected != slice.Hit.Distance {
		t.Errorf("corrected %v != distance %v", slice.Corrected, slice.Hit.Distance)
	}

	if got := CorrectedDistance(3.7, 1.1, 1.1); got != 3.7 {
		t.Errorf("CorrectedDistance with zero offset = %v", got)
	}
}

func TestEveryColumnWritten(t *testing.T) {
	lvl := loadLevel(t, fiveByFive, 0.4)
	wall := texture.Bricks(16)
	p := NewWallProjector(raycast.NewMarcher(lvl.Grid), wall)

	s := &recorder{w: 64, h: 48}
	p.Draw(s, lvl.Player)

	if len(s.fills) != 2 {
		t.Fatalf("expected sky and floor fills, got %d", len(s.fills))
	}
	sky, floor := s.fills[0], s.fills[1]
	if sky.c != DefaultSkyColor || floor.c != DefaultFloorColor {
		t.Errorf("fill colours = %v, %v", sky.c, floor.c)
	}
	if sky.r != image.Rect(0, 0, 64, 24) || floor.r != image.Rect(0, 24, 64, 48) {
		t.Errorf("fill rects = %v, %v", sky.r, floor.r)
	}

	// a closed room: every ray hits, so every column gets exactly one strip
	seen := make(map[int]int)
	for _, b := range s.blits {
		if b.src != wall {
			t.Fatalf("unexpected blit source %p", b.src)
		}
		if b.dr.Dx() != 1 || b.sr.Dx() != 1 {
			t.Errorf("strip is not one pixel wide: src %v dst %v", b.sr, b.dr)
		}
		if b.sr.Min.Y != 0 || b.sr.Max.Y != wall.Height {
			t.Errorf("strip should sample the full texture height, got %v", b.sr)
		}
		if b.dr.Min.Y < 0 || b.dr.Max.Y > 48 {
			t.Errorf("strip %v leaves the viewport", b.dr)
		}
		seen[b.dr.Min.X]++
	}
	for x := 0; x < 64; x++ {
		if seen[x] != 1 {
			t.Errorf("column %d written %d times", x, seen[x])
		}
	}
}

func TestMissedColumnsAreNotDrawn(t *testing.T) {
	lvl := loadLevel(t, fiveByFive, 0)
	m := raycast.NewMarcher(lvl.Grid)
	m.MaxDepth = 0.5
	p := NewWallProjector(m, texture.Bricks(16))

	s := &recorder{w: 32, h: 24}
	p.Draw(s, lvl.Player)

	if len(s.blits) != 0 {
		t.Errorf("expected no wall strips when every ray misses, got %d", len(s.blits))
	}
	if len(s.fills) != 2 {
		t.Errorf("sky and floor must still be painted, got %d fills", len(s.fills))
	}
}

func TestWallHeightClampedNearWall(t *testing.T) {
	lvl := loadLevel(t, fiveByFive, 0)
	lvl.Player.Position.X = 3.999
	p := NewWallProjector(raycast.NewMarcher(lvl.Grid), texture.Bricks(16))

	slice, ok := p.Project(lvl.Player, 50, 100, 80)
	if !ok {
		t.Fatal("expected a hit")
	}
	if slice.Height != 80 || slice.Top != 0 || slice.Bottom != 80 {
		t.Errorf("slice = %+v, want full height", slice)
	}
	if math.IsInf(slice.Height, 0) || math.IsNaN(slice.Height) {
		t.Errorf("non-finite wall height %v", slice.Height)
	}
}

func TestTextureColumn(t *testing.T) {
	tests := []struct {
		x, y  float64
		width int
		want  int
	}{
		{4.0, 2.25, 64, 16},
		{1.5, 3.0, 64, 32},
		{-0.25, 0, 64, 48},
		{2.999999999, 1, 8, 7},
	}
	for _, tt := range tests {
		if got := TextureColumn(tt.x, tt.y, tt.width); got != tt.want {
			t.Errorf("TextureColumn(%v, %v, %d) = %d, want %d", tt.x, tt.y, tt.width, got, tt.want)
		}
	}
}

func TestSpriteCullIsStrict(t *testing.T) {
	player := model.NewPlayer(10, 10, 0, math.Pi/3)
	r := &SpriteRenderer{}

	at := func(angle float64) *model.Sprite {
		return model.NewSprite(10+3*math.Cos(angle), 10+3*math.Sin(angle), texture.Plant(8))
	}

	const eps = 1e-6
	if _, ok := r.Project(player, at(player.FOV/2+eps), 320, 200); ok {
		t.Error("sprite just outside the field of view was not culled")
	}
	if _, ok := r.Project(player, at(-player.FOV/2-eps), 320, 200); ok {
		t.Error("sprite just outside the left edge was not culled")
	}
	v, ok := r.Project(player, at(player.FOV/2-eps), 320, 200)
	if !ok {
		t.Fatal("sprite just inside the field of view was culled")
	}
	if math.Abs(v.ScreenX-320) > 0.01 {
		t.Errorf("screenX = %v, want near the right edge", v.ScreenX)
	}
	if math.Abs(v.Size-200.0/3) > 1e-9 {
		t.Errorf("size = %v, want %v", v.Size, 200.0/3)
	}
}

func TestSpriteAngleWrapsAroundPi(t *testing.T) {
	// facing west, a sprite straight ahead sits where atan2 flips sign
	player := model.NewPlayer(5, 5, math.Pi-0.01, math.Pi/3)
	sprite := model.NewSprite(2, 4.95, texture.Plant(8))

	v, ok := (&SpriteRenderer{}).Project(player, sprite, 100, 100)
	if !ok {
		t.Fatalf("sprite ahead of the player was culled: angle %v", v.Angle)
	}
}

func TestSpritesDrawnFarthestFirst(t *testing.T) {
	player := model.NewPlayer(0, 0, 0, math.Pi/3)
	near := model.NewSprite(2, 0, texture.Plant(8))
	far := model.NewSprite(5, 0.1, texture.Plant(8))
	mid := model.NewSprite(3, -0.1, texture.Plant(8))
	sprites := []*model.Sprite{near, far, mid}

	s := &recorder{w: 100, h: 100}
	(&SpriteRenderer{}).Draw(s, player, sprites)

	if len(s.blits) != 3 {
		t.Fatalf("expected 3 sprite blits, got %d", len(s.blits))
	}
	want := []*model.Sprite{far, mid, near}
	for i, b := range s.blits {
		if b.src != want[i].Texture {
			t.Errorf("blit %d drew the wrong sprite", i)
		}
		if b.sr != want[i].Texture.Bounds() {
			t.Errorf("blit %d source = %v, want whole texture", i, b.sr)
		}
	}
	if sprites[0] != near {
		t.Error("Draw reordered the caller's slice")
	}

	// nearest sprite: size 100/2, centred on the screen
	if got := s.blits[2].dr; got != image.Rect(25, 25, 75, 75) {
		t.Errorf("near sprite rect = %v", got)
	}
}

func TestSpriteVisibleThroughWalls(t *testing.T) {
	lvl := loadLevel(t, []string{
		"1111111",
		"1X01001",
		"1111111",
	}, 0)
	sprite := model.NewSprite(4.5, 1.5, texture.Plant(8))
	r := New(NewWallProjector(raycast.NewMarcher(lvl.Grid), texture.Bricks(8)))

	s := &recorder{w: 40, h: 30}
	r.Draw(s, lvl.Player, []*model.Sprite{sprite})

	last := s.blits[len(s.blits)-1]
	if last.src != sprite.Texture {
		t.Error("sprite behind a wall should still be drawn last")
	}
}
