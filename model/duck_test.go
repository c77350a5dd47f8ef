package model

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	tex  Texture
	at   image.Point
	src  image.Rectangle
	tint color.Color
	flip Flip
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawSprite(tex Texture, at image.Point, src image.Rectangle, tint color.Color, flip Flip) {
	s.calls = append(s.calls, drawCall{tex, at, src, tint, flip})
}

type strip struct{}

func (strip) Bounds() image.Rectangle { return image.Rect(0, 0, FrameWidth*(FrameCount+1), FrameHeight) }

func singleTileGrid(t TileType, pos image.Rectangle) Grid {
	return Grid{{&Tile{Type: t, Position: pos}}}
}

func TestBounce(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		assert.NotEqual(t, d, Bounce(d), d.Name())
		assert.Equal(t, d, Bounce(Bounce(d)), d.Name())
	}
	assert.Equal(t, Down, Bounce(Up))
	assert.Equal(t, Left, Bounce(Right))
	assert.Equal(t, Stop, Bounce(Stop))
	assert.Equal(t, Stop, Bounce(Fail))
}

func TestSpawnOnlyOnce(t *testing.T) {
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Stop, false)
	require.False(t, d.Spawned())

	first := image.Rect(64, 64, 96, 96)
	d.Spawn(first)
	d.Spawn(image.Rect(128, 0, 160, 32))

	assert.True(t, d.Spawned())
	assert.Equal(t, first, d.Position())
}

func TestAdvanceAnimationWraps(t *testing.T) {
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Stop, false)
	step := 1.0 / FPS

	for i := 1; i <= FrameCount; i++ {
		d.AdvanceAnimation(step)
		assert.Equal(t, i, d.Frame())
	}
	d.AdvanceAnimation(step)
	assert.Equal(t, 0, d.Frame())
}

func TestAdvanceAnimationKeepsLeftover(t *testing.T) {
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Stop, false)
	step := 1.0 / FPS

	d.AdvanceAnimation(step * 0.75)
	assert.Equal(t, 0, d.Frame())
	d.AdvanceAnimation(step * 0.75)
	assert.Equal(t, 1, d.Frame())
	// half a frame was carried over
	d.AdvanceAnimation(step * 0.6)
	assert.Equal(t, 2, d.Frame())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		evil bool
		tint color.Color
	}{
		{"normal", false, TintNormal},
		{"evil", true, TintEvil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDuck(strip{}, image.Rect(40, 50, 72, 82), Stop, tt.evil)
			d.AdvanceAnimation(1.0 / FPS)
			d.AdvanceAnimation(1.0 / FPS)

			s := &recordingSurface{}
			d.Render(FlipHorizontal, s)

			require.Len(t, s.calls, 1)
			call := s.calls[0]
			assert.Equal(t, image.Pt(40, 50), call.at)
			assert.Equal(t, image.Rect(64, 0, 96, 32), call.src)
			assert.Equal(t, tt.tint, call.tint)
			assert.Equal(t, FlipHorizontal, call.flip)
			assert.Equal(t, image.Rect(40, 50, 72, 82), d.Position())
		})
	}
}

func TestCheckCollisionWallBounces(t *testing.T) {
	pos := image.Rect(10, 10, 42, 42)
	d := NewDuck(strip{}, pos, Right, false)

	assert.Equal(t, Left, d.CheckCollision(singleTileGrid(Wall, pos)))
	assert.Equal(t, pos, d.Position())
}

func TestCheckCollisionPistonBodyBounces(t *testing.T) {
	for _, typ := range []TileType{UpPiston, DownPiston, LeftPiston, RightPiston} {
		d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Up, false)
		assert.Equal(t, Down, d.CheckCollision(singleTileGrid(typ, image.Rect(16, 16, 48, 48))), typ.Name())
	}
}

func TestCheckCollisionGoalSnaps(t *testing.T) {
	goal := image.Rect(32, 0, 64, 32)
	d := NewDuck(strip{}, image.Rect(5, 0, 37, 32), Right, false)

	assert.Equal(t, Stop, d.CheckCollision(singleTileGrid(Goal, goal)))
	assert.Equal(t, goal, d.Position())
}

func TestCheckCollisionHazardThenStop(t *testing.T) {
	hazard := image.Rect(32, 0, 64, 32)
	grid := singleTileGrid(Hazard, hazard)
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Right, false)

	d.Update(1.0/60, grid, nil)
	assert.Equal(t, Fail, d.Direction())
	assert.Equal(t, hazard, d.Position())

	d.Update(1.0/60, grid, nil)
	assert.Equal(t, Stop, d.Direction())
	assert.Equal(t, hazard, d.Position())
	assert.Equal(t, 0, d.Moves())
}

func TestHazardIgnoresPistonHead(t *testing.T) {
	hazard := image.Rect(32, 0, 64, 32)
	grid := singleTileGrid(Hazard, hazard)
	bank := &PistonBank{
		Bodies: []*Tile{{Type: UpPiston, Position: image.Rect(32, 32, 64, 64)}},
		Heads:  []image.Rectangle{hazard},
	}
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Right, false)

	d.Update(1.0/60, grid, bank)
	assert.Equal(t, Fail, d.Direction())
	assert.Equal(t, hazard, d.Position())
	assert.Equal(t, 0, d.Moves())

	d.Update(1.0/60, grid, bank)
	assert.Equal(t, Stop, d.Direction())
	assert.Equal(t, hazard, d.Position())
	assert.Equal(t, 0, d.Moves())
}

func TestCheckCollisionJaggedGrid(t *testing.T) {
	// the wall sits in a row the first column does not reach
	grid := Grid{
		{&Tile{Type: Empty, Position: image.Rect(0, 0, 32, 32)}},
		{
			&Tile{Type: Empty, Position: image.Rect(32, 0, 64, 32)},
			&Tile{Type: Wall, Position: image.Rect(32, 32, 64, 64)},
		},
	}
	require.Equal(t, 2, grid.Rows())

	d := NewDuck(strip{}, image.Rect(32, 8, 64, 40), Down, false)
	assert.Equal(t, Up, d.CheckCollision(grid))
}

func TestCheckCollisionIgnoresEmptyAndTouching(t *testing.T) {
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Left, false)
	grid := Grid{
		{&Tile{Type: Empty, Position: image.Rect(0, 0, 32, 32)}},
		{&Tile{Type: Wall, Position: image.Rect(32, 0, 64, 32)}},
		{nil},
	}
	assert.Equal(t, Left, d.CheckCollision(grid))
	assert.Equal(t, Left, d.CheckCollision(nil))
}

func TestCheckCollisionFirstHitWins(t *testing.T) {
	// the duck overlaps a goal at row 0 and a wall at row 1; rows are scanned first
	d := NewDuck(strip{}, image.Rect(0, 16, 32, 48), Down, false)
	grid := Grid{{
		&Tile{Type: Goal, Position: image.Rect(0, 0, 32, 32)},
		&Tile{Type: Wall, Position: image.Rect(0, 32, 32, 64)},
	}}
	assert.Equal(t, Stop, d.CheckCollision(grid))
	assert.Equal(t, image.Rect(0, 0, 32, 32), d.Position())
}

func TestPistonPush(t *testing.T) {
	tests := []struct {
		typ  TileType
		want Direction
		pos  image.Rectangle
	}{
		{UpPiston, Up, image.Rect(100, 10, 132, 42)},
		{DownPiston, Down, image.Rect(100, 10, 132, 42)},
		{LeftPiston, Left, image.Rect(110, 0, 142, 32)},
		{RightPiston, Right, image.Rect(110, 0, 142, 32)},
	}
	for _, tt := range tests {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			d := NewDuck(strip{}, image.Rect(110, 10, 142, 42), Stop, false)
			head := image.Rect(100, 0, 132, 32)
			got := d.PistonPush([]*Tile{{Type: tt.typ}}, []image.Rectangle{head})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pos, d.Position())
		})
	}
}

func TestPistonPushSkipsBadInput(t *testing.T) {
	head := image.Rect(0, 0, 32, 32)
	body := &Tile{Type: UpPiston}

	d := NewDuck(strip{}, head, Right, false)
	assert.Equal(t, Right, d.PistonPush(nil, []image.Rectangle{head}))
	assert.Equal(t, Right, d.PistonPush([]*Tile{body}, nil))
	assert.Equal(t, Right, d.PistonPush([]*Tile{body, body}, []image.Rectangle{head}))
	assert.Equal(t, Right, d.PistonPush([]*Tile{{Type: Wall}}, []image.Rectangle{head}))
	assert.Equal(t, Right, d.PistonPush([]*Tile{body}, []image.Rectangle{image.Rect(200, 200, 232, 232)}))
	assert.Equal(t, head, d.Position())
}

func TestUpdateMovesRight(t *testing.T) {
	d := NewDuck(strip{}, image.Rect(10, 10, 42, 42), Right, false)
	d.Update(1.0/60, Grid{}, nil)

	assert.Equal(t, 13, d.Position().Min.X)
	assert.Equal(t, 10, d.Position().Min.Y)
	assert.Equal(t, Right, d.Direction())
	assert.Equal(t, 0, d.Moves())
}

func TestUpdateSteps(t *testing.T) {
	tests := []struct {
		dir  Direction
		want image.Point
	}{
		{Up, image.Pt(10, 7)},
		{Down, image.Pt(10, 13)},
		{Left, image.Pt(7, 10)},
		{Right, image.Pt(13, 10)},
		{Stop, image.Pt(10, 10)},
	}
	for _, tt := range tests {
		d := NewDuck(strip{}, image.Rect(10, 10, 42, 42), tt.dir, false)
		d.Update(1.0/60, nil, nil)
		assert.Equal(t, tt.want, d.Position().Min, tt.dir.Name())
	}
}

func TestUpdateCountsPistonRedirect(t *testing.T) {
	bank := &PistonBank{
		Bodies: []*Tile{{Type: UpPiston, Position: image.Rect(64, 64, 96, 96)}},
		Heads:  []image.Rectangle{image.Rect(64, 32, 96, 64)},
	}

	d := NewDuck(strip{}, image.Rect(60, 32, 92, 64), Right, false)
	d.Update(1.0/60, nil, bank)
	assert.Equal(t, Up, d.Direction())
	assert.Equal(t, 64, d.Position().Min.X)
	assert.Equal(t, 1, d.Moves())

	// still over the head and already heading up: no extra move
	d.SetPosition(image.Rect(64, 40, 96, 72))
	d.Update(1.0/60, nil, bank)
	assert.Equal(t, Up, d.Direction())
	assert.Equal(t, 1, d.Moves())
}

func TestUpdateStoppedDuckIsPushed(t *testing.T) {
	bank := &PistonBank{
		Bodies: []*Tile{{Type: LeftPiston}},
		Heads:  []image.Rectangle{image.Rect(0, 4, 32, 36)},
	}
	d := NewDuck(strip{}, image.Rect(0, 0, 32, 32), Stop, false)

	d.Update(1.0/60, nil, bank)
	assert.Equal(t, Left, d.Direction())
	assert.Equal(t, image.Rect(0, 4, 32, 36), d.Position())
	assert.Equal(t, 1, d.Moves())

	d.SetDirection(Stop)
	d.Update(1.0/60, nil, &PistonBank{})
	assert.Equal(t, Stop, d.Direction())
	assert.Equal(t, 1, d.Moves())
}

func TestUpdateWallBounceIsNotAMove(t *testing.T) {
	grid := singleTileGrid(Wall, image.Rect(40, 0, 72, 32))
	d := NewDuck(strip{}, image.Rect(6, 0, 38, 32), Right, false)

	d.Update(1.0/60, grid, &PistonBank{})
	assert.Equal(t, Left, d.Direction())
	assert.Equal(t, 0, d.Moves())
}

func TestAtGoal(t *testing.T) {
	goal := image.Rect(32, 0, 64, 32)
	grid := Grid{{&Tile{Type: Empty, Position: image.Rect(0, 0, 32, 32)}}, {&Tile{Type: Goal, Position: goal}}}
	d := NewDuck(strip{}, image.Rect(3, 0, 35, 32), Right, false)

	assert.False(t, d.AtGoal(grid))
	d.Update(1.0/60, grid, nil)
	assert.True(t, d.AtGoal(grid))
}
