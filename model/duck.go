package model

import (
	"image"
	"image/color"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultSpeed = 3

	// FrameCount is the last frame index of the strip, frames run 0..FrameCount.
	FrameCount  = 7
	FrameWidth  = 32
	FrameHeight = 32
	FPS         = 6.0
)

var (
	TintNormal color.Color = color.White
	TintEvil   color.Color = color.RGBA{R: 0xff, A: 0xff}
)

// Texture is whatever the render surface draws from.
type Texture interface {
	Bounds() image.Rectangle
}

type Flip int

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

// Surface draws the src sub-rectangle of tex at the given position.
type Surface interface {
	DrawSprite(tex Texture, at image.Point, src image.Rectangle, tint color.Color, flip Flip)
}

// Duck is the puck the player steers with pistons.
type Duck struct {
	texture  Texture
	position image.Rectangle

	movement     Direction
	prevMovement Direction

	speed   int
	moves   int
	spawned bool
	evil    bool

	frame        int
	timeCounter  float64
	timePerFrame float64
}

func NewDuck(texture Texture, position image.Rectangle, movement Direction, evil bool) *Duck {
	return &Duck{
		texture:      texture,
		position:     position,
		movement:     movement,
		prevMovement: Stop,
		speed:        DefaultSpeed,
		evil:         evil,
		timePerFrame: 1.0 / FPS,
	}
}

func (d *Duck) Direction() Direction          { return d.movement }
func (d *Duck) SetDirection(dir Direction)    { d.movement = dir }
func (d *Duck) Position() image.Rectangle     { return d.position }
func (d *Duck) SetPosition(r image.Rectangle) { d.position = r }
func (d *Duck) Spawned() bool                 { return d.spawned }
func (d *Duck) Moves() int                    { return d.moves }
func (d *Duck) SetMoves(n int)                { d.moves = n }
func (d *Duck) Frame() int                    { return d.frame }
func (d *Duck) Evil() bool                    { return d.evil }
func (d *Duck) Speed() int                    { return d.speed }

// SetSpeed ignores non-positive values.
func (d *Duck) SetSpeed(speed int) {
	if speed > 0 {
		d.speed = speed
	}
}

// Spawn places the duck at start the first time it is called.
func (d *Duck) Spawn(start image.Rectangle) {
	if d.spawned {
		return
	}
	d.position = start
	d.spawned = true
}

// AdvanceAnimation steps at most one frame per call and keeps the leftover time.
func (d *Duck) AdvanceAnimation(elapsed float64) {
	d.timeCounter += elapsed
	if d.timeCounter >= d.timePerFrame {
		d.frame++
		if d.frame > FrameCount {
			d.frame = 0
		}
		d.timeCounter -= d.timePerFrame
	}
}

func (d *Duck) Render(flip Flip, surface Surface) {
	src := image.Rect(d.frame*FrameWidth, 0, d.frame*FrameWidth+FrameWidth, FrameHeight)
	tint := TintNormal
	if d.evil {
		tint = TintEvil
	}
	surface.DrawSprite(d.texture, d.position.Min, src, tint, flip)
}

// Bounce returns the opposite of dir, or Stop when dir is not a travel direction.
func Bounce(dir Direction) Direction {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return Stop
	}
}

// CheckCollision resolves the first tile, rows outer and columns inner,
// that overlaps the duck. Goal and hazard tiles snap the duck onto them.
func (d *Duck) CheckCollision(grid Grid) Direction {
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			tile := grid.At(c, r)
			if tile == nil || !d.position.Overlaps(tile.Position) {
				continue
			}
			switch {
			case tile.Type == Wall || tile.Type.IsPiston():
				return Bounce(d.movement)
			case tile.Type == Goal:
				d.position = tile.Position
				return Stop
			case tile.Type == Hazard:
				d.position = tile.Position
				return Fail
			}
		}
	}
	return d.movement
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

// PistonPush returns the direction of the first piston head whose center
// lies inside the duck. Up and down pistons align the duck's x to the head,
// left and right pistons align its y.
func (d *Duck) PistonPush(bodies []*Tile, heads []image.Rectangle) Direction {
	if len(bodies) == 0 || len(bodies) != len(heads) {
		return d.movement
	}
	for i, head := range heads {
		if bodies[i] == nil || !center(head).In(d.position) {
			continue
		}
		switch bodies[i].Type {
		case UpPiston:
			d.position = d.position.Add(image.Pt(head.Min.X-d.position.Min.X, 0))
			return Up
		case DownPiston:
			d.position = d.position.Add(image.Pt(head.Min.X-d.position.Min.X, 0))
			return Down
		case LeftPiston:
			d.position = d.position.Add(image.Pt(0, head.Min.Y-d.position.Min.Y))
			return Left
		case RightPiston:
			d.position = d.position.Add(image.Pt(0, head.Min.Y-d.position.Min.Y))
			return Right
		}
	}
	return d.movement
}

func (d *Duck) push(pistons *PistonBank) {
	if pistons == nil {
		return
	}
	d.prevMovement = d.movement
	d.movement = d.PistonPush(pistons.Bodies, pistons.Heads)
	if d.prevMovement != d.movement {
		d.moves++
		log.Debugf("Duck.push %s -> %s moves:%d", d.prevMovement.Name(), d.movement.Name(), d.moves)
	}
}

// Update advances the duck one tick. pistons may be nil.
func (d *Duck) Update(elapsed float64, grid Grid, pistons *PistonBank) {
	switch d.movement {
	case Up, Down, Left, Right:
		d.position = d.position.Add(d.step())
		d.movement = d.CheckCollision(grid)
		if d.movement == Fail {
			log.Debugf("Duck.Update hazard at %v", d.position.Min)
			return
		}
		d.push(pistons)
	case Stop:
		d.push(pistons)
	case Fail:
		d.movement = Stop
	}
}

func (d *Duck) step() image.Point {
	switch d.movement {
	case Up:
		return image.Pt(0, -d.speed)
	case Down:
		return image.Pt(0, d.speed)
	case Right:
		return image.Pt(d.speed, 0)
	case Left:
		return image.Pt(-d.speed, 0)
	default:
		return image.Point{}
	}
}

// AtGoal reports whether the duck rests exactly on a goal tile.
func (d *Duck) AtGoal(grid Grid) bool {
	if d.movement != Stop {
		return false
	}
	for _, col := range grid {
		for _, tile := range col {
			if tile != nil && tile.Type == Goal && tile.Position == d.position {
				return true
			}
		}
	}
	return false
}
