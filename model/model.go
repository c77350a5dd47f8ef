package model

import "image"

type Direction int

const (
	Up Direction = iota
	Down
	Right
	Left
	Stop
	Fail
)

type TileType int

const (
	Empty TileType = iota
	Wall
	Goal
	Hazard
	UpPiston
	DownPiston
	LeftPiston
	RightPiston
)

// IsPiston reports whether t is one of the four piston bodies.
func (t TileType) IsPiston() bool {
	switch t {
	case UpPiston, DownPiston, LeftPiston, RightPiston:
		return true
	default:
		return false
	}
}

type Tile struct {
	Col, Row int
	Type     TileType
	Position image.Rectangle
}

// Grid is addressed Grid[col][row].
type Grid [][]*Tile

func (g Grid) Cols() int {
	return len(g)
}

// Rows is the length of the longest column.
func (g Grid) Rows() int {
	rows := 0
	for _, col := range g {
		if len(col) > rows {
			rows = len(col)
		}
	}
	return rows
}

// At returns nil outside the grid.
func (g Grid) At(col, row int) *Tile {
	if col < 0 || col >= len(g) || row < 0 || row >= len(g[col]) {
		return nil
	}
	return g[col][row]
}

// PistonBank holds index-aligned piston bodies and their heads.
type PistonBank struct {
	Bodies []*Tile
	Heads  []image.Rectangle
}

func (b *PistonBank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Bodies)
}

type Level struct {
	Name      string
	TileSize  int
	Speed     int
	Grid      Grid
	Start     image.Rectangle
	Direction Direction
	Evil      bool
	Par       int
	Pistons   *PistonBank
}

// Bounds is the pixel area covered by the grid.
func (l *Level) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Grid.Cols()*l.TileSize, l.Grid.Rows()*l.TileSize)
}
