package model

import "image"

// NewGrid creates a cols x rows grid of empty tiles, each tileSize pixels wide.
func NewGrid(cols, rows, tileSize int) Grid {
	grid := make(Grid, 0, cols)
	for c := 0; c < cols; c++ {
		column := make([]*Tile, 0, rows)
		for r := 0; r < rows; r++ {
			column = append(column, &Tile{
				Col:      c,
				Row:      r,
				Type:     Empty,
				Position: image.Rect(c*tileSize, r*tileSize, (c+1)*tileSize, (r+1)*tileSize),
			})
		}
		grid = append(grid, column)
	}
	return grid
}

// Collect gathers every piston body of the grid, rows outer and columns
// inner, with each head resting on its body.
func (g Grid) Collect() *PistonBank {
	bank := &PistonBank{
		Bodies: make([]*Tile, 0),
		Heads:  make([]image.Rectangle, 0),
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			tile := g.At(c, r)
			if tile != nil && tile.Type.IsPiston() {
				bank.Bodies = append(bank.Bodies, tile)
				bank.Heads = append(bank.Heads, tile.Position)
			}
		}
	}
	return bank
}

// Facing is the unit step a piston head travels when it extends.
func (t TileType) Facing() image.Point {
	switch t {
	case UpPiston:
		return image.Pt(0, -1)
	case DownPiston:
		return image.Pt(0, 1)
	case LeftPiston:
		return image.Pt(-1, 0)
	case RightPiston:
		return image.Pt(1, 0)
	default:
		return image.Point{}
	}
}

// BodyAt returns the index of the piston whose body contains p, or -1.
func (b *PistonBank) BodyAt(p image.Point) int {
	if b == nil {
		return -1
	}
	for i, body := range b.Bodies {
		if body != nil && p.In(body.Position) {
			return i
		}
	}
	return -1
}

// Retract puts every head back on its body.
func (b *PistonBank) Retract() {
	if b == nil {
		return
	}
	for i, body := range b.Bodies {
		if i < len(b.Heads) && body != nil {
			b.Heads[i] = body.Position
		}
	}
}
