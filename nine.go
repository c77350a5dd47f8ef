package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-patch panel. positions are the four x/y cuts of the
// source image: outer left/top, inner left/top, inner right/bottom, outer
// right/bottom.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	targetPositions     [4][2]float64
}

func NewNine(img *ebiten.Image, scale float64, positions [4][2]int) *Nine {
	return &Nine{images: img, alpha: 1, R: 1, G: 1, B: 1, Scale: scale, positions: positions}
}

// generatedPanel is a 3x3 cell rounded frame used when no panel image ships.
func generatedPanel() *ebiten.Image {
	const cell = 8
	src := image.NewRGBA(image.Rect(0, 0, 3*cell, 3*cell))
	fill := color.RGBA{0x20, 0x20, 0x28, 0xe0}
	edge := color.RGBA{0xee, 0xee, 0xee, 0xff}
	for y := 0; y < 3*cell; y++ {
		for x := 0; x < 3*cell; x++ {
			c := fill
			if x < 2 || y < 2 || x >= 3*cell-2 || y >= 3*cell-2 {
				c = edge
			}
			src.Set(x, y, c)
		}
	}
	img, _ := ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	return img
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0] = [2]float64{float64(n.x), float64(n.y)}
	n.targetPositions[1] = [2]float64{
		float64(n.x) + n.Scale*float64(n.positions[1][0]-n.positions[0][0]),
		float64(n.y) + n.Scale*float64(n.positions[1][1]-n.positions[0][1])}
	n.targetPositions[2] = [2]float64{
		float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0]),
		float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])}
	n.targetPositions[3] = [2]float64{float64(n.x + n.width), float64(n.y + n.height)}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			if src.Empty() {
				continue
			}
			// corners keep their size, edges and center stretch
			sx := (n.targetPositions[col+1][0] - n.targetPositions[col][0]) / float64(src.Dx())
			sy := (n.targetPositions[row+1][1] - n.targetPositions[row][1]) / float64(src.Dy())

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
