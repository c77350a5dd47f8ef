package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/puckduck/model"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

var COLOR_FLOOR = HexToF32(0x2b2b33)

var TILE_COLORS = map[model.TileType]GameColor{
	model.Empty:       COLOR_FLOOR,
	model.Wall:        HexToF32(0x6b6b78),
	model.Goal:        HexToF32(0x0abd38),
	model.Hazard:      HexToF32(0xfa3636),
	model.UpPiston:    HexToF32(0xedbc1e),
	model.DownPiston:  HexToF32(0xedbc1e),
	model.LeftPiston:  HexToF32(0xedbc1e),
	model.RightPiston: HexToF32(0xedbc1e),
}

var COLOR_HEAD = HexToF32(0xcb8a18)

// screenSurface draws ebiten textures onto the frame being rendered.
type screenSurface struct {
	screen *ebiten.Image
}

func (s screenSurface) DrawSprite(tex model.Texture, at image.Point, src image.Rectangle, tint color.Color, flip model.Flip) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if flip&model.FlipHorizontal != 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	if flip&model.FlipVertical != 0 {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, float64(src.Dy()))
	}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	r, g, b, a := tint.RGBA()
	op.ColorM.Scale(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, float64(a)/0xffff)
	s.screen.DrawImage(img.SubImage(src).(*ebiten.Image), op)
}

func drawBlock(screen, tile *ebiten.Image, r image.Rectangle, c GameColor, shrink float64) {
	w, h := tile.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())*shrink/float64(w), float64(r.Dy())*shrink/float64(h))
	op.GeoM.Translate(
		float64(r.Min.X)+float64(r.Dx())*(1-shrink)/2,
		float64(r.Min.Y)+float64(r.Dy())*(1-shrink)/2)
	op.ColorM.Scale(c.r, c.g, c.b, 1)
	screen.DrawImage(tile, op)
}

func drawLevel(screen, tile *ebiten.Image, l *model.Level) {
	for _, column := range l.Grid {
		for _, t := range column {
			if t == nil {
				continue
			}
			drawBlock(screen, tile, t.Position, TILE_COLORS[t.Type], .92)
		}
	}
	if l.Pistons == nil {
		return
	}
	for _, head := range l.Pistons.Heads {
		drawBlock(screen, tile, head, COLOR_HEAD, .6)
	}
}

func loadImage(path string, fallback func() image.Image) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path, ebiten.FilterDefault)
	if err == nil {
		return img
	}
	log.Warnf("loadImage %s: %v, using generated image", path, err)
	img, err = ebiten.NewImageFromImage(fallback(), ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	return img
}

func whiteTile() image.Image {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	return src
}

// duckStrip draws a round duck per frame with a bobbing beak.
func duckStrip() image.Image {
	w := model.FrameWidth
	h := model.FrameHeight
	src := image.NewRGBA(image.Rect(0, 0, w*(model.FrameCount+1), h))
	body := color.RGBA{0xff, 0xe0, 0x40, 0xff}
	beak := color.RGBA{0xff, 0x80, 0x10, 0xff}
	for f := 0; f <= model.FrameCount; f++ {
		bob := int(2 * math.Sin(float64(f)*2*math.Pi/float64(model.FrameCount+1)))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx, dy := float64(x-w/2), float64(y-h/2-bob)
				if dx*dx+dy*dy <= float64(w*w)/9 {
					src.Set(f*w+x, y, body)
				}
				if x >= w*3/4 && x < w-2 && y >= h/2-2+bob && y < h/2+2+bob {
					src.Set(f*w+x, y, beak)
				}
			}
		}
	}
	return src
}
