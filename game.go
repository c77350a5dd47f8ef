package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/puckduck/level"
	"github.com/zucenko/puckduck/model"
	"github.com/zucenko/puckduck/server"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudHeight = 48
	tick      = 1.0 / ebiten.DefaultTPS
)

type GameState int

const (
	IDLE GameState = iota + 1
	PLAYING
	WON
	LOST
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case PLAYING:
		return "PLAYING"
	case WON:
		return "WON"
	case LOST:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State   GameState
	Level   *model.Level
	Duck    *model.Duck
	Pistons *level.PistonDriver

	duckImage *ebiten.Image
	tileImage *ebiten.Image
	board     *ebiten.Image
	Panel     *Nine
	flip      model.Flip
}

var theGame *Game
var Font font.Face

func init() {
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    22,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// Load reads the level named by PUCK_LEVEL, from PUCK_LEVEL_SERVER when set
// or from a local file otherwise.
func Load() (*model.Level, error) {
	name := os.Getenv("PUCK_LEVEL")
	if base := os.Getenv("PUCK_LEVEL_SERVER"); base != "" {
		if name == "" {
			name = "01-first-steps"
		}
		log.Printf("Load %s from %s", name, base)
		return server.FetchRemote(base, name)
	}
	if name == "" {
		name = "levels/01-first-steps.yaml"
		log.Printf("Defaulting to level %s", name)
	}
	file, err := ebitenutil.OpenFile(name)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", name, err)
	}
	defer file.Close()
	return level.Read(file)
}

func NewGame(l *model.Level) *Game {
	g := &Game{
		Level:     l,
		duckImage: loadImage("duck.png", duckStrip),
		tileImage: loadImage("tile.png", whiteTile),
		Panel:     NewNine(generatedPanel(), 1, [4][2]int{{0, 0}, {8, 8}, {16, 16}, {24, 24}}),
		Pistons:   level.NewPistonDriver(l.Pistons, l.TileSize),
	}
	g.board, _ = ebiten.NewImage(l.Bounds().Dx(), l.Bounds().Dy(), ebiten.FilterDefault)
	g.restart()
	return g
}

// restart discards the duck and builds a fresh one for the level.
func (g *Game) restart() {
	g.Pistons.Reset()
	g.Duck = model.NewDuck(g.duckImage, g.Level.Start, model.Stop, g.Level.Evil)
	g.Duck.SetSpeed(g.Level.Speed)
	g.Duck.Spawn(g.Level.Start)
	g.State = IDLE
	g.flip = model.FlipNone
	if g.Level.Direction == model.Stop {
		// pistons launch the duck
		g.State = PLAYING
	}
	log.Infof("level %q started, par %d", g.Level.Name, g.Level.Par)
}

func (g *Game) input() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}
	if g.State == IDLE && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Duck.SetDirection(g.Level.Direction)
		g.State = PLAYING
	}
	if g.State == PLAYING && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.Pistons.FireAt(image.Pt(x, y-hudHeight))
	}
}

func (g *Game) step() {
	if g.State == LOST && g.Duck.Direction() == model.Fail {
		g.Duck.Update(tick, g.Level.Grid, nil)
	}
	if g.State != PLAYING {
		return
	}
	g.Pistons.Update(tick)
	g.Duck.Update(tick, g.Level.Grid, g.Level.Pistons)

	switch g.Duck.Direction() {
	case model.Left:
		g.flip = model.FlipHorizontal
	case model.Right:
		g.flip = model.FlipNone
	case model.Fail:
		g.State = LOST
		log.Infof("level %q lost after %d moves", g.Level.Name, g.Duck.Moves())
	case model.Stop:
		if g.Duck.AtGoal(g.Level.Grid) {
			g.State = WON
			log.Infof("level %q won in %d moves", g.Level.Name, g.Duck.Moves())
		}
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.input()
	g.step()
	g.Duck.AdvanceAnimation(tick)

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	e := screen.Fill(color.RGBA{70, 70, 70, 255})
	if e != nil {
		log.Printf("%v", e)
	}

	g.board.Clear()
	drawLevel(g.board, g.tileImage, g.Level)
	g.Duck.Render(g.flip, screenSurface{screen: g.board})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(g.board, op)

	g.Panel.SetPosition(4, 4)
	g.Panel.SetSize(g.Level.Bounds().Dx()-8, hudHeight-8)
	g.Panel.Draw(screen)
	text.Draw(screen, "moves "+strconv.Itoa(g.Duck.Moves()), Font, 14, 32, color.White)
	ebitenutil.DebugPrintAt(screen, g.State.Name(), g.Level.Bounds().Dx()-80, 14)

	return nil
}

func main() {
	l, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	theGame = NewGame(l)
	b := l.Bounds()
	if err := ebiten.Run(theGame.update, b.Dx(), b.Dy()+hudHeight, 2, "Puck Duck"); err != nil {
		log.Fatal(err)
	}
}
