package level

import (
	"image"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/puckduck/model"
)

const (
	ExtendSeconds  = 0.12
	HoldSeconds    = 0.30
	RetractSeconds = 0.20
)

type Action struct {
	nexts    []func(p *PistonDriver)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts,
		func(p *PistonDriver) {
			p.Tweens[t] = action
		})
	return action
}

// PistonDriver moves piston heads: a fired piston extends its head one tile
// in the direction it faces, holds, then retracts. It is the only writer of
// PistonBank.Heads.
type PistonDriver struct {
	Bank     *model.PistonBank
	TileSize int
	Tweens   map[*gween.Tween]*Action
	busy     map[int]bool
}

func NewPistonDriver(bank *model.PistonBank, tileSize int) *PistonDriver {
	return &PistonDriver{
		Bank:     bank,
		TileSize: tileSize,
		Tweens:   make(map[*gween.Tween]*Action),
		busy:     make(map[int]bool),
	}
}

func (p *PistonDriver) Busy(i int) bool {
	return p.busy[i]
}

func (p *PistonDriver) place(i int, extent float32) {
	body := p.Bank.Bodies[i]
	offset := int(math.Round(float64(extent) * float64(p.TileSize)))
	p.Bank.Heads[i] = body.Position.Add(body.Type.Facing().Mul(offset))
}

// Fire starts piston i. It reports false when i is unknown or already moving.
func (p *PistonDriver) Fire(i int) bool {
	if i < 0 || i >= p.Bank.Len() || i >= len(p.Bank.Heads) || p.busy[i] {
		return false
	}
	p.busy[i] = true
	log.Debugf("PistonDriver.Fire %d %s", i, p.Bank.Bodies[i].Type.Name())

	onChange := func(v float32) { p.place(i, v) }

	extend := &Action{onChange: onChange}
	p.Tweens[gween.New(0, 1, ExtendSeconds, ease.OutQuad)] = extend

	hold := extend.next(gween.New(1, 1, HoldSeconds, ease.Linear))
	hold.onChange = onChange

	retract := hold.next(gween.New(1, 0, RetractSeconds, ease.InQuad))
	retract.onChange = onChange
	retract.addOnFinish(func() {
		p.busy[i] = false
	})
	return true
}

// FireAt fires the piston whose body contains pt.
func (p *PistonDriver) FireAt(pt image.Point) bool {
	return p.Fire(p.Bank.BodyAt(pt))
}

func (p *PistonDriver) Update(dt float32) {
	pending := make([]func(p *PistonDriver), 0)
	for t, a := range p.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			pending = append(pending, a.nexts...)
			delete(p.Tweens, t)
		}
	}
	for _, next := range pending {
		next(p)
	}
}

// Reset drops running tweens and retracts every head.
func (p *PistonDriver) Reset() {
	p.Tweens = make(map[*gween.Tween]*Action)
	p.busy = make(map[int]bool)
	p.Bank.Retract()
}
