// Package level reads puzzle levels: a YAML document with an ASCII layout.
//
//	name: first steps
//	direction: right
//	layout: |
//	  #######
//	  #S..>G#
//	  #######
//
// Layout characters: '#' wall, 'G' goal, 'X' hazard, '^' 'v' '<' '>'
// pistons, 'S' duck start, '.' or ' ' empty.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/zucenko/puckduck/model"
	"gopkg.in/yaml.v3"
)

const DefaultTileSize = 32

var (
	ErrEmptyLayout = errors.New("level: empty layout")
	ErrNoStart     = errors.New("level: no start tile")
)

type Document struct {
	Name      string `yaml:"name"`
	TileSize  int    `yaml:"tileSize"`
	Speed     int    `yaml:"speed"`
	Direction string `yaml:"direction"`
	Evil      bool   `yaml:"evil"`
	Par       int    `yaml:"par"`
	Layout    string `yaml:"layout"`
}

func LoadFile(path string) (*model.Level, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file)
}

func Read(reader io.Reader) (*model.Level, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("level: read: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*model.Level, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("level: yaml: %w", err)
	}
	return doc.Build()
}

// Build turns the document into a level with defaults applied.
func (doc *Document) Build() (*model.Level, error) {
	tileSize := doc.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	speed := doc.Speed
	if speed <= 0 {
		speed = model.DefaultSpeed
	}
	dir, err := model.ParseDirection(doc.Direction)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	rows, err := readLayout(strings.NewReader(doc.Layout))
	if err != nil {
		return nil, err
	}
	grid, start, err := buildGrid(rows, tileSize)
	if err != nil {
		return nil, err
	}

	return &model.Level{
		Name:      doc.Name,
		TileSize:  tileSize,
		Speed:     speed,
		Grid:      grid,
		Start:     start,
		Direction: dir,
		Evil:      doc.Evil,
		Par:       doc.Par,
		Pistons:   grid.Collect(),
	}, nil
}

type cell struct {
	typ   model.TileType
	start bool
}

func readLayout(reader io.Reader) ([][]cell, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([][]cell, 0)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		s := strings.TrimRight(scanner.Text(), " \t")
		if s == "" && len(lines) == 0 {
			continue
		}
		line := make([]cell, 0, len(s))
		for _, char := range s {
			var c cell
			switch char {
			case '#':
				c.typ = model.Wall
			case 'G':
				c.typ = model.Goal
			case 'X':
				c.typ = model.Hazard
			case '^':
				c.typ = model.UpPiston
			case 'v':
				c.typ = model.DownPiston
			case '<':
				c.typ = model.LeftPiston
			case '>':
				c.typ = model.RightPiston
			case 'S':
				c.start = true
			case '.', ' ':
				//empty
			default:
				return nil, fmt.Errorf("level: line %d: unknown tile %q", lineNo, char)
			}
			line = append(line, c)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: layout: %w", err)
	}

	// drop trailing blank lines
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}
	return lines, nil
}

// buildGrid pads short lines with empty tiles.
func buildGrid(lines [][]cell, tileSize int) (model.Grid, image.Rectangle, error) {
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	grid := model.NewGrid(cols, len(lines), tileSize)

	var start image.Rectangle
	found := false
	for r, line := range lines {
		for c, cl := range line {
			tile := grid.At(c, r)
			tile.Type = cl.typ
			if cl.start {
				if found {
					return nil, image.Rectangle{}, fmt.Errorf("level: second start tile at col %d row %d", c, r)
				}
				start = tile.Position
				found = true
			}
		}
	}
	if !found {
		return nil, image.Rectangle{}, ErrNoStart
	}
	return grid, start, nil
}
