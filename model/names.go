package model

import (
	"fmt"
	"strings"
)

func (d Direction) Name() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	case Stop:
		return "STOP"
	case Fail:
		return "FAIL"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

func (d Direction) String() string {
	return d.Name()
}

// ParseDirection accepts the lower or upper case names produced by Name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP":
		return Up, nil
	case "DOWN":
		return Down, nil
	case "RIGHT":
		return Right, nil
	case "LEFT":
		return Left, nil
	case "STOP", "":
		return Stop, nil
	default:
		return Stop, fmt.Errorf("unknown direction %q", s)
	}
}

func (t TileType) Name() string {
	switch t {
	case Empty:
		return "EMPTY"
	case Wall:
		return "WALL"
	case Goal:
		return "GOAL"
	case Hazard:
		return "HAZARD"
	case UpPiston:
		return "UP_PISTON"
	case DownPiston:
		return "DOWN_PISTON"
	case LeftPiston:
		return "LEFT_PISTON"
	case RightPiston:
		return "RIGHT_PISTON"
	default:
		return fmt.Sprintf("n/a:%d", t)
	}
}

func (t TileType) String() string {
	return t.Name()
}
