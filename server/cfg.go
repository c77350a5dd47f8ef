package server

import (
	"errors"
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_UNPROCESSABLE = 422
const HTTP_SERVER_ERR = 503

const LEVEL_EXT = ".yaml"

var ErrLevelNotFound = errors.New("level not found")

type ResponseCode int

const (
	LEVEL_READY ResponseCode = iota
	LEVEL_NOT_FOUND
	LEVEL_INVALID
	LEVEL_BAD_NAME
	LEVEL_UNREADABLE
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case LEVEL_READY:
		return HTTP_SUCCESS
	case LEVEL_NOT_FOUND:
		return HTTP_NOT_FOUND
	case LEVEL_INVALID:
		return HTTP_UNPROCESSABLE
	case LEVEL_BAD_NAME:
		return HTTP_BAD_REQUEST
	case LEVEL_UNREADABLE:
		return HTTP_SERVER_ERR
	default:
		panic(h)
	}
}

func (h ResponseCode) Name() string {
	switch h {
	case LEVEL_READY:
		return "LEVEL_READY"
	case LEVEL_NOT_FOUND:
		return "LEVEL_NOT_FOUND"
	case LEVEL_INVALID:
		return "LEVEL_INVALID"
	case LEVEL_BAD_NAME:
		return "LEVEL_BAD_NAME"
	case LEVEL_UNREADABLE:
		return "LEVEL_UNREADABLE"
	default:
		return fmt.Sprintf("n/a:%d", h)
	}
}

// Catalog is the body of GET /levels.
type Catalog struct {
	Levels []string `yaml:"levels"`
}
