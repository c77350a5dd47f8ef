package main

import (
	"github.com/matryer/way"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.LevelServer.Routes(s.router)
}
