package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/puckduck/server"
)

type Server struct {
	router      *way.Router
	LevelServer *server.LevelServer
}

func main() {
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
	dir := os.Getenv("LEVEL_DIR")
	if dir == "" {
		dir = "levels"
		log.Printf("Defaulting to level dir %s", dir)
	}
	Server := Server{
		LevelServer: server.NewLevelServer(dir),
	}
	Server.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, Server.router))
}
