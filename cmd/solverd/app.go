package main

import (
	"net/http"
	"sync"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sweepkit/sweepkit/internal/board"
	"github.com/sweepkit/sweepkit/internal/middleware"
)

type application struct {
	log      *logrus.Logger
	decoder  *schema.Decoder
	upgrader websocket.Upgrader

	// neighbor indexes are immutable per board shape, so they are
	// shared between requests instead of rebuilt each time
	mu      sync.Mutex
	indexes map[[2]int]*board.NeighborIndex
}

func newApplication(log *logrus.Logger) *application {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &application{
		log:     log,
		decoder: decoder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		indexes: make(map[[2]int]*board.NeighborIndex),
	}
}

func (app *application) neighborIndex(rows, cols int) *board.NeighborIndex {
	app.mu.Lock()
	defer app.mu.Unlock()
	key := [2]int{rows, cols}
	if ix, ok := app.indexes[key]; ok {
		return ix
	}
	ix := board.NewNeighborIndex(rows, cols)
	app.indexes[key] = ix
	return ix
}

func (app *application) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", handleStatus)
	mux.HandleFunc("POST /v1/solve", app.handleSolve)
	mux.HandleFunc("POST /v1/step", app.handleStep)
	mux.HandleFunc("/v1/watch", app.handleWatchWs)

	return middleware.Wrap(mux,
		middleware.Cors(),
		middleware.Logging(app.log),
	)
}
