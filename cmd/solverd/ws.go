package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/sweepkit/sweepkit/internal/solver"
)

/*
handleWatchWs serves auto-solve drivers: the client streams board
snapshots and receives one recommended move per snapshot. Pacing and
board mutation stay entirely on the client side; the server never
sleeps between moves, and closing the connection cancels any solve in
flight.
*/
func (app *application) handleWatchWs(w http.ResponseWriter, r *http.Request) {
	c, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		var dto boardDTO
		if err := c.ReadJSON(&dto); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.log.Warn("read: ", err)
			}
			break
		}

		snap, err := dto.snapshot()
		if err != nil {
			if err := c.WriteJSON(map[string]string{"error": err.Error()}); err != nil {
				break
			}
			continue
		}

		s := solver.New(
			app.neighborIndex(snap.Rows(), snap.Cols()),
			solver.DefaultConfig(),
		)
		move, err := s.Step(r.Context(), snap, dto.TotalMines)
		if err != nil {
			if err := c.WriteJSON(map[string]string{"error": err.Error()}); err != nil {
				break
			}
			continue
		}

		if err := c.WriteJSON(moveDTO{Move: move}); err != nil {
			app.log.Error("write: ", err)
			break
		}
	}
}
