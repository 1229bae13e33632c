package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweepkit/sweepkit/internal/board"
	"github.com/sweepkit/sweepkit/internal/solver"
)

func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

// parseSolveRequest pulls solver tunables from the query string and
// the board from the body.
func (app *application) parseSolveRequest(
	r *http.Request,
) (*board.Snapshot, int, *solver.Solver, error) {
	cfg := solver.DefaultConfig()
	if err := app.decoder.Decode(&cfg, r.URL.Query()); err != nil {
		return nil, 0, nil, err
	}

	var dto boardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return nil, 0, nil, err
	}
	snap, err := dto.snapshot()
	if err != nil {
		return nil, 0, nil, err
	}

	ix := app.neighborIndex(snap.Rows(), snap.Cols())
	return snap, dto.TotalMines, solver.New(ix, cfg), nil
}

func (app *application) replySolveError(w http.ResponseWriter, err error) {
	var conflict solver.ConstraintConflictError
	if errors.As(err, &conflict) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(conflict.Error()))
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	app.log.Error("solve failed: ", err)
}

func (app *application) handleSolve(w http.ResponseWriter, r *http.Request) {
	snap, totalMines, s, err := app.parseSolveRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	// a dropped connection cancels the solve mid-phase
	res, err := s.Solve(r.Context(), snap, totalMines)
	if err != nil {
		app.replySolveError(w, err)
		return
	}
	sendJSON(w, toResultDTO(res))
}

func (app *application) handleStep(w http.ResponseWriter, r *http.Request) {
	snap, totalMines, s, err := app.parseSolveRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	move, err := s.Step(r.Context(), snap, totalMines)
	if err != nil {
		app.replySolveError(w, err)
		return
	}
	sendJSON(w, moveDTO{Move: move})
}
