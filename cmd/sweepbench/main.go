package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/sweepkit/sweepkit/internal/board"
	"github.com/sweepkit/sweepkit/internal/solver"
)

var (
	log = logrus.New()

	rows    int
	cols    int
	mines   int
	games   int
	seed    uint64
	exact   int
	samples int
	verbose bool
)

func init() {
	flag.IntVar(&rows, "rows", 16, "board rows")
	flag.IntVar(&cols, "cols", 30, "board columns")
	flag.IntVar(&mines, "mines", 99, "mines per board")
	flag.IntVar(&games, "games", 100, "games to play")
	flag.Uint64Var(&seed, "seed", 1, "rng seed")
	flag.IntVar(&exact, "exact-threshold", 0, "exact enumeration threshold (0 = default)")
	flag.IntVar(&samples, "samples", 0, "sample budget per oversized component (0 = default)")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
}

type outcome struct {
	won     bool
	guesses int
	moves   int
}

func playGame(ctx context.Context, s *solver.Solver, rng *rand.Rand) (o outcome) {
	firstMove := (rows/2)*cols + cols/2
	g := newGame(rows, cols, mines, firstMove, rng)

	for !g.won() {
		snap, err := g.snapshot()
		if err != nil {
			log.Fatal("bad snapshot: ", err)
		}
		move, err := s.Step(ctx, snap, mines)
		if err != nil {
			log.Fatal("solver rejected its own board: ", err)
		}
		if move == nil {
			break
		}
		o.moves++
		if move.Confidence < 1 {
			o.guesses++
		}
		i := snap.Index(move.Cell.Row, move.Cell.Col)
		if move.Flag {
			g.flag(i)
			continue
		}
		if g.open(i) {
			return o
		}
	}
	o.won = g.won()
	return o
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	solver.Log = log

	var (
		rng = rand.New(rand.NewPCG(seed, seed))
		s   = solver.New(board.NewNeighborIndex(rows, cols), solver.Config{
			ExactThreshold: exact,
			SampleBudget:   samples,
			Seed:           seed,
		})
		wins, losses, guesses int
	)

	log.WithFields(logrus.Fields{
		"board": logrus.Fields{"rows": rows, "cols": cols, "mines": mines},
		"games": games,
	}).Info("starting benchmark")

	for n := range games {
		if ctx.Err() != nil {
			log.Warn("interrupted")
			break
		}
		o := playGame(ctx, s, rng)
		if o.won {
			wins++
		} else {
			losses++
		}
		guesses += o.guesses
		log.WithFields(logrus.Fields{
			"game":    n,
			"won":     o.won,
			"moves":   o.moves,
			"guesses": o.guesses,
		}).Debug("game finished")
	}

	played := wins + losses
	if played == 0 {
		return
	}
	log.WithFields(logrus.Fields{
		"played":  played,
		"wins":    wins,
		"winRate": float64(wins) / float64(played),
		"guesses": guesses,
	}).Info("benchmark done")
}
