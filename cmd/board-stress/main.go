package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrisboard/board"
	"github.com/plus3/tetrisboard/piece"
)

// Config controls a stress run.
type Config struct {
	Duration   time.Duration
	Width      int
	Height     int
	Seed       uint64
	ClearRatio float64
	UndoRatio  float64
	Check      bool
}

func main() {
	cfg := Config{}
	flag.DurationVar(&cfg.Duration, "duration", 10*time.Second, "The total duration the test should run for.")
	flag.IntVar(&cfg.Width, "width", 10, "Board width in cells.")
	flag.IntVar(&cfg.Height, "height", 20, "Board height in cells.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed; 0 picks one from the clock.")
	flag.Float64Var(&cfg.ClearRatio, "clear-ratio", 0.8, "Probability of chaining ClearRows after a successful placement.")
	flag.Float64Var(&cfg.UndoRatio, "undo-ratio", 0.5, "Probability of undoing a successful round instead of committing it.")
	noCheck := flag.Bool("no-check", false, "Disable the board's internal consistency check.")
	flag.Parse()
	cfg.Check = !*noCheck

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	log.Println("Starting board stress test...")
	log.Printf("Board %dx%d, seed %d, consistency check %t\n", cfg.Width, cfg.Height, cfg.Seed, cfg.Check)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	report, err := Run(ctx, cfg)
	if err != nil {
		log.Fatalf("Stress run failed: %v", err)
	}
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Board Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.UndoMismatches > 0 {
		os.Exit(1)
	}
}

// Run plays random rounds until ctx is done and returns the collected report.
// A panic raised by the board (a consistency failure or a protocol violation)
// ends the run and is returned as an error.
func Run(ctx context.Context, cfg Config) (report *Report, err error) {
	if cfg.Width < 4 || cfg.Height < 4 {
		return nil, fmt.Errorf("board must be at least 4x4, got %dx%d", cfg.Width, cfg.Height)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	pieces := make([]*piece.Piece, 0, 4*piece.NumKinds)
	for k := piece.Kind(0); k < piece.NumKinds; k++ {
		pieces = append(pieces, piece.Rotations(k)...)
	}

	b := board.New(cfg.Width, cfg.Height, board.WithConsistencyCheck(cfg.Check))
	r := newRunner(b, rng, pieces, cfg)

	report = &Report{
		RunID:  uuid.New(),
		Config: cfg,
		RoundTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("round %d: %v\n%s", r.rounds, v, b)
		}
	}()

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			roundStart := time.Now()
			r.round()
			report.RoundTime.Samples = append(report.RoundTime.Samples, time.Since(roundStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.RoundTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	r.fill(report)

	return report, nil
}

type runner struct {
	board  *board.Board
	rng    *rand.Rand
	pieces []*piece.Piece
	cfg    Config

	rounds         int64
	resets         int64
	undos          int64
	commits        int64
	undoMismatches int64
	outcomes       *intmap.Map[board.PlaceResult, int64]
	cleared        *intmap.Map[int, int64]
}

func newRunner(b *board.Board, rng *rand.Rand, pieces []*piece.Piece, cfg Config) *runner {
	return &runner{
		board:    b,
		rng:      rng,
		pieces:   pieces,
		cfg:      cfg,
		outcomes: intmap.New[board.PlaceResult, int64](4),
		cleared:  intmap.New[int, int64](8),
	}
}

func (r *runner) round() {
	b := r.board
	before := b.Clone()

	p := r.pieces[r.rng.IntN(len(r.pieces))]
	// Columns one past each edge exercise the out-of-bounds path.
	x := r.rng.IntN(b.Width()-p.Width()+3) - 1
	y := 0
	if x >= 0 && x+p.Width() <= b.Width() {
		y = b.DropHeight(p, x)
	}
	if r.rng.IntN(10) == 0 {
		// Occasionally aim below the resting height to force collisions.
		y = max(0, y-1-r.rng.IntN(2))
	}

	result := b.Place(p, x, y)
	increment(r.outcomes, result)

	if result.Ok() && r.rng.Float64() < r.cfg.ClearRatio {
		increment(r.cleared, b.ClearRows())
	}

	if !result.Ok() || r.rng.Float64() < r.cfg.UndoRatio {
		b.Undo()
		r.undos++
		if !b.Equal(before) {
			r.undoMismatches++
			log.Printf("undo mismatch at round %d\nwant:\n%s\ngot:\n%s\n", r.rounds, before, b)
			b.Reset()
		}
	} else {
		b.Commit()
		r.commits++
	}

	if b.MaxHeight() > b.Height()-4 {
		b.Reset()
		r.resets++
	}
	r.rounds++
}

func increment[K ~int](m *intmap.Map[K, int64], key K) {
	n, _ := m.Get(key)
	m.Put(key, n+1)
}

func (r *runner) fill(report *Report) {
	report.Rounds = r.rounds
	report.Resets = r.resets
	report.Undos = r.undos
	report.Commits = r.commits
	report.UndoMismatches = r.undoMismatches

	for _, result := range []board.PlaceResult{board.PlaceOK, board.PlaceRowFilled, board.PlaceOutOfBounds, board.PlaceCollision} {
		n, _ := r.outcomes.Get(result)
		report.Outcomes = append(report.Outcomes, Bucket{Label: result.String(), Count: n})
	}
	for rows := 0; rows <= 4; rows++ {
		n, _ := r.cleared.Get(rows)
		report.Cleared = append(report.Cleared, Bucket{Label: fmt.Sprintf("%d rows", rows), Count: n})
	}
}
