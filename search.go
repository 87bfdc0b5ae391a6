package aoc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
)

var (
	// ErrNoSolution is returned when the frontier empties before any state
	// satisfies the goal.
	ErrNoSolution = errors.New("no solution")

	// ErrSearchLimit is returned when a search expands more states than its
	// MaxNodes ceiling allows.
	ErrSearchLimit = errors.New("search node limit reached")
)

// Search is a best-first search over states of type S, deduplicated by keys
// of type K. With a nil Estimate it is Dijkstra; with an admissible and
// consistent Estimate it is A* and the first goal popped has minimal cost.
type Search[S any, K comparable] struct {
	// Key identifies a state for deduplication. It must not depend on the
	// accumulated cost.
	Key func(S) K
	// Cost is the accumulated cost of reaching the state.
	Cost func(S) int
	// Estimate is a lower bound on the cost remaining from the state.
	Estimate func(S) int
	// Next returns the successors of a state with their costs included.
	Next func(S) []S
	// Done is the goal predicate.
	Done func(S) bool

	// MaxNodes bounds the number of expanded states. Zero means no bound.
	MaxNodes int
	Logger   *slog.Logger
}

// SearchStats counts the work done by one Search.Run.
type SearchStats struct {
	Expanded int
	Pushed   int
}

// Run searches from start and returns the cheapest goal state found.
func (s Search[S, K]) Run(start S) (S, SearchStats, error) {
	var (
		stats    SearchStats
		zero     S
		frontier = MinQueue[S]()
		expanded = make(map[K]bool)
		best     = make(map[K]int)
	)
	push := func(v S, k K, cost int) {
		best[k] = cost
		frontier.Push(&PQI[S]{V: v, P: cost + s.estimate(v)})
		stats.Pushed++
	}
	push(start, s.Key(start), s.Cost(start))

	for frontier.Len() > 0 {
		cur := frontier.Pop().V
		k := s.Key(cur)
		if expanded[k] {
			continue
		}
		if s.Done(cur) {
			s.logStats("search reached goal", stats, s.Cost(cur))
			return cur, stats, nil
		}
		expanded[k] = true
		stats.Expanded++
		if s.MaxNodes > 0 && stats.Expanded > s.MaxNodes {
			s.logStats("search gave up", stats, -1)
			return zero, stats, fmt.Errorf("%w: expanded %d states", ErrSearchLimit, stats.Expanded)
		}
		for _, n := range s.Next(cur) {
			nk := s.Key(n)
			if expanded[nk] {
				continue
			}
			c := s.Cost(n)
			if b, ok := best[nk]; ok && b <= c {
				continue
			}
			push(n, nk, c)
		}
	}
	s.logStats("search exhausted frontier", stats, -1)
	return zero, stats, fmt.Errorf("%w: frontier exhausted after %d states", ErrNoSolution, stats.Expanded)
}

func (s Search[S, K]) estimate(v S) int {
	if s.Estimate == nil {
		return 0
	}
	return s.Estimate(v)
}

func (s Search[S, K]) logStats(msg string, stats SearchStats, cost int) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug(msg,
		slog.String("expanded", humanize.Comma(int64(stats.Expanded))),
		slog.String("pushed", humanize.Comma(int64(stats.Pushed))),
		slog.Int("cost", cost))
}
