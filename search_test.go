package aoc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hop struct {
	at   string
	cost int
}

func graphSearch(edges map[string]map[string]int, goal string) Search[hop, string] {
	return Search[hop, string]{
		Key:  func(h hop) string { return h.at },
		Cost: func(h hop) int { return h.cost },
		Next: func(h hop) []hop {
			var out []hop
			for to, c := range edges[h.at] {
				out = append(out, hop{to, h.cost + c})
			}
			return out
		},
		Done: func(h hop) bool { return h.at == goal },
	}
}

var testEdges = map[string]map[string]int{
	"a": {"b": 1, "c": 4},
	"b": {"c": 2, "d": 5},
	"c": {"d": 1},
	"e": {"a": 1},
}

func TestSearchShortestPath(t *testing.T) {
	s := graphSearch(testEdges, "d")
	got, stats, err := s.Run(hop{at: "a"})
	require.NoError(t, err)
	assert.Equal(t, hop{"d", 4}, got)
	assert.Positive(t, stats.Expanded)
	assert.GreaterOrEqual(t, stats.Pushed, stats.Expanded)

	// The exact remaining distance is a consistent estimate.
	remaining := map[string]int{"a": 4, "b": 3, "c": 1, "d": 0}
	s.Estimate = func(h hop) int { return remaining[h.at] }
	got, astar, err := s.Run(hop{at: "a"})
	require.NoError(t, err)
	assert.Equal(t, hop{"d", 4}, got)
	assert.LessOrEqual(t, astar.Expanded, stats.Expanded)
}

func TestSearchStartIsGoal(t *testing.T) {
	got, stats, err := graphSearch(testEdges, "a").Run(hop{at: "a"})
	require.NoError(t, err)
	assert.Equal(t, hop{"a", 0}, got)
	assert.Zero(t, stats.Expanded)
}

func TestSearchNoSolution(t *testing.T) {
	_, _, err := graphSearch(testEdges, "e").Run(hop{at: "a"})
	assert.True(t, errors.Is(err, ErrNoSolution), "got %v", err)
}

func TestSearchLimit(t *testing.T) {
	s := graphSearch(testEdges, "d")
	s.MaxNodes = 1
	_, _, err := s.Run(hop{at: "a"})
	assert.True(t, errors.Is(err, ErrSearchLimit), "got %v", err)
}

// floyd computes all-pairs shortest paths.
func floyd(n int, w [][]int) [][]int {
	const inf = 1 << 30
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			switch {
			case i == j:
				d[i][j] = 0
			case w[i][j] > 0:
				d[i][j] = w[i][j]
			default:
				d[i][j] = inf
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	return d
}

func TestSearchMatchesFloyd(t *testing.T) {
	type node struct {
		id, cost int
	}
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		n := 2 + r.Intn(8)
		w := make([][]int, n)
		for a := range w {
			w[a] = make([]int, n)
			for b := range w[a] {
				if a != b && r.Intn(3) == 0 {
					w[a][b] = 1 + r.Intn(20)
				}
			}
		}
		d := floyd(n, w)
		s := Search[node, int]{
			Key:  func(v node) int { return v.id },
			Cost: func(v node) int { return v.cost },
			Next: func(v node) []node {
				var out []node
				for b, c := range w[v.id] {
					if c > 0 {
						out = append(out, node{b, v.cost + c})
					}
				}
				return out
			},
			Done: func(v node) bool { return v.id == n-1 },
		}
		got, _, err := s.Run(node{})
		if d[0][n-1] >= 1<<30 {
			assert.True(t, errors.Is(err, ErrNoSolution), "graph %v", w)
			continue
		}
		require.NoError(t, err, "graph %v", w)
		assert.Equal(t, d[0][n-1], got.cost, "graph %v", w)
	}
}

func TestMinQueue(t *testing.T) {
	q := MinQueue[string]()
	for i, p := range []int{5, 1, 4, 1, 3} {
		q.Push(&PQI[string]{V: string(rune('a' + i)), P: p})
	}
	var got []int
	for q.Len() > 0 {
		got = append(got, q.Pop().P)
	}
	assert.Equal(t, []int{1, 1, 3, 4, 5}, got)
}
