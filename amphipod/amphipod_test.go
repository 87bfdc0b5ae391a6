package amphipod

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"

	aoc "github.com/kecors/aoc21"
)

const sample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

var fixtures = []struct {
	name  string
	input string
}{
	{
		name: "two-kinds-shallow",
		input: `#########
#.......#
###B#A###
  #####
`,
	},
	{
		name: "two-kinds-deep",
		input: `#########
#.......#
###B#A###
  #A#B#
  #####
`,
	},
	{
		name: "three-kinds",
		input: `###########
#.........#
###B#C#A###
  #A#B#C#
  #######
`,
	},
	{
		name: "hall-resident",
		input: `#########
#.B.....#
###.#A###
  #A#B#
  #####
`,
	},
}

func mustParse(t *testing.T, input string, extended bool) *Map {
	t.Helper()
	m, err := ParseMap(input, extended)
	require.NoError(t, err)
	return m
}

type edge struct {
	to     deephash.Sum
	energy int
}

type node struct {
	m     *Map
	edges []edge
}

// explore returns every configuration reachable from start, keyed by
// Map.Key, with its outgoing moves.
func explore(start *Map) map[deephash.Sum]*node {
	graph := map[deephash.Sum]*node{start.Key(): {m: start}}
	queue := []*Map{start}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		nd := graph[m.Key()]
		for _, mv := range m.Moves() {
			n := m.Apply(mv)
			nd.edges = append(nd.edges, edge{n.Key(), mv.Energy()})
			if _, ok := graph[n.Key()]; !ok {
				graph[n.Key()] = &node{m: n}
				queue = append(queue, n)
			}
		}
	}
	return graph
}

// remaining computes, by value iteration over the whole graph, the least
// energy from each configuration to the organized one.
func remaining(graph map[deephash.Sum]*node) map[deephash.Sum]int {
	rem := make(map[deephash.Sum]int, len(graph))
	for k, nd := range graph {
		rem[k] = math.MaxInt
		if nd.m.Organized() {
			rem[k] = 0
		}
	}
	for changed := true; changed; {
		changed = false
		for k, nd := range graph {
			for _, e := range nd.edges {
				r := rem[e.to]
				if r == math.MaxInt {
					continue
				}
				if c := r + e.energy; c < rem[k] {
					rem[k] = c
					changed = true
				}
			}
		}
	}
	return rem
}

func TestSample(t *testing.T) {
	tests := []struct {
		extended bool
		depth    int
		want     int
	}{
		{false, 2, 12521},
		{true, 4, 44169},
	}
	for _, tt := range tests {
		if tt.extended && testing.Short() {
			continue
		}
		m := mustParse(t, sample, tt.extended)
		assert.Equal(t, tt.depth, m.Depth())
		assert.LessOrEqual(t, m.Estimate(), tt.want)
		got, err := Solve(m, 0, nil)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("Solve(extended=%v) = %v, want %v", tt.extended, got, tt.want)
		}
	}
}

func TestSolveMatchesExhaustiveSearch(t *testing.T) {
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			start := mustParse(t, f.input, false)
			rem := remaining(explore(start))
			want := rem[start.Key()]
			require.NotEqual(t, math.MaxInt, want, "fixture has no solution")

			got, err := Solve(start, 0, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEstimateIsAdmissible(t *testing.T) {
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			graph := explore(mustParse(t, f.input, false))
			rem := remaining(graph)
			for k, nd := range graph {
				if rem[k] == math.MaxInt {
					continue
				}
				if est := nd.m.Estimate(); est > rem[k] {
					t.Errorf("Estimate() = %d > true remaining %d for\n%v", est, rem[k], nd.m)
				}
			}
		})
	}
}

func TestOrganizedEstimateIsZero(t *testing.T) {
	m := mustParse(t, `#########
#.......#
###A#B###
  #A#B#
  #####
`, false)
	assert.True(t, m.Organized())
	assert.Zero(t, m.Estimate())
	assert.Empty(t, m.Moves(), "settled amphipods must not move")

	got, err := Solve(m, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func residents(m *Map) map[aoc.Pt]Amphipod {
	out := map[aoc.Pt]Amphipod{}
	m.grid.ForEach(func(p aoc.Pt, pl Place) {
		if pl.Resident != None {
			out[p] = pl.Resident
		}
	})
	return out
}

func TestMovesConserveAmphipods(t *testing.T) {
	start := mustParse(t, sample, false)
	states := append([]*Map{start}, start.Successors()...)
	for _, f := range fixtures {
		for _, nd := range explore(mustParse(t, f.input, false)) {
			states = append(states, nd.m)
		}
	}

	for _, m := range states {
		before := residents(m)
		for _, mv := range m.Moves() {
			n := m.Apply(mv)
			after := residents(n)
			require.Len(t, after, len(before), "move %v", mv)

			var kindsBefore, kindsAfter [numAmphipods]int
			for _, a := range before {
				kindsBefore[a]++
			}
			for _, a := range after {
				kindsAfter[a]++
			}
			assert.Equal(t, kindsBefore, kindsAfter, "move %v", mv)

			changed := 0
			for p, a := range before {
				if after[p] != a {
					changed++
				}
			}
			assert.Equal(t, 1, changed, "move %v changes %d positions", mv, changed)
			assert.Equal(t, mv.Who, after[mv.To])
			assert.Equal(t, m.Energy+mv.Energy(), n.Energy)

			if to := n.At(mv.To); to.Kind == Room {
				assert.Equal(t, to.Target, mv.Who, "move %v enters a foreign room", mv)
			} else {
				assert.Equal(t, Hall, to.Kind, "move %v stops in a %v", mv, to.Kind)
			}
		}
	}
}

func TestFirstMoves(t *testing.T) {
	m := mustParse(t, sample, false)
	moves := m.Moves()
	// Each of the four top amphipods can stop at any of the seven hallway
	// cells; nobody can reach a room yet.
	assert.Len(t, moves, 28)
	for _, mv := range moves {
		assert.Equal(t, 1, mv.To.Y)
	}
}

func TestKeyIgnoresEnergy(t *testing.T) {
	a := mustParse(t, sample, false)
	b := mustParse(t, sample, false)
	b.Energy = 1234
	assert.Equal(t, a.Key(), b.Key())

	n := a.Successors()[0]
	assert.NotEqual(t, a.Key(), n.Key())
}

func TestParseMapErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown letter", "#######\n#.....#\n###E#A###\n  #####\n"},
		{"too short", "#####\n#...#\n"},
		{"no rooms", "#######\n#.....#\n#######\n#######\n"},
		{"uneven rooms", "#########\n#.......#\n###B#A###\n  #A#.#\n  #.###\n"},
		{"wrong count", "#########\n#.......#\n###B#A###\n  #A#A#\n  #####\n"},
		{"amphipod without room", "#########\n#..C....#\n###B#A###\n  #A#B#\n  #####\n"},
		{"open hallway", "#########\n.........\n###B#A###\n  #A#B#\n  #####\n"},
		{"hallway open on the right", "#########\n#........\n###B#A###\n  #A#B#\n  #####\n"},
	}
	for _, tt := range tests {
		if _, err := ParseMap(tt.input, false); err == nil {
			t.Errorf("ParseMap(%s) succeeded, want error", tt.name)
		}
	}
}

func TestExtendedLayout(t *testing.T) {
	m := mustParse(t, sample, true)
	want := `Energy spent: 0
#############
#..o.o.o.o..#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`
	assert.Equal(t, want, m.String())
}

func TestSearchLimit(t *testing.T) {
	_, err := Solve(mustParse(t, sample, false), 10, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, aoc.ErrSearchLimit))
}

func TestPlaceKindsRender(t *testing.T) {
	for k := PlaceKind(0); k < numPlaceKinds; k++ {
		if r := (Place{Kind: k}).Rune(); r == '?' {
			t.Errorf("Place{Kind: %v}.Rune() = %q", k, r)
		}
	}
	for a := Amber; a < numAmphipods; a++ {
		assert.NotEqual(t, '?', a.Rune())
		assert.NotZero(t, a.Energy())
	}
}
