package amphipod

import (
	"fmt"
	"log/slog"

	"tailscale.com/util/deephash"

	aoc "github.com/kecors/aoc21"
)

// Move relocates one amphipod.
type Move struct {
	From, To aoc.Pt
	Who      Amphipod
	Steps    int
}

// Energy is the energy the move costs.
func (mv Move) Energy() int {
	return mv.Steps * mv.Who.Energy()
}

func (mv Move) String() string {
	return fmt.Sprintf("%v %v->%v (%d)", mv.Who, mv.From, mv.To, mv.Energy())
}

// Moves returns every legal move from m:
//   - an amphipod in the hallway walks into its own room, if the hallway
//     between is clear and the room holds no other kind;
//   - an amphipod in a room that is not settled, with nobody above it,
//     either walks straight into its own room under the same rule or stops
//     at any free hallway cell it can reach. Doorways are never stops.
func (m *Map) Moves() []Move {
	var moves []Move
	hallY := m.layout.hallY
	m.grid.ForEach(func(p aoc.Pt, pl Place) {
		a := pl.Resident
		if a == None {
			return
		}
		switch pl.Kind {
		case Hall:
			if mv, ok := m.moveHome(p, a, 0); ok {
				moves = append(moves, mv)
			}
		case Room:
			if m.settled(p) {
				return
			}
			for y := hallY + 1; y < p.Y; y++ {
				if m.grid.At(aoc.Pt{X: p.X, Y: y}).Resident != None {
					return
				}
			}
			up := p.Y - hallY
			if p.X != m.layout.roomX[a] {
				if mv, ok := m.moveHome(p, a, up); ok {
					moves = append(moves, mv)
				}
			}
			for _, dir := range []int{-1, 1} {
				for x := p.X + dir; ; x += dir {
					c := m.grid.At(aoc.Pt{X: x, Y: hallY})
					if c.Kind == Doorway {
						continue
					}
					if c.Kind != Hall || c.Resident != None {
						break
					}
					moves = append(moves, Move{
						From:  p,
						To:    aoc.Pt{X: x, Y: hallY},
						Who:   a,
						Steps: up + aoc.AbsDiff(x, p.X),
					})
				}
			}
		}
	})
	return moves
}

// moveHome is the move taking a, standing at p, into its room. up is the
// number of steps needed to reach the hallway from p.
func (m *Map) moveHome(p aoc.Pt, a Amphipod, up int) (Move, bool) {
	rx := m.layout.roomX[a]
	if !m.hallClear(p.X, rx) {
		return Move{}, false
	}
	d, ok := m.homeSlot(a)
	if !ok {
		return Move{}, false
	}
	return Move{
		From:  p,
		To:    m.slot(rx, d),
		Who:   a,
		Steps: up + aoc.AbsDiff(p.X, rx) + d,
	}, true
}

// Apply returns the configuration after mv. m is unchanged.
func (m *Map) Apply(mv Move) *Map {
	n := m.clone()
	from := n.grid.At(mv.From)
	from.Resident = None
	n.grid.Set(mv.From, from)
	to := n.grid.At(mv.To)
	to.Resident = mv.Who
	n.grid.Set(mv.To, to)
	n.Energy += mv.Energy()
	return n
}

// Successors returns the configurations one legal move away.
func (m *Map) Successors() []*Map {
	moves := m.Moves()
	out := make([]*Map, len(moves))
	for i, mv := range moves {
		out[i] = m.Apply(mv)
	}
	return out
}

// Estimate is a lower bound on the energy still needed to organize m. Each
// unsettled amphipod must climb to the hallway, walk to its room's column
// and descend into a slot; the descents of each kind together must cover
// every room depth not already held by a settled amphipod.
func (m *Map) Estimate() int {
	depth := m.layout.depth
	var settledDepths [numAmphipods]int
	total := 0
	m.grid.ForEach(func(p aoc.Pt, pl Place) {
		a := pl.Resident
		if a == None {
			return
		}
		up := p.Y - m.layout.hallY
		if m.settled(p) {
			settledDepths[a] += up
			return
		}
		total += (up + aoc.AbsDiff(p.X, m.layout.roomX[a])) * a.Energy()
	})
	for _, a := range m.layout.kinds {
		total += (depth*(depth+1)/2 - settledDepths[a]) * a.Energy()
	}
	return total
}

// Solve returns the least energy needed to organize m. maxNodes bounds the
// number of configurations expanded; 0 means no bound.
func Solve(m *Map, maxNodes int, logger *slog.Logger) (int, error) {
	s := aoc.Search[*Map, deephash.Sum]{
		Key:      (*Map).Key,
		Cost:     func(m *Map) int { return m.Energy },
		Estimate: (*Map).Estimate,
		Next:     (*Map).Successors,
		Done:     (*Map).Organized,
		MaxNodes: maxNodes,
		Logger:   logger,
	}
	end, _, err := s.Run(m)
	if err != nil {
		return 0, fmt.Errorf("organizing amphipods: %w", err)
	}
	return end.Energy, nil
}
