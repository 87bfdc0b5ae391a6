// Package amphipod finds the least energy needed to sort the amphipods of
// 2021 day 23 into their side rooms. Each burrow configuration is a node of
// a graph whose edges are single legal moves; the cheapest path to the
// organized configuration is found with aoc.Search and an admissible
// estimate of the remaining energy.
package amphipod

import (
	"fmt"
	"slices"
	"strings"

	"tailscale.com/util/deephash"

	aoc "github.com/kecors/aoc21"
)

// foldedRows are inserted under the first room row of the extended burrow.
var foldedRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// layout is the part of a burrow that never changes during a search.
type layout struct {
	hallY int
	depth int               // slots per room
	roomX [numAmphipods]int // column of each kind's room; 0 if none
	kinds []Amphipod        // kinds that have a room, left to right
}

// Map is one configuration of the burrow.
type Map struct {
	// Energy spent reaching this configuration.
	Energy   int
	Extended bool

	grid   aoc.Grid[Place]
	layout *layout
	key    *deephash.Sum
}

// ParseMap parses the burrow diagram. The hallway is the second row; room
// columns are the hallway columns that have a room slot ('A'-'D' or '.')
// directly under them, assigned A, B, C, D from left to right. Letters may
// also stand in the hallway. With extended, the two folded rows of part 2
// are inserted below the first room row.
func ParseMap(input string, extended bool) (*Map, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) < 4 {
		return nil, fmt.Errorf("burrow has %d rows, want at least 4", len(lines))
	}
	if extended {
		lines = slices.Insert(slices.Clone(lines), 3, foldedRows...)
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}

	const hallY = 1
	lay := &layout{hallY: hallY}
	grid := aoc.MakeGrid[Place](width, len(lines))
	for y, l := range lines {
		for x, r := range l {
			p := aoc.Pt{X: x, Y: y}
			switch r {
			case ' ':
			case '#':
				grid.Set(p, Place{Kind: Wall})
			case '.':
				grid.Set(p, Place{Kind: Hall})
			default:
				a, ok := parseAmphipod(r)
				if !ok {
					return nil, fmt.Errorf("row %d column %d: unknown place %q", y+1, x+1, r)
				}
				grid.Set(p, Place{Kind: Hall, Resident: a})
			}
		}
	}

	// Room columns are read off the first room row.
	for x := 0; x < width; x++ {
		above, top := grid.At(aoc.Pt{X: x, Y: hallY}), grid.At(aoc.Pt{X: x, Y: hallY + 1})
		if above.Kind != Hall || top.Kind != Hall {
			continue
		}
		if len(lay.kinds) == numAmphipods-1 {
			return nil, fmt.Errorf("column %d: more than %d rooms", x+1, numAmphipods-1)
		}
		target := Amphipod(len(lay.kinds) + 1)
		lay.kinds = append(lay.kinds, target)
		lay.roomX[target] = x
		if above.Resident != None {
			return nil, fmt.Errorf("column %d: %v stands in a doorway", x+1, above.Resident)
		}
		grid.Set(aoc.Pt{X: x, Y: hallY}, Place{Kind: Doorway})

		depth := 0
		for y := hallY + 1; y < len(grid); y++ {
			p := aoc.Pt{X: x, Y: y}
			c := grid.At(p)
			if c.Kind != Hall {
				break
			}
			grid.Set(p, Place{Kind: Room, Target: target, Resident: c.Resident})
			depth++
		}
		if lay.depth == 0 {
			lay.depth = depth
		} else if depth != lay.depth {
			return nil, fmt.Errorf("column %d: room has %d slots, want %d", x+1, depth, lay.depth)
		}
	}
	if len(lay.kinds) == 0 {
		return nil, fmt.Errorf("burrow has no rooms")
	}

	var counts [numAmphipods]int
	var err error
	grid.ForEach(func(p aoc.Pt, pl Place) {
		if pl.Kind == Hall && p.Y != hallY && err == nil {
			err = fmt.Errorf("row %d column %d: open cell outside hallway and rooms", p.Y+1, p.X+1)
		}
		// Hallway walks stop only at walls, so the hallway may not reach
		// the edge of the grid.
		if (pl.Kind == Hall || pl.Kind == Doorway) && (p.X == 0 || p.X == width-1) && err == nil {
			err = fmt.Errorf("row %d column %d: hallway is not walled in", p.Y+1, p.X+1)
		}
		counts[pl.Resident]++
	})
	if err != nil {
		return nil, err
	}
	for a := Amber; a < numAmphipods; a++ {
		want := 0
		if lay.roomX[a] != 0 {
			want = lay.depth
		}
		if counts[a] != want {
			return nil, fmt.Errorf("found %d %v amphipods, want %d", counts[a], a, want)
		}
	}

	return &Map{
		Extended: extended,
		grid:     grid,
		layout:   lay,
	}, nil
}

// Depth is the number of slots in each room.
func (m *Map) Depth() int {
	return m.layout.depth
}

func (m *Map) At(p aoc.Pt) Place {
	return m.grid.At(p)
}

// Key identifies the configuration by piece positions only.
func (m *Map) Key() deephash.Sum {
	if m.key == nil {
		k := m.grid.Hash()
		m.key = &k
	}
	return *m.key
}

// Organized reports whether every room slot holds its own kind.
func (m *Map) Organized() bool {
	for _, a := range m.layout.kinds {
		x := m.layout.roomX[a]
		for d := 1; d <= m.layout.depth; d++ {
			if m.grid.At(m.slot(x, d)).Resident != a {
				return false
			}
		}
	}
	return true
}

// slot is the position of depth d (1 is nearest the hallway) in the room at
// column x.
func (m *Map) slot(x, d int) aoc.Pt {
	return aoc.Pt{X: x, Y: m.layout.hallY + d}
}

// settled reports whether the amphipod at p is in its own room with only
// its own kind below it. A settled amphipod never moves again.
func (m *Map) settled(p aoc.Pt) bool {
	pl := m.grid.At(p)
	if pl.Kind != Room || pl.Resident != pl.Target {
		return false
	}
	for y := p.Y + 1; y <= m.layout.hallY+m.layout.depth; y++ {
		if m.grid.At(aoc.Pt{X: p.X, Y: y}).Resident != pl.Target {
			return false
		}
	}
	return true
}

// homeSlot returns the depth an amphipod of kind a would take on entering
// its room: the deepest free slot reachable from the doorway. ok is false
// if the room is full or holds another kind.
func (m *Map) homeSlot(a Amphipod) (depth int, ok bool) {
	x := m.layout.roomX[a]
	free := 0
	for d := 1; d <= m.layout.depth; d++ {
		r := m.grid.At(m.slot(x, d)).Resident
		switch {
		case r == None && free == d-1:
			free = d
		case r != None && r != a:
			return 0, false
		}
	}
	return free, free > 0
}

// hallClear reports whether the hallway is open from column from (not
// included) up to and including column to.
func (m *Map) hallClear(from, to int) bool {
	if from == to {
		return true
	}
	step := 1
	if to < from {
		step = -1
	}
	for x := from + step; ; x += step {
		switch pl := m.grid.At(aoc.Pt{X: x, Y: m.layout.hallY}); pl.Kind {
		case Doorway:
		case Hall:
			if pl.Resident != None {
				return false
			}
		default:
			return false
		}
		if x == to {
			return true
		}
	}
}

func (m *Map) clone() *Map {
	return &Map{
		Energy:   m.Energy,
		Extended: m.Extended,
		grid:     m.grid.Clone(),
		layout:   m.layout,
	}
}

func (m *Map) String() string {
	rows := strings.Split(strings.TrimSuffix(m.grid.Render(Place.Rune), "\n"), "\n")
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return fmt.Sprintf("Energy spent: %d\n%s\n", m.Energy, strings.Join(rows, "\n"))
}
