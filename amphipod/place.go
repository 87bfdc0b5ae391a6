package amphipod

import "fmt"

// Amphipod is a kind of amphipod. The zero value None means "nobody".
type Amphipod uint8

const (
	None Amphipod = iota
	Amber
	Bronze
	Copper
	Desert

	numAmphipods = iota
)

func parseAmphipod(r rune) (Amphipod, bool) {
	switch r {
	case 'A':
		return Amber, true
	case 'B':
		return Bronze, true
	case 'C':
		return Copper, true
	case 'D':
		return Desert, true
	}
	return None, false
}

// Energy is the energy spent per step.
func (a Amphipod) Energy() int {
	switch a {
	case Amber:
		return 1
	case Bronze:
		return 10
	case Copper:
		return 100
	case Desert:
		return 1000
	}
	return 0
}

func (a Amphipod) Rune() rune {
	switch a {
	case Amber:
		return 'A'
	case Bronze:
		return 'B'
	case Copper:
		return 'C'
	case Desert:
		return 'D'
	}
	return '?'
}

func (a Amphipod) String() string {
	return string(a.Rune())
}

// PlaceKind tags a Place.
type PlaceKind uint8

const (
	Unmapped PlaceKind = iota
	Wall
	Hall
	Doorway
	Room

	numPlaceKinds = iota
)

func (k PlaceKind) String() string {
	switch k {
	case Unmapped:
		return "unmapped"
	case Wall:
		return "wall"
	case Hall:
		return "hall"
	case Doorway:
		return "doorway"
	case Room:
		return "room"
	}
	return fmt.Sprintf("PlaceKind(%d)", uint8(k))
}

// Place is one cell of the burrow. Resident is meaningful for Hall and
// Room; Target only for Room.
type Place struct {
	Kind     PlaceKind
	Target   Amphipod
	Resident Amphipod
}

// Rune renders the place the way the puzzle draws it, with doorways as
// 'o' and empty room slots as '-'.
func (p Place) Rune() rune {
	switch p.Kind {
	case Unmapped:
		return ' '
	case Wall:
		return '#'
	case Hall:
		if p.Resident != None {
			return p.Resident.Rune()
		}
		return '.'
	case Doorway:
		return 'o'
	case Room:
		if p.Resident != None {
			return p.Resident.Rune()
		}
		return '-'
	}
	return '?'
}
