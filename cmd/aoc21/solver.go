package main

import (
	_ "embed"
	"fmt"

	aoc "github.com/kecors/aoc21"
	"github.com/kecors/aoc21/amphipod"
	"github.com/kecors/aoc21/bits"
	"github.com/kecors/aoc21/chiton"
	"github.com/kecors/aoc21/cuboid"
)

//go:embed solver.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=40

1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
*/
func (s solver) D15p1() any {
	g := aoc.MustGet(chiton.Parse(s.Reader()))
	return aoc.MustGet(chiton.LowestRisk(g, s.SearchLimit(), s.Logger()))
}

// want=315
func (s solver) D15p2() any {
	g := aoc.MustGet(chiton.Parse(s.Reader()))
	return aoc.MustGet(chiton.LowestRisk(chiton.Tile(g, 5), s.SearchLimit(), s.Logger()))
}

func (s solver) decode() *bits.Packet {
	return aoc.MustGet(bits.Decode(string(s.Input())))
}

/*
want=31

A0016C880162017C3686B18A3D4780
*/
func (s solver) D16p1() any {
	return s.decode().VersionSum()
}

/*
want=1

9C0141080250320F1802104A08
*/
func (s solver) D16p2() any {
	return aoc.MustGet(s.decode().Eval())
}

/*
want=39

on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13
off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
*/
func (s solver) D22p1() any {
	steps := aoc.MustGet(cuboid.ParseSteps(s.Reader()))
	return cuboid.Reboot(cuboid.Restrict(steps, cuboid.InitRegion)).TotalOn()
}

// want=39
func (s solver) D22p2() any {
	steps := aoc.MustGet(cuboid.ParseSteps(s.Reader()))
	on := cuboid.Reboot(steps)
	s.Debugf("%d disjoint cuboids", len(on))
	return on.TotalOn()
}

func (s solver) organize(extended bool) any {
	m := aoc.MustGet(amphipod.ParseMap(string(s.Input()), extended))
	s.Debugf("start:\n%v", m)
	energy, err := amphipod.Solve(m, s.SearchLimit(), s.Logger())
	if err != nil {
		panic(fmt.Errorf("extended=%v: %w", extended, err))
	}
	return energy
}

/*
want=12521

#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
*/
func (s solver) D23p1() any {
	return s.organize(false)
}

// want=44169
func (s solver) D23p2() any {
	return s.organize(true)
}
