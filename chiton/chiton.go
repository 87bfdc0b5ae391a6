// Package chiton finds the lowest total risk path across the cave of
// 2021 day 15.
package chiton

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	aoc "github.com/kecors/aoc21"
)

// Parse reads a rectangular grid of risk digits, each 1 through 9.
func Parse(r io.Reader) (aoc.Grid[int], error) {
	var g aoc.Grid[int]
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}
		row, err := aoc.Digits(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(g)+1, err)
		}
		for x, v := range row {
			if v == 0 {
				return nil, fmt.Errorf("row %d column %d: risk 0", len(g)+1, x+1)
			}
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", len(g)+1, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, errors.New("empty cave")
	}
	return g, nil
}

// Tile repeats g n times in each direction. Every tile to the right or
// below adds 1 to the risk of the one before it; risks above 9 wrap to 1.
func Tile(g aoc.Grid[int], n int) aoc.Grid[int] {
	size := g.Size()
	out := aoc.MakeGrid[int](size.X*n, size.Y*n)
	out.ForEach(func(p aoc.Pt, _ int) {
		v := g.At(aoc.Pt{X: p.X % size.X, Y: p.Y % size.Y}) + p.X/size.X + p.Y/size.Y
		out.Set(p, (v-1)%9+1)
	})
	return out
}

type visit struct {
	p    aoc.Pt
	risk int
}

// LowestRisk returns the least total risk entering cells on a path from the
// top left corner to the bottom right one, moving orthogonally. The risk of
// the starting cell is not counted. maxNodes bounds the number of cells
// expanded; 0 means no bound.
func LowestRisk(g aoc.Grid[int], maxNodes int, logger *slog.Logger) (int, error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0, errors.New("empty cave")
	}
	end := g.Size()
	end.X--
	end.Y--
	s := aoc.Search[visit, aoc.Pt]{
		Key:      func(v visit) aoc.Pt { return v.p },
		Cost:     func(v visit) int { return v.risk },
		Estimate: func(v visit) int { return v.p.MDist(end) },
		Next: func(v visit) []visit {
			var out []visit
			v.p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if r, ok := g.AtOk(n); ok {
					out = append(out, visit{n, v.risk + r})
				}
				return true
			})
			return out
		},
		Done:     func(v visit) bool { return v.p == end },
		MaxNodes: maxNodes,
		Logger:   logger,
	}
	v, _, err := s.Run(visit{})
	if err != nil {
		return 0, fmt.Errorf("crossing cave: %w", err)
	}
	return v.risk, nil
}
