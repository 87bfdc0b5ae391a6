package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridHash(t *testing.T) {
	g := MakeGrid[int](3, 2)
	g.Set(Pt{X: 2, Y: 1}, 7)
	c := g.Clone()
	assert.Equal(t, g.Hash(), c.Hash())

	c.Set(Pt{X: 0, Y: 0}, 1)
	assert.NotEqual(t, g.Hash(), c.Hash())
	assert.Equal(t, 0, g.At(Pt{}), "Clone shares rows")

	built := Grid[int]{{0, 0, 0}, {0, 0, 7}}
	assert.Equal(t, g.Hash(), built.Hash())
}

func TestGridAtOk(t *testing.T) {
	g := Grid[rune]{[]rune("ab"), []rune("cd")}
	tests := []struct {
		p    Pt
		want rune
		ok   bool
	}{
		{Pt{0, 0}, 'a', true},
		{Pt{1, 1}, 'd', true},
		{Pt{-1, 0}, 0, false},
		{Pt{2, 0}, 0, false},
		{Pt{0, 2}, 0, false},
	}
	for _, tt := range tests {
		if got, ok := g.AtOk(tt.p); got != tt.want || ok != tt.ok {
			t.Errorf("AtOk(%v) = %q, %v, want %q, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := (Grid[int]{}).AtOk(Pt{}); ok {
		t.Error("AtOk on empty grid succeeded")
	}
	assert.Equal(t, Pt{X: 2, Y: 2}, g.Size())
	assert.Equal(t, "ab\ncd\n", g.Render(func(r rune) rune { return r }))
}

func TestNeighbors(t *testing.T) {
	var n []Pt
	Pt{X: 1, Y: 1}.ForImmediateNeighbors(func(p Pt) bool {
		n = append(n, p)
		return true
	})
	assert.ElementsMatch(t, []Pt{{1, 0}, {0, 1}, {2, 1}, {1, 2}}, n)

	count := 0
	Pt{}.ForNeighbors(func(Pt) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)

	if got := (Pt{X: -2, Y: 3}).MDist(Pt{X: 1, Y: -1}); got != 7 {
		t.Errorf("MDist = %v, want 7", got)
	}
}

func TestDigits(t *testing.T) {
	got, err := Digits("0918")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 9, 1, 8}, got)
	_, err = Digits("12a")
	assert.Error(t, err)
	assert.Equal(t, 6, Sum(1, 2, 3))
	assert.Equal(t, int64(3), AbsDiff[int64](-1, 2))
}
