package cuboid

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	aoc "github.com/kecors/aoc21"
)

var (
	stepRx   = regexp.MustCompile(`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)
	validate = validator.New()
)

// ParseStep parses a line like "on x=10..12,y=10..12,z=10..12".
func ParseStep(line string) (Step, error) {
	m := stepRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Step{}, fmt.Errorf("malformed step %q", line)
	}
	var bounds [6]int64
	for i := range bounds {
		v, err := aoc.Int64(m[i+2])
		if err != nil {
			return Step{}, fmt.Errorf("step %q: %w", line, err)
		}
		bounds[i] = v
	}
	st := Step{
		On: m[1] == "on",
		Cuboid: Cuboid{
			X: Range{bounds[0], bounds[1]},
			Y: Range{bounds[2], bounds[3]},
			Z: Range{bounds[4], bounds[5]},
		},
	}
	if err := validate.Struct(st); err != nil {
		return Step{}, fmt.Errorf("step %q: %w", line, err)
	}
	if _, ok := st.Cuboid.Volume(); !ok {
		return Step{}, fmt.Errorf("step %q: cell count overflows int64", line)
	}
	return st, nil
}

// ParseSteps parses one step per line. Blank lines are skipped.
func ParseSteps(r io.Reader) ([]Step, error) {
	var steps []Step
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		st, err := ParseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		steps = append(steps, st)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}
