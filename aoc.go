// Package aoc holds the shared utilities and the runner used by the
// Advent of Code 2021 solvers: grids, a priority queue, a generic best-first
// search, and a driver that checks each part against the sample in its doc
// comment before running it on the real input.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Options controls a Run.
type Options struct {
	// Day selects a single day; -1 runs every registered day.
	Day int
	// Part selects a single part; empty runs all parts.
	Part       string
	OnlySample bool
	SkipSample bool

	Config Config

	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

func (o *Options) setDefaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Puzzle is embedded by solvers and gives each part access to its input.
type Puzzle struct {
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	opts    *Options
	input   []byte
}

// Input returns the sample input in sample mode and the puzzle input
// otherwise. The puzzle input is read from <input_dir>/<day>.input, or from
// standard input when that file does not exist.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = MustGet(p.readInput())
	}
	return p.input
}

func (p *Puzzle) readInput() ([]byte, error) {
	if dir := p.opts.Config.InputDir; dir != "" {
		name := filepath.Join(dir, fmt.Sprintf("%d.input", p.day.day))
		b, err := os.ReadFile(name)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if p.opts.Stdin == nil {
		return nil, fmt.Errorf("no input for day %d", p.day.day)
	}
	b, err := io.ReadAll(p.opts.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	// Standard input can only be consumed once.
	p.opts.Stdin = nil
	return b, nil
}

func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(p.Reader())
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Logger returns the logger for the running part.
func (p *Puzzle) Logger() *slog.Logger {
	return p.opts.Logger.With(slog.Int("day", p.day.day), slog.String("part", p.solver.Part))
}

// Debugf logs only while the sample is running.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.Logger().Debug(fmt.Sprintf(format, args...))
	}
}

// SearchLimit is the configured ceiling for best-first searches.
func (p *Puzzle) SearchLimit() int {
	return p.opts.Config.Search.MaxNodes
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to. The methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// solve runs one part, turning a panic in the solver into an error.
func solve(ps partSolver) (got any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", ps.Name, r)
		}
	}()
	return ps.fn(), nil
}

func runDay(slvr any, year int, day day, samples map[string]sample, opts *Options) error {
	p := Puzzle{
		day:     day,
		samples: samples,
		opts:    opts,
	}
	out := opts.Stdout
	fmt.Fprintf(out, "Running %d day %d\n", year, day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			t0 := time.Now()
			got, err := solve(ps)
			if err != nil {
				fmt.Fprintf(out, "part %s: ❌ %v\n", ps.Part, err)
				return err
			}
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("day %d part %s sample: got %v, want %v", day.day, ps.Part, got, sample.want)
				}
				fmt.Fprintf(out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Run registers the D{day}p{part} methods of slvr, a pointer to a struct
// embedding *Puzzle, and runs the days selected by opts. src is the source
// of the file declaring the methods; their doc comments carry the samples.
func Run(year int, src []byte, slvr any, opts Options) error {
	opts.setDefaults()
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if opts.Day != -1 {
		day, ok := days[opts.Day]
		if !ok {
			return fmt.Errorf("no day %d", opts.Day)
		}
		return runDay(slvr, year, day, samples, &opts)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, day := range dayNums {
		if err := runDay(slvr, year, days[day], samples, &opts); err != nil {
			errs = append(errs, err)
		}
		fmt.Fprintln(opts.Stdout)
	}
	return errors.Join(errs...)
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
