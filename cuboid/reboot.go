package cuboid

// Step turns every cell of Cuboid on or off.
type Step struct {
	On     bool
	Cuboid Cuboid
}

func (s Step) String() string {
	if s.On {
		return "on " + s.Cuboid.String()
	}
	return "off " + s.Cuboid.String()
}

// OnSet is a set of pairwise disjoint cuboids whose union is exactly the set
// of lit cells.
type OnSet []Cuboid

// Apply returns the set after step. Every cuboid touching the step's cuboid
// is fragmented around it and the touching piece dropped; for an "on" step
// the step's cuboid is then added whole. s is not modified.
func (s OnSet) Apply(step Step) OnSet {
	out := make(OnSet, 0, len(s)+1)
	for _, c := range s {
		if !c.Intersects(step.Cuboid) {
			out = append(out, c)
			continue
		}
		for _, f := range c.Fragment(step.Cuboid) {
			if !f.Intersects(step.Cuboid) {
				out = append(out, f)
			}
		}
	}
	if step.On {
		out = append(out, step.Cuboid)
	}
	return out
}

// TotalOn is the number of lit cells.
func (s OnSet) TotalOn() int64 {
	var n int64
	for _, c := range s {
		n += c.Count()
	}
	return n
}

// Reboot applies steps in order to an empty set.
func Reboot(steps []Step) OnSet {
	var s OnSet
	for _, st := range steps {
		s = s.Apply(st)
	}
	return s
}

// InitRegion is the region considered by the initialization procedure.
var InitRegion = Cuboid{
	X: Range{-50, 50},
	Y: Range{-50, 50},
	Z: Range{-50, 50},
}

// Restrict drops the steps that miss bounds and clips the rest to it, so
// that rebooting the result counts only cells inside bounds.
func Restrict(steps []Step, bounds Cuboid) []Step {
	var out []Step
	for _, st := range steps {
		c, ok := st.Cuboid.Clip(bounds)
		if !ok {
			continue
		}
		out = append(out, Step{On: st.On, Cuboid: c})
	}
	return out
}
