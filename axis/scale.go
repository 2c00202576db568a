package axis

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidBreak is returned for breaks that are empty, reversed beyond
// repair, or overlap another break.
var ErrInvalidBreak = errors.New("axis: invalid break")

// Scale is a linear value scale with breaks. A collapsed break occupies
// only its Gap on the axis; the rest of the domain is mapped linearly.
type Scale struct {
	min, max float64
	blank    bool
	breaks   []Break
}

var _ BreakSet = (*Scale)(nil)

// NewScale creates a scale over [min, max] with the given breaks. Breaks
// are normalized so that Start < End, sorted by Start, and must not
// overlap.
func NewScale(min, max float64, breaks ...Break) (*Scale, error) {
	s := &Scale{min: min, max: max}
	if err := s.SetBreaks(breaks); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBreaks replaces the breaks of the scale.
func (s *Scale) SetBreaks(breaks []Break) error {
	out := make([]Break, 0, len(breaks))
	for _, b := range breaks {
		if b.Start > b.End {
			b.Start, b.End = b.End, b.Start
		}
		if math.IsNaN(b.Start) || math.IsNaN(b.End) {
			return fmt.Errorf("%w: NaN bound", ErrInvalidBreak)
		}
		if b.Gap < 0 {
			return fmt.Errorf("%w: negative gap %v", ErrInvalidBreak, b.Gap)
		}
		out = append(out, b)
	}
	slices.SortStableFunc(out, func(a, b Break) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})
	for i := 1; i < len(out); i++ {
		if out[i].Start < out[i-1].End {
			return fmt.Errorf("%w: [%v, %v] overlaps [%v, %v]", ErrInvalidBreak,
				out[i].Start, out[i].End, out[i-1].Start, out[i-1].End)
		}
	}
	s.breaks = out
	return nil
}

// SetExtent sets the data range.
func (s *Scale) SetExtent(min, max float64) {
	s.min, s.max = min, max
}

// Extent returns the data range.
func (s *Scale) Extent() (min, max float64) {
	return s.min, s.max
}

// SetBlank marks the scale as having no data.
func (s *Scale) SetBlank(blank bool) { s.blank = blank }

// IsBlank implements BreakSet. A scale with an empty extent is blank too.
func (s *Scale) IsBlank() bool {
	return s.blank || !(s.max > s.min)
}

// Breaks implements BreakSet. The returned slice is a copy.
func (s *Scale) Breaks() []Break {
	return slices.Clone(s.breaks)
}

// ExpandBreak implements BreakSet. Unknown ranges are ignored.
func (s *Scale) ExpandBreak(start, end float64) {
	for i := range s.breaks {
		if s.breaks[i].Start == start && s.breaks[i].End == end {
			s.breaks[i].Expanded = true
			return
		}
	}
}

// CollapseAll marks every break as collapsed again.
func (s *Scale) CollapseAll() {
	for i := range s.breaks {
		s.breaks[i].Expanded = false
	}
}

// Normalize maps v to [0, 1] over the extent, with collapsed breaks
// shrunk to their gap. Values outside the extent map outside [0, 1].
func (s *Scale) Normalize(v float64) float64 {
	total := s.elapsed(s.max)
	if total == 0 {
		return 0.5
	}
	return s.elapsed(v) / total
}

// elapsed returns the effective distance from min to v.
func (s *Scale) elapsed(v float64) float64 {
	d := v - s.min
	for _, b := range s.breaks {
		if b.Expanded || b.Span() <= 0 {
			continue
		}
		lo := math.Max(b.Start, s.min)
		hi := math.Min(b.End, math.Min(v, s.max))
		if hi <= lo {
			continue
		}
		keep := math.Min(b.Gap, b.Span()) / b.Span()
		d -= (hi - lo) * (1 - keep)
	}
	return d
}
