package carousel

// State is the position of a carousel over a fixed number of items.
//
// Index is always a valid index, unless Count is zero, in which case every
// transition leaves the state as it is.
type State struct {
	Index int
	Count int
}

// Prev steps back one item, wrapping from the first to the last.
func (s State) Prev() State {
	if s.Count == 0 {
		return s
	}

	if s.Index == 0 {
		s.Index = s.Count - 1
	} else {
		s.Index--
	}

	return s
}

// Next steps forward one item, wrapping from the last to the first.
func (s State) Next() State {
	if s.Count == 0 {
		return s
	}

	if s.Index == s.Count-1 {
		s.Index = 0
	} else {
		s.Index++
	}

	return s
}

// JumpTo moves to item k. The caller guarantees 0 <= k < Count.
func (s State) JumpTo(k int) State {
	s.Index = k
	return s
}

// View is what the page shows for a state. It is derived from the state and
// never stored.
type View struct {
	// Offset is the track's horizontal translation in pixels.
	Offset float64

	// Active has one entry per indicator; exactly one is true when there
	// is at least one item.
	Active []bool
}

// Render computes the view of s for cards of the given width separated by
// gap, with the given number of indicators.
func Render(s State, cardWidth, gap float64, indicators int) View {
	v := View{
		Offset: -float64(s.Index) * (cardWidth + gap),
		Active: make([]bool, indicators),
	}

	for i := range v.Active {
		v.Active[i] = s.Count > 0 && i == s.Index
	}

	return v
}
