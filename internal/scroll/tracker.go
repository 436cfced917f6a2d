package scroll

// Sample pairs a scroll offset with its velocity, the first difference
// against the previous offset.
type Sample struct {
	Offset float64
	Delta  float64
}

// Tracker derives velocity from a time-ordered sequence of scroll offsets.
// The only state is the previous sample; callers serialize access.
type Tracker struct {
	prev    float64
	hasPrev bool
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records an offset sample. It returns false for the first sample,
// since no delta is defined until two samples exist.
func (t *Tracker) Observe(offset float64) (Sample, bool) {
	if !t.hasPrev {
		t.prev = offset
		t.hasPrev = true
		return Sample{}, false
	}

	s := Sample{
		Offset: offset,
		Delta:  offset - t.prev,
	}
	t.prev = offset
	return s, true
}

// Last returns the most recently observed offset, if any
func (t *Tracker) Last() (float64, bool) {
	return t.prev, t.hasPrev
}

// Reset clears the tracker state
func (t *Tracker) Reset() {
	t.prev = 0
	t.hasPrev = false
}
