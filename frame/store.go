package frame

// Store owns the ordered frame sequence: outermost first, handle last
// Engines receive the live slice from Frames and mutate it in place
// The sequence is only ever replaced as a whole
type Store struct {
	layout Layout
	frames []Frame
}

// NewStore builds a store from the layout
func NewStore(l Layout) *Store {
	s := &Store{}
	s.Rebuild(l)
	return s
}

// Rebuild replaces the whole sequence from a new layout
func (s *Store) Rebuild(l Layout) {
	s.frames = l.Build()
	s.layout = l
}

// Frames returns the live mutable sequence
func (s *Store) Frames() []Frame { return s.frames }

// Len returns the frame count
func (s *Store) Len() int { return len(s.frames) }

// Handle returns the innermost frame, the only one driven by input
func (s *Store) Handle() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

// Layout returns the layout the current sequence was built from
func (s *Store) Layout() Layout { return s.layout }

// Canvas returns the canvas rectangle
func (s *Store) Canvas() Rect { return s.layout.Canvas() }

// Snapshot copies frame geometry for readers that must not alias the live slice
func (s *Store) Snapshot(dst []Rect) []Rect {
	dst = dst[:0]
	for i := range s.frames {
		dst = append(dst, s.frames[i].Rect())
	}
	return dst
}
