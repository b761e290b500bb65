package status

import "sync"

// History is a fixed-capacity ring of float samples, oldest overwritten first
type History struct {
	mu   sync.Mutex
	buf  []float64
	head int
	full bool
}

// NewHistory creates a ring holding up to n samples; n < 1 is treated as 1
func NewHistory(n int) *History {
	if n < 1 {
		n = 1
	}
	return &History{buf: make([]float64, n)}
}

// Push appends a sample
func (h *History) Push(v float64) {
	h.mu.Lock()
	h.buf[h.head] = v
	h.head++
	if h.head == len(h.buf) {
		h.head = 0
		h.full = true
	}
	h.mu.Unlock()
}

// Values copies samples oldest first into dst
func (h *History) Values(dst []float64) []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	dst = dst[:0]
	if h.full {
		dst = append(dst, h.buf[h.head:]...)
	}
	return append(dst, h.buf[:h.head]...)
}

// Len returns the number of stored samples
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.full {
		return len(h.buf)
	}
	return h.head
}

// Reset drops all samples
func (h *History) Reset() {
	h.mu.Lock()
	h.head = 0
	h.full = false
	h.mu.Unlock()
}
