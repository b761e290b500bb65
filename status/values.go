package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 metric held as its IEEE-754 bits
// Zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set publishes val
func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

// Get reads the last published value
func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// AtomicString is a string metric; zero value reads ""
type AtomicString struct {
	v atomic.Value
}

// Store publishes val
func (s *AtomicString) Store(val string) { s.v.Store(val) }

// Load reads the last published value
func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}
