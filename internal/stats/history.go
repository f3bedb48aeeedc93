// Package stats tracks population over time and detects repeating boards.
package stats

// DefaultHistoryLimit bounds the number of samples a History keeps.
const DefaultHistoryLimit = 1000

// Sample is the population observed at one generation.
type Sample struct {
	Generation int
	Population int
}

// History is a bounded, oldest-first list of population samples.
type History struct {
	limit   int
	samples []Sample
}

// NewHistory returns a History holding at most limit samples.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record appends a sample, discarding the oldest one when full.
func (h *History) Record(generation, population int) {
	if len(h.samples) == h.limit {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, Sample{Generation: generation, Population: population})
}

// Samples returns a copy of the recorded samples.
func (h *History) Samples() []Sample {
	return append([]Sample(nil), h.samples...)
}

// Len reports the number of recorded samples.
func (h *History) Len() int { return len(h.samples) }

// Last returns the most recent sample.
func (h *History) Last() (Sample, bool) {
	if len(h.samples) == 0 {
		return Sample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Reset drops every sample.
func (h *History) Reset() { h.samples = h.samples[:0] }
