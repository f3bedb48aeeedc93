package stats

import (
	"crypto/md5"
	"encoding/binary"

	"lifegrid/pkg/life"
)

// DefaultDetectorWindow is how many recent boards a Detector remembers.
const DefaultDetectorWindow = 32

type fingerprint [md5.Size]byte

// Detector recognises boards that repeat within a sliding window of
// generations. A period of 1 is a still life, 2 a blinker, and so on.
type Detector struct {
	window int
	seen   []fingerprint
	buf    []byte
}

// NewDetector returns a Detector that remembers window boards.
func NewDetector(window int) *Detector {
	if window <= 0 {
		window = DefaultDetectorWindow
	}
	return &Detector{window: window}
}

// Observe records g and returns the distance in generations to the most
// recent identical board, or 0 when g has not been seen within the window.
func (d *Detector) Observe(g *life.Grid) int {
	fp := d.fingerprint(g)
	period := 0
	for i := len(d.seen) - 1; i >= 0; i-- {
		if d.seen[i] == fp {
			period = len(d.seen) - i
			break
		}
	}
	if len(d.seen) == d.window {
		copy(d.seen, d.seen[1:])
		d.seen = d.seen[:len(d.seen)-1]
	}
	d.seen = append(d.seen, fp)
	return period
}

// Reset forgets every observed board.
func (d *Detector) Reset() { d.seen = d.seen[:0] }

func (d *Detector) fingerprint(g *life.Grid) fingerprint {
	cells := g.Cells()
	size := 8 + (len(cells)+7)/8
	if cap(d.buf) < size {
		d.buf = make([]byte, size)
	}
	buf := d.buf[:size]
	clear(buf)
	binary.LittleEndian.PutUint32(buf[0:], uint32(g.Rows()))
	binary.LittleEndian.PutUint32(buf[4:], uint32(g.Cols()))
	for i, alive := range cells {
		if alive {
			buf[8+i/8] |= 1 << (i % 8)
		}
	}
	return md5.Sum(buf)
}
