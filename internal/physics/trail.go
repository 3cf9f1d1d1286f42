package physics

// Trail is a bounded history of sampled positions. Once full, the oldest
// sample is overwritten.
type Trail struct {
	buf   []Point
	start int
	size  int
	every int
}

// NewTrail creates a trail holding at most capacity points, sampling one
// position every `every` ticks.
func NewTrail(capacity, every int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	if every < 1 {
		every = 1
	}
	return &Trail{
		buf:   make([]Point, capacity),
		every: every,
	}
}

// Sample records (x, y) if tick falls on the sampling cadence.
// Returns true if the point was stored.
func (t *Trail) Sample(tick int, x, y float64) bool {
	if tick%t.every != 0 {
		return false
	}
	t.Push(Point{X: x, Y: y})
	return true
}

// Push appends p, dropping the oldest point when full.
func (t *Trail) Push(p Point) {
	capacity := len(t.buf)
	if t.size < capacity {
		t.buf[(t.start+t.size)%capacity] = p
		t.size++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % capacity
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.size
}

// Cap returns the maximum number of stored points.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Clear drops all points without releasing memory.
func (t *Trail) Clear() {
	t.start = 0
	t.size = 0
}

// Points returns the stored points, oldest first, appended to dst.
func (t *Trail) Points(dst []Point) []Point {
	capacity := len(t.buf)
	for i := 0; i < t.size; i++ {
		dst = append(dst, t.buf[(t.start+i)%capacity])
	}
	return dst
}
