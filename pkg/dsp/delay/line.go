// Package delay provides the stereo delay line for the SillyDelay effect.
package delay

// Frame is one stereo sample pair.
type Frame struct {
	Left  float32
	Right float32
}

// StereoLine is a fixed-capacity FIFO of stereo frames. Every PushPop
// inserts the newest frame and returns the oldest, so occupancy never
// changes and a frame comes back out exactly Capacity() calls after it
// went in. The line is pre-filled at construction, which means the very
// first pop already yields a valid frame.
type StereoLine struct {
	frames []Frame
	pos    int
}

// NewStereo creates a delay line holding exactly capacity frames, all
// initialized to fill. A capacity below one is clamped to one frame.
func NewStereo(capacity int, fill Frame) *StereoLine {
	if capacity < 1 {
		capacity = 1
	}

	frames := make([]Frame, capacity)
	for i := range frames {
		frames[i] = fill
	}

	return &StereoLine{frames: frames}
}

// Capacity returns the fixed number of frames the line holds.
func (l *StereoLine) Capacity() int {
	return len(l.frames)
}

// PushPop inserts in as the newest frame and returns the oldest frame,
// which is discarded from the line. No allocations, safe for the audio
// thread.
func (l *StereoLine) PushPop(in Frame) Frame {
	out := l.frames[l.pos]
	l.frames[l.pos] = in

	l.pos++
	if l.pos >= len(l.frames) {
		l.pos = 0
	}

	return out
}

// Reset re-fills every slot with fill without reallocating.
func (l *StereoLine) Reset(fill Frame) {
	for i := range l.frames {
		l.frames[i] = fill
	}
	l.pos = 0
}
